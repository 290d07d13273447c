package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dilemma/internal/runner"
)

// LoadResults reads a results.json file.
func LoadResults(path string) (runner.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runner.Results{}, fmt.Errorf("read results: %w", err)
	}
	var results runner.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return runner.Results{}, fmt.Errorf("parse results %s: %w", filepath.Base(path), err)
	}
	return results, nil
}

// ResolveResultsPath maps a reference to a results file. The reference may
// be a results file, a run directory, or a run id under outputDir; an empty
// reference selects the latest run in outputDir.
func ResolveResultsPath(outputDir, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		runDir, err := findLatestRunDir(outputDir)
		if err != nil {
			return "", err
		}
		return filepath.Join(runDir, runner.ResultsFileName), nil
	}
	if info, err := os.Stat(ref); err == nil {
		if info.IsDir() {
			return filepath.Join(ref, runner.ResultsFileName), nil
		}
		return ref, nil
	}
	runDir := filepath.Join(outputDir, ref)
	if info, err := os.Stat(runDir); err == nil && info.IsDir() {
		return filepath.Join(runDir, runner.ResultsFileName), nil
	}
	return "", fmt.Errorf("run %s not found", ref)
}

// findLatestRunDir picks the lexically last run directory; run ids start
// with a UTC timestamp.
func findLatestRunDir(outputDir string) (string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", fmt.Errorf("list runs: %w", err)
	}
	runIDs := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(outputDir, entry.Name(), runner.ResultsFileName)); err == nil {
			runIDs = append(runIDs, entry.Name())
		}
	}
	if len(runIDs) == 0 {
		return "", fmt.Errorf("no runs found in %s", outputDir)
	}
	sort.Strings(runIDs)
	return filepath.Join(outputDir, runIDs[len(runIDs)-1]), nil
}
