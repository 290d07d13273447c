package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"dilemma/internal/config"
)

// resolveSpecPath normalizes a config path or finds it from CWD.
func resolveSpecPath(specPath string) (string, error) {
	if strings.TrimSpace(specPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return "", fmt.Errorf("resolve spec path: %w", err)
	}
	return abs, nil
}

// resolveOutputRoot returns the directory holding run directories. An
// explicit directory wins over the one configured in the config file.
func resolveOutputRoot(outputDir, specPath string) (string, error) {
	if strings.TrimSpace(outputDir) != "" {
		return filepath.Abs(outputDir)
	}
	resolvedSpec, err := resolveSpecPath(specPath)
	if err != nil {
		return "", err
	}
	cfg, err := config.Load(resolvedSpec)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return config.ResolveOutputDir(resolvedSpec, cfg.Output.Dir), nil
}
