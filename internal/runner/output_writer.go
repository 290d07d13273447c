package runner

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"dilemma/internal/game"
)

// CSVHeader is the header row of the CSV export.
var CSVHeader = []string{"Round", "Agent A Decision", "Agent B Decision", "Agent A Payoff", "Agent B Payoff"}

// OutputOptions selects which files WriteRunOutputs produces. The extra
// paths receive a copy in addition to the run directory.
type OutputOptions struct {
	CSV            bool
	JSON           bool
	HTML           bool
	CSVPath        string
	JSONPath       string
	HTMLPath       string
	ReportRenderer ReportRenderer
}

// WriteRunOutputs writes the selected outputs for a run and returns the
// run directory layout. Nothing is created when no output is selected.
func WriteRunOutputs(ctx context.Context, results Results, outputDir string, opts OutputOptions) (OutputPaths, error) {
	if outputDir == "" {
		return OutputPaths{}, fmt.Errorf("output directory is required")
	}
	paths, err := NewOutputPaths(outputDir, results.RunID)
	if err != nil {
		return OutputPaths{}, err
	}
	if opts.CSV || opts.JSON || opts.HTML {
		if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
			return OutputPaths{}, fmt.Errorf("create output dir: %w", err)
		}
	}
	if opts.JSON {
		if err := writeJSON(paths.ResultsPath(), results); err != nil {
			return paths, err
		}
	}
	if opts.JSONPath != "" {
		if err := writeJSON(opts.JSONPath, results); err != nil {
			return paths, err
		}
	}
	if opts.CSV {
		if err := writeCSVFile(paths.CSVPath(), results.Rounds); err != nil {
			return paths, err
		}
	}
	if opts.CSVPath != "" {
		if err := writeCSVFile(opts.CSVPath, results.Rounds); err != nil {
			return paths, err
		}
	}
	if opts.HTML || opts.HTMLPath != "" {
		if opts.ReportRenderer == nil {
			return paths, fmt.Errorf("html output requested without a report renderer")
		}
		if opts.HTML {
			if err := writeReport(ctx, paths.ReportPath(), results, opts.ReportRenderer); err != nil {
				return paths, err
			}
		}
		if opts.HTMLPath != "" {
			if err := writeReport(ctx, opts.HTMLPath, results, opts.ReportRenderer); err != nil {
				return paths, err
			}
		}
	}
	return paths, nil
}

// WriteCSV writes the round records with the export header.
func WriteCSV(w io.Writer, records []game.RoundRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Round),
			record.MoveA.String(),
			record.MoveB.String(),
			strconv.Itoa(record.PayoffA),
			strconv.Itoa(record.PayoffB),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeCSVFile(path string, records []game.RoundRecord) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteCSV(w, records)
	})
}

// writeJSON writes a Results payload as pretty JSON.
func writeJSON(path string, results Results) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := w.Write(append(payload, '\n'))
		return err
	})
}

func writeReport(ctx context.Context, path string, results Results, render ReportRenderer) error {
	return writeFile(path, func(w io.Writer) error {
		return render(results).Render(ctx, w)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	buffered := bufio.NewWriter(file)
	if err := write(buffered); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := buffered.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}
