package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dilemma/internal/report"
	"dilemma/internal/runner"
)

var buildReportHTML = report.BuildReportHTML

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputDir := fs.String("input", "", "Directory containing runs (default: output.dir of the config)")
		specPath := fs.String("spec", "", "Path to config file (default: search for .dilemma.yml)")
		outputPath := fs.String("output", "", "Report output path (default: report.html in the run directory)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		resultsPath, err := resolveRunResults(*inputDir, *specPath, fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve run: %v\n", err)
			return ExitError
		}
		results, err := report.LoadResults(resultsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load results: %v\n", err)
			return ExitError
		}

		html, err := buildReportHTML(context.Background(), results)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
			return ExitError
		}
		reportPath := *outputPath
		if reportPath == "" {
			reportPath = filepath.Join(filepath.Dir(resultsPath), runner.ReportFileName)
		}
		if err := os.WriteFile(reportPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", reportPath)
		return ExitOK
	}
}

// resolveRunResults finds the results.json for a run reference. A reference
// that names an existing file or directory is used as is.
func resolveRunResults(inputDir, specPath, ref string) (string, error) {
	if ref != "" {
		if _, err := os.Stat(ref); err == nil {
			return report.ResolveResultsPath("", ref)
		}
	}
	outputRoot, err := resolveOutputRoot(inputDir, specPath)
	if err != nil {
		return "", err
	}
	return report.ResolveResultsPath(outputRoot, ref)
}
