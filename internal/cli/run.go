package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"dilemma/internal/agent"
	"dilemma/internal/config"
	"dilemma/internal/game"
	"dilemma/internal/report"
	"dilemma/internal/runner"
	"dilemma/internal/ui/live"
)

// liveUI is the part of the live controller the run command drives.
type liveUI interface {
	runner.RunObserver
	Close()
	Wait()
}

var (
	runAndWrite     = runner.RunAndWrite
	loadCredentials = config.LoadCredentials
	startLiveUI     = func(stdout io.Writer, opts live.Options) liveUI { return live.Start(stdout, opts) }
	runDeps         = runner.RunDependencies{}
)

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", "", "Path to config file (default: search for .dilemma.yml)")
		rounds := fs.Int("rounds", 0, "Number of rounds (overrides game.rounds)")
		preset := fs.String("preset", "", "Payoff preset (overrides payoff.preset)")
		randomPayoff := fs.Bool("random-payoff", false, "Draw a random payoff matrix")
		seed := fs.Int64("seed", 0, "Seed for --random-payoff (default: time based)")
		noMemory := fs.Bool("no-memory", false, "Do not show agents the opponent's previous moves")
		randomizePrompts := fs.Bool("randomize-prompts", false, "Ask the model for scenario prompts")
		uiMode := fs.String("ui", uiAuto, "Output mode: auto|live|plain")
		verboseFlag := fs.Bool("verbose", false, "Log prompts, replies, and state changes to stderr")
		noColor := fs.Bool("no-color", false, "Disable colors")
		outputDir := fs.String("output-dir", "", "Override output directory")
		csvOut := fs.Bool("csv", false, "Write the rounds as CSV")
		jsonOut := fs.Bool("json", false, "Write results.json")
		htmlOut := fs.Bool("html", false, "Write the HTML report")
		csvPath := fs.String("csv-path", "", "Also write the CSV export to this path")
		jsonPath := fs.String("json-path", "", "Also write results.json to this path")
		htmlPath := fs.String("html-path", "", "Also write the HTML report to this path")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		if *randomPayoff && *preset != "" {
			fmt.Fprintln(stderr, "--random-payoff and --preset are mutually exclusive")
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, *verboseFlag, *noColor, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintf(stderr, "Warning: %s\n", decision.warning)
		}

		resolvedSpec, err := resolveSpecPath(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to find config: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolvedSpec)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		creds, err := loadCredentials()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read environment: %v\n", err)
			return ExitError
		}
		if err := config.ApplyEnv(&cfg, creds); err != nil {
			fmt.Fprintf(stderr, "Invalid environment: %v\n", err)
			return ExitError
		}

		if *rounds != 0 {
			cfg.Game.Rounds = *rounds
		}
		if *preset != "" {
			cfg.Payoff.Preset = strings.ToLower(strings.TrimSpace(*preset))
		}
		if *noMemory {
			remember := false
			cfg.Game.RememberHistory = &remember
		}
		cfg.Output.CSV = cfg.Output.CSV || *csvOut
		cfg.Output.JSON = cfg.Output.JSON || *jsonOut
		cfg.Output.HTML = cfg.Output.HTML || *htmlOut
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid options:\n%v\n", err)
			return ExitUsage
		}

		deps := runDeps
		if deps.ReportRenderer == nil {
			deps.ReportRenderer = report.ReportPage
		}
		if *randomizePrompts && deps.PromptClient == nil {
			client, err := agent.NewOpenAIClient(cfg.LLM.Model, creds.APIKey, cfg.LLM.BaseURL, nil)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to randomize prompts: %v\n", err)
				return ExitError
			}
			deps.PromptClient = client
		}

		params := runner.RunParams{
			ConfigPath:    resolvedSpec,
			Credentials:   creds,
			Verbose:       *verboseFlag,
			VerboseWriter: stderr,
			NoColor:       decision.noColor,
			Outputs: runner.OutputOptions{
				CSV:      cfg.Output.CSV,
				JSON:     cfg.Output.JSON,
				HTML:     cfg.Output.HTML,
				CSVPath:  *csvPath,
				JSONPath: *jsonPath,
				HTMLPath: *htmlPath,
			},
			Deps: deps,
		}
		if *outputDir != "" {
			abs, err := filepath.Abs(*outputDir)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to resolve output dir: %v\n", err)
				return ExitError
			}
			params.OutputDir = abs
		}
		if *randomPayoff {
			if *seed == 0 {
				*seed = time.Now().UnixNano()
			}
			params.Payoff = game.RandomPayoffMatrix(rand.New(rand.NewSource(*seed)))
			fmt.Fprintf(stdout, "Random payoff (seed %d): %s\n", *seed, params.Payoff)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var ui liveUI
		if decision.useLive {
			ui = startLiveUI(stdout, live.Options{NoColor: decision.noColor, OnInterrupt: stop})
			params.Observer = ui
		} else {
			params.Observer = runner.NewPlainObserver(stdout)
		}

		results, paths, runErr := runAndWrite(ctx, cfg, params)
		if ui != nil {
			ui.Close()
			ui.Wait()
		}
		if results.RunID == "" {
			fmt.Fprintf(stderr, "Run failed: %v\n", runErr)
			return ExitError
		}
		if ui != nil {
			summary := results.Summary
			fmt.Fprintf(stdout, "Total payoff: A %d, B %d\n", summary.TotalA, summary.TotalB)
		}
		printOutputs(stdout, paths, params.Outputs)
		if runErr != nil {
			fmt.Fprintf(stderr, "Run %s aborted after %d rounds: %v\n", results.RunID, len(results.Rounds), runErr)
			return ExitError
		}
		fmt.Fprintf(stdout, "Run %s completed\n", results.RunID)
		return ExitOK
	}
}

// printOutputs lists the files written for a run.
func printOutputs(w io.Writer, paths runner.OutputPaths, outputs runner.OutputOptions) {
	if paths.RunID == "" {
		return
	}
	if outputs.JSON {
		fmt.Fprintf(w, "Results: %s\n", paths.ResultsPath())
	}
	if outputs.CSV {
		fmt.Fprintf(w, "CSV: %s\n", paths.CSVPath())
	}
	if outputs.HTML {
		fmt.Fprintf(w, "Report: %s\n", paths.ReportPath())
	}
	for _, extra := range []string{outputs.JSONPath, outputs.CSVPath, outputs.HTMLPath} {
		if extra != "" {
			fmt.Fprintf(w, "Wrote %s\n", extra)
		}
	}
}
