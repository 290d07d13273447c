package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dilemma/internal/config"
	"dilemma/internal/game"
)

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: ./.dilemma.yml)")
		assumeYes := flags.Bool("yes", false, "Accept defaults without prompting")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		targetSpecPath := strings.TrimSpace(*specPath)
		if targetSpecPath == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetSpecPath = filepath.Join(wd, config.ConfigFileName)
		}
		absSpec, err := filepath.Abs(targetSpecPath)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if _, err := os.Stat(absSpec); err == nil {
			fmt.Fprintf(stderr, "Init failed: spec file already exists at %q\n", absSpec)
			return ExitError
		}

		cfg := config.DefaultConfig()
		if !*assumeYes {
			in := initInput
			if in == nil {
				in = os.Stdin
			}
			ask := newPrompter(in, stdout)

			confirm, err := ask.confirm(fmt.Sprintf("Initialize dilemma config at %s?", absSpec), true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirm {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}

			cfg.Game.Rounds, err = ask.number("Rounds", cfg.Game.Rounds, game.MinRounds, game.MaxRounds)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}

			cfg.Payoff.Preset, err = ask.choice("Payoff preset", game.PresetNames(), cfg.Payoff.Preset)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}

			remember, err := ask.confirm("Show each agent the opponent's previous moves?", true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			cfg.Game.RememberHistory = &remember

			cfg.Output.Dir, err = ask.text("Results folder", cfg.Output.Dir)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
		}

		if err := config.ScaffoldConfig(absSpec, cfg); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", absSpec)
		fmt.Fprintln(stdout, "Set DILEMMA_API_KEY before running openai agents.")
		return ExitOK
	}
}
