package cli

import (
	"fmt"
	"io"

	"dilemma/internal/game"
)

// runPresets lists the named payoff matrices.
func runPresets(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
			return ExitUsage
		}
		for _, name := range game.PresetNames() {
			matrix, err := game.PresetByName(name)
			if err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "%-24s %s\n", name, matrix)
		}
		fmt.Fprintf(stdout, "%-24s set payoff.custom in .dilemma.yml\n", game.PresetCustom)
		return ExitOK
	}
}
