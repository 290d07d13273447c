package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"dilemma/internal/config"
)

// UI modes accepted by --ui.
const (
	uiAuto  = "auto"
	uiLive  = "live"
	uiPlain = "plain"
)

// uiModeDecision captures whether to use the live UI and colors.
type uiModeDecision struct {
	useLive bool
	noColor bool
	warning string
}

// terminalEnv holds the environment variables that affect rendering.
type terminalEnv struct {
	NoColor string `env:"NO_COLOR"`
	Term    string `env:"TERM"`
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// lookupTerminalEnv reads terminalEnv; tests replace it.
var lookupTerminalEnv = func() terminalEnv {
	var env terminalEnv
	if err := config.ParseEnv(&env); err != nil {
		return terminalEnv{}
	}
	return env
}

// resolveUIMode determines whether to enable the live UI. Verbose logging
// always uses plain output so log lines are not overwritten.
func resolveUIMode(mode string, verbose, noColor bool, stdout io.Writer) (uiModeDecision, error) {
	env := lookupTerminalEnv()
	decision := uiModeDecision{noColor: noColor || env.NoColor != "" || env.Term == "dumb"}

	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = uiAuto
	}
	switch normalized {
	case uiAuto:
		decision.useLive = !verbose && isTerminal(stdout) && env.Term != "dumb"
	case uiLive:
		switch {
		case verbose:
			decision.warning = "Live UI is disabled while verbose logging is on."
		case isTerminal(stdout):
			decision.useLive = true
		default:
			decision.warning = "Live UI requested but stdout is not a TTY; falling back to plain output."
		}
	case uiPlain:
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected %s|%s|%s)", mode, uiAuto, uiLive, uiPlain)
	}
	return decision, nil
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
