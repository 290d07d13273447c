// Package verbose writes prefixed diagnostic lines to an optional writer,
// styling them when the writer is a color-capable terminal.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Prefix starts every verbose line.
const Prefix = "[verbose]"

// Style selects how a verbose line is rendered.
type Style int

const (
	StyleDefault Style = iota
	StyleDim
	StyleRound
	StyleState
	StyleWarning
	StyleError
)

// Logger writes verbose lines. A nil Logger discards everything.
type Logger struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
	styled   bool
}

// New returns a logger for w, or nil when w is nil.
func New(w io.Writer, noColor bool) *Logger {
	if w == nil {
		return nil
	}
	logger := &Logger{w: w}
	if !noColor && ShouldStyle(w) {
		logger.styled = true
		logger.renderer = lipgloss.NewRenderer(w)
	}
	return logger
}

// Enabled reports whether lines are written anywhere.
func (l *Logger) Enabled() bool {
	return l != nil && l.w != nil
}

// Logf formats and writes one line.
func (l *Logger) Logf(style Style, format string, args ...any) {
	if !l.Enabled() {
		return
	}
	line := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", l.render(StyleDim, Prefix), l.render(style, line))
}

// Block writes a header line followed by each line of body.
func (l *Logger) Block(style Style, header, body string) {
	if !l.Enabled() {
		return
	}
	l.Logf(style, "%s", header)
	body = strings.TrimRight(body, "\n")
	if strings.TrimSpace(body) == "" {
		return
	}
	for _, line := range strings.Split(body, "\n") {
		l.Logf(StyleDefault, "  %s", line)
	}
}

func (l *Logger) render(style Style, text string) string {
	if !l.styled {
		return text
	}
	s := l.renderer.NewStyle()
	switch style {
	case StyleDim:
		s = s.Faint(true)
	case StyleRound:
		s = s.Foreground(lipgloss.Color("33")).Bold(true)
	case StyleState:
		s = s.Foreground(lipgloss.Color("42"))
	case StyleWarning:
		s = s.Foreground(lipgloss.Color("214"))
	case StyleError:
		s = s.Foreground(lipgloss.Color("196")).Bold(true)
	default:
		return text
	}
	return s.Render(text)
}

// ShouldStyle reports whether ANSI styling suits the writer.
func ShouldStyle(w io.Writer) bool {
	if w == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	return IsTerminal(w)
}

// IsTerminal reports whether w is backed by a TTY.
func IsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
