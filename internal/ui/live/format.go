package live

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"dilemma/internal/game"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatMove renders a move, green for Cooperate and red for Defect.
func formatMove(move game.Move, noColor bool) string {
	text := move.String()
	if noColor {
		return text
	}
	return moveStyle(move).Render(text)
}

func moveStyle(move game.Move) lipgloss.Style {
	if move == game.Defect {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
}

// formatProgressBar renders a fixed-width bar for done out of total.
func formatProgressBar(done, total, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "] " + fmtInt(done) + "/" + fmtInt(total)
}

// formatRate renders a count as a share of total.
func formatRate(count, total int) string {
	if total <= 0 {
		return fmtInt(count)
	}
	return fmtInt(count) + " (" + strconv.Itoa(count*100/total) + "%)"
}

// formatElapsed renders time since start, frozen once finished.
func formatElapsed(state State, now time.Time) string {
	if state.StartedAt.IsZero() {
		return ""
	}
	end := now
	if !state.FinishedAt.IsZero() {
		end = state.FinishedAt
	}
	elapsed := end.Sub(state.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed.Round(100 * time.Millisecond).String()
}
