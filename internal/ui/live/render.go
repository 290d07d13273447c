package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"dilemma/internal/runner"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := "Run " + state.RunID
	if state.AgentA != "" || state.AgentB != "" {
		line += " | " + state.AgentA + " vs " + state.AgentB
	}
	if elapsed := formatElapsed(state, now); elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSettings renders the payoff and memory line.
func renderSettings(state State, noColor bool) string {
	if state.Payoff == "" {
		return ""
	}
	memory := "off"
	if state.RememberHistory {
		memory = "on"
	}
	return stylize("Payoff: "+state.Payoff+" | Memory: "+memory, noColor, lipgloss.Color("240"))
}

// renderProgress renders the rounds progress bar.
func renderProgress(state State, noColor bool) string {
	color := lipgloss.Color("39")
	switch state.Outcome {
	case runner.StateCompleted:
		color = lipgloss.Color("42")
	case runner.StateAborted:
		color = lipgloss.Color("196")
	}
	return stylize(formatProgressBar(len(state.Rows), state.Total, 30), noColor, color)
}

// renderSummary renders totals and cooperation counts.
func renderSummary(state State, noColor bool) string {
	played := len(state.Rows)
	line := "Total A: " + fmtInt(state.TotalA) +
		" Total B: " + fmtInt(state.TotalB) +
		" Cooperations A: " + formatRate(state.CooperationsA, played) +
		" Cooperations B: " + formatRate(state.CooperationsB, played) +
		" Defections A: " + fmtInt(state.DefectionsA) +
		" Defections B: " + fmtInt(state.DefectionsB)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	color := lipgloss.Color("244")
	if state.Failure != "" {
		color = lipgloss.Color("196")
	}
	return stylize("Last event: "+state.LastEvent, noColor, color)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
