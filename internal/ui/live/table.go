package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the rounds table columns.
func defaultColumns() []table.Column {
	return columnsForWidth(0)
}

// columnsForWidth widens the decision columns on large terminals.
func columnsForWidth(width int) []table.Column {
	decision := 10
	if width >= 100 {
		decision = 14
	}
	return []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Agent A", Width: decision},
		{Title: "Agent B", Width: decision},
		{Title: "Payoff A", Width: 9},
		{Title: "Payoff B", Width: 9},
		{Title: "Total A", Width: 8},
		{Title: "Total B", Width: 8},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			fmtInt(row.Round),
			formatMove(row.MoveA, noColor),
			formatMove(row.MoveB, noColor),
			fmtInt(row.PayoffA),
			fmtInt(row.PayoffB),
			fmtInt(row.CumulativeA),
			fmtInt(row.CumulativeB),
		})
	}
	return rows
}
