package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"dilemma/internal/game"
	"dilemma/internal/runner"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#1f2933}
table{border-collapse:collapse;margin:1rem 0}
th,td{border:1px solid #cbd2d9;padding:.3rem .6rem;text-align:right}
th{background:#f5f7fa}
td.move-cooperate{color:#1b7f3b}
td.move-defect{color:#b42318}
.failure{color:#b42318}
svg{border:1px solid #cbd2d9;background:#fff}`

// ReportPage renders a standalone HTML report for one run.
func ReportPage(results runner.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Prisoner's Dilemma " + results.RunID
		if _, err := fmt.Fprintf(w, "<!doctype html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>%s</title><style>%s</style></head><body>", templ.EscapeString(title), pageStyle); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>", templ.EscapeString(title)); err != nil {
			return err
		}
		sections := []templ.Component{
			SummarySection(results),
			PayoffSection(results.Config.Payoff),
			OutcomeSection(results.Summary),
			CumulativeChart(results.Summary),
			RoundsTable(results.Rounds),
		}
		for _, section := range sections {
			if err := section.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// SummarySection renders run metadata and totals.
func SummarySection(results runner.Results) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		summary := results.Summary
		memory := "off"
		if results.Config.RememberHistory {
			memory = "on"
		}
		rows := [][2]string{
			{"State", string(results.State)},
			{"Agents", results.Config.AgentA + " vs " + results.Config.AgentB},
			{"Rounds", fmt.Sprintf("%d of %d", summary.Rounds, results.Config.Rounds)},
			{"Memory", memory},
			{"Started", formatTime(results.StartedAt)},
			{"Duration", formatDuration(results.StartedAt, results.FinishedAt)},
			{"Total payoff A", fmt.Sprint(summary.TotalA)},
			{"Total payoff B", fmt.Sprint(summary.TotalB)},
			{"Cooperation A", fmt.Sprintf("%d (%s%%)", summary.CooperationsA, formatRate(summary.CooperationsA, summary.Rounds))},
			{"Cooperation B", fmt.Sprintf("%d (%s%%)", summary.CooperationsB, formatRate(summary.CooperationsB, summary.Rounds))},
			{"Decisions A", fmt.Sprintf("Cooperate %d, Defect %d", summary.CooperationsA, summary.DefectionsA())},
			{"Decisions B", fmt.Sprintf("Cooperate %d, Defect %d", summary.CooperationsB, summary.DefectionsB())},
		}
		var b strings.Builder
		b.WriteString("<h2>Summary</h2><table class=\"summary\">")
		for _, row := range rows {
			fmt.Fprintf(&b, "<tr><th>%s</th><td>%s</td></tr>", templ.EscapeString(row[0]), templ.EscapeString(row[1]))
		}
		b.WriteString("</table>")
		if results.FailureReason != nil {
			fmt.Fprintf(&b, "<p class=\"failure\">Run aborted: %s</p>", templ.EscapeString(*results.FailureReason))
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// PayoffSection renders the payoff matrix the run used.
func PayoffSection(payoff runner.PayoffReport) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h2>Payoff matrix (%s)</h2><table class=\"payoff\"><tr><th>Outcome</th><th>Agent A</th><th>Agent B</th></tr>", templ.EscapeString(payoff.Name))
		for _, cell := range payoff.Cells {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%d</td></tr>", templ.EscapeString(cell.Outcome), cell.AgentA, cell.AgentB)
		}
		b.WriteString("</table>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// OutcomeSection renders how often each move pair occurred.
func OutcomeSection(summary game.Summary) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h2>Outcomes</h2><table class=\"outcomes\"><tr><th>Outcome</th><th>Count</th><th>Share</th></tr>")
		for _, outcome := range game.Outcomes {
			label := outcome.Label()
			count := summary.OutcomeCounts[label]
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%s%%</td></tr>", templ.EscapeString(label), count, formatRate(count, summary.Rounds))
		}
		b.WriteString("</table>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RoundsTable renders every round with cumulative payoffs.
func RoundsTable(records []game.RoundRecord) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h2>Rounds</h2><table class=\"rounds\"><tr><th>Round</th><th>Agent A Decision</th><th>Agent B Decision</th><th>Agent A Payoff</th><th>Agent B Payoff</th><th>Cumulative A</th><th>Cumulative B</th></tr>")
		totalA, totalB := 0, 0
		for _, record := range records {
			totalA += record.PayoffA
			totalB += record.PayoffB
			fmt.Fprintf(&b, "<tr><td>%d</td>%s%s<td>%d</td><td>%d</td><td>%d</td><td>%d</td></tr>",
				record.Round, moveCell(record.MoveA), moveCell(record.MoveB), record.PayoffA, record.PayoffB, totalA, totalB)
		}
		b.WriteString("</table>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func moveCell(move game.Move) string {
	name := move.String()
	return "<td class=\"move-" + strings.ToLower(name) + "\">" + templ.EscapeString(name) + "</td>"
}

// BuildReportHTML renders the report page into a string.
func BuildReportHTML(ctx context.Context, results runner.Results) (string, error) {
	var builder strings.Builder
	if err := ReportPage(results).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
