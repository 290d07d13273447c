package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"dilemma/internal/game"
)

const (
	chartWidth   = 600
	chartHeight  = 240
	chartPadding = 24
)

// CumulativeChart renders cumulative payoffs per agent as an inline SVG.
func CumulativeChart(summary game.Summary) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(summary.CumulativeA) == 0 {
			_, err := io.WriteString(w, "<h2>Cumulative payoff</h2><p>No rounds played.</p>")
			return err
		}
		minValue, maxValue := valueRange(summary.CumulativeA, summary.CumulativeB)
		var b strings.Builder
		fmt.Fprintf(&b, "<h2>Cumulative payoff</h2><svg class=\"cumulative\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">", chartWidth, chartHeight, chartWidth, chartHeight)
		fmt.Fprintf(&b, "<polyline fill=\"none\" stroke=\"#1f6feb\" stroke-width=\"2\" points=\"%s\"><title>Agent A</title></polyline>", chartPoints(summary.CumulativeA, minValue, maxValue))
		fmt.Fprintf(&b, "<polyline fill=\"none\" stroke=\"#d97706\" stroke-width=\"2\" points=\"%s\"><title>Agent B</title></polyline>", chartPoints(summary.CumulativeB, minValue, maxValue))
		b.WriteString("</svg><p>Blue: Agent A. Orange: Agent B.</p>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// valueRange returns the plotted y range. It always includes zero and is
// never empty.
func valueRange(series ...[]int) (int, int) {
	minValue, maxValue := 0, 0
	for _, values := range series {
		for _, value := range values {
			minValue = min(minValue, value)
			maxValue = max(maxValue, value)
		}
	}
	if maxValue == minValue {
		maxValue = minValue + 1
	}
	return minValue, maxValue
}

// chartPoints scales values in [minValue, maxValue] into the plot area, one
// x step per round.
func chartPoints(values []int, minValue, maxValue int) string {
	if maxValue <= minValue {
		maxValue = minValue + 1
	}
	innerW := float64(chartWidth - 2*chartPadding)
	innerH := float64(chartHeight - 2*chartPadding)
	step := innerW
	if len(values) > 1 {
		step = innerW / float64(len(values)-1)
	}
	points := make([]string, 0, len(values))
	for i, value := range values {
		x := float64(chartPadding) + step*float64(i)
		if len(values) == 1 {
			x = float64(chartPadding) + innerW/2
		}
		y := float64(chartHeight-chartPadding) - innerH*float64(value-minValue)/float64(maxValue-minValue)
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	return strings.Join(points, " ")
}
