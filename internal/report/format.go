package report

import (
	"fmt"
	"time"
)

// formatRate returns count as a percentage of total.
func formatRate(count, total int) string {
	if total <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(count)*100/float64(total))
}

// formatTime renders a timestamp or a dash when unset.
func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format(time.RFC3339)
}

func formatDuration(start, end time.Time) string {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return "-"
	}
	return end.Sub(start).Round(time.Millisecond).String()
}
