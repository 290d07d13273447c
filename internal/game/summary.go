package game

// Summary aggregates a run's records for display and export.
type Summary struct {
	Rounds        int            `json:"rounds"`
	TotalA        int            `json:"total_payoff_a"`
	TotalB        int            `json:"total_payoff_b"`
	CooperationsA int            `json:"cooperations_a"`
	CooperationsB int            `json:"cooperations_b"`
	OutcomeCounts map[string]int `json:"outcome_counts"`
	CumulativeA   []int          `json:"cumulative_a"`
	CumulativeB   []int          `json:"cumulative_b"`
}

// Summarize computes totals, cooperation counts, outcome counts, and the
// cumulative payoff series of the records.
func Summarize(records []RoundRecord) Summary {
	summary := Summary{
		Rounds:        len(records),
		OutcomeCounts: make(map[string]int, len(Outcomes)),
		CumulativeA:   make([]int, 0, len(records)),
		CumulativeB:   make([]int, 0, len(records)),
	}
	for _, outcome := range Outcomes {
		summary.OutcomeCounts[outcome.Label()] = 0
	}
	for _, record := range records {
		summary.TotalA += record.PayoffA
		summary.TotalB += record.PayoffB
		if record.MoveA == Cooperate {
			summary.CooperationsA++
		}
		if record.MoveB == Cooperate {
			summary.CooperationsB++
		}
		summary.OutcomeCounts[record.Outcome().Label()]++
		summary.CumulativeA = append(summary.CumulativeA, summary.TotalA)
		summary.CumulativeB = append(summary.CumulativeB, summary.TotalB)
	}
	return summary
}

// DefectionsA returns how many rounds agent A defected.
func (s Summary) DefectionsA() int {
	return s.Rounds - s.CooperationsA
}

// DefectionsB returns how many rounds agent B defected.
func (s Summary) DefectionsB() int {
	return s.Rounds - s.CooperationsB
}
