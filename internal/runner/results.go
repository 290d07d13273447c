package runner

import (
	"time"

	"dilemma/internal/game"
)

// Results is the serialized outcome of one run.
type Results struct {
	RunID         string             `json:"run_id"`
	State         State              `json:"state"`
	Config        RunSettings        `json:"config"`
	StartedAt     time.Time          `json:"started_at"`
	FinishedAt    time.Time          `json:"finished_at"`
	Rounds        []game.RoundRecord `json:"rounds"`
	Summary       game.Summary       `json:"summary"`
	FailureReason *string            `json:"failure_reason,omitempty"`
}

// RunSettings echoes the configuration a run used.
type RunSettings struct {
	Rounds          int          `json:"rounds"`
	RememberHistory bool         `json:"remember_history"`
	Payoff          PayoffReport `json:"payoff"`
	AgentA          string       `json:"agent_a"`
	AgentB          string       `json:"agent_b"`
}

// PayoffReport is the JSON form of a payoff matrix.
type PayoffReport struct {
	Name  string       `json:"name"`
	Cells []PayoffCell `json:"cells"`
}

type PayoffCell struct {
	Outcome string `json:"outcome"`
	AgentA  int    `json:"agent_a"`
	AgentB  int    `json:"agent_b"`
}

// NewPayoffReport lists the matrix cells in canonical outcome order.
func NewPayoffReport(matrix game.PayoffMatrix) PayoffReport {
	report := PayoffReport{Name: matrix.Name()}
	for _, outcome := range game.Outcomes {
		a, b := matrix.Payoff(outcome.A, outcome.B)
		report.Cells = append(report.Cells, PayoffCell{Outcome: outcome.Label(), AgentA: a, AgentB: b})
	}
	return report
}

// Failed reports whether the run aborted.
func (r Results) Failed() bool {
	return r.State == StateAborted
}

func buildResults(info RunInfo, state State, started, finished time.Time, records []game.RoundRecord, failure error) Results {
	results := Results{
		RunID: info.RunID,
		State: state,
		Config: RunSettings{
			Rounds:          info.Rounds,
			RememberHistory: info.RememberHistory,
			Payoff:          NewPayoffReport(info.Payoff),
			AgentA:          info.AgentA,
			AgentB:          info.AgentB,
		},
		StartedAt:  started,
		FinishedAt: finished,
		Rounds:     records,
		Summary:    game.Summarize(records),
	}
	if results.Rounds == nil {
		results.Rounds = []game.RoundRecord{}
	}
	if failure != nil {
		reason := failure.Error()
		results.FailureReason = &reason
	}
	return results
}
