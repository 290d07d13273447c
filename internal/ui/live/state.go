package live

import (
	"time"

	"dilemma/internal/game"
	"dilemma/internal/runner"
)

// RoundRow holds UI state for a single round.
type RoundRow struct {
	Round       int
	MoveA       game.Move
	MoveB       game.Move
	PayoffA     int
	PayoffB     int
	CumulativeA int
	CumulativeB int
}

// State captures the live UI state for a run.
type State struct {
	RunID           string
	Payoff          string
	AgentA          string
	AgentB          string
	RememberHistory bool
	Total           int
	StartedAt       time.Time
	FinishedAt      time.Time
	Rows            []RoundRow
	TotalA          int
	TotalB          int
	CooperationsA   int
	CooperationsB   int
	DefectionsA     int
	DefectionsB     int
	Outcome         runner.State
	Failure         string
	LastEvent       string
}

// Done reports whether the run has ended.
func (s State) Done() bool {
	return s.Outcome == runner.StateCompleted || s.Outcome == runner.StateAborted
}
