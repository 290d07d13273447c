package live

import (
	"fmt"
	"time"

	"dilemma/internal/game"
	"dilemma/internal/runner"
)

// Reduce applies a UI event to the state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventRunStart:
		info := event.Info
		state = State{
			RunID:           info.RunID,
			Payoff:          info.Payoff.Name() + " " + info.Payoff.String(),
			AgentA:          info.AgentA,
			AgentB:          info.AgentB,
			RememberHistory: info.RememberHistory,
			Total:           info.Rounds,
			StartedAt:       state.StartedAt,
			Outcome:         runner.StateRunning,
		}
		if state.StartedAt.IsZero() {
			state.StartedAt = time.Now()
		}
		state.LastEvent = fmt.Sprintf("Run started: %d rounds", info.Rounds)
	case EventRound:
		state = applyRound(state, event.Progress)
	case EventWarning:
		state.LastEvent = "Warning: " + event.Message
	case EventRunEnd:
		state.Outcome = event.Results.State
		state.FinishedAt = event.Results.FinishedAt
		if summary := event.Results.Summary; summary.Rounds == len(state.Rows) {
			state.DefectionsA = summary.DefectionsA()
			state.DefectionsB = summary.DefectionsB()
		}
		if event.Results.FailureReason != nil {
			state.Failure = *event.Results.FailureReason
			state.LastEvent = "Run aborted: " + state.Failure
		} else {
			state.LastEvent = fmt.Sprintf("Run completed: %d rounds", len(state.Rows))
		}
	}
	return state
}

// applyRound appends a round once; repeated deliveries are ignored.
func applyRound(state State, progress runner.RoundProgress) State {
	record := progress.Record
	if record.Round <= len(state.Rows) {
		return state
	}
	if progress.Total > 0 {
		state.Total = progress.Total
	}
	state.TotalA += record.PayoffA
	state.TotalB += record.PayoffB
	if record.MoveA == game.Cooperate {
		state.CooperationsA++
	} else {
		state.DefectionsA++
	}
	if record.MoveB == game.Cooperate {
		state.CooperationsB++
	} else {
		state.DefectionsB++
	}
	rows := make([]RoundRow, len(state.Rows), len(state.Rows)+1)
	copy(rows, state.Rows)
	state.Rows = append(rows, RoundRow{
		Round:       record.Round,
		MoveA:       record.MoveA,
		MoveB:       record.MoveB,
		PayoffA:     record.PayoffA,
		PayoffB:     record.PayoffB,
		CumulativeA: state.TotalA,
		CumulativeB: state.TotalB,
	})
	state.LastEvent = fmt.Sprintf("Round %d: %s", record.Round, record.Outcome().Label())
	return state
}
