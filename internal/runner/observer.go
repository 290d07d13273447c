package runner

import "dilemma/internal/game"

// RunInfo describes a run as it starts.
type RunInfo struct {
	RunID           string
	Rounds          int
	RememberHistory bool
	Payoff          game.PayoffMatrix
	AgentA          string
	AgentB          string
}

// RoundProgress is delivered after each resolved round.
type RoundProgress struct {
	Record game.RoundRecord
	Index  int
	Total  int
}

// RunObserver receives run lifecycle events for UI or logging.
type RunObserver interface {
	// OnRunStart signals the start of a run.
	OnRunStart(info RunInfo)
	// OnRoundComplete delivers each resolved round in order.
	OnRoundComplete(progress RoundProgress)
	// OnWarning reports a refused or questionable request.
	OnWarning(message string)
	// OnRunEnd signals completion or abort.
	OnRunEnd(results Results)
}

type nopObserver struct{}

func (nopObserver) OnRunStart(RunInfo)            {}
func (nopObserver) OnRoundComplete(RoundProgress) {}
func (nopObserver) OnWarning(string)              {}
func (nopObserver) OnRunEnd(Results)              {}

type multiObserver []RunObserver

// Observers fans events out to every non-nil observer in order.
func Observers(observers ...RunObserver) RunObserver {
	var list multiObserver
	for _, observer := range observers {
		if observer != nil {
			list = append(list, observer)
		}
	}
	switch len(list) {
	case 0:
		return nopObserver{}
	case 1:
		return list[0]
	}
	return list
}

func (m multiObserver) OnRunStart(info RunInfo) {
	for _, observer := range m {
		observer.OnRunStart(info)
	}
}

func (m multiObserver) OnRoundComplete(progress RoundProgress) {
	for _, observer := range m {
		observer.OnRoundComplete(progress)
	}
}

func (m multiObserver) OnWarning(message string) {
	for _, observer := range m {
		observer.OnWarning(message)
	}
}

func (m multiObserver) OnRunEnd(results Results) {
	for _, observer := range m {
		observer.OnRunEnd(results)
	}
}
