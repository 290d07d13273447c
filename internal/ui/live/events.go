package live

import "dilemma/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventRound delivers a resolved round.
	EventRound
	// EventWarning carries a controller warning.
	EventWarning
	// EventRunEnd signals completion or abort.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind     EventKind
	Info     runner.RunInfo
	Progress runner.RoundProgress
	Message  string
	Results  runner.Results
}
