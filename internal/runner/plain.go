package runner

import (
	"fmt"
	"io"
)

// PlainObserver prints one line per round and a closing summary.
type PlainObserver struct {
	Out io.Writer
}

// NewPlainObserver returns an observer writing to w.
func NewPlainObserver(w io.Writer) *PlainObserver {
	return &PlainObserver{Out: w}
}

func (o *PlainObserver) OnRunStart(info RunInfo) {
	memory := "on"
	if !info.RememberHistory {
		memory = "off"
	}
	fmt.Fprintf(o.Out, "Run %s: %d rounds, payoff %s (%s), memory %s\n", info.RunID, info.Rounds, info.Payoff.Name(), info.Payoff, memory)
	fmt.Fprintf(o.Out, "Agent A: %s\nAgent B: %s\n", info.AgentA, info.AgentB)
}

func (o *PlainObserver) OnRoundComplete(progress RoundProgress) {
	r := progress.Record
	fmt.Fprintf(o.Out, "Round %d/%d: A %s, B %s -> %d/%d\n", progress.Index, progress.Total, r.MoveA, r.MoveB, r.PayoffA, r.PayoffB)
}

func (o *PlainObserver) OnWarning(message string) {
	fmt.Fprintf(o.Out, "Warning: %s\n", message)
}

// OnRunEnd prints totals, cooperation rates, and the failure if any.
func (o *PlainObserver) OnRunEnd(results Results) {
	s := results.Summary
	fmt.Fprintf(o.Out, "Total payoff: A %d, B %d\n", s.TotalA, s.TotalB)
	fmt.Fprintf(o.Out, "Cooperation: A %d/%d, B %d/%d\n", s.CooperationsA, s.Rounds, s.CooperationsB, s.Rounds)
	fmt.Fprintf(o.Out, "Defections: A %d/%d, B %d/%d\n", s.DefectionsA(), s.Rounds, s.DefectionsB(), s.Rounds)
	if results.FailureReason != nil {
		fmt.Fprintf(o.Out, "Run aborted after %d rounds: %s\n", len(results.Rounds), *results.FailureReason)
	}
}
