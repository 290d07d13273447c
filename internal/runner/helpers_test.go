package runner

import (
	"context"
	"sync"
	"time"

	"dilemma/internal/game"
)

// step is one scripted provider answer.
type step struct {
	move game.Move
	err  error
}

// fakeProvider replays steps, repeating the last one, and records prompts.
type fakeProvider struct {
	mu      sync.Mutex
	name    string
	steps   []step
	prompts []string
}

func always(move game.Move) *fakeProvider {
	return &fakeProvider{name: "always/" + move.String(), steps: []step{{move: move}}}
}

func (p *fakeProvider) Name() string {
	return p.name
}

func (p *fakeProvider) Decide(_ context.Context, prompt string) (game.Move, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	index := min(len(p.prompts), len(p.steps)-1)
	p.prompts = append(p.prompts, prompt)
	return p.steps[index].move, p.steps[index].err
}

func (p *fakeProvider) calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prompts...)
}

// recordingObserver captures every controller event.
type recordingObserver struct {
	starts   []RunInfo
	rounds   []RoundProgress
	warnings []string
	ends     []Results
}

func (o *recordingObserver) OnRunStart(info RunInfo) { o.starts = append(o.starts, info) }
func (o *recordingObserver) OnRoundComplete(progress RoundProgress) {
	o.rounds = append(o.rounds, progress)
}
func (o *recordingObserver) OnWarning(message string) { o.warnings = append(o.warnings, message) }
func (o *recordingObserver) OnRunEnd(results Results) { o.ends = append(o.ends, results) }

var testStart = time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC)

func newTestController(observer RunObserver) *Controller {
	return NewController(ControllerDeps{
		Observer: observer,
		Now:      func() time.Time { return testStart },
		RunID:    func() (string, error) { return "run-1", nil },
	})
}

func configure(c *Controller, a, b *fakeProvider, remember bool) error {
	return c.Configure(RunConfig{
		Payoff:          game.DefaultPayoffMatrix(),
		ProviderA:       a,
		ProviderB:       b,
		PromptA:         "initial A",
		PromptB:         "initial B",
		RememberHistory: remember,
	})
}
