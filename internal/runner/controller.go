package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dilemma/internal/agent"
	"dilemma/internal/game"
	"dilemma/internal/verbose"
)

// State is the lifecycle state of a Controller.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateAborted   State = "aborted"
)

// StaleRunMessage is the warning emitted when a finished run is restarted
// without a reset.
const StaleRunMessage = "Game already run. Reset the game to start a new session."

var (
	// ErrStaleRun rejects a start over a history that was not reset.
	ErrStaleRun = errors.New("stale run: reset before starting again")
	// ErrRunInProgress rejects calls that need the controller to be idle.
	ErrRunInProgress = errors.New("run in progress")
	// ErrNoProviders rejects a start before both providers are configured.
	ErrNoProviders = errors.New("decision providers are not configured")
	// ErrInvalidRounds rejects round counts outside the accepted range.
	ErrInvalidRounds = errors.New("invalid round count")
)

// RunConfig is applied to a Controller before Start.
type RunConfig struct {
	Payoff          game.PayoffMatrix
	ProviderA       agent.DecisionProvider
	ProviderB       agent.DecisionProvider
	PromptA         string
	PromptB         string
	RememberHistory bool
}

// Controller owns the run state machine and the history. It is not safe
// for concurrent use.
type Controller struct {
	state    State
	history  game.History
	cfg      RunConfig
	observer RunObserver
	log      *verbose.Logger
	now      func() time.Time
	runID    func() (string, error)
}

// NewController returns an idle controller using the default payoff matrix.
func NewController(deps ControllerDeps) *Controller {
	c := &Controller{
		state:    StateIdle,
		observer: Observers(deps.Observer),
		log:      deps.Log,
		now:      deps.Now,
		runID:    deps.RunID,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.runID == nil {
		c.runID = NewRunID
	}
	c.cfg = RunConfig{Payoff: game.DefaultPayoffMatrix(), RememberHistory: true}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Records returns a copy of the rounds played so far.
func (c *Controller) Records() []game.RoundRecord {
	return c.history.Records()
}

// PayoffMatrix returns the configured matrix.
func (c *Controller) PayoffMatrix() game.PayoffMatrix {
	return c.cfg.Payoff
}

// Configure replaces the run configuration. An empty matrix falls back to
// the default one; outcomes missing from a partial matrix score (0,0).
func (c *Controller) Configure(cfg RunConfig) error {
	if c.state == StateRunning {
		return ErrRunInProgress
	}
	if cfg.Payoff.IsZero() {
		cfg.Payoff = game.DefaultPayoffMatrix()
	} else if !cfg.Payoff.Complete() {
		c.log.Logf(verbose.StyleWarning, "payoff matrix %q is incomplete, missing outcomes score 0,0", cfg.Payoff.Name())
	}
	c.cfg = cfg
	c.log.Logf(verbose.StyleState, "configured payoff %s (%s), agents %s vs %s", cfg.Payoff.Name(), cfg.Payoff, agent.Describe(cfg.ProviderA), agent.Describe(cfg.ProviderB))
	return nil
}

// Start plays rounds sequentially. A start over a history that still holds
// rounds is refused with ErrStaleRun and a warning; the history is not
// touched. A failed round aborts the run and keeps earlier records.
func (c *Controller) Start(ctx context.Context, rounds int) (Results, error) {
	if c.state == StateRunning {
		return Results{}, ErrRunInProgress
	}
	if !c.history.Empty() {
		c.log.Logf(verbose.StyleWarning, "start refused: %d rounds already recorded", c.history.Len())
		c.observer.OnWarning(StaleRunMessage)
		return Results{}, ErrStaleRun
	}
	if rounds < game.MinRounds || rounds > game.MaxRounds {
		return Results{}, fmt.Errorf("%w: %d (expected %d to %d)", ErrInvalidRounds, rounds, game.MinRounds, game.MaxRounds)
	}
	if c.cfg.ProviderA == nil || c.cfg.ProviderB == nil {
		return Results{}, ErrNoProviders
	}
	runID, err := c.runID()
	if err != nil {
		return Results{}, fmt.Errorf("run id: %w", err)
	}

	info := RunInfo{
		RunID:           runID,
		Rounds:          rounds,
		RememberHistory: c.cfg.RememberHistory,
		Payoff:          c.cfg.Payoff,
		AgentA:          agent.Describe(c.cfg.ProviderA),
		AgentB:          agent.Describe(c.cfg.ProviderB),
	}
	started := c.now()
	c.transition(StateRunning)
	c.observer.OnRunStart(info)

	engine := &RoundEngine{Table: c.cfg.Payoff, History: &c.history, Log: c.log}
	input := RoundInput{
		ProviderA:       c.cfg.ProviderA,
		ProviderB:       c.cfg.ProviderB,
		PromptA:         c.cfg.PromptA,
		PromptB:         c.cfg.PromptB,
		RememberHistory: c.cfg.RememberHistory,
	}
	for i := 1; i <= rounds; i++ {
		record, err := engine.PlayRound(ctx, input)
		if err != nil {
			c.transition(StateAborted)
			c.log.Logf(verbose.StyleError, "run aborted: %v", err)
			results := buildResults(info, c.state, started, c.now(), c.history.Records(), err)
			c.observer.OnRunEnd(results)
			return results, err
		}
		c.observer.OnRoundComplete(RoundProgress{Record: record, Index: i, Total: rounds})
	}

	c.transition(StateCompleted)
	results := buildResults(info, c.state, started, c.now(), c.history.Records(), nil)
	c.observer.OnRunEnd(results)
	return results, nil
}

// Reset returns to Idle, clears the history, restores the default matrix,
// and drops the providers. Prompts and the memory toggle are kept.
func (c *Controller) Reset() error {
	if c.state == StateRunning {
		return ErrRunInProgress
	}
	c.history.Clear()
	c.cfg.Payoff = game.DefaultPayoffMatrix()
	c.cfg.ProviderA = nil
	c.cfg.ProviderB = nil
	c.transition(StateIdle)
	return nil
}

func (c *Controller) transition(next State) {
	if c.state != next {
		c.log.Logf(verbose.StyleState, "state %s -> %s", c.state, next)
	}
	c.state = next
}
