package agent

import (
	"context"
	"errors"
	"fmt"

	"dilemma/internal/game"
	"dilemma/internal/verbose"
)

// ModelDecider asks a chat model for a move and applies the normalization
// policy: credential failures are fatal, throttling is retried and then
// defaults to Cooperate, ambiguous replies default to Cooperate, and any
// other failure leaves the prompt undecided.
type ModelDecider struct {
	Client      ChatClient
	Retry       RetryPolicy
	MaxTokens   int
	Temperature float64
	Log         *verbose.Logger
}

// NewModelDecider builds a decider with the default retry policy and
// sampling settings.
func NewModelDecider(client ChatClient, log *verbose.Logger) *ModelDecider {
	return &ModelDecider{
		Client:      client,
		Retry:       DefaultRetryPolicy(),
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		Log:         log,
	}
}

// Name identifies the decider by its client.
func (d *ModelDecider) Name() string {
	if d != nil {
		if named, ok := d.Client.(interface{ Name() string }); ok {
			return named.Name()
		}
	}
	return "model"
}

// Decide returns the model's move for prompt.
func (d *ModelDecider) Decide(ctx context.Context, prompt string) (game.Move, error) {
	if d == nil || d.Client == nil {
		return game.Cooperate, fmt.Errorf("%w: no chat client configured", ErrUndecided)
	}
	policy := d.Retry.withDefaults()
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		d.Log.Logf(verbose.StyleDim, "attempt %d/%d: sending prompt (%d chars)", attempt, policy.MaxAttempts, len(prompt))
		text, err := d.Client.Complete(ctx, ChatRequest{
			Prompt:      prompt,
			MaxTokens:   d.MaxTokens,
			Temperature: d.Temperature,
		})
		if err == nil {
			move, ok := NormalizeMove(text)
			if !ok {
				d.Log.Logf(verbose.StyleWarning, "unclear decision %q, defaulting to %s", text, move)
			} else {
				d.Log.Logf(verbose.StyleDefault, "received decision %q -> %s", text, move)
			}
			return move, nil
		}
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			d.Log.Logf(verbose.StyleError, "credentials rejected: %v", err)
			return game.Cooperate, fmt.Errorf("decide: %w", err)
		case errors.Is(err, ErrThrottled):
			d.Log.Logf(verbose.StyleWarning, "rate limited on attempt %d: %v", attempt, err)
			if attempt == policy.MaxAttempts {
				continue
			}
			if sleepErr := policy.Sleep(ctx, policy.Delay); sleepErr != nil {
				return game.Cooperate, fmt.Errorf("%w: %v", ErrUndecided, sleepErr)
			}
		default:
			d.Log.Logf(verbose.StyleError, "chat completion error: %v", err)
			return game.Cooperate, fmt.Errorf("%w: %v", ErrUndecided, err)
		}
	}
	d.Log.Logf(verbose.StyleWarning, "still rate limited after %d attempts, defaulting to %s", policy.MaxAttempts, game.Cooperate)
	return game.Cooperate, nil
}
