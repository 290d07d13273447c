package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dilemma/internal/game"
)

var (
	// ErrInvalidCredentials reports that the model backend rejected the API key.
	// It is fatal for a run.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrThrottled reports that the backend rate limited the request.
	ErrThrottled = errors.New("rate limited")
	// ErrUndecided reports that no move could be obtained for a prompt.
	ErrUndecided = errors.New("decision unavailable")
)

// DecisionProvider produces a move for a prompt. Implementations return a
// valid move with a nil error, or an error wrapping ErrInvalidCredentials or
// ErrUndecided.
type DecisionProvider interface {
	Decide(ctx context.Context, prompt string) (game.Move, error)
}

// DecisionFunc adapts a function to DecisionProvider.
type DecisionFunc func(ctx context.Context, prompt string) (game.Move, error)

// Decide calls f.
func (f DecisionFunc) Decide(ctx context.Context, prompt string) (game.Move, error) {
	return f(ctx, prompt)
}

// Describe returns a short label for a provider.
func Describe(provider DecisionProvider) string {
	if provider == nil {
		return "none"
	}
	if named, ok := provider.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", provider)
}

// NormalizeMove maps free-form model text to a move. Text mentioning
// "cooperate" wins over "defect"; text mentioning neither is ambiguous and
// yields Cooperate with ok=false.
func NormalizeMove(text string) (move game.Move, ok bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(lowered, "cooperate"):
		return game.Cooperate, true
	case strings.Contains(lowered, "defect"):
		return game.Defect, true
	default:
		return game.Cooperate, false
	}
}
