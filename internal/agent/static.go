package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"dilemma/internal/game"
)

// StaticProvider always plays the same move.
type StaticProvider struct {
	Move game.Move
}

// Name reports the fixed move.
func (p StaticProvider) Name() string {
	return "static/" + strings.ToLower(p.Move.String())
}

// Decide returns the fixed move.
func (p StaticProvider) Decide(ctx context.Context, _ string) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Cooperate, fmt.Errorf("%w: %v", ErrUndecided, err)
	}
	return p.Move, nil
}

// ScriptedProvider plays a fixed sequence of moves, cycling when exhausted.
type ScriptedProvider struct {
	mu    sync.Mutex
	moves []game.Move
	next  int
}

// NewScriptedProvider builds a provider from one or more moves.
func NewScriptedProvider(moves ...game.Move) (*ScriptedProvider, error) {
	if len(moves) == 0 {
		return nil, fmt.Errorf("scripted provider needs at least one move")
	}
	return &ScriptedProvider{moves: append([]game.Move(nil), moves...)}, nil
}

// ParseScript parses move names into a scripted provider.
func ParseScript(names []string) (*ScriptedProvider, error) {
	moves := make([]game.Move, 0, len(names))
	for i, name := range names {
		move, err := game.ParseMove(name)
		if err != nil {
			return nil, fmt.Errorf("moves[%d]: %w", i, err)
		}
		moves = append(moves, move)
	}
	return NewScriptedProvider(moves...)
}

// Name lists the script.
func (p *ScriptedProvider) Name() string {
	parts := make([]string, 0, len(p.moves))
	for _, move := range p.moves {
		parts = append(parts, move.String()[:1])
	}
	return "scripted/" + strings.Join(parts, "")
}

// Decide returns the next scripted move.
func (p *ScriptedProvider) Decide(ctx context.Context, _ string) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Cooperate, fmt.Errorf("%w: %v", ErrUndecided, err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	move := p.moves[p.next%len(p.moves)]
	p.next++
	return move, nil
}
