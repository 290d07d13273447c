package runner

import (
	"context"
	"fmt"
	"strings"

	"dilemma/internal/agent"
	"dilemma/internal/game"
	"dilemma/internal/verbose"
)

// Player names one side of the game.
type Player string

const (
	PlayerA Player = "A"
	PlayerB Player = "B"
)

func (p Player) opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// RoundFailure reports a round that could not be resolved. History is left
// untouched when it is returned.
type RoundFailure struct {
	Round  int
	Player Player
	Err    error
}

func (e *RoundFailure) Error() string {
	return fmt.Sprintf("round %d: agent %s: %v", e.Round, e.Player, e.Err)
}

func (e *RoundFailure) Unwrap() error {
	return e.Err
}

// RoundInput carries what one round needs besides the history.
type RoundInput struct {
	ProviderA       agent.DecisionProvider
	ProviderB       agent.DecisionProvider
	PromptA         string
	PromptB         string
	RememberHistory bool
}

// RoundEngine resolves rounds against a payoff matrix and appends them to
// a history.
type RoundEngine struct {
	Table   game.PayoffMatrix
	History *game.History
	Log     *verbose.Logger
}

// PlayRound asks both providers for a move, scores the pair, and appends
// the record. Decisions are requested A first; a failure of A skips B.
func (e *RoundEngine) PlayRound(ctx context.Context, in RoundInput) (game.RoundRecord, error) {
	round := e.History.Len() + 1
	promptA := BuildPrompt(PlayerA, in.PromptA, e.History.MovesB(), in.RememberHistory)
	promptB := BuildPrompt(PlayerB, in.PromptB, e.History.MovesA(), in.RememberHistory)

	moveA, err := e.decide(ctx, round, PlayerA, in.ProviderA, promptA)
	if err != nil {
		return game.RoundRecord{}, err
	}
	moveB, err := e.decide(ctx, round, PlayerB, in.ProviderB, promptB)
	if err != nil {
		return game.RoundRecord{}, err
	}

	record := e.History.Append(e.Table, moveA, moveB)
	e.Log.Logf(verbose.StyleRound, "round %d: A=%s B=%s payoff=%d,%d", record.Round, record.MoveA, record.MoveB, record.PayoffA, record.PayoffB)
	return record, nil
}

func (e *RoundEngine) decide(ctx context.Context, round int, player Player, provider agent.DecisionProvider, prompt string) (game.Move, error) {
	if provider == nil {
		return game.Cooperate, &RoundFailure{Round: round, Player: player, Err: ErrNoProviders}
	}
	if err := ctx.Err(); err != nil {
		return game.Cooperate, &RoundFailure{Round: round, Player: player, Err: err}
	}
	e.Log.Block(verbose.StyleDim, fmt.Sprintf("round %d prompt for %s (%s)", round, player, agent.Describe(provider)), prompt)
	move, err := provider.Decide(ctx, prompt)
	if err != nil {
		return game.Cooperate, &RoundFailure{Round: round, Player: player, Err: err}
	}
	if !move.Valid() {
		return game.Cooperate, &RoundFailure{Round: round, Player: player, Err: fmt.Errorf("%w: invalid move %d", agent.ErrUndecided, int(move))}
	}
	return move, nil
}

// BuildPrompt returns the context shown to player. Without memory or
// before the first round it is the initial prompt verbatim; otherwise it
// lists the opponent's moves only.
func BuildPrompt(player Player, initial string, opponentMoves []game.Move, remember bool) string {
	if !remember || len(opponentMoves) == 0 {
		return initial
	}
	names := make([]string, 0, len(opponentMoves))
	for _, move := range opponentMoves {
		names = append(names, "'"+move.String()+"'")
	}
	return fmt.Sprintf("Given the previous decisions of Agent %s: [%s], what should Agent %s choose (Cooperate or Defect)?",
		player.opponent(), strings.Join(names, ", "), player)
}
