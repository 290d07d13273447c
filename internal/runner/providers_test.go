package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"dilemma/internal/agent"
	"dilemma/internal/config"
	"dilemma/internal/game"
	"dilemma/internal/spec"
)

// TestDefaultProviderFactoryBuildsStaticAndScripted verifies offline providers.
func TestDefaultProviderFactoryBuildsStaticAndScripted(t *testing.T) {
	factory := DefaultProviderFactory(config.Credentials{}, nil, nil)
	static, err := factory(PlayerA, spec.AgentConfig{Provider: config.ProviderStatic, Moves: []string{"defect"}}, spec.LLMConfig{})
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	if move, err := static.Decide(context.Background(), "prompt"); err != nil || move != game.Defect {
		t.Fatalf("expected Defect, got %s (%v)", move, err)
	}

	scripted, err := factory(PlayerB, spec.AgentConfig{Provider: config.ProviderScripted, Moves: []string{"C", "D"}}, spec.LLMConfig{})
	if err != nil {
		t.Fatalf("scripted: %v", err)
	}
	var moves []game.Move
	for i := 0; i < 3; i++ {
		move, err := scripted.Decide(context.Background(), "prompt")
		if err != nil {
			t.Fatalf("decide: %v", err)
		}
		moves = append(moves, move)
	}
	if moves[0] != game.Cooperate || moves[1] != game.Defect || moves[2] != game.Cooperate {
		t.Fatalf("unexpected script %v", moves)
	}
}

// TestDefaultProviderFactoryRequiresAPIKey verifies the openai provider needs credentials.
func TestDefaultProviderFactoryRequiresAPIKey(t *testing.T) {
	factory := DefaultProviderFactory(config.Credentials{}, nil, nil)
	_, err := factory(PlayerA, spec.AgentConfig{Provider: config.ProviderOpenAI, Model: "gpt-4"}, spec.LLMConfig{})
	if !errors.Is(err, agent.ErrInvalidCredentials) {
		t.Fatalf("expected credential error, got %v", err)
	}
}

// TestDefaultProviderFactoryRejectsUnknownProvider verifies unknown kinds fail.
func TestDefaultProviderFactoryRejectsUnknownProvider(t *testing.T) {
	factory := DefaultProviderFactory(config.Credentials{}, nil, nil)
	if _, err := factory(PlayerA, spec.AgentConfig{Provider: "oracle"}, spec.LLMConfig{}); err == nil {
		t.Fatalf("expected unknown provider error")
	}
}

// TestNewModelDeciderAppliesLLMSettings verifies sampling and retry overrides.
func TestNewModelDeciderAppliesLLMSettings(t *testing.T) {
	temperature := 0.2
	decider := NewModelDecider(nil, spec.LLMConfig{
		Temperature: &temperature,
		MaxTokens:   5,
		Retry:       spec.RetryConfig{MaxAttempts: 4, DelayMs: 250},
	}, nil)
	if decider.Temperature != 0.2 || decider.MaxTokens != 5 {
		t.Fatalf("unexpected sampling settings %+v", decider)
	}
	if decider.Retry.MaxAttempts != 4 || decider.Retry.Delay != 250*time.Millisecond {
		t.Fatalf("unexpected retry policy %+v", decider.Retry)
	}
}

// TestPayoffFromConfig verifies presets and custom matrices resolve.
func TestPayoffFromConfig(t *testing.T) {
	matrix, err := PayoffFromConfig(spec.PayoffConfig{Preset: game.PresetPunishingDefection})
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if a, b := matrix.Payoff(game.Defect, game.Defect); a != -1 || b != -1 {
		t.Fatalf("expected (-1,-1), got (%d,%d)", a, b)
	}

	matrix, err = PayoffFromConfig(spec.PayoffConfig{Preset: game.PresetCustom, Custom: &spec.CustomPayoff{
		CooperateCooperate: 4, CooperateDefect: 1, DefectCooperate: 7, DefectDefect: 2,
	}})
	if err != nil {
		t.Fatalf("custom: %v", err)
	}
	if a, b := matrix.Payoff(game.Cooperate, game.Defect); a != 1 || b != 7 {
		t.Fatalf("expected (1,7), got (%d,%d)", a, b)
	}

	if _, err := PayoffFromConfig(spec.PayoffConfig{Preset: game.PresetCustom}); err == nil {
		t.Fatalf("expected missing custom values to fail")
	}
}
