package config

import (
	"testing"

	"dilemma/internal/game"
	"dilemma/internal/spec"
)

// TestValidateDefaultConfig verifies the normalized empty config is valid.
func TestValidateDefaultConfig(t *testing.T) {
	cfg := validConfig()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("expected config to validate, got %v", err)
	}
}

// TestValidateVersion verifies version checks.
func TestValidateVersion(t *testing.T) {
	cfg := validConfig()
	cfg.Version = 2
	requireIssue(t, Validate(&cfg), "version")
}

// TestValidateRoundBounds verifies rounds must stay within 1..100.
func TestValidateRoundBounds(t *testing.T) {
	for _, rounds := range []int{-1, game.MaxRounds + 1} {
		cfg := validConfig()
		cfg.Game.Rounds = rounds
		requireIssue(t, Validate(&cfg), "game.rounds")
	}
	for _, rounds := range []int{game.MinRounds, game.MaxRounds} {
		cfg := validConfig()
		cfg.Game.Rounds = rounds
		if err := Validate(&cfg); err != nil {
			t.Fatalf("expected %d rounds to validate, got %v", rounds, err)
		}
	}
}

// TestValidatePayoff verifies preset and custom checks.
func TestValidatePayoff(t *testing.T) {
	cfg := validConfig()
	cfg.Payoff.Preset = "generous"
	requireIssue(t, Validate(&cfg), "payoff.preset")

	cfg = validConfig()
	cfg.Payoff.Preset = game.PresetCustom
	requireIssue(t, Validate(&cfg), "payoff.custom")

	cfg.Payoff.Custom = &spec.CustomPayoff{CooperateCooperate: 3, CooperateDefect: -1, DefectCooperate: 5, DefectDefect: 1}
	requireIssue(t, Validate(&cfg), "payoff.custom")

	cfg.Payoff.Custom.CooperateDefect = 0
	if err := Validate(&cfg); err != nil {
		t.Fatalf("expected custom payoff to validate, got %v", err)
	}

	cfg = validConfig()
	cfg.Payoff.Custom = &spec.CustomPayoff{}
	requireIssue(t, Validate(&cfg), "payoff.custom")
}

// TestValidateProviders verifies provider kinds and their move lists.
func TestValidateProviders(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Provider = "anthropic"
	requireIssue(t, Validate(&cfg), "llm.provider")

	cfg = validConfig()
	cfg.Agents.A.Provider = ProviderStatic
	requireIssue(t, Validate(&cfg), "agents.a.moves")

	cfg.Agents.A.Moves = []string{"Defect"}
	if err := Validate(&cfg); err != nil {
		t.Fatalf("expected static agent to validate, got %v", err)
	}

	cfg.Agents.B.Provider = ProviderScripted
	cfg.Agents.B.Moves = []string{"C", "maybe"}
	requireIssue(t, Validate(&cfg), "agents.b.moves[1]")
}

// TestValidateRetry verifies retry bounds.
func TestValidateRetry(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Retry.MaxAttempts = -1
	cfg.LLM.Retry.DelayMs = -5
	err := Validate(&cfg)
	requireIssue(t, err, "llm.retry.max_attempts")
	requireIssue(t, err, "llm.retry.delay_ms")
}
