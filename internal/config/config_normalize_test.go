package config

import (
	"testing"

	"dilemma/internal/agent"
	"dilemma/internal/game"
	"dilemma/internal/spec"
)

// TestNormalizeDefaults verifies unset fields receive defaults.
func TestNormalizeDefaults(t *testing.T) {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)

	if cfg.Game.Rounds != DefaultRounds {
		t.Fatalf("expected %d rounds, got %d", DefaultRounds, cfg.Game.Rounds)
	}
	if !RememberHistory(cfg) {
		t.Fatalf("expected memory on by default")
	}
	if cfg.Payoff.Preset != game.PresetDefault {
		t.Fatalf("expected default preset, got %q", cfg.Payoff.Preset)
	}
	if cfg.LLM.Provider != ProviderOpenAI || cfg.LLM.Model != agent.DefaultModel {
		t.Fatalf("unexpected llm defaults %+v", cfg.LLM)
	}
	if cfg.LLM.Temperature == nil || *cfg.LLM.Temperature != agent.DefaultTemperature {
		t.Fatalf("expected default temperature")
	}
	if cfg.LLM.MaxTokens != agent.DefaultMaxTokens {
		t.Fatalf("expected default max tokens, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Retry.MaxAttempts != 3 || cfg.LLM.Retry.DelayMs != 2000 {
		t.Fatalf("unexpected retry defaults %+v", cfg.LLM.Retry)
	}
	if cfg.Agents.A.InitialPrompt != agent.DefaultInitialPromptA || cfg.Agents.B.InitialPrompt != agent.DefaultInitialPromptB {
		t.Fatalf("expected default prompts")
	}
	if cfg.Agents.A.Provider != ProviderOpenAI || cfg.Agents.B.Model != agent.DefaultModel {
		t.Fatalf("expected agents to inherit llm settings, got %+v", cfg.Agents)
	}
	if cfg.Output.Dir != DefaultOutputDir {
		t.Fatalf("expected default output dir, got %q", cfg.Output.Dir)
	}
}

// TestNormalizeKeepsExplicitValues verifies explicit settings survive.
func TestNormalizeKeepsExplicitValues(t *testing.T) {
	remember := false
	temperature := 0.0
	cfg := spec.Config{
		Version: 1,
		Game:    spec.GameConfig{Rounds: 4, RememberHistory: &remember},
		LLM:     spec.LLMConfig{Provider: "Static", Temperature: &temperature},
		Agents: spec.AgentsConfig{
			B: spec.AgentConfig{Provider: "scripted", Moves: []string{"C", "D"}},
		},
	}
	Normalize(&cfg)

	if cfg.Game.Rounds != 4 || RememberHistory(cfg) {
		t.Fatalf("expected explicit game settings, got %+v", cfg.Game)
	}
	if *cfg.LLM.Temperature != 0 {
		t.Fatalf("expected explicit zero temperature to survive")
	}
	if cfg.Agents.A.Provider != ProviderStatic {
		t.Fatalf("expected agent a to inherit lowercased provider, got %q", cfg.Agents.A.Provider)
	}
	if cfg.Agents.B.Provider != ProviderScripted {
		t.Fatalf("expected agent b override, got %q", cfg.Agents.B.Provider)
	}
}

// TestNormalizeCustomPreset verifies a custom block implies the custom preset.
func TestNormalizeCustomPreset(t *testing.T) {
	cfg := spec.Config{Version: 1, Payoff: spec.PayoffConfig{Custom: &spec.CustomPayoff{CooperateCooperate: 4}}}
	Normalize(&cfg)
	if cfg.Payoff.Preset != game.PresetCustom {
		t.Fatalf("expected custom preset, got %q", cfg.Payoff.Preset)
	}
}
