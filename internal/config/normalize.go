package config

import (
	"strings"

	"dilemma/internal/agent"
	"dilemma/internal/game"
	"dilemma/internal/spec"
)

// Default values applied by Normalize.
const (
	DefaultRounds      = 10
	DefaultRetryDelay  = 2000
	DefaultOutputDir   = "dilemma-results"
	DefaultProvider    = ProviderOpenAI
	DefaultMaxAttempts = agent.DefaultMaxAttempts
)

// Normalize fills unset fields with defaults. Agent provider and model fall
// back to the llm section.
func Normalize(cfg *spec.Config) {
	if cfg.Game.Rounds == 0 {
		cfg.Game.Rounds = DefaultRounds
	}
	if cfg.Game.RememberHistory == nil {
		remember := true
		cfg.Game.RememberHistory = &remember
	}

	cfg.Payoff.Preset = strings.TrimSpace(cfg.Payoff.Preset)
	if cfg.Payoff.Preset == "" {
		if cfg.Payoff.Custom != nil {
			cfg.Payoff.Preset = game.PresetCustom
		} else {
			cfg.Payoff.Preset = game.PresetDefault
		}
	}

	llm := &cfg.LLM
	llm.Provider = strings.ToLower(strings.TrimSpace(llm.Provider))
	if llm.Provider == "" {
		llm.Provider = DefaultProvider
	}
	if strings.TrimSpace(llm.Model) == "" {
		llm.Model = agent.DefaultModel
	}
	if llm.Temperature == nil {
		temperature := agent.DefaultTemperature
		llm.Temperature = &temperature
	}
	if llm.MaxTokens == 0 {
		llm.MaxTokens = agent.DefaultMaxTokens
	}
	if llm.Retry.MaxAttempts == 0 {
		llm.Retry.MaxAttempts = DefaultMaxAttempts
	}
	if llm.Retry.DelayMs == 0 {
		llm.Retry.DelayMs = DefaultRetryDelay
	}

	normalizeAgent(&cfg.Agents.A, *llm, agent.DefaultInitialPromptA)
	normalizeAgent(&cfg.Agents.B, *llm, agent.DefaultInitialPromptB)

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
}

func normalizeAgent(a *spec.AgentConfig, llm spec.LLMConfig, prompt string) {
	a.Provider = strings.ToLower(strings.TrimSpace(a.Provider))
	if a.Provider == "" {
		a.Provider = llm.Provider
	}
	if strings.TrimSpace(a.Model) == "" {
		a.Model = llm.Model
	}
	if strings.TrimSpace(a.InitialPrompt) == "" {
		a.InitialPrompt = prompt
	}
}

// RememberHistory reports the normalized memory toggle.
func RememberHistory(cfg spec.Config) bool {
	return cfg.Game.RememberHistory == nil || *cfg.Game.RememberHistory
}
