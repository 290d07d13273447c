package config

import (
	"fmt"
	"strings"

	"dilemma/internal/game"
	"dilemma/internal/spec"
)

// Provider kinds accepted in the llm and agents sections.
const (
	ProviderOpenAI   = "openai"
	ProviderStatic   = "static"
	ProviderScripted = "scripted"
)

// ProviderKinds lists the supported provider kinds.
func ProviderKinds() []string {
	return []string{ProviderOpenAI, ProviderStatic, ProviderScripted}
}

func knownProvider(kind string) bool {
	for _, candidate := range ProviderKinds() {
		if kind == candidate {
			return true
		}
	}
	return false
}

func validateLLM(cfg *spec.Config, add issueAdder) {
	llm := cfg.LLM
	if !knownProvider(llm.Provider) {
		add("llm.provider", fmt.Sprintf("unsupported provider %q", llm.Provider))
	}
	if llm.Temperature != nil && (*llm.Temperature < 0 || *llm.Temperature > 2) {
		add("llm.temperature", "must be between 0 and 2")
	}
	if llm.MaxTokens < 0 {
		add("llm.max_tokens", "must be >= 0")
	}
	if llm.Retry.MaxAttempts < 1 {
		add("llm.retry.max_attempts", "must be >= 1")
	}
	if llm.Retry.DelayMs < 0 {
		add("llm.retry.delay_ms", "must be >= 0")
	}
}

func validateAgent(prefix string, agent spec.AgentConfig, add issueAdder) {
	if !knownProvider(agent.Provider) {
		add(prefix+".provider", fmt.Sprintf("unsupported provider %q", agent.Provider))
		return
	}
	switch agent.Provider {
	case ProviderOpenAI:
		if strings.TrimSpace(agent.InitialPrompt) == "" {
			add(prefix+".initial_prompt", "is required")
		}
		if strings.TrimSpace(agent.Model) == "" {
			add(prefix+".model", "is required")
		}
		if len(agent.Moves) > 0 {
			add(prefix+".moves", "only used by static and scripted providers")
		}
	case ProviderStatic:
		if len(agent.Moves) != 1 {
			add(prefix+".moves", "static provider needs exactly one move")
		}
	case ProviderScripted:
		if len(agent.Moves) == 0 {
			add(prefix+".moves", "scripted provider needs at least one move")
		}
	}
	for i, name := range agent.Moves {
		if _, err := game.ParseMove(name); err != nil {
			add(fmt.Sprintf("%s.moves[%d]", prefix, i), err.Error())
		}
	}
}
