package runner

import (
	"fmt"
	"time"

	"dilemma/internal/agent"
	"dilemma/internal/config"
	"dilemma/internal/game"
	"dilemma/internal/spec"
	"dilemma/internal/verbose"
)

// DefaultProviderFactory builds providers from config and environment
// credentials. The openai provider needs an API key.
func DefaultProviderFactory(creds config.Credentials, client agent.HTTPDoer, log *verbose.Logger) ProviderFactory {
	return func(player Player, agentConfig spec.AgentConfig, llm spec.LLMConfig) (agent.DecisionProvider, error) {
		switch agentConfig.Provider {
		case config.ProviderOpenAI:
			chat, err := agent.NewOpenAIClient(agentConfig.Model, creds.APIKey, llm.BaseURL, client)
			if err != nil {
				return nil, fmt.Errorf("agent %s: %w", player, err)
			}
			return NewModelDecider(chat, llm, log), nil
		case config.ProviderStatic:
			if len(agentConfig.Moves) == 0 {
				return nil, fmt.Errorf("agent %s: static provider needs a move", player)
			}
			move, err := game.ParseMove(agentConfig.Moves[0])
			if err != nil {
				return nil, fmt.Errorf("agent %s: %w", player, err)
			}
			return agent.StaticProvider{Move: move}, nil
		case config.ProviderScripted:
			provider, err := agent.ParseScript(agentConfig.Moves)
			if err != nil {
				return nil, fmt.Errorf("agent %s: %w", player, err)
			}
			return provider, nil
		default:
			return nil, fmt.Errorf("agent %s: unsupported provider %q", player, agentConfig.Provider)
		}
	}
}

// NewModelDecider applies the llm section to a decider over chat.
func NewModelDecider(chat agent.ChatClient, llm spec.LLMConfig, log *verbose.Logger) *agent.ModelDecider {
	decider := agent.NewModelDecider(chat, log)
	if llm.MaxTokens > 0 {
		decider.MaxTokens = llm.MaxTokens
	}
	if llm.Temperature != nil {
		decider.Temperature = *llm.Temperature
	}
	if llm.Retry.MaxAttempts > 0 {
		decider.Retry.MaxAttempts = llm.Retry.MaxAttempts
	}
	if llm.Retry.DelayMs >= 0 {
		decider.Retry.Delay = time.Duration(llm.Retry.DelayMs) * time.Millisecond
	}
	return decider
}

// PayoffFromConfig resolves the configured preset or custom matrix.
func PayoffFromConfig(cfg spec.PayoffConfig) (game.PayoffMatrix, error) {
	if cfg.Preset == game.PresetCustom {
		if cfg.Custom == nil {
			return game.PayoffMatrix{}, fmt.Errorf("custom payoff values are missing")
		}
		c := cfg.Custom
		return game.CustomPayoffMatrix(c.CooperateCooperate, c.CooperateDefect, c.DefectCooperate, c.DefectDefect)
	}
	return game.PresetByName(cfg.Preset)
}
