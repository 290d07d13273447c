package agent

import (
	"context"
	"strings"

	"dilemma/internal/verbose"
)

const (
	// DefaultInitialPromptA frames agent A as altruistic.
	DefaultInitialPromptA = "You are Agent A, an altruistic participant in the Prisoner's Dilemma game. " +
		"Your primary goal is to promote mutual cooperation and trust. " +
		"Based on the previous decisions of Agent B, decide whether to 'Cooperate' or 'Defect'. " +
		"If Agent B has cooperated in the last round, consider reciprocating cooperation to build trust."
	// DefaultInitialPromptB frames agent B as opportunistic.
	DefaultInitialPromptB = "You are Agent B, an opportunistic participant in the Prisoner's Dilemma game. " +
		"Your primary goal is to maximize your own payoff, even if it means occasionally defecting. " +
		"Based on the previous decisions of Agent A, decide whether to 'Cooperate' or 'Defect'. " +
		"If Agent A has defected in the last round, consider retaliating to discourage further defections."

	scenarioPrompt = "Generate two random unique scenarios for the Prisoner's Dilemma game, one for each agent. " +
		"Each scenario should provide a unique role for the agent and end with the question 'Should you Cooperate or Defect?'."
	scenarioMaxTokens = 150

	fallbackPromptShared = "This is the first round of the Prisoner's Dilemma. Should you 'Cooperate' or 'Defect'?"
	fallbackPromptA      = "This is the first round of the Prisoner's Dilemma. Should Agent A 'Cooperate' or 'Defect'?"
	fallbackPromptB      = "This is the first round of the Prisoner's Dilemma. Should Agent B 'Cooperate' or 'Defect'?"
)

// RandomizePrompts asks the model for two scenario prompts, one per line.
// A failed call yields per-agent fallback prompts; a reply with fewer than
// two non-empty lines yields the shared fallback for both agents.
func RandomizePrompts(ctx context.Context, client ChatClient, log *verbose.Logger) (string, string) {
	log.Logf(verbose.StyleDim, "generating randomized initial prompts")
	text, err := client.Complete(ctx, ChatRequest{
		Prompt:      scenarioPrompt,
		MaxTokens:   scenarioMaxTokens,
		Temperature: DefaultTemperature,
	})
	if err != nil {
		log.Logf(verbose.StyleError, "randomize prompts: %v", err)
		return fallbackPromptA, fallbackPromptB
	}
	lines := make([]string, 0, 2)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 2 {
		log.Logf(verbose.StyleWarning, "insufficient prompts generated, using defaults")
		return fallbackPromptShared, fallbackPromptShared
	}
	return lines[0], lines[1]
}
