package runner

import (
	"io"
	"time"

	"github.com/a-h/templ"

	"dilemma/internal/agent"
	"dilemma/internal/config"
	"dilemma/internal/game"
	"dilemma/internal/spec"
	"dilemma/internal/verbose"
)

// ControllerDeps allows injecting observers and clocks into a Controller.
type ControllerDeps struct {
	Observer RunObserver
	Log      *verbose.Logger
	Now      func() time.Time
	RunID    func() (string, error)
}

// ProviderFactory builds the decision provider for one player.
type ProviderFactory func(player Player, agentConfig spec.AgentConfig, llm spec.LLMConfig) (agent.DecisionProvider, error)

// ReportRenderer builds the HTML report component for a run.
type ReportRenderer func(results Results) templ.Component

// RunDependencies allows injecting factories and clocks for a run.
type RunDependencies struct {
	ProviderFactory ProviderFactory
	ReportRenderer  ReportRenderer
	RunID           func() (string, error)
	Now             func() time.Time
	// PromptClient, when set, is asked for randomized initial prompts.
	PromptClient agent.ChatClient
}

// RunParams configures a run invocation.
type RunParams struct {
	ConfigPath    string
	OutputDir     string
	Credentials   config.Credentials
	Observer      RunObserver
	Verbose       bool
	VerboseWriter io.Writer
	NoColor       bool
	// Payoff overrides the configured matrix when it defines any outcome.
	Payoff  game.PayoffMatrix
	Outputs OutputOptions
	Deps    RunDependencies
}
