package runner

import (
	"context"
	"fmt"
	"strings"

	"dilemma/internal/agent"
	"dilemma/internal/config"
	"dilemma/internal/spec"
	"dilemma/internal/verbose"
)

// Run plays one game described by cfg and returns its results. An aborted
// run returns partial results together with the failure.
func Run(ctx context.Context, cfg spec.Config, params RunParams) (Results, error) {
	var log *verbose.Logger
	if params.Verbose {
		log = verbose.New(params.VerboseWriter, params.NoColor)
	}

	payoff := params.Payoff
	if payoff.IsZero() {
		resolved, err := PayoffFromConfig(cfg.Payoff)
		if err != nil {
			return Results{}, err
		}
		payoff = resolved
	}

	factory := params.Deps.ProviderFactory
	if factory == nil {
		factory = DefaultProviderFactory(params.Credentials, nil, log)
	}
	providerA, err := factory(PlayerA, cfg.Agents.A, cfg.LLM)
	if err != nil {
		return Results{}, err
	}
	providerB, err := factory(PlayerB, cfg.Agents.B, cfg.LLM)
	if err != nil {
		return Results{}, err
	}

	promptA, promptB := cfg.Agents.A.InitialPrompt, cfg.Agents.B.InitialPrompt
	if params.Deps.PromptClient != nil {
		promptA, promptB = agent.RandomizePrompts(ctx, params.Deps.PromptClient, log)
		log.Block(verbose.StyleDim, "randomized prompt A", promptA)
		log.Block(verbose.StyleDim, "randomized prompt B", promptB)
	}

	controller := NewController(ControllerDeps{
		Observer: params.Observer,
		Log:      log,
		Now:      params.Deps.Now,
		RunID:    params.Deps.RunID,
	})
	if err := controller.Configure(RunConfig{
		Payoff:          payoff,
		ProviderA:       providerA,
		ProviderB:       providerB,
		PromptA:         promptA,
		PromptB:         promptB,
		RememberHistory: config.RememberHistory(cfg),
	}); err != nil {
		return Results{}, err
	}
	return controller.Start(ctx, cfg.Game.Rounds)
}

// RunAndWrite runs the game and writes the enabled outputs. Outputs are
// written for aborted runs too; the run error is returned afterwards.
func RunAndWrite(ctx context.Context, cfg spec.Config, params RunParams) (Results, OutputPaths, error) {
	results, runErr := Run(ctx, cfg, params)
	if results.RunID == "" {
		return results, OutputPaths{}, runErr
	}
	outputDir := params.OutputDir
	if strings.TrimSpace(outputDir) == "" {
		outputDir = config.ResolveOutputDir(params.ConfigPath, cfg.Output.Dir)
	}
	outputs := params.Outputs
	if outputs.ReportRenderer == nil {
		outputs.ReportRenderer = params.Deps.ReportRenderer
	}
	paths, err := WriteRunOutputs(ctx, results, outputDir, outputs)
	if err != nil {
		if runErr != nil {
			return results, paths, fmt.Errorf("%w (writing outputs: %v)", runErr, err)
		}
		return results, paths, err
	}
	return results, paths, runErr
}
