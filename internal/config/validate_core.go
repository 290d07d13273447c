package config

import (
	"fmt"
	"strings"

	"dilemma/internal/game"
	"dilemma/internal/spec"
)

// Validate checks a normalized config for correctness.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateGame(cfg, collector.add)
	validatePayoff(cfg, collector.add)
	validateLLM(cfg, collector.add)
	validateAgent("agents.a", cfg.Agents.A, collector.add)
	validateAgent("agents.b", cfg.Agents.B, collector.add)

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		collector.add("output.dir", "is required")
	}

	return collector.result()
}

func validateGame(cfg *spec.Config, add issueAdder) {
	rounds := cfg.Game.Rounds
	if rounds < game.MinRounds || rounds > game.MaxRounds {
		add("game.rounds", fmt.Sprintf("must be between %d and %d", game.MinRounds, game.MaxRounds))
	}
}

func validatePayoff(cfg *spec.Config, add issueAdder) {
	preset := strings.TrimSpace(cfg.Payoff.Preset)
	if preset == game.PresetCustom {
		custom := cfg.Payoff.Custom
		if custom == nil {
			add("payoff.custom", "is required when preset is custom")
			return
		}
		if _, err := game.CustomPayoffMatrix(custom.CooperateCooperate, custom.CooperateDefect, custom.DefectCooperate, custom.DefectDefect); err != nil {
			add("payoff.custom", err.Error())
		}
		return
	}
	if cfg.Payoff.Custom != nil {
		add("payoff.custom", fmt.Sprintf("only allowed when preset is %q", game.PresetCustom))
	}
	if _, err := game.PresetByName(preset); err != nil {
		add("payoff.preset", fmt.Sprintf("unknown preset %q (expected one of %s)", preset, strings.Join(game.PresetNames(), ", ")))
	}
}
