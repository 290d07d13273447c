package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dilemma/internal/agent"
	"dilemma/internal/game"
	"dilemma/internal/spec"
)

const scaffoldHeader = `# Iterated Prisoner's Dilemma between two language-model agents.
# Presets: default, high_mutual_cooperation, punishing_defection, asymmetrical, custom.
# Providers: openai (needs DILEMMA_API_KEY), static, scripted.
`

// DefaultConfig returns the normalized config written by Scaffold.
func DefaultConfig() spec.Config {
	remember := true
	temperature := agent.DefaultTemperature
	return spec.Config{
		Version: 1,
		Game: spec.GameConfig{
			Rounds:          DefaultRounds,
			RememberHistory: &remember,
		},
		Payoff: spec.PayoffConfig{Preset: game.PresetDefault},
		LLM: spec.LLMConfig{
			Provider:    DefaultProvider,
			Model:       agent.DefaultModel,
			Temperature: &temperature,
			MaxTokens:   agent.DefaultMaxTokens,
			Retry: spec.RetryConfig{
				MaxAttempts: DefaultMaxAttempts,
				DelayMs:     DefaultRetryDelay,
			},
		},
		Agents: spec.AgentsConfig{
			A: spec.AgentConfig{InitialPrompt: agent.DefaultInitialPromptA},
			B: spec.AgentConfig{InitialPrompt: agent.DefaultInitialPromptB},
		},
		Output: spec.OutputConfig{
			Dir:  DefaultOutputDir,
			CSV:  true,
			JSON: true,
		},
	}
}

// RenderDefaultConfig renders the scaffolded YAML document.
func RenderDefaultConfig() ([]byte, error) {
	return RenderConfig(DefaultConfig())
}

// RenderConfig renders cfg with the scaffold header.
func RenderConfig(cfg spec.Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(scaffoldHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return buf.Bytes(), nil
}

// Scaffold writes a default config file, refusing to overwrite one.
func Scaffold(specPath string) error {
	return ScaffoldConfig(specPath, DefaultConfig())
}

// ScaffoldConfig validates the normalized form of cfg and writes cfg as
// given, refusing to overwrite an existing file.
func ScaffoldConfig(specPath string, cfg spec.Config) error {
	check := cfg
	Normalize(&check)
	if err := Validate(&check); err != nil {
		return err
	}
	if specPath == "" {
		return fmt.Errorf("spec path is required")
	}
	if info, err := os.Stat(specPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("spec path %q is a directory", specPath)
		}
		return fmt.Errorf("spec file already exists at %q", specPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat spec file: %w", err)
	}

	if dir := filepath.Dir(specPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := RenderConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(specPath, data, 0o644); err != nil {
		return fmt.Errorf("write spec file: %w", err)
	}
	return nil
}
