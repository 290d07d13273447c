package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"dilemma/internal/spec"
)

// Credentials holds secrets and overrides read from the environment.
type Credentials struct {
	APIKey   string `env:"DILEMMA_API_KEY"`
	BaseURL  string `env:"DILEMMA_BASE_URL"`
	Provider string `env:"DILEMMA_PROVIDER"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadCredentials reads Credentials from the process environment.
func LoadCredentials() (Credentials, error) {
	var creds Credentials
	if err := ParseEnv(&creds); err != nil {
		return Credentials{}, err
	}
	creds.APIKey = strings.TrimSpace(creds.APIKey)
	creds.BaseURL = strings.TrimSpace(creds.BaseURL)
	creds.Provider = strings.ToLower(strings.TrimSpace(creds.Provider))
	return creds, nil
}

// ApplyEnv applies environment overrides to a loaded config. A provider
// override replaces both agents' providers and is revalidated.
func ApplyEnv(cfg *spec.Config, creds Credentials) error {
	if creds.BaseURL != "" {
		cfg.LLM.BaseURL = creds.BaseURL
	}
	if creds.Provider == "" {
		return nil
	}
	if !knownProvider(creds.Provider) {
		return &ValidationError{Issues: []Issue{{
			Field:   "DILEMMA_PROVIDER",
			Message: fmt.Sprintf("unsupported provider %q", creds.Provider),
		}}}
	}
	cfg.LLM.Provider = creds.Provider
	cfg.Agents.A.Provider = creds.Provider
	cfg.Agents.B.Provider = creds.Provider
	return Validate(cfg)
}
