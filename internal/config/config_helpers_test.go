package config

import (
	"os"
	"path/filepath"
	"testing"

	"dilemma/internal/spec"
)

// validConfig returns a normalized config used by validation tests.
func validConfig() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

func writeConfig(t *testing.T, dir, payload string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func requireIssue(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error for %s", field)
	}
	validation, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !validation.HasField(field) {
		t.Fatalf("expected issue for %s, got %q", field, err.Error())
	}
}
