package cli

import (
	"strings"
	"testing"
)

// TestValidateCommandOK verifies a valid config is summarized.
func TestValidateCommandOK(t *testing.T) {
	specPath := writeSpec(t, t.TempDir(), staticSpec)
	code, stdout, stderr := runCommand(t, "validate", "--spec", specPath)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Config OK") || !strings.Contains(stdout, "agents static vs static") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

// TestValidateCommandReportsIssues verifies every issue is listed.
func TestValidateCommandReportsIssues(t *testing.T) {
	specPath := writeSpec(t, t.TempDir(), "version: 2\ngame:\n  rounds: 0\npayoff:\n  preset: generous\n")
	code, _, stderr := runCommand(t, "validate", "--spec", specPath)
	if code != ExitError {
		t.Fatalf("expected exit error, got %d", code)
	}
	for _, field := range []string{"version", "payoff.preset"} {
		if !strings.Contains(stderr, field) {
			t.Fatalf("expected %s issue in:\n%s", field, stderr)
		}
	}
}

// TestValidateCommandRejectsArgs verifies positional arguments are refused.
func TestValidateCommandRejectsArgs(t *testing.T) {
	code, _, _ := runCommand(t, "validate", "extra")
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}
