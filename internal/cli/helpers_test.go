package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dilemma/internal/config"
	"dilemma/internal/runner"
)

const staticSpec = `version: 1
game:
  rounds: 3
agents:
  a:
    provider: static
    moves: [defect]
  b:
    provider: static
    moves: [cooperate]
output:
  dir: results
  csv: true
  json: true
`

// writeSpec writes a config file into dir and returns its path.
func writeSpec(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

// stubRunEnvironment pins run ids, clocks, credentials, and the terminal.
func stubRunEnvironment(t *testing.T, creds config.Credentials) {
	t.Helper()
	origDeps, origCreds := runDeps, loadCredentials
	t.Cleanup(func() {
		runDeps = origDeps
		loadCredentials = origCreds
	})
	runDeps = runner.RunDependencies{
		RunID: func() (string, error) { return "run-1", nil },
		Now:   func() time.Time { return time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC) },
	}
	loadCredentials = func() (config.Credentials, error) { return creds, nil }
	stubTerminal(t, false, terminalEnv{})
}

func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// fakeLiveUI records the events a live UI would render.
type fakeLiveUI struct {
	rounds []runner.RoundProgress
	ended  bool
	closed bool
	waited bool
}

func (f *fakeLiveUI) OnRunStart(runner.RunInfo) {}
func (f *fakeLiveUI) OnRoundComplete(progress runner.RoundProgress) {
	f.rounds = append(f.rounds, progress)
}
func (f *fakeLiveUI) OnWarning(string)        {}
func (f *fakeLiveUI) OnRunEnd(runner.Results) { f.ended = true }
func (f *fakeLiveUI) Close()                  { f.closed = true }
func (f *fakeLiveUI) Wait()                   { f.waited = true }
