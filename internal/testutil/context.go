package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a test that passes no timeout of its own.
const DefaultTimeout = 5 * time.Second

// deadlineMargin is left between a test context and the test binary deadline
// so the failure is reported by the test rather than by the runner.
const deadlineMargin = time.Second

// Context returns a context cancelled after timeout or at test cleanup,
// whichever comes first. It never outlives the -timeout deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), clampTimeout(t, timeout))
	t.Cleanup(cancel)
	return ctx
}

// Within runs fn on its own goroutine and fails the test when it has not
// returned after timeout. Rounds, observers, and UI models are expected to
// be non-blocking, so a hang is a bug.
func Within(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test body still running after %s", timeout)
	}
}

func clampTimeout(t testing.TB, timeout time.Duration) time.Duration {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline, ok := t.(interface{ Deadline() (time.Time, bool) })
	if !ok {
		return timeout
	}
	if at, set := deadline.Deadline(); set {
		if remaining := time.Until(at) - deadlineMargin; remaining > 0 && remaining < timeout {
			return remaining
		}
	}
	return timeout
}
