package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// Eventually re-checks cond every interval and fails with the formatted
// message when it is still false after timeout.
func Eventually(t *testing.T, timeout, interval time.Duration, cond func() bool, format string, args ...any) {
	t.Helper()
	ctx := Context(t, timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !cond() {
		select {
		case <-ctx.Done():
			if format == "" {
				format = "condition still false after %s"
				args = []any{timeout}
			}
			t.Fatalf(format, args...)
		case <-ticker.C:
		}
	}
}

// WaitForPage polls url until it answers 200 with a body containing want.
// It is used to wait for a report server started on a goroutine.
func WaitForPage(t *testing.T, url, want string, timeout time.Duration) {
	t.Helper()
	Eventually(t, timeout, 20*time.Millisecond, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		return err == nil && resp.StatusCode == http.StatusOK && strings.Contains(string(body), want)
	}, "%s did not serve %q within %s", url, want, timeout)
}
