package verbose

import (
	"bytes"
	"strings"
	"testing"
)

// TestNilLoggerDiscards verifies a nil logger is safe to use.
func TestNilLoggerDiscards(t *testing.T) {
	var logger *Logger
	if logger.Enabled() {
		t.Fatalf("nil logger should be disabled")
	}
	logger.Logf(StyleError, "ignored %d", 1)
	logger.Block(StyleDefault, "header", "body")
	if New(nil, false) != nil {
		t.Fatalf("expected nil logger for nil writer")
	}
}

// TestLogfWritesPrefixedPlainLines verifies buffers never receive ANSI codes.
func TestLogfWritesPrefixedPlainLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Logf(StyleRound, "round %d resolved", 2)
	if got := buf.String(); got != "[verbose] round 2 resolved\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("unexpected ANSI codes in %q", buf.String())
	}
}

// TestBlockIndentsBody verifies multi-line bodies are indented.
func TestBlockIndentsBody(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.Block(StyleDefault, "prompt", "line one\nline two\n")
	want := "[verbose] prompt\n[verbose]   line one\n[verbose]   line two\n"
	if buf.String() != want {
		t.Fatalf("unexpected block %q", buf.String())
	}
}
