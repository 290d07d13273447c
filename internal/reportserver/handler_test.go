package reportserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dilemma/internal/game"
	"dilemma/internal/runner"
	"dilemma/internal/testutil"
)

func writeResults(t *testing.T) string {
	t.Helper()
	records := []game.RoundRecord{
		{Round: 1, MoveA: game.Cooperate, MoveB: game.Cooperate, PayoffA: 3, PayoffB: 3},
	}
	results := runner.Results{
		RunID:   "run-1",
		State:   runner.StateCompleted,
		Config:  runner.RunSettings{Rounds: 1, Payoff: runner.NewPayoffReport(game.DefaultPayoffMatrix())},
		Rounds:  records,
		Summary: game.Summarize(records),
	}
	paths, err := runner.WriteRunOutputs(context.Background(), results, t.TempDir(), runner.OutputOptions{JSON: true})
	if err != nil {
		t.Fatalf("write outputs: %v", err)
	}
	return paths.ResultsPath()
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

// TestNewHandlerServesReport ensures the root path returns the rendered report.
func TestNewHandlerServesReport(t *testing.T) {
	handler, err := NewHandler(Config{ResultsPath: writeResults(t)})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	resp := get(t, handler, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "run-1") {
		t.Fatalf("expected run id in HTML")
	}
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("unexpected content type %q", resp.Header().Get("Content-Type"))
	}
}

// TestNewHandlerServesData ensures JSON and CSV endpoints return the run.
func TestNewHandlerServesData(t *testing.T) {
	handler, err := NewHandler(Config{ResultsPath: writeResults(t)})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	jsonResp := get(t, handler, "/results.json")
	if jsonResp.Code != http.StatusOK || !strings.Contains(jsonResp.Body.String(), `"run_id": "run-1"`) {
		t.Fatalf("unexpected json response %d %s", jsonResp.Code, jsonResp.Body.String())
	}
	csvResp := get(t, handler, "/results.csv")
	want := "Round,Agent A Decision,Agent B Decision,Agent A Payoff,Agent B Payoff\n1,Cooperate,Cooperate,3,3\n"
	if csvResp.Code != http.StatusOK || csvResp.Body.String() != want {
		t.Fatalf("unexpected csv response %d %q", csvResp.Code, csvResp.Body.String())
	}
	if resp := get(t, handler, "/missing"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

// TestNewHandlerRequiresResults verifies config validation.
func TestNewHandlerRequiresResults(t *testing.T) {
	if _, err := NewHandler(Config{}); err == nil {
		t.Fatalf("expected missing path error")
	}
	if _, err := NewHandler(Config{ResultsPath: filepath.Join(t.TempDir(), "none.json")}); err == nil {
		t.Fatalf("expected missing file error")
	}
}

// TestServeShutsDownOnCancel verifies graceful shutdown.
func TestServeShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(testutil.Context(t, 5*time.Second))
	resultsPath := writeResults(t)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, Config{ResultsPath: resultsPath, Listener: listener})
	}()

	testutil.WaitForPage(t, "http://"+listener.Addr().String()+"/", "run-1", 2*time.Second)

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("server did not stop")
	}
}
