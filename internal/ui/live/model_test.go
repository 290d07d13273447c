package live

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dilemma/internal/game"
	"dilemma/internal/runner"
	"dilemma/internal/testutil"
)

// TestModelRendersRounds verifies events flow into the rendered view.
func TestModelRendersRounds(t *testing.T) {
	testutil.Within(t, time.Second, func() {
		model := NewModel(nil, Options{NoColor: true})
		var updated tea.Model = model
		updated, _ = updated.Update(EventMsg{Event: startEvent(2)})
		updated, _ = updated.Update(EventMsg{Event: roundEvent(1, game.Defect, game.Cooperate, 5, 0, 2)})

		view := updated.View()
		for _, want := range []string{"Run run-1", "Defect", "Cooperate", "1/2", "Total A: 5"} {
			if !strings.Contains(view, want) {
				t.Fatalf("expected view to contain %q, got:\n%s", want, view)
			}
		}
	})
}

// TestModelInterruptQuits verifies ctrl+c cancels the run and quits.
func TestModelInterruptQuits(t *testing.T) {
	testutil.Within(t, time.Second, func() {
		interrupted := false
		model := NewModel(nil, Options{NoColor: true, OnInterrupt: func() { interrupted = true }})
		_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if !interrupted {
			t.Fatalf("expected interrupt callback")
		}
		if cmd == nil {
			t.Fatalf("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message")
		}
	})
}

// TestWaitForEventQuitsOnClose verifies a closed stream ends the program.
func TestWaitForEventQuitsOnClose(t *testing.T) {
	testutil.Within(t, time.Second, func() {
		events := make(chan Event)
		close(events)
		if _, ok := waitForEvent(events)().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message")
		}
	})
}

// TestControllerDropsEventsAfterClose verifies late events do not panic.
func TestControllerDropsEventsAfterClose(t *testing.T) {
	testutil.Within(t, time.Second, func() {
		controller := newController(4)
		controller.OnRunStart(runner.RunInfo{RunID: "run-1", Rounds: 1})
		controller.OnRunEnd(runner.Results{State: runner.StateCompleted})
		controller.OnWarning("late")
		controller.Close()

		var kinds []EventKind
		for event := range controller.events {
			kinds = append(kinds, event.Kind)
		}
		if len(kinds) != 2 || kinds[0] != EventRunStart || kinds[1] != EventRunEnd {
			t.Fatalf("unexpected events %v", kinds)
		}
	})
}
