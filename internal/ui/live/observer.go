package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"dilemma/internal/runner"
)

// Controller runs the live UI and implements runner.RunObserver.
type Controller struct {
	mu      sync.Mutex
	events  chan Event
	closed  bool
	program *tea.Program
	done    chan struct{}
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	controller := newController(256)
	model := NewModel(controller.events, opts)
	controller.program = tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	go func() {
		_, _ = controller.program.Run()
		close(controller.done)
	}()
	return controller
}

func newController(buffer int) *Controller {
	return &Controller{
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
}

// Close signals the UI to stop. Later events are dropped.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.events)
	}
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnRunStart forwards run start events to the UI.
func (c *Controller) OnRunStart(info runner.RunInfo) {
	c.send(Event{Kind: EventRunStart, Info: info})
}

// OnRoundComplete forwards resolved rounds to the UI.
func (c *Controller) OnRoundComplete(progress runner.RoundProgress) {
	c.send(Event{Kind: EventRound, Progress: progress})
}

// OnWarning forwards controller warnings to the UI.
func (c *Controller) OnWarning(message string) {
	c.send(Event{Kind: EventWarning, Message: message})
}

// OnRunEnd forwards run completion events to the UI and closes it.
func (c *Controller) OnRunEnd(results runner.Results) {
	c.send(Event{Kind: EventRunEnd, Results: results})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
