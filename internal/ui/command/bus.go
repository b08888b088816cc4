package command

import (
	"fmt"

	"github.com/atomicstack/cascade-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Selection describes a leaf chosen in a menu session.
type Selection struct {
	Session string
	Item    string
	Path    []string
}

// Action turns a selection into the message the host reacts to.
type Action func(Selection) tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID        string
	Label     string
	Handler   Action
	Selection Selection
}

// Bus coordinates the execution of leaf actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler(req.Selection)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
