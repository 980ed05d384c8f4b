package command

import (
	"fmt"

	"github.com/atomicstack/catalog-sync/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a unit of work that runs off the update loop and
// reports back with a single message.
type Request struct {
	ID    string
	Label string
	Run   func() tea.Msg
}

// Bus coordinates asynchronous work issued by the UI.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Run()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
