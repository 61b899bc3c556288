package command

import (
	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
	"github.com/atomicstack/tui-popup-loop/internal/menu"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a menu action into a popup callback while emitting trace
// logs.
func (b *Bus) Execute(ctx menu.Context, req Request) func() {
	return func() {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return
		}
		events.Command.Invoke(req.ID, req.Label)
		req.Handler(ctx, req.Item)
	}
}
