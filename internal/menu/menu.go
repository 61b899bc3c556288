package menu

import (
	"github.com/atomicstack/tui-popup-loop/internal/event"
)

// Item represents a selectable menu entry. Shortcut is 0 for entries
// reachable only by navigation.
type Item struct {
	ID       string
	Label    string
	Shortcut rune
}

// Bus is the part of the event bus actions are allowed to touch. Actions
// only ever enqueue; they never read events.
type Bus interface {
	Send(sig event.Signal)
	Redraw()
}

// Context carries runtime data needed by actions.
type Context struct {
	Bus Bus
}

// Action runs when its menu entry is chosen.
type Action func(Context, Item)

// Title is shown on the border of the action menu.
const Title = "Actions"

// RootItems returns the action menu entries in display order.
func RootItems() []Item {
	return []Item{
		{ID: "help", Label: "Show help", Shortcut: 'h'},
		{ID: "clock", Label: "Toggle clock", Shortcut: 't'},
		{ID: "redraw", Label: "Redraw", Shortcut: 'r'},
		{ID: "quit", Label: "Quit", Shortcut: 'q'},
	}
}

// ActionHandlers maps entry identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"help":   signalAction(event.SignalShowHelp),
		"clock":  signalAction(event.SignalToggleClock),
		"redraw": RedrawAction,
		"quit":   signalAction(event.SignalQuit),
	}
}

func signalAction(sig event.Signal) Action {
	return func(ctx Context, _ Item) {
		if ctx.Bus == nil {
			return
		}
		ctx.Bus.Send(sig)
	}
}

// RedrawAction requests a single extra frame.
func RedrawAction(ctx Context, _ Item) {
	if ctx.Bus == nil {
		return
	}
	ctx.Bus.Redraw()
}
