package event

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Kind identifies which variant of Event is populated.
type Kind int

const (
	KindTick Kind = iota
	KindInput
	KindApp
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindInput:
		return "input"
	case KindApp:
		return "app"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Signal is an application intent raised by the controller or by popup
// actions. The set is expected to grow with the application.
type Signal int

const (
	SignalQuit Signal = iota
	SignalShowHelp
	SignalShowMain
	SignalToggleClock
)

func (s Signal) String() string {
	switch s {
	case SignalQuit:
		return "quit"
	case SignalShowHelp:
		return "show-help"
	case SignalShowMain:
		return "show-main"
	case SignalToggleClock:
		return "toggle-clock"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}

// Event is the single type carried by the Bus. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Event struct {
	Kind Kind
	// Input holds the raw terminal event for KindInput. It is forwarded
	// untouched; interpretation is left to the consumer.
	Input  tcell.Event
	Signal Signal
}

// Tick returns the time-advanced event.
func Tick() Event {
	return Event{Kind: KindTick}
}

// Input wraps a raw terminal event.
func Input(ev tcell.Event) Event {
	return Event{Kind: KindInput, Input: ev}
}

// App wraps an application signal.
func App(sig Signal) Event {
	return Event{Kind: KindApp, Signal: sig}
}

func (e Event) String() string {
	switch e.Kind {
	case KindInput:
		return fmt.Sprintf("input(%T)", e.Input)
	case KindApp:
		return "app(" + e.Signal.String() + ")"
	default:
		return e.Kind.String()
	}
}
