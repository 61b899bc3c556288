package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/tui-popup-loop/internal/event"
	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
	"github.com/atomicstack/tui-popup-loop/internal/theme"
	"github.com/atomicstack/tui-popup-loop/internal/ui/canvas"
	"github.com/atomicstack/tui-popup-loop/internal/ui/command"
	"github.com/atomicstack/tui-popup-loop/internal/ui/popup"
)

// State is the main application's current mode. It selects which key map
// applies when no popup is active.
type State int

const (
	StateMain State = iota
	StateHelp
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateHelp:
		return "help"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Display is the surface the controller renders into once per iteration.
type Display interface {
	canvas.Surface
	Show()
	Sync()
}

var styles = theme.Default()

type eventHandler func(event.Event)

// Options configures a Model.
type Options struct {
	// Fps is the clock ticker frequency in events per second.
	Fps float64

	// StartClock starts the clock ticker when Run begins.
	StartClock bool

	// Popup size as a percentage of the screen; 0 means 50.
	PopupWidth  int
	PopupHeight int
}

// Model is the application controller: the single consumer of the bus.
type Model struct {
	running bool
	state   State
	bus     *event.Bus
	popup   popup.Popup
	keys    KeyMap

	handlers map[event.Kind]eventHandler
	commands *command.Bus

	fps         float64
	startClock  bool
	clock       *event.Ticker
	ticks       int
	popupWidth  int
	popupHeight int
	needSync    bool
}

// NewModel builds a controller that reads from bus.
func NewModel(bus *event.Bus, opts Options) *Model {
	m := &Model{
		running:     true,
		state:       StateMain,
		bus:         bus,
		keys:        DefaultKeyMap,
		commands:    command.New(),
		fps:         opts.Fps,
		startClock:  opts.StartClock,
		popupWidth:  opts.PopupWidth,
		popupHeight: opts.PopupHeight,
	}
	if m.popupWidth <= 0 {
		m.popupWidth = 50
	}
	if m.popupHeight <= 0 {
		m.popupHeight = 50
	}
	m.registerHandlers()
	return m
}

func (m *Model) registerHandlers() {
	m.handlers = map[event.Kind]eventHandler{
		event.KindTick:  m.handleTick,
		event.KindInput: m.handleInput,
		event.KindApp:   m.handleApp,
	}
}

// Run drives the read, dispatch and render cycle until a Quit signal is
// applied. It returns nil on a clean quit. A closed bus is fatal and is
// returned wrapped; a cancelled ctx returns its error.
func (m *Model) Run(ctx context.Context, display Display) error {
	if m.startClock && m.clock == nil {
		m.toggleClock()
	}
	defer m.stopClock()

	for m.running {
		if err := m.iterate(ctx, display); err != nil {
			return err
		}
	}
	return nil
}

// iterate runs one loop cycle: discard a completed popup, render, wait for
// the next event and dispatch it.
func (m *Model) iterate(ctx context.Context, display Display) error {
	m.prunePopup()
	m.render(display)
	ev, err := m.bus.Next(ctx)
	if err != nil {
		if errors.Is(err, event.ErrBusClosed) {
			return fmt.Errorf("event loop: %w", err)
		}
		return err
	}
	m.dispatch(ev)
	return nil
}

func (m *Model) dispatch(ev event.Event) {
	if handler, ok := m.handlers[ev.Kind]; ok {
		handler(ev)
	}
}

// OpenPopup installs p as the active overlay. A popup that is already
// active is replaced.
func (m *Model) OpenPopup(p popup.Popup) {
	if p == nil {
		return
	}
	if m.popup != nil {
		events.Popup.Replace(m.popup.Title(), p.Title())
	} else {
		events.Popup.Open(p.Title())
	}
	m.popup = p
}

func (m *Model) prunePopup() {
	if m.popup == nil || !m.popup.Done() {
		return
	}
	events.Popup.Close(m.popup.Title())
	m.popup = nil
}

func (m *Model) setState(next State) {
	if m.state == next {
		return
	}
	events.UI.Screen(m.state.String(), next.String())
	m.state = next
}

// Running reports whether the loop will continue.
func (m *Model) Running() bool { return m.running }

// State returns the current screen state.
func (m *Model) State() State { return m.state }

// Popup returns the active overlay, or nil.
func (m *Model) Popup() popup.Popup { return m.popup }

// Ticks returns how many Tick events have been processed.
func (m *Model) Ticks() int { return m.ticks }

// ClockRunning reports whether the clock ticker is active.
func (m *Model) ClockRunning() bool { return m.clock != nil }
