package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/atomicstack/tui-popup-loop/internal/event"
	"github.com/atomicstack/tui-popup-loop/internal/logging"
	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
)

func (m *Model) handleTick(event.Event) {
	m.ticks++
}

// handleInput routes terminal input. Key events go exclusively to the
// active popup when there is one, otherwise to the current state's key map.
// Resizes only schedule a full resync of the surface.
func (m *Model) handleInput(ev event.Event) {
	switch raw := ev.Input.(type) {
	case *tcell.EventResize:
		w, h := raw.Size()
		events.UI.Resize(w, h)
		m.needSync = true
	case *tcell.EventKey:
		msg := keyMsg(raw)
		events.UI.Key(msg.String(), m.state.String(), m.popup != nil)
		if m.popup != nil {
			m.popup.HandleKey(msg)
			return
		}
		m.handleKeyMsg(msg)
	}
}

func (m *Model) handleApp(ev event.Event) {
	events.App.Signal(ev.Signal.String())
	switch ev.Signal {
	case event.SignalQuit:
		m.running = false
	case event.SignalShowHelp:
		m.showState(StateHelp)
	case event.SignalShowMain:
		m.showState(StateMain)
	case event.SignalToggleClock:
		m.toggleClock()
	}
}

// showState applies a state change requested by a signal. Screen state
// never changes underneath an active popup.
func (m *Model) showState(next State) {
	if m.popup != nil {
		return
	}
	m.setState(next)
}

func (m *Model) toggleClock() {
	if m.clock != nil {
		m.stopClock()
		return
	}
	ticker, err := m.bus.Redrawer().Fps(m.fps)
	if err != nil {
		logging.Error(err)
		return
	}
	m.clock = ticker
	events.UI.Clock(true, m.fps)
}

func (m *Model) stopClock() {
	if m.clock == nil {
		return
	}
	m.clock.Stop()
	m.clock = nil
	events.UI.Clock(false, m.fps)
}
