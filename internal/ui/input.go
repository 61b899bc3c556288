package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"github.com/atomicstack/tui-popup-loop/internal/event"
)

// handleKeyMsg applies a key to the current state's key map. It is only
// reached when no popup is active.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) {
	switch m.state {
	case StateMain:
		switch {
		case key.Matches(msg, m.keys.Main.Quit):
			m.bus.Send(event.SignalQuit)
		case key.Matches(msg, m.keys.Main.Help):
			m.setState(StateHelp)
		case key.Matches(msg, m.keys.Main.Menu):
			m.OpenPopup(m.actionMenu())
		}
	case StateHelp:
		switch {
		case key.Matches(msg, m.keys.Help.Back):
			m.setState(StateMain)
		case key.Matches(msg, m.keys.Help.Quit):
			m.bus.Send(event.SignalQuit)
		}
	}
}

var specialKeys = map[tcell.Key]tea.KeyType{
	tcell.KeyUp:         tea.KeyUp,
	tcell.KeyDown:       tea.KeyDown,
	tcell.KeyLeft:       tea.KeyLeft,
	tcell.KeyRight:      tea.KeyRight,
	tcell.KeyHome:       tea.KeyHome,
	tcell.KeyEnd:        tea.KeyEnd,
	tcell.KeyPgUp:       tea.KeyPgUp,
	tcell.KeyPgDn:       tea.KeyPgDown,
	tcell.KeyInsert:     tea.KeyInsert,
	tcell.KeyDelete:     tea.KeyDelete,
	tcell.KeyBacktab:    tea.KeyShiftTab,
	tcell.KeyBackspace:  tea.KeyBackspace,
	tcell.KeyBackspace2: tea.KeyBackspace,
	tcell.KeyF1:         tea.KeyF1,
	tcell.KeyF2:         tea.KeyF2,
	tcell.KeyF3:         tea.KeyF3,
	tcell.KeyF4:         tea.KeyF4,
	tcell.KeyF5:         tea.KeyF5,
	tcell.KeyF6:         tea.KeyF6,
	tcell.KeyF7:         tea.KeyF7,
	tcell.KeyF8:         tea.KeyF8,
	tcell.KeyF9:         tea.KeyF9,
	tcell.KeyF10:        tea.KeyF10,
	tcell.KeyF11:        tea.KeyF11,
	tcell.KeyF12:        tea.KeyF12,
}

// keyMsg converts a terminal key event into the Bubble Tea key vocabulary
// used by the key maps.
func keyMsg(ev *tcell.EventKey) tea.KeyMsg {
	alt := ev.Modifiers()&tcell.ModAlt != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	k := ev.Key()
	// tcell reports ctrl+letter as KeyCtrlA..KeyCtrlZ, which sit on the
	// upper-case ASCII codes rather than the control codes
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(k-tcell.KeyCtrlA), Alt: alt}
	}
	if k == tcell.KeyRune {
		r := ev.Rune()
		if ctrl {
			if t, ok := ctrlRune(r); ok {
				return tea.KeyMsg{Type: t, Alt: alt}
			}
		}
		if r == ' ' {
			return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}, Alt: alt}
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: alt}
	}
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t, Alt: alt}
	}
	// control keys share ASCII codes in both vocabularies
	if k >= tcell.KeyNUL && k <= tcell.KeyUS {
		return tea.KeyMsg{Type: tea.KeyType(k), Alt: alt}
	}
	// no equivalent; matches no binding
	return tea.KeyMsg{Type: tea.KeyRunes, Alt: alt}
}

func ctrlRune(r rune) (tea.KeyType, bool) {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return tea.KeyCtrlA + tea.KeyType(r-'a'), true
}
