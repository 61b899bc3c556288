package popup

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
	"github.com/atomicstack/tui-popup-loop/internal/theme"
	"github.com/atomicstack/tui-popup-loop/internal/ui/canvas"
	"github.com/atomicstack/tui-popup-loop/internal/ui/state"
)

// DefaultTitle is shown on the border of an untitled ActionMenu.
const DefaultTitle = "Popup"

// Item is one entry of an ActionMenu. Shortcut is 0 when the entry has none.
// Shortcuts need not be unique; the first declared entry wins.
type Item struct {
	Shortcut rune
	Title    string
	Action   func()
}

// ActionKeyMap holds the navigation bindings of an ActionMenu. Character
// keys are left free for shortcuts.
type ActionKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

// DefaultActionKeys is the built-in ActionMenu key map.
var DefaultActionKeys = ActionKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// ActionMenu is a selectable list of actions. At most one action fires per
// menu; after that, or after a cancel, the menu is done and ignores input.
type ActionMenu struct {
	title  string
	items  []Item
	list   *state.List
	keys   ActionKeyMap
	styles *theme.Styles
	done   bool

	// rows visible at the last render, used for paging
	pageRows int
}

// NewActionMenu builds a menu with nothing selected. An empty title renders
// as DefaultTitle.
func NewActionMenu(title string, items []Item) *ActionMenu {
	copied := make([]Item, len(items))
	copy(copied, items)
	return &ActionMenu{
		title:  title,
		items:  copied,
		list:   state.NewList(len(copied)),
		keys:   DefaultActionKeys,
		styles: theme.Default(),
	}
}

// Title returns the border title.
func (m *ActionMenu) Title() string {
	if m.title == "" {
		return DefaultTitle
	}
	return m.title
}

// Selected returns the highlighted entry index, if any.
func (m *ActionMenu) Selected() (int, bool) {
	return m.list.Selected()
}

// Done reports whether an action fired or the menu was cancelled.
func (m *ActionMenu) Done() bool {
	return m.done
}

// HandleKey applies one key event.
func (m *ActionMenu) HandleKey(msg tea.KeyMsg) {
	if m.done {
		return
	}
	moved := false
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.done = true
		events.Menu.Cancel(m.Title())
		return
	case key.Matches(msg, m.keys.Select):
		if idx, ok := m.list.Selected(); ok {
			m.fire(idx, false)
		}
		return
	case key.Matches(msg, m.keys.Up):
		moved = m.list.Prev()
	case key.Matches(msg, m.keys.Down):
		moved = m.list.Next()
	case key.Matches(msg, m.keys.PageUp):
		moved = m.list.MoveCursorPageUp(m.pageRows)
	case key.Matches(msg, m.keys.PageDown):
		moved = m.list.MoveCursorPageDown(m.pageRows)
	case key.Matches(msg, m.keys.Home):
		moved = m.list.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		moved = m.list.MoveCursorEnd()
	default:
		if r, ok := shortcutRune(msg); ok {
			m.fireShortcut(r)
		}
		return
	}
	if moved {
		events.Menu.Cursor(m.Title(), m.list.Cursor)
	}
}

func (m *ActionMenu) fireShortcut(r rune) {
	for i, item := range m.items {
		if item.Shortcut != 0 && item.Shortcut == r {
			m.fire(i, true)
			return
		}
	}
}

func (m *ActionMenu) fire(idx int, shortcut bool) {
	item := m.items[idx]
	m.done = true
	events.Menu.Fire(m.Title(), idx, item.Title, shortcut)
	if item.Action != nil {
		item.Action()
	}
}

// shortcutRune reports the character a key press carries. Modifiers are
// ignored, so alt+a still fires an 'a' shortcut.
func shortcutRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return msg.Runes[0], true
		}
	}
	return 0, false
}

// Render clears area and draws the bordered list, scrolled so the
// highlighted entry is visible.
func (m *ActionMenu) Render(area canvas.Rect, s canvas.Surface) {
	if area.Empty() {
		return
	}
	itemStyle := theme.Cell(m.styles.PopupItem)
	canvas.Clear(s, area, itemStyle)
	inner := canvas.Box(s, area, canvas.PlainBorder, m.Title(),
		theme.Cell(m.styles.PopupBorder), theme.Cell(m.styles.PopupTitle))
	if inner.Empty() {
		return
	}

	m.pageRows = inner.Height
	m.list.EnsureCursorVisible(inner.Height)
	start, end := m.list.Visible(inner.Height)
	cursor, hasCursor := m.list.Selected()
	hintStyle := theme.Cell(m.styles.ShortcutHint)
	highlight := theme.Cell(m.styles.Highlighted)

	for i := start; i < end; i++ {
		item := m.items[i]
		y := inner.Y + i - start
		label, hint := itemStyle, hintStyle
		if hasCursor && i == cursor {
			label, hint = highlight, highlight
			canvas.Fill(s, canvas.Rect{X: inner.X, Y: y, Width: inner.Width, Height: 1}, ' ', highlight)
		}
		x := inner.X
		if item.Shortcut != 0 {
			x = canvas.Text(s, inner, x, y, fmt.Sprintf("(%c) ", item.Shortcut), hint)
		}
		canvas.Text(s, inner, x, y, item.Title, label)
	}
}
