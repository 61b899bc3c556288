package popup

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tui-popup-loop/internal/testutil"
	"github.com/atomicstack/tui-popup-loop/internal/theme"
	"github.com/atomicstack/tui-popup-loop/internal/ui/canvas"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

type recorder struct {
	calls []string
}

func (r *recorder) item(shortcut rune, title string) Item {
	return Item{
		Shortcut: shortcut,
		Title:    title,
		Action:   func() { r.calls = append(r.calls, title) },
	}
}

func TestShortcutFiresOnlyFirstEntryAndCompletes(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item('a', "One"), rec.item('b', "Two")})

	menu.HandleKey(runeKey('a'))
	if !menu.Done() {
		t.Fatalf("expected menu to be done after shortcut")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "One" {
		t.Fatalf("expected only One to fire, got %v", rec.calls)
	}

	menu.HandleKey(runeKey('b'))
	if len(rec.calls) != 1 {
		t.Fatalf("expected no further callbacks once done, got %v", rec.calls)
	}
}

func TestDuplicateShortcutFiresFirstDeclared(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item('x', "First"), rec.item('x', "Second")})

	menu.HandleKey(runeKey('x'))
	if len(rec.calls) != 1 || rec.calls[0] != "First" {
		t.Fatalf("expected First only, got %v", rec.calls)
	}
}

func TestNavigationDownDownUpSelectsFirst(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item(0, "A"), rec.item(0, "B"), rec.item(0, "C")})

	if _, ok := menu.Selected(); ok {
		t.Fatalf("expected no selection initially")
	}
	menu.HandleKey(keyOf(tea.KeyDown))
	menu.HandleKey(keyOf(tea.KeyDown))
	menu.HandleKey(keyOf(tea.KeyUp))
	// the first Down selects entry 0, so Down, Down, Up lands back on it
	if idx, ok := menu.Selected(); !ok || idx != 0 {
		t.Fatalf("expected index 0, got %d (%v)", idx, ok)
	}
	if menu.Done() || len(rec.calls) != 0 {
		t.Fatalf("expected navigation not to fire actions")
	}
}

func TestNavigationWrapsBothWays(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item(0, "A"), rec.item(0, "B"), rec.item(0, "C")})

	for i := 0; i < 3; i++ {
		menu.HandleKey(keyOf(tea.KeyDown))
	}
	menu.HandleKey(keyOf(tea.KeyDown))
	if idx, _ := menu.Selected(); idx != 0 {
		t.Fatalf("expected Down from last to wrap to 0, got %d", idx)
	}
	menu.HandleKey(keyOf(tea.KeyUp))
	if idx, _ := menu.Selected(); idx != 2 {
		t.Fatalf("expected Up from first to wrap to 2, got %d", idx)
	}
}

func TestEnterWithoutSelectionIsNoOp(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item('a', "One")})

	menu.HandleKey(keyOf(tea.KeyEnter))
	if menu.Done() || len(rec.calls) != 0 {
		t.Fatalf("expected enter with no selection to do nothing")
	}
}

func TestEnterFiresSelectedEntryOnce(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item(0, "A"), rec.item(0, "B")})

	menu.HandleKey(keyOf(tea.KeyDown))
	menu.HandleKey(keyOf(tea.KeyDown))
	menu.HandleKey(keyOf(tea.KeyEnter))
	menu.HandleKey(keyOf(tea.KeyEnter))
	if !menu.Done() {
		t.Fatalf("expected menu done after enter")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "B" {
		t.Fatalf("expected B to fire exactly once, got %v", rec.calls)
	}
}

func TestEscapeCancelsWithoutCallback(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item('a', "One")})

	menu.HandleKey(keyOf(tea.KeyDown))
	menu.HandleKey(keyOf(tea.KeyEsc))
	if !menu.Done() {
		t.Fatalf("expected escape to complete the menu")
	}
	menu.HandleKey(keyOf(tea.KeyEnter))
	menu.HandleKey(runeKey('a'))
	if len(rec.calls) != 0 {
		t.Fatalf("expected no callbacks after cancel, got %v", rec.calls)
	}
}

func TestSpaceShortcutFires(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item('a', "One"), rec.item(' ', "Blank")})

	menu.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !menu.Done() || len(rec.calls) != 1 || rec.calls[0] != "Blank" {
		t.Fatalf("expected Blank to fire on space, got %v", rec.calls)
	}
}

func TestAltCharacterFiresShortcut(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item('a', "One")})

	menu.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true})
	if !menu.Done() || len(rec.calls) != 1 || rec.calls[0] != "One" {
		t.Fatalf("expected One to fire on alt+a, got %v", rec.calls)
	}
}

func TestUnmatchedKeysAreIgnored(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item('a', "One")})

	menu.HandleKey(runeKey('z'))
	menu.HandleKey(keyOf(tea.KeyTab))
	menu.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a', 'b'}})
	if menu.Done() || len(rec.calls) != 0 {
		t.Fatalf("expected unmatched keys to be no-ops")
	}
	if _, ok := menu.Selected(); ok {
		t.Fatalf("expected selection untouched")
	}
}

func TestNilActionStillCompletes(t *testing.T) {
	menu := NewActionMenu("", []Item{{Shortcut: 'n', Title: "Nothing"}})
	menu.HandleKey(runeKey('n'))
	if !menu.Done() {
		t.Fatalf("expected completion even without a callback")
	}
}

func TestTitleDefaultsToPopup(t *testing.T) {
	if got := NewActionMenu("", nil).Title(); got != DefaultTitle {
		t.Fatalf("expected %q, got %q", DefaultTitle, got)
	}
	if got := NewActionMenu("Actions", nil).Title(); got != "Actions" {
		t.Fatalf("expected Actions, got %q", got)
	}
}

func TestRenderMatchesGolden(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("Actions", []Item{rec.item('a', "One"), rec.item('b', "Two")})
	screen := testutil.NewScreen(t, 20, 5)

	menu.Render(canvas.Full(screen), screen)
	testutil.AssertGolden(t, "action_menu.golden", testutil.ScreenText(t, screen))
}

func TestRenderHighlightsSelectedEntry(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item('a', "One"), rec.item('b', "Two")})
	screen := testutil.NewScreen(t, 20, 5)

	menu.HandleKey(keyOf(tea.KeyDown))
	menu.HandleKey(keyOf(tea.KeyDown))
	menu.Render(canvas.Full(screen), screen)

	highlight := theme.Cell(theme.Default().Highlighted)
	if got := testutil.CellStyle(t, screen, 1, 2); got != highlight {
		t.Fatalf("expected highlighted second row, got %#v", got)
	}
	if got := testutil.CellStyle(t, screen, 1, 1); got == highlight {
		t.Fatalf("expected first row not highlighted")
	}
	hint := theme.Cell(theme.Default().ShortcutHint)
	if got := testutil.CellStyle(t, screen, 1, 1); got != hint {
		t.Fatalf("expected shortcut hint style on first row prefix, got %#v", got)
	}
}

func TestRenderScrollsToKeepCursorVisible(t *testing.T) {
	rec := &recorder{}
	menu := NewActionMenu("", []Item{rec.item(0, "A"), rec.item(0, "B"), rec.item(0, "C")})
	screen := testutil.NewScreen(t, 10, 3)

	menu.HandleKey(keyOf(tea.KeyEnd))
	menu.Render(canvas.Full(screen), screen)

	lines := testutil.ScreenLines(t, screen)
	if lines[1] != "│C       │" {
		t.Fatalf("expected last entry scrolled into view, got %q", lines[1])
	}
}

func TestRenderOnlyTouchesItsArea(t *testing.T) {
	menu := NewActionMenu("", []Item{{Shortcut: 'a', Title: "One"}})
	screen := testutil.NewScreen(t, 20, 10)
	area := Area(canvas.Full(screen), 50, 50)

	menu.Render(area, screen)
	lines := testutil.ScreenLines(t, screen)
	for y, line := range lines {
		inside := y >= area.Y && y < area.Y+area.Height
		if !inside && line != "" {
			t.Fatalf("row %d outside popup area was drawn: %q", y, line)
		}
	}
	if testutil.FindLine(lines, DefaultTitle) != area.Y {
		t.Fatalf("expected title on popup top edge, rows=%q", lines)
	}
}
