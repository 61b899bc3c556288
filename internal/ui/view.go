package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/atomicstack/tui-popup-loop/internal/format/table"
	"github.com/atomicstack/tui-popup-loop/internal/theme"
	"github.com/atomicstack/tui-popup-loop/internal/ui/canvas"
	"github.com/atomicstack/tui-popup-loop/internal/ui/popup"
)

const (
	appTitle   = "tui-popup-loop"
	helpTitle  = "Help"
	statusMain = "Main Screen | Press h/? for help"
	statusHelp = "Help Screen | Press Esc to return"
)

// render draws one frame. The popup, if any, is drawn last into its own
// centred region.
func (m *Model) render(display Display) {
	full := canvas.Full(display)
	canvas.Clear(display, full, theme.Cell(styles.Body))
	body, status := full.SplitBottom(1)

	switch m.state {
	case StateHelp:
		m.drawHelp(display, body)
		m.drawStatus(display, status, statusHelp, theme.Cell(styles.StatusHelp))
	default:
		m.drawMain(display, body)
		m.drawStatus(display, status, statusMain, theme.Cell(styles.StatusMain))
	}

	if m.popup != nil {
		m.popup.Render(popup.Area(full, m.popupWidth, m.popupHeight), display)
	}

	if m.needSync {
		m.needSync = false
		display.Sync()
		return
	}
	display.Show()
}

func (m *Model) mainLines() []string {
	clock := "off"
	if m.clock != nil {
		clock = fmt.Sprintf("on (%g fps)", m.clock.Rate())
	}
	return []string{
		"Event loop with modal popups",
		"",
		"Press m or space to open the action menu",
		"Press h or ? for help, q to quit",
		"",
		fmt.Sprintf("Ticks: %d | Clock: %s", m.ticks, clock),
	}
}

func (m *Model) drawMain(s canvas.Surface, area canvas.Rect) {
	inner := canvas.Box(s, area, canvas.RoundedBorder, appTitle,
		theme.Cell(styles.Border), theme.Cell(styles.Title))
	if inner.Empty() {
		return
	}
	lines := m.mainLines()
	top := inner.Y + (inner.Height-len(lines))/2
	if top < inner.Y {
		top = inner.Y
	}
	body := theme.Cell(styles.Body)
	info := theme.Cell(styles.Info)
	for i, line := range lines {
		style := body
		if i == len(lines)-1 {
			style = info
		}
		canvas.Centered(s, inner, top+i, line, style)
	}
}

// helpRows lists key bindings per section, taken from the key maps' help
// metadata.
func (m *Model) helpRows() [][]string {
	rows := [][]string{{"Main screen", ""}}
	for _, b := range m.keys.Main.ShortHelp() {
		rows = append(rows, []string{"  " + b.Help().Key, b.Help().Desc})
	}
	rows = append(rows, []string{"Help screen", ""})
	for _, b := range m.keys.Help.ShortHelp() {
		rows = append(rows, []string{"  " + b.Help().Key, b.Help().Desc})
	}
	rows = append(rows, []string{"Action menu", ""})
	for _, b := range actionMenuHelp() {
		rows = append(rows, []string{"  " + b.Help().Key, b.Help().Desc})
	}
	rows = append(rows, []string{"  (c)", "run entry by shortcut"})
	return rows
}

func (m *Model) drawHelp(s canvas.Surface, area canvas.Rect) {
	inner := canvas.Box(s, area, canvas.PlainBorder, helpTitle,
		theme.Cell(styles.Border), theme.Cell(styles.Title))
	if inner.Empty() {
		return
	}
	rows := m.helpRows()
	lines := table.Format(rows, nil)
	body := theme.Cell(styles.HelpBody)
	keyStyle := theme.Cell(styles.HelpKey)
	for i, line := range lines {
		y := inner.Y + i
		if y >= inner.Y+inner.Height {
			break
		}
		canvas.Text(s, inner, inner.X+1, y, line, body)
		canvas.Text(s, inner, inner.X+1, y, rows[i][0], keyStyle)
	}
}

func (m *Model) drawStatus(s canvas.Surface, area canvas.Rect, text string, style tcell.Style) {
	if area.Empty() {
		return
	}
	canvas.Fill(s, area, ' ', style)
	canvas.Text(s, area, area.X+1, area.Y, text, style)
}
