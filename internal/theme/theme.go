package theme

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	Border       *lipgloss.Style
	Body         *lipgloss.Style
	Info         *lipgloss.Style
	HelpBody     *lipgloss.Style
	HelpKey      *lipgloss.Style
	StatusMain   *lipgloss.Style
	StatusHelp   *lipgloss.Style
	PopupBorder  *lipgloss.Style
	PopupTitle   *lipgloss.Style
	PopupItem    *lipgloss.Style
	ShortcutHint *lipgloss.Style
	Highlighted  *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Background(lipgloss.Color("0")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("0")),
	),
	HelpBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("0")),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("0")).Bold(true),
	),
	StatusMain: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("201")),
	),
	StatusHelp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")),
	),
	PopupBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PopupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	PopupItem: ptr(
		lipgloss.NewStyle(),
	),
	ShortcutHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	),
	Highlighted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Cell converts a Lip Gloss style into the cell style used by the render
// surface. Colours, bold, italic, underline, reverse and blink carry over;
// layout properties such as padding and width are ignored. A nil style maps
// to the terminal default.
func Cell(style *lipgloss.Style) tcell.Style {
	out := tcell.StyleDefault
	if style == nil {
		return out
	}
	if c, ok := color(style.GetForeground()); ok {
		out = out.Foreground(c)
	}
	if c, ok := color(style.GetBackground()); ok {
		out = out.Background(c)
	}
	return out.
		Bold(style.GetBold()).
		Italic(style.GetItalic()).
		Underline(style.GetUnderline()).
		Reverse(style.GetReverse()).
		Blink(style.GetBlink())
}

func color(tc lipgloss.TerminalColor) (tcell.Color, bool) {
	var value string
	switch c := tc.(type) {
	case lipgloss.Color:
		value = string(c)
	case lipgloss.AdaptiveColor:
		value = c.Dark
		if !lipgloss.HasDarkBackground() {
			value = c.Light
		}
	default:
		return tcell.ColorDefault, false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return tcell.ColorDefault, false
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 255 {
			return tcell.ColorDefault, false
		}
		return tcell.PaletteColor(n), true
	}
	c := tcell.GetColor(value)
	if c == tcell.ColorDefault {
		return c, false
	}
	return c, true
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
