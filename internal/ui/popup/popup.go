// Package popup defines modal overlays. While a Popup is installed on the
// controller it receives every key event; the controller discards it on the
// iteration after Done reports true.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tui-popup-loop/internal/ui/canvas"
)

// Popup is a modal overlay.
type Popup interface {
	// Title names the popup in traces and on its border.
	Title() string
	// Render draws into area, which is a sub-region of s.
	Render(area canvas.Rect, s canvas.Surface)
	// HandleKey consumes one key event.
	HandleKey(msg tea.KeyMsg)
	// Done reports whether the interaction has concluded.
	Done() bool
}

// Area returns a rectangle centred in r covering percentX of its width and
// percentY of its height. Percentages are clamped to 1..100.
func Area(r canvas.Rect, percentX, percentY int) canvas.Rect {
	percentX = clampPercent(percentX)
	percentY = clampPercent(percentY)
	w := r.Width * percentX / 100
	h := r.Height * percentY / 100
	return canvas.Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

func clampPercent(p int) int {
	if p < 1 {
		return 1
	}
	if p > 100 {
		return 100
	}
	return p
}
