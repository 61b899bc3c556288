// Package canvas is the render surface used by the controller and popups.
// Drawing is clipped to the rectangle handed to each call so components can
// only touch the region they were allocated.
package canvas

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the subset of tcell.Screen the renderer needs.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Rect is a rectangular region in cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Full returns the rectangle covering the whole surface.
func Full(s Surface) Rect {
	w, h := s.Size()
	return Rect{Width: w, Height: h}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner shrinks r by one cell on each side, the area inside a border.
func (r Rect) Inner() Rect {
	return r.Shrink(1, 1)
}

// Shrink removes dx columns from each side and dy rows from top and bottom.
func (r Rect) Shrink(dx, dy int) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// SplitBottom carves rows off the bottom of r, returning (top, bottom).
func (r Rect) SplitBottom(rows int) (Rect, Rect) {
	if rows > r.Height {
		rows = r.Height
	}
	if rows < 0 {
		rows = 0
	}
	top := Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - rows}
	bottom := Rect{X: r.X, Y: r.Y + top.Height, Width: r.Width, Height: rows}
	return top, bottom
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Fill paints every cell of r with ch.
func Fill(s Surface, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

// Clear blanks r so nothing drawn underneath shows through.
func Clear(s Surface, r Rect, style tcell.Style) {
	Fill(s, r, ' ', style)
}

// Border selects the glyph set used by Box.
type Border struct {
	Horizontal, Vertical    rune
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
}

var (
	PlainBorder   = Border{'─', '│', '┌', '┐', '└', '┘'}
	RoundedBorder = Border{'─', '│', '╭', '╮', '╰', '╯'}
)

// Box draws a border around r with an optional title on the top edge and
// returns the inner rectangle. Titles wider than the edge are truncated.
func Box(s Surface, r Rect, border Border, title string, style, titleStyle tcell.Style) Rect {
	if r.Width < 2 || r.Height < 2 {
		return Rect{X: r.X, Y: r.Y}
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, border.Horizontal, nil, style)
		s.SetContent(x, bottom, border.Horizontal, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, border.Vertical, nil, style)
		s.SetContent(right, y, border.Vertical, nil, style)
	}
	s.SetContent(r.X, r.Y, border.TopLeft, nil, style)
	s.SetContent(right, r.Y, border.TopRight, nil, style)
	s.SetContent(r.X, bottom, border.BottomLeft, nil, style)
	s.SetContent(right, bottom, border.BottomRight, nil, style)

	if title != "" {
		edge := Rect{X: r.X + 1, Y: r.Y, Width: r.Width - 2, Height: 1}
		Text(s, edge, edge.X, edge.Y, Truncate(title, edge.Width), titleStyle)
	}
	return r.Inner()
}

// Text writes text starting at (x, y), clipped to clip. It returns the
// column after the last cell written.
func Text(s Surface, clip Rect, x, y int, text string, style tcell.Style) int {
	if y < clip.Y || y >= clip.Y+clip.Height {
		return x
	}
	limit := clip.X + clip.Width
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		if x >= clip.X {
			s.SetContent(x, y, r, nil, style)
		}
		x += w
	}
	return x
}

// Centered writes text horizontally centred within the row y of r.
func Centered(s Surface, r Rect, y int, text string, style tcell.Style) {
	text = Truncate(text, r.Width)
	pad := (r.Width - Width(text)) / 2
	Text(s, r, r.X+pad, y, text, style)
}

// Width is the display width of text in cells.
func Width(text string) int {
	return ansi.StringWidth(text)
}

// Truncate shortens text to at most width cells, marking the cut with an
// ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
