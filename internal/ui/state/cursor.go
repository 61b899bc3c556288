// Package state holds list navigation state shared by list-style popups.
package state

// NoSelection is the cursor value before the first navigation.
const NoSelection = -1

// List tracks the highlighted entry and scroll offset of a list of Len
// entries. Cursor is NoSelection until the first move.
type List struct {
	Len            int
	Cursor         int
	ViewportOffset int
}

// NewList returns a list of n entries with nothing selected.
func NewList(n int) *List {
	if n < 0 {
		n = 0
	}
	return &List{Len: n, Cursor: NoSelection}
}

// Selected returns the highlighted index, if any.
func (l *List) Selected() (int, bool) {
	if l.Cursor < 0 || l.Cursor >= l.Len {
		return NoSelection, false
	}
	return l.Cursor, true
}

// Next moves to the following entry, wrapping from the last to the first.
// With nothing selected it selects the first entry.
func (l *List) Next() bool {
	if l.Len == 0 {
		l.Cursor = NoSelection
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 || l.Cursor >= l.Len-1 {
		l.Cursor = 0
	} else {
		l.Cursor++
	}
	return old != l.Cursor
}

// Prev moves to the preceding entry, wrapping from the first to the last.
// With nothing selected it selects the last entry.
func (l *List) Prev() bool {
	if l.Len == 0 {
		l.Cursor = NoSelection
		return false
	}
	old := l.Cursor
	if l.Cursor <= 0 || l.Cursor >= l.Len {
		l.Cursor = l.Len - 1
	} else {
		l.Cursor--
	}
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first entry.
func (l *List) MoveCursorHome() bool {
	if l.Len == 0 {
		l.Cursor = NoSelection
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (l *List) MoveCursorEnd() bool {
	if l.Len == 0 {
		l.Cursor = NoSelection
		return false
	}
	old := l.Cursor
	l.Cursor = l.Len - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by one page without wrapping.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page without wrapping.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if l.Len == 0 {
		l.Cursor = NoSelection
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Len {
		l.Cursor = l.Len - 1
	}
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	size := maxVisible
	if size <= 0 || size > l.Len {
		size = l.Len
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays
// visible within maxVisible rows. An unselected list keeps its offset,
// clamped to the valid range.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if l.Len == 0 {
		l.Cursor = NoSelection
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= l.Len {
		l.Cursor = l.Len - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := l.Len - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < 0 {
		return
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}

// Visible returns the half-open index range [start, end) shown in a
// viewport of maxVisible rows.
func (l *List) Visible(maxVisible int) (int, int) {
	if maxVisible <= 0 || l.Len == 0 {
		return 0, 0
	}
	start := l.ViewportOffset
	end := start + maxVisible
	if end > l.Len {
		end = l.Len
	}
	return start, end
}
