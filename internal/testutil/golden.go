package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// ScreenLines flushes the simulation screen and returns its rows as text,
// trailing spaces trimmed.
func ScreenLines(t *testing.T, screen tcell.SimulationScreen) []string {
	t.Helper()
	screen.Show()
	cells, width, height := screen.GetContents()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(cell.Runes[0])
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// ScreenText joins ScreenLines with newlines.
func ScreenText(t *testing.T, screen tcell.SimulationScreen) string {
	t.Helper()
	return strings.Join(ScreenLines(t, screen), "\n")
}

// FindLine returns the index of the first row containing needle, or -1.
func FindLine(lines []string, needle string) int {
	for i, line := range lines {
		if strings.Contains(line, needle) {
			return i
		}
	}
	return -1
}

// CellStyle returns the style of the cell at (x, y) after flushing.
func CellStyle(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.Style {
	t.Helper()
	screen.Show()
	cells, width, height := screen.GetContents()
	if x < 0 || y < 0 || x >= width || y >= height {
		t.Fatalf("cell (%d,%d) outside %dx%d screen", x, y, width, height)
	}
	return cells[y*width+x].Style
}

// NewScreen returns an initialised simulation screen of the given size.
func NewScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// AssertGolden compares output with testdata/<goldenName> at the repository
// root. Set UPDATE_GOLDEN=1 to rewrite the file.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := filepath.Join(repoRoot(t), "testdata", goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", goldenName, err)
	}
	if string(data) != output {
		t.Fatalf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", goldenName, string(data), output)
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
