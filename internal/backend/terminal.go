package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var newScreen = tcell.NewScreen

// OpenScreen creates and initialises the terminal screen. The caller owns
// the returned screen and must call Fini to restore the terminal.
func OpenScreen() (tcell.Screen, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
