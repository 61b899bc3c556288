// Package ui contains the application controller: the single consumer of
// the event bus and the only owner of the render surface.
//
// Loop:
//   - Model.Run repeats one iteration while running. An iteration discards a
//     popup that reported completion, renders the frame, blocks on
//     event.Bus.Next and dispatches the event through a handler registry
//     keyed by event.Kind.
//   - Tick events advance the tick counter (the clock ticker produces them
//     at the configured fps when toggled on).
//   - Input events carry raw tcell events. Key presses are converted to
//     tea.KeyMsg and matched against bubbles/key bindings. While a popup is
//     active it receives every key and the state key maps receive none.
//     Resizes schedule a full Sync of the surface.
//   - Application signals apply intents such as Quit or ToggleClock. Quit
//     keys on the main and help screens submit the signal through the bus
//     rather than stopping the loop directly.
//
// State ownership:
//   - Screen state (main or help) changes only while no popup is active.
//   - The action menu is built from internal/menu, with callbacks wrapped by
//     internal/ui/command so invocations are traced.
//   - Opening a popup while one is active replaces it.
package ui
