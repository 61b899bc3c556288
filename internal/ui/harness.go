package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/atomicstack/tui-popup-loop/internal/event"
)

// Harness drives the controller one loop iteration at a time for tests.
type Harness struct {
	model   *Model
	display Display
}

// NewHarness creates a harness rendering model into display.
func NewHarness(model *Model, display Display) *Harness {
	return &Harness{model: model, display: display}
}

// Send enqueues ev on the model's bus without running the loop.
func (h *Harness) Send(ev event.Event) {
	if h.model == nil || h.model.bus == nil {
		return
	}
	h.model.bus.Sender().Send(ev)
}

// Key enqueues a key press.
func (h *Harness) Key(k tcell.Key, r rune, mod tcell.ModMask) {
	h.Send(event.Input(tcell.NewEventKey(k, r, mod)))
}

// Rune enqueues a printable key press.
func (h *Harness) Rune(r rune) {
	h.Key(tcell.KeyRune, r, tcell.ModNone)
}

// Step runs a single iteration: prune, render, receive and dispatch.
func (h *Harness) Step(ctx context.Context) error {
	return h.model.iterate(ctx, h.display)
}

// Render draws the current state without consuming an event.
func (h *Harness) Render() {
	h.model.prunePopup()
	h.model.render(h.display)
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
