// Package event provides the event funnel that feeds the controller loop.
//
// Three sources share one ordered stream:
//   - terminal input, relayed by internal/backend;
//   - Tick events from Redraw requests and Ticker producers;
//   - application signals submitted by the controller or popup actions.
//
// A Bus owns the receiving end. Producers only ever hold a Sender (or a
// Redraw built from one), so the single-consumer rule is enforced by the
// types: nothing but the holder of *Bus can call Next. Sends never block;
// once the bus is closed they are dropped and Sender.Done is closed so
// background producers can exit.
package event
