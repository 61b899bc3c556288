package events

import "github.com/atomicstack/tui-popup-loop/internal/logging"

type BusTracer struct{}

type InputTracer struct{}

type TickerTracer struct{}

type inputReason string

const (
	InputReasonBusClosed    inputReason = "bus-closed"
	InputReasonSourceClosed inputReason = "source-closed"
	InputReasonStopped      inputReason = "stopped"
)

var (
	Bus    = BusTracer{}
	Input  = InputTracer{}
	Ticker = TickerTracer{}
)

func (BusTracer) Closed(pending int) {
	logging.Trace("bus.closed", map[string]interface{}{"pending": pending})
}

func (BusTracer) Dropped(kind string) {
	logging.Trace("bus.dropped", map[string]interface{}{"kind": kind})
}

func (InputTracer) Start() {
	logging.Trace("input.start", nil)
}

func (InputTracer) Exit(reason inputReason, relayed int) {
	logging.Trace("input.exit", map[string]interface{}{"reason": string(reason), "relayed": relayed})
}

func (TickerTracer) Start(rate float64) {
	logging.Trace("ticker.start", map[string]interface{}{"rate": rate})
}

func (TickerTracer) Cancel(rate float64, ticks int) {
	logging.Trace("ticker.cancel", map[string]interface{}{"rate": rate, "ticks": ticks})
}

func (TickerTracer) BusGone(rate float64, ticks int) {
	logging.Trace("ticker.bus-gone", map[string]interface{}{"rate": rate, "ticks": ticks})
}
