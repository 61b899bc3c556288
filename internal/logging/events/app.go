package events

import "github.com/atomicstack/tui-popup-loop/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Signal(name string) {
	logging.Trace("app.signal", map[string]interface{}{"signal": name})
}

func (AppTracer) OSSignal(name string) {
	logging.Trace("app.os-signal", map[string]interface{}{"signal": name})
}

func (AppTracer) Stop(ticks int, err error) {
	payload := map[string]interface{}{"ticks": ticks}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.stop", payload)
}
