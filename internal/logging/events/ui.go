package events

import "github.com/atomicstack/tui-popup-loop/internal/logging"

type UITracer struct{}

type PopupTracer struct{}

type MenuTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Popup   = PopupTracer{}
	Menu    = MenuTracer{}
	Command = CommandTracer{}
)

func (UITracer) Screen(from, to string) {
	logging.Trace("ui.screen", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Key(key, screen string, popup bool) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "screen": screen, "popup": popup})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Clock(running bool, rate float64) {
	logging.Trace("ui.clock", map[string]interface{}{"running": running, "rate": rate})
}

func (PopupTracer) Open(title string) {
	logging.Trace("popup.open", map[string]interface{}{"title": title})
}

func (PopupTracer) Replace(previous, next string) {
	logging.Trace("popup.replace", map[string]interface{}{"previous": previous, "next": next})
}

func (PopupTracer) Close(title string) {
	logging.Trace("popup.close", map[string]interface{}{"title": title})
}

func (MenuTracer) Cursor(title string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": title, "cursor": cursor})
}

func (MenuTracer) Fire(title string, index int, label string, shortcut bool) {
	logging.Trace("menu.fire", map[string]interface{}{
		"menu":     title,
		"index":    index,
		"label":    label,
		"shortcut": shortcut,
	})
}

func (MenuTracer) Cancel(title string) {
	logging.Trace("menu.cancel", map[string]interface{}{"menu": title})
}

func (CommandTracer) Invoke(id, label string) {
	logging.Trace("command.invoke", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}
