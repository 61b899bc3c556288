package command

import (
	"testing"

	"github.com/atomicstack/tui-popup-loop/internal/menu"
)

func TestExecuteRunsHandlerWithItem(t *testing.T) {
	var got menu.Item
	calls := 0
	handler := func(_ menu.Context, item menu.Item) {
		calls++
		got = item
	}
	req := Request{
		ID:      "redraw",
		Label:   "Redraw",
		Handler: handler,
		Item:    menu.Item{ID: "redraw", Label: "Redraw"},
	}
	fn := New().Execute(menu.Context{}, req)
	if calls != 0 {
		t.Fatalf("expected handler deferred until callback runs")
	}
	fn()
	if calls != 1 || got.ID != "redraw" {
		t.Fatalf("expected handler called once with item, got %d/%+v", calls, got)
	}
}

func TestExecuteWithoutHandlerIsSafe(t *testing.T) {
	fn := New().Execute(menu.Context{}, Request{ID: "missing"})
	fn()
}
