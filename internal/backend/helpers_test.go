package backend

import (
	"context"
	"testing"
	"time"

	"github.com/atomicstack/tui-popup-loop/internal/event"
)

func nextEvent(t *testing.T, bus *event.Bus) event.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, err := bus.Next(ctx)
	if err != nil {
		t.Fatalf("expected event, got %v", err)
	}
	return ev
}
