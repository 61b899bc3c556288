package backend

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/tui-popup-loop/internal/event"
	"github.com/gdamore/tcell/v2"
)

// fakeSource emits queued events and then blocks until quit, mirroring
// tcell's ChannelEvents contract.
type fakeSource struct {
	events     []tcell.Event
	closeAfter bool

	mu     sync.Mutex
	exited bool
}

func (f *fakeSource) ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{}) {
	defer func() {
		f.mu.Lock()
		f.exited = true
		f.mu.Unlock()
	}()
	for _, ev := range f.events {
		select {
		case <-quit:
			return
		case ch <- ev:
		}
	}
	if f.closeAfter {
		close(ch)
		return
	}
	<-quit
}

func (f *fakeSource) hasExited() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exited
}

func waitDone(t *testing.T, w *Watcher) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		w.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for watcher to exit")
	}
}

func TestWatcherRelaysInputInOrder(t *testing.T) {
	bus := event.NewBus()
	src := &fakeSource{events: []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone),
		tcell.NewEventResize(80, 24),
	}}
	w := NewWatcher(src, bus.Sender())
	defer func() {
		bus.Close()
		waitDone(t, w)
	}()

	for i, want := range []string{"a", "b", "resize"} {
		ev := nextEvent(t, bus)
		if ev.Kind != event.KindInput {
			t.Fatalf("event %d: expected input, got %s", i, ev)
		}
		switch raw := ev.Input.(type) {
		case *tcell.EventKey:
			if string(raw.Rune()) != want {
				t.Fatalf("event %d: expected rune %s, got %q", i, want, raw.Rune())
			}
		case *tcell.EventResize:
			if want != "resize" {
				t.Fatalf("event %d: unexpected resize", i)
			}
		default:
			t.Fatalf("event %d: unexpected payload %T", i, raw)
		}
	}
}

func TestWatcherExitsWhenBusCloses(t *testing.T) {
	bus := event.NewBus()
	src := &fakeSource{}
	w := NewWatcher(src, bus.Sender())

	bus.Close()
	waitDone(t, w)
	if !src.hasExited() {
		t.Fatalf("expected source reader to be released")
	}
}

func TestWatcherExitsWhenSourceCloses(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()
	src := &fakeSource{
		events:     []tcell.Event{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)},
		closeAfter: true,
	}
	w := NewWatcher(src, bus.Sender())
	waitDone(t, w)
	if bus.Len() != 1 {
		t.Fatalf("expected the single event relayed before exit, got %d", bus.Len())
	}
}

func TestWatcherStop(t *testing.T) {
	bus := event.NewBus()
	defer bus.Close()
	w := NewWatcher(&fakeSource{}, bus.Sender())
	w.Stop()
	w.Stop()
	waitDone(t, w)
}

func TestWatcherWithSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()

	bus := event.NewBus()
	w := NewWatcher(screen, bus.Sender())
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	for {
		ev := nextEvent(t, bus)
		if key, ok := ev.Input.(*tcell.EventKey); ok {
			if key.Rune() != 'q' {
				t.Fatalf("expected q, got %q", key.Rune())
			}
			break
		}
	}
	bus.Close()
	waitDone(t, w)
}

func TestOpenScreenPropagatesErrors(t *testing.T) {
	restore := newScreen
	t.Cleanup(func() { newScreen = restore })

	newScreen = func() (tcell.Screen, error) { return nil, errors.New("no tty") }
	if _, err := OpenScreen(); err == nil {
		t.Fatalf("expected error when screen creation fails")
	}

	newScreen = func() (tcell.Screen, error) { return tcell.NewSimulationScreen("UTF-8"), nil }
	screen, err := OpenScreen()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	screen.Fini()
}
