package backend

import (
	"sync"

	"github.com/atomicstack/tui-popup-loop/internal/event"
	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
	"github.com/gdamore/tcell/v2"
)

// Source produces raw terminal events. tcell.Screen satisfies it.
// ChannelEvents must deliver events on ch until quit is closed.
type Source interface {
	ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{})
}

// Watcher relays raw terminal input into the event bus. It starts on
// construction and runs until the bus's receiving end is closed, the source
// runs dry, or Stop is called.
type Watcher struct {
	sender event.Sender

	raw  chan tcell.Event
	quit chan struct{}
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewWatcher spawns the relay for src.
func NewWatcher(src Source, sender event.Sender) *Watcher {
	w := &Watcher{
		sender: sender,
		raw:    make(chan tcell.Event),
		quit:   make(chan struct{}),
		stop:   make(chan struct{}),
	}
	events.Input.Start()

	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		src.ChannelEvents(w.raw, w.quit)
	}()
	go w.relay()
	return w
}

// Stop ends the relay without waiting for it; use Wait for a clean drain.
func (w *Watcher) Stop() {
	w.once.Do(func() { close(w.stop) })
}

// Wait blocks until the relay and the source reader have both exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) relay() {
	defer w.wg.Done()
	defer close(w.quit)

	relayed := 0
	for {
		select {
		case <-w.sender.Done():
			events.Input.Exit(events.InputReasonBusClosed, relayed)
			return
		case <-w.stop:
			events.Input.Exit(events.InputReasonStopped, relayed)
			return
		case ev, ok := <-w.raw:
			if !ok || ev == nil {
				events.Input.Exit(events.InputReasonSourceClosed, relayed)
				return
			}
			if !w.sender.Send(event.Input(ev)) {
				events.Input.Exit(events.InputReasonBusClosed, relayed)
				return
			}
			relayed++
		}
	}
}
