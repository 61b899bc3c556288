package event

import (
	"context"
	"errors"
	"sync"

	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
)

// ErrBusClosed is returned by Next once the receiving end has been closed.
// The bus always retains its own sender, so reaching this while the
// controller still expects events indicates an internal inconsistency.
var ErrBusClosed = errors.New("event bus closed")

// Bus is an unbounded, ordered, multi-producer/single-consumer queue. Any
// number of Senders may enqueue concurrently; exactly one consumer drains it
// with Next.
type Bus struct {
	mu     sync.Mutex
	queue  []Event
	closed bool

	// ready holds at most one wake-up token for the consumer.
	ready chan struct{}
	done  chan struct{}
	once  sync.Once
}

// NewBus creates an open bus.
func NewBus() *Bus {
	return &Bus{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Sender returns a send capability. Senders are plain values and may be
// copied freely and shared between goroutines.
func (b *Bus) Sender() Sender {
	return Sender{bus: b}
}

// Redrawer returns a handle that can request frames and spawn tickers.
func (b *Bus) Redrawer() Redraw {
	return Redraw{sender: b.Sender()}
}

// Send queues an application signal for the next loop iteration.
func (b *Bus) Send(sig Signal) {
	b.Sender().Send(App(sig))
}

// Redraw queues a single Tick.
func (b *Bus) Redraw() {
	b.Sender().Send(Tick())
}

// Next blocks until an event is available and returns it in FIFO order. It
// returns ErrBusClosed after Close, or the context error if ctx ends first.
func (b *Bus) Next(ctx context.Context) (Event, error) {
	for {
		b.mu.Lock()
		if b.closed {
			b.mu.Unlock()
			return Event{}, ErrBusClosed
		}
		if len(b.queue) > 0 {
			ev := b.queue[0]
			b.queue[0] = Event{}
			b.queue = b.queue[1:]
			if len(b.queue) == 0 {
				b.queue = nil
			}
			b.mu.Unlock()
			return ev, nil
		}
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-b.done:
			return Event{}, ErrBusClosed
		case <-b.ready:
		}
	}
}

// Len reports how many events are waiting.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Close destroys the receiving end. Pending events are discarded, later
// sends are dropped, and every Sender's Done channel is closed. Close is
// idempotent.
func (b *Bus) Close() {
	b.once.Do(func() {
		b.mu.Lock()
		pending := len(b.queue)
		b.closed = true
		b.queue = nil
		b.mu.Unlock()
		close(b.done)
		events.Bus.Closed(pending)
	})
}

func (b *Bus) push(ev Event) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false
	}
	b.queue = append(b.queue, ev)
	b.mu.Unlock()

	select {
	case b.ready <- struct{}{}:
	default:
	}
	return true
}

// Sender is the producer side of a Bus.
type Sender struct {
	bus *Bus
}

// Send enqueues ev without blocking. It reports false, dropping the event,
// when the receiving end has already been closed.
func (s Sender) Send(ev Event) bool {
	if s.bus == nil {
		return false
	}
	if !s.bus.push(ev) {
		events.Bus.Dropped(ev.Kind.String())
		return false
	}
	return true
}

// Done is closed once the receiving end of the bus has been closed.
func (s Sender) Done() <-chan struct{} {
	if s.bus == nil {
		return closedChan
	}
	return s.bus.done
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
