package event

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
)

// ErrInvalidRate is returned when a ticker frequency is not a finite,
// positive number of events per second.
var ErrInvalidRate = errors.New("invalid tick rate")

// Redraw lets any component request frames without access to the receiving
// end of the bus.
type Redraw struct {
	sender Sender
}

// NewRedraw builds a Redraw handle from a Sender.
func NewRedraw(sender Sender) Redraw {
	return Redraw{sender: sender}
}

// Redraw queues a single Tick.
func (r Redraw) Redraw() {
	r.sender.Send(Tick())
}

// Fps spawns a ticker emitting Tick rate times per second until the returned
// handle is stopped or the bus closes.
func (r Redraw) Fps(rate float64) (*Ticker, error) {
	period, err := tickPeriod(rate)
	if err != nil {
		return nil, err
	}
	t := &Ticker{
		rate:   rate,
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
	events.Ticker.Start(rate)
	go t.run(r.sender, period)
	return t, nil
}

func tickPeriod(rate float64) (time.Duration, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	period := time.Duration(float64(time.Second) / rate)
	if period <= 0 {
		return 0, fmt.Errorf("%w: %v exceeds clock resolution", ErrInvalidRate, rate)
	}
	return period, nil
}

// Ticker is the handle for one periodic Tick producer.
type Ticker struct {
	rate   float64
	cancel chan struct{}
	done   chan struct{}
	once   sync.Once

	mu    sync.Mutex
	ticks int
}

// Rate returns the frequency the ticker was started with.
func (t *Ticker) Rate() float64 {
	return t.rate
}

// Ticks reports how many Tick events the ticker has enqueued.
func (t *Ticker) Ticks() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// Stop cancels the ticker and waits for its goroutine to exit. No Tick is
// enqueued by this ticker once Stop returns. Stop is idempotent.
func (t *Ticker) Stop() {
	if t == nil {
		return
	}
	t.once.Do(func() { close(t.cancel) })
	<-t.done
}

// Done is closed when the ticker goroutine has exited.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}

func (t *Ticker) run(sender Sender, period time.Duration) {
	defer close(t.done)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-t.cancel:
			events.Ticker.Cancel(t.rate, t.Ticks())
			return
		case <-sender.Done():
			events.Ticker.BusGone(t.rate, t.Ticks())
			return
		case <-ticker.C:
			// both may be ready at once; cancellation wins
			select {
			case <-t.cancel:
				events.Ticker.Cancel(t.rate, t.Ticks())
				return
			default:
			}
			if !sender.Send(Tick()) {
				events.Ticker.BusGone(t.rate, t.Ticks())
				return
			}
			t.mu.Lock()
			t.ticks++
			t.mu.Unlock()
		}
	}
}
