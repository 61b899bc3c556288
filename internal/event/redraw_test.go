package event

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestFpsRejectsInvalidRates(t *testing.T) {
	r := NewBus().Redrawer()
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1), 1e30} {
		if tk, err := r.Fps(rate); !errors.Is(err, ErrInvalidRate) {
			tk.Stop()
			t.Fatalf("rate %v: expected ErrInvalidRate, got %v", rate, err)
		}
	}
}

func TestFpsEmitsTicks(t *testing.T) {
	b := NewBus()
	tk, err := b.Redrawer().Fps(200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tk.Stop()

	for i := 0; i < 3; i++ {
		ev := nextWithin(t, b, time.Second)
		if ev.Kind != KindTick {
			t.Fatalf("expected tick, got %s", ev)
		}
	}
	if tk.Rate() != 200 {
		t.Fatalf("expected rate 200, got %v", tk.Rate())
	}
}

func TestTickerStopHaltsTicks(t *testing.T) {
	b := NewBus()
	tk, err := b.Redrawer().Fps(500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nextWithin(t, b, time.Second)

	tk.Stop()
	tk.Stop()
	emitted := tk.Ticks()

	// nothing is read from here on; the queue must stop growing
	before := b.Len()
	time.Sleep(30 * time.Millisecond)
	if after := b.Len(); after != before {
		t.Fatalf("expected no ticks after Stop, queue grew from %d to %d", before, after)
	}
	if tk.Ticks() != emitted {
		t.Fatalf("expected tick count to stay at %d, got %d", emitted, tk.Ticks())
	}
}

func TestTickersRunIndependently(t *testing.T) {
	b := NewBus()
	r := b.Redrawer()
	fast, err := r.Fps(400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slow, err := r.Fps(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer slow.Stop()

	fast.Stop()
	select {
	case <-slow.Done():
		t.Fatalf("stopping one ticker must not stop another")
	default:
	}
	nextWithin(t, b, time.Second)
}

func TestTickerExitsWhenBusCloses(t *testing.T) {
	b := NewBus()
	tk, err := b.Redrawer().Fps(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Close()
	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatalf("expected ticker to exit after bus close")
	}
	tk.Stop()
}

func TestNilTickerStopIsNoop(t *testing.T) {
	var tk *Ticker
	tk.Stop()
}
