package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/tui-popup-loop/internal/backend"
	"github.com/atomicstack/tui-popup-loop/internal/event"
	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
	"github.com/atomicstack/tui-popup-loop/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Fps         float64
	StartClock  bool
	PopupWidth  int
	PopupHeight int
}

var openScreen = backend.OpenScreen

// quitSignals are OS signals translated into a Quit application event.
var quitSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP}

// Run opens the terminal and drives the controller until it quits.
func Run(ctx context.Context, cfg Config) error {
	screen, err := openScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, quitSignals...)
	defer signal.Stop(sigs)
	return run(ctx, cfg, screen, sigs)
}

// run owns screen for its lifetime and restores it on return. The bus is
// closed once the controller exits, which stops the input relay.
func run(ctx context.Context, cfg Config, screen tcell.Screen, sigs <-chan os.Signal) error {
	defer screen.Fini()

	bus := event.NewBus()
	watcher := backend.NewWatcher(screen, bus.Sender())
	model := ui.NewModel(bus, ui.Options{
		Fps:         cfg.Fps,
		StartClock:  cfg.StartClock,
		PopupWidth:  cfg.PopupWidth,
		PopupHeight: cfg.PopupHeight,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return model.Run(gctx, screen)
	})
	g.Go(func() error {
		forwardSignals(gctx, sigs, bus)
		return nil
	})
	err := g.Wait()

	bus.Close()
	watcher.Wait()
	events.App.Stop(model.Ticks(), err)
	return err
}

// forwardSignals submits Quit for every OS signal received until ctx ends.
func forwardSignals(ctx context.Context, sigs <-chan os.Signal, bus *event.Bus) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigs:
			if !ok {
				return
			}
			events.App.OSSignal(sig.String())
			bus.Send(event.SignalQuit)
		}
	}
}
