package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atomicstack/tui-popup-loop/internal/app"
	"github.com/atomicstack/tui-popup-loop/internal/config"
	"github.com/atomicstack/tui-popup-loop/internal/logging"
	"github.com/atomicstack/tui-popup-loop/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(context.Background(), runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["terminal"] = describeTerminal(int(os.Stdin.Fd()), int(os.Stdout.Fd()), os.Getenv)
	return payload
}

// terminalInfo records what the popup loop will be drawing onto.
type terminalInfo struct {
	Interactive bool   `json:"interactive"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	SizeError   string `json:"sizeError,omitempty"`
	Term        string `json:"term,omitempty"`
	ColorTerm   string `json:"colorterm,omitempty"`
}

// describeTerminal reports whether input and output are both attached to a
// terminal, and the output size when they are.
func describeTerminal(in, out int, getenv func(string) string) terminalInfo {
	info := terminalInfo{
		Term:      getenv("TERM"),
		ColorTerm: getenv("COLORTERM"),
	}
	if in < 0 || out < 0 || !term.IsTerminal(in) || !term.IsTerminal(out) {
		return info
	}
	info.Interactive = true
	if width, height, err := term.GetSize(out); err == nil {
		info.Width, info.Height = width, height
	} else {
		info.SizeError = err.Error()
	}
	return info
}
