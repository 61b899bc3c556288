package config

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tui-popup-loop/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFps         = "TUI_POPUP_LOOP_FPS"
	envClock       = "TUI_POPUP_LOOP_CLOCK"
	envPopupWidth  = "TUI_POPUP_LOOP_POPUP_WIDTH"
	envPopupHeight = "TUI_POPUP_LOOP_POPUP_HEIGHT"
	envTrace       = "TUI_POPUP_LOOP_TRACE"
	envLogFile     = "TUI_POPUP_LOOP_LOG_FILE"
)

const (
	defaultFps          = 4
	defaultPopupPercent = 50
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tui-popup-loop", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fps := fs.Float64("fps", envOrFloat(env, envFps, defaultFps), "clock ticker frequency in events per second")
	clock := fs.Bool("clock", envOrBool(env, envClock, false), "start the clock ticker at startup")
	popupWidth := fs.Int("popup-width", envOrInt(env, envPopupWidth, defaultPopupPercent), "popup width as a percentage of the screen")
	popupHeight := fs.Int("popup-height", envOrInt(env, envPopupHeight, defaultPopupPercent), "popup height as a percentage of the screen")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Fps:         *fps,
			StartClock:  *clock,
			PopupWidth:  *popupWidth,
			PopupHeight: *popupHeight,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"fps":         strconv.FormatFloat(*fps, 'g', -1, 64),
			"clock":       strconv.FormatBool(*clock),
			"popupWidth":  strconv.Itoa(*popupWidth),
			"popupHeight": strconv.Itoa(*popupHeight),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the event loop cannot run with.
func Validate(cfg Config) error {
	fps := cfg.App.Fps
	if math.IsNaN(fps) || math.IsInf(fps, 0) || fps <= 0 {
		return fmt.Errorf("fps must be a finite number > 0 (got %v)", fps)
	}
	if err := validatePercent("popup-width", cfg.App.PopupWidth); err != nil {
		return err
	}
	return validatePercent("popup-height", cfg.App.PopupHeight)
}

func validatePercent(name string, v int) error {
	if v < 1 || v > 100 {
		return fmt.Errorf("%s must be between 1 and 100 (got %d)", name, v)
	}
	return nil
}
