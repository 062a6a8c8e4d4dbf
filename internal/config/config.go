// Package config parses and validates the command-line configuration of the
// tour hosts.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/revealtour/internal/errors"
	"github.com/agbru/revealtour/internal/logging"
	"github.com/agbru/revealtour/internal/orchestration"
	"github.com/agbru/revealtour/internal/tour"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "REVEALTOUR_"

// Default values for AppConfig.
const (
	DefaultTick     = 50 * time.Millisecond
	DefaultSpeed    = 1.0
	DefaultLogLevel = "warn"
	DefaultTheme    = "dark"
)

// minTick keeps hosts from spinning on a near-zero quantum.
const minTick = time.Millisecond

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// TourFile is a YAML or TOML tour definition. Empty selects the built-in tour.
	TourFile string
	// Tick is the scheduling quantum: the tick interval of the hosts and, in
	// simulate mode, the fixed time step.
	Tick time.Duration
	// Speed scales real time before it reaches the orchestrator.
	Speed float64
	// Simulate advances the tour by a fixed quantum per tick without sleeping.
	Simulate bool
	// TUI launches the interactive dashboard instead of the headless runner.
	TUI bool
	// Quiet prints only the final summary line.
	Quiet bool
	// Verbose prints every step and skip as it happens.
	Verbose bool
	// LogLevel is the zerolog level for diagnostic logs written to stderr.
	LogLevel string
	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string
	// Timeout bounds the whole session. Zero means no limit.
	Timeout time.Duration
	// HoverPeriod is the on and off half-cycle of hover pulses.
	HoverPeriod time.Duration
	// Loop begins the tour again each time it completes.
	Loop bool
	// Continuous lists animators that only drive a fill fraction and stay enabled.
	Continuous []string
	// Missing lists animator, control or input ids the stage pretends not to
	// have, to rehearse degraded tours.
	Missing []string
	// NoColor disables colored output.
	NoColor bool
	// Theme selects the color theme ("dark", "light" or "none").
	Theme string
	// Completion, when set, prints a completion script for that shell and exits.
	Completion string
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate() error {
	if c.Tick < minTick {
		return apperrors.NewConfigError("tick must be at least %s, got %s", minTick, c.Tick)
	}
	if c.Speed <= 0 {
		return apperrors.NewConfigError("speed must be positive, got %g", c.Speed)
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("timeout must not be negative, got %s", c.Timeout)
	}
	if c.HoverPeriod < 0 {
		return apperrors.NewConfigError("hover period must not be negative, got %s", c.HoverPeriod)
	}
	if c.TUI && c.Simulate {
		return apperrors.NewConfigError("--simulate cannot be combined with --tui")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	if c.TourFile != "" {
		if _, err := tour.FormatFromPath(c.TourFile); err != nil {
			return apperrors.NewConfigError("tour file %q: %v", c.TourFile, err)
		}
	}
	switch c.Theme {
	case "dark", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q (want dark, light or none)", c.Theme)
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q (want bash, zsh or fish)", c.Completion)
	}
	return nil
}

// ParseConfig parses args into an AppConfig, applies REVEALTOUR_* environment
// overrides for flags not given on the command line, and validates the result.
// Usage and parse errors are written to errorWriter; -h returns flag.ErrHelp.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errorWriter, "Plays a guided tour of timed reveal animations.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEvery flag can also be set with %s<NAME> (e.g. %sTICK=20ms).\n", EnvPrefix, EnvPrefix)
	}

	config := AppConfig{}
	var continuous, missing string
	fs.StringVar(&config.TourFile, "tour", "", "Tour definition file (.yaml, .yml or .toml). Empty plays the built-in tour.")
	fs.StringVar(&config.TourFile, "f", "", "Shorthand for --tour.")
	fs.DurationVar(&config.Tick, "tick", DefaultTick, "Scheduling quantum.")
	fs.Float64Var(&config.Speed, "speed", DefaultSpeed, "Real-time speed multiplier.")
	fs.BoolVar(&config.Simulate, "simulate", false, "Advance by a fixed quantum per tick without sleeping.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the final summary.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print every step and skipped reference.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level (trace, debug, info, warn, error, disabled).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9464).")
	fs.DurationVar(&config.Timeout, "timeout", 0, "Maximum session duration (0 for none).")
	fs.DurationVar(&config.HoverPeriod, "hover-period", orchestration.DefaultHoverPeriod, "Half-cycle of hover pulses.")
	fs.BoolVar(&config.Loop, "loop", false, "Begin the tour again after it completes.")
	fs.StringVar(&continuous, "continuous", "arrow", "Comma-separated animators that only drive a fill fraction.")
	fs.StringVar(&missing, "missing", "", "Comma-separated ids the stage treats as unavailable.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme (dark, light, none).")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script (bash, zsh, fish) and exit.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	config.Continuous = splitList(continuous)
	config.Missing = splitList(missing)

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
