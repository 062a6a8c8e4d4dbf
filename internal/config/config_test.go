package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/agbru/revealtour/internal/errors"
)

func defaultConfig() AppConfig {
	return AppConfig{
		Tick:        DefaultTick,
		Speed:       DefaultSpeed,
		LogLevel:    DefaultLogLevel,
		HoverPeriod: 500 * time.Millisecond,
		Continuous:  []string{"arrow"},
		Theme:       DefaultTheme,
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("revealtour", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{
		"-f", "tours/intro.yaml",
		"--tick", "20ms",
		"--speed", "2.5",
		"--simulate",
		"-q",
		"--log-level", "debug",
		"--metrics-addr", ":9464",
		"--timeout", "2m",
		"--hover-period", "250ms",
		"--loop",
		"--continuous", "arrow, distance",
		"--missing", "help,,save",
		"--no-color",
		"--theme", "light",
		"--completion", "zsh",
	}
	cfg, err := ParseConfig("revealtour", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := AppConfig{
		TourFile:    "tours/intro.yaml",
		Tick:        20 * time.Millisecond,
		Speed:       2.5,
		Simulate:    true,
		Quiet:       true,
		LogLevel:    "debug",
		MetricsAddr: ":9464",
		Timeout:     2 * time.Minute,
		HoverPeriod: 250 * time.Millisecond,
		Loop:        true,
		Continuous:  []string{"arrow", "distance"},
		Missing:     []string{"help", "save"},
		NoColor:     true,
		Theme:       "light",
		Completion:  "zsh",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantConfig bool
	}{
		{"tick too small", []string{"--tick", "0s"}, true},
		{"zero speed", []string{"--speed", "0"}, true},
		{"negative timeout", []string{"--timeout", "-1s"}, true},
		{"negative hover period", []string{"--hover-period", "-1s"}, true},
		{"simulate with tui", []string{"--simulate", "--tui"}, true},
		{"quiet with verbose", []string{"-q", "-v"}, true},
		{"bad log level", []string{"--log-level", "loud"}, true},
		{"bad tour extension", []string{"--tour", "tour.json"}, true},
		{"bad theme", []string{"--theme", "neon"}, true},
		{"bad completion shell", []string{"--completion", "tcsh"}, true},
		{"positional argument", []string{"extra"}, true},
		{"unknown flag", []string{"--bogus"}, false},
		{"malformed duration", []string{"--tick", "soon"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := ParseConfig("revealtour", tt.args, &stderr)
			if err == nil {
				t.Fatal("expected an error")
			}
			var configErr apperrors.ConfigError
			if got := errors.As(err, &configErr); got != tt.wantConfig {
				t.Errorf("errors.As(ConfigError) = %v, want %v (err: %v)", got, tt.wantConfig, err)
			}
			if stderr.Len() == 0 {
				t.Error("expected a diagnostic on the error writer")
			}
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	var stderr bytes.Buffer
	_, err := ParseConfig("revealtour", []string{"-h"}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("Usage: revealtour")) {
		t.Errorf("usage not printed:\n%s", stderr.String())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"TICK", "10ms")
	t.Setenv(EnvPrefix+"SPEED", "4")
	t.Setenv(EnvPrefix+"TOUR", "demo.toml")
	t.Setenv(EnvPrefix+"LOOP", "yes")
	t.Setenv(EnvPrefix+"VERBOSE", "1")
	t.Setenv(EnvPrefix+"MISSING", "arrow,help")
	t.Setenv(EnvPrefix+"HOVER_PERIOD", "not-a-duration")

	cfg, err := ParseConfig("revealtour", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := defaultConfig()
	want.Tick = 10 * time.Millisecond
	want.Speed = 4
	want.TourFile = "demo.toml"
	want.Loop = true
	want.Verbose = true
	want.Missing = []string{"arrow", "help"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFlagsTakePrecedenceOverEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"TICK", "10ms")
	t.Setenv(EnvPrefix+"QUIET", "true")
	t.Setenv(EnvPrefix+"TOUR", "env.yaml")

	cfg, err := ParseConfig("revealtour", []string{"--tick", "30ms", "--quiet=false", "-f", "flag.yaml"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Tick != 30*time.Millisecond {
		t.Errorf("Tick = %s, want the flag value 30ms", cfg.Tick)
	}
	if cfg.Quiet {
		t.Error("Quiet should keep the explicit flag value false")
	}
	if cfg.TourFile != "flag.yaml" {
		t.Errorf("TourFile = %q, want flag.yaml", cfg.TourFile)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"TRUE", false, true},
		{"yes", false, true},
		{"0", true, false},
		{"No", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
