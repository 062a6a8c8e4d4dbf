package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// explicitFlags returns the names of the flags given on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// envOverride binds REVEALTOUR_<envKey> to the flags it stands in for. apply
// leaves the current value alone when the variable does not parse.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides lists every variable ParseConfig honours.
var envOverrides = []envOverride{
	// Duration overrides
	{"TICK", []string{"tick"}, func(c *AppConfig, v string) {
		c.Tick = parseDurationEnv(v, c.Tick)
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		c.Timeout = parseDurationEnv(v, c.Timeout)
	}},
	{"HOVER_PERIOD", []string{"hover-period"}, func(c *AppConfig, v string) {
		c.HoverPeriod = parseDurationEnv(v, c.HoverPeriod)
	}},

	// Numeric overrides
	{"SPEED", []string{"speed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Speed = parsed
		}
	}},

	// String overrides
	{"TOUR", []string{"tour", "f"}, func(c *AppConfig, v string) {
		c.TourFile = v
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) {
		c.Theme = v
	}},
	{"CONTINUOUS", []string{"continuous"}, func(c *AppConfig, v string) {
		c.Continuous = splitList(v)
	}},
	{"MISSING", []string{"missing"}, func(c *AppConfig, v string) {
		c.Missing = splitList(v)
	}},

	// Boolean overrides
	{"SIMULATE", []string{"simulate"}, func(c *AppConfig, v string) {
		c.Simulate = parseBoolEnv(v, c.Simulate)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"LOOP", []string{"loop"}, func(c *AppConfig, v string) {
		c.Loop = parseBoolEnv(v, c.Loop)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv accepts true/1/yes and false/0/no in any case and falls back
// to defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// parseDurationEnv parses values like "50ms" or "1m30s", returning
// defaultVal when the value is malformed.
func parseDurationEnv(val string, defaultVal time.Duration) time.Duration {
	if parsed, err := time.ParseDuration(val); err == nil {
		return parsed
	}
	return defaultVal
}

// applyEnvOverrides fills in values from the environment for every override
// whose flags were all left at their defaults, so flags beat the environment
// and the environment beats defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	given := explicitFlags(fs)
overrides:
	for _, o := range envOverrides {
		for _, name := range o.flags {
			if given[name] {
				continue overrides
			}
		}
		if val, ok := os.LookupEnv(EnvPrefix + o.envKey); ok && val != "" {
			o.apply(config, val)
		}
	}
}
