// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// envOverride declares a single environment variable override. Each entry
// maps an env key (without the HEXCALC_ prefix) to the CLI flag it
// corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, *string, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"OP", "op", func(c *AppConfig, _ *string, v string) { c.Operation = v }},
	{"OPERAND_A", "a", func(c *AppConfig, _ *string, v string) { c.OperandA = v }},
	{"OPERAND_B", "b", func(c *AppConfig, _ *string, v string) { c.OperandB = v }},
	{"BITS", "bits", func(_ *AppConfig, bitsList *string, v string) { *bitsList = v }},
	{"TIMEOUT", "timeout", func(c *AppConfig, _ *string, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"METRICS_ADDR", "metrics-addr", func(c *AppConfig, _ *string, v string) { c.MetricsAddr = v }},
	{"STRICT", "strict", func(c *AppConfig, _ *string, v string) { c.Strict = parseBoolEnv(v, c.Strict) }},
	{"QUIET", "quiet", func(c *AppConfig, _ *string, v string) { c.Quiet = parseBoolEnv(v, c.Quiet) }},
	{"VERBOSE", "verbose", func(c *AppConfig, _ *string, v string) { c.Verbose = parseBoolEnv(v, c.Verbose) }},
	{"TUI", "tui", func(c *AppConfig, _ *string, v string) { c.TUI = parseBoolEnv(v, c.TUI) }},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with HEXCALC_):
//   - OP, OPERAND_A, OPERAND_B, BITS, TIMEOUT, METRICS_ADDR,
//     STRICT, QUIET, VERBOSE, TUI
func applyEnvOverrides(cfg *AppConfig, bitsList *string, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, bitsList, val)
		}
	}
}
