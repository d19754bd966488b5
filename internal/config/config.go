// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over HEXCALC_-prefixed environment
// variables, which take priority over defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/hexcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "HEXCALC_"

// DefaultTimeout bounds a whole run. The demo's larger bit lengths never
// terminate on their own; the timeout is what ends them.
const DefaultTimeout = 1 * time.Minute

// DefaultBitLengths are the key sizes the demo searches, smallest first.
// Expected brute-force cost doubles per bit: everything past the first few
// entries exists to demonstrate futility, not to finish.
var DefaultBitLengths = []int{8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096}

// Operations the expression mode accepts.
var validOperations = []string{"add", "sub", "mul", "mod", "xor", "and", "or", "inv", "shl", "shr"}

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// Operation selects expression mode when non-empty: one of add, sub,
	// mul, mod, xor, and, or, inv, shl, shr.
	Operation string
	// OperandA is the left (or sole) hex operand for expression mode.
	OperandA string
	// OperandB is the right hex operand for binary operations.
	OperandB string
	// ShiftBits is the bit distance for shl/shr.
	ShiftBits uint

	// BitLengths are the key sizes demo mode searches.
	BitLengths []int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Strict enables the abort-on-underflow subtraction.
	Strict bool

	// Quiet suppresses progress output.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// TUI launches the interactive dashboard for demo mode.
	TUI bool
	// MetricsAddr, when non-empty, serves Prometheus metrics on that
	// address for the duration of the run.
	MetricsAddr string
}

// IsExpression reports whether the configuration selects expression mode.
func (c AppConfig) IsExpression() bool { return c.Operation != "" }

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result. flag.ErrHelp is returned unchanged so callers can exit cleanly on
// --help.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		BitLengths: append([]int(nil), DefaultBitLengths...),
		Timeout:    DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var bitsList string
	fs.StringVar(&cfg.Operation, "op", "", "expression mode operation (add|sub|mul|mod|xor|and|or|inv|shl|shr)")
	fs.StringVar(&cfg.OperandA, "a", "", "left hex operand")
	fs.StringVar(&cfg.OperandB, "b", "", "right hex operand")
	fs.UintVar(&cfg.ShiftBits, "n", 0, "shift distance in bits (shl/shr)")
	fs.StringVar(&bitsList, "bits", "", "comma-separated key bit lengths for demo mode")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "overall run timeout")
	fs.BoolVar(&cfg.Strict, "strict", false, "abort on subtraction underflow instead of reporting an error")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.TUI, "tui", false, "interactive dashboard for demo mode")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, &bitsList, fs)

	if bitsList != "" {
		lengths, err := parseBitLengths(bitsList)
		if err != nil {
			return AppConfig{}, err
		}
		cfg.BitLengths = lengths
	}

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// parseBitLengths parses a comma-separated list of positive bit lengths,
// sorted ascending with duplicates removed.
func parseBitLengths(list string) ([]int, error) {
	seen := make(map[int]bool)
	var lengths []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, apperrors.NewConfigError("invalid bit length %q", part)
		}
		if !seen[n] {
			seen[n] = true
			lengths = append(lengths, n)
		}
	}
	if len(lengths) == 0 {
		return nil, apperrors.NewConfigError("bit length list is empty")
	}
	sort.Ints(lengths)
	return lengths, nil
}

// Validate checks cross-field consistency for a parsed configuration.
func Validate(cfg AppConfig) error {
	if cfg.Operation != "" {
		if !isValidOperation(cfg.Operation) {
			return apperrors.NewConfigError("unknown operation %q (valid: %s)",
				cfg.Operation, strings.Join(validOperations, ", "))
		}
		if cfg.OperandA == "" {
			return apperrors.ValidationError{Field: "a", Message: "expression mode needs a left operand"}
		}
		switch cfg.Operation {
		case "add", "sub", "mul", "mod", "xor", "and", "or":
			if cfg.OperandB == "" {
				return apperrors.ValidationError{
					Field:   "b",
					Message: fmt.Sprintf("operation %q needs a right operand", cfg.Operation),
				}
			}
		case "shl", "shr":
			if cfg.ShiftBits == 0 {
				return apperrors.ValidationError{Field: "n", Message: "shift operations need -n > 0"}
			}
		}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if cfg.TUI && cfg.Quiet {
		return apperrors.NewConfigError("-tui and -quiet are mutually exclusive")
	}
	return nil
}

// isValidOperation reports whether op is an expression-mode operation.
func isValidOperation(op string) bool {
	for _, v := range validOperations {
		if op == v {
			return true
		}
	}
	return false
}
