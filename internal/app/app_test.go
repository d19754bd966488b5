package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ncw/gmp"

	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/search"
)

// fixedSource always returns the same key for a given bit length, so every
// search finds its target on the first draw.
type fixedSource struct{}

func (fixedSource) Key(bits int) (*gmp.Int, error) {
	return gmp.NewInt(int64(bits)), nil
}

// failingSource simulates an entropy failure.
type failingSource struct{}

func (failingSource) Key(bits int) (*gmp.Int, error) {
	return nil, fmt.Errorf("entropy exhausted")
}

func newTestApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"hexcalc"}, args...), &errBuf, WithSource(fixedSource{}))
	if err != nil {
		t.Fatalf("New(%v) error: %v\n%s", args, err, errBuf.String())
	}
	return a, &errBuf
}

func TestNewParsesExpressionArguments(t *testing.T) {
	a, _ := newTestApp(t, "-op", "add", "-a", "ff", "-b", "1")
	if !a.Config.IsExpression() {
		t.Fatal("expected expression mode")
	}
	if a.Config.OperandA != "ff" || a.Config.OperandB != "1" {
		t.Errorf("operands = %q, %q", a.Config.OperandA, a.Config.OperandB)
	}
}

func TestNewReturnsHelpError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"hexcalc", "-h"}, &errBuf)
	if !IsHelpError(err) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want wrapped flag.ErrHelp", err)
	}
}

func TestNewReturnsConfigError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"hexcalc", "-op", "frobnicate", "-a", "ff"}, &errBuf)
	if err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if !IsConfigError(err) {
		t.Errorf("err = %v, want ConfigError", err)
	}
}

func TestRunExpressionOperations(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"-op", "add", "-a", "ff", "-b", "1", "-quiet"}, "100"},
		{"sub", []string{"-op", "sub", "-a", "100", "-b", "1", "-quiet"}, "0ff"},
		{"mul", []string{"-op", "mul", "-a", "f", "-b", "f", "-quiet"}, "e1"},
		{"mod", []string{"-op", "mod", "-a", "ff", "-b", "10", "-quiet"}, "0f"},
		{"xor", []string{"-op", "xor", "-a", "ff", "-b", "0f", "-quiet"}, "f0"},
		{"and", []string{"-op", "and", "-a", "ff", "-b", "0f", "-quiet"}, "0f"},
		{"or", []string{"-op", "or", "-a", "f0", "-b", "0f", "-quiet"}, "ff"},
		{"shl", []string{"-op", "shl", "-a", "f", "-n", "4", "-quiet"}, "f0"},
		{"shr", []string{"-op", "shr", "-a", "f0", "-n", "4", "-quiet"}, "f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, errBuf := newTestApp(t, tt.args...)
			var out bytes.Buffer
			code := a.Run(context.Background(), &out)
			if code != apperrors.ExitSuccess {
				t.Fatalf("exit code = %d, stderr: %s", code, errBuf.String())
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunExpressionInvPreservesWordElements(t *testing.T) {
	a, _ := newTestApp(t, "-op", "inv", "-a", "0f", "-quiet")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	// ^0x0 and ^0xF over full 32-bit words.
	if got := strings.TrimSpace(out.String()); got != "fffffffffffffff0" {
		t.Errorf("output = %q, want fffffffffffffff0", got)
	}
}

func TestRunExpressionUnderflow(t *testing.T) {
	t.Run("default mode returns the underflow exit code", func(t *testing.T) {
		a, errBuf := newTestApp(t, "-op", "sub", "-a", "1", "-b", "ff", "-quiet")
		var out bytes.Buffer
		code := a.Run(context.Background(), &out)
		if code != apperrors.ExitErrorUnderflow {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorUnderflow)
		}
		if !strings.Contains(errBuf.String(), "underflow") {
			t.Errorf("stderr = %q, want underflow message", errBuf.String())
		}
	})

	t.Run("strict mode recovers the abort", func(t *testing.T) {
		a, errBuf := newTestApp(t, "-op", "sub", "-a", "1", "-b", "ff", "-strict", "-quiet")
		var out bytes.Buffer
		code := a.Run(context.Background(), &out)
		if code != apperrors.ExitErrorUnderflow {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorUnderflow)
		}
		if errBuf.Len() == 0 {
			t.Error("expected an error message on stderr")
		}
	})
}

func TestRunExpressionModUnderflowsBelowModulus(t *testing.T) {
	// The naive reduction's initial subtraction underflows when the
	// dividend is smaller than the modulus.
	a, _ := newTestApp(t, "-op", "mod", "-a", "1", "-b", "ff", "-quiet")
	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitErrorUnderflow {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorUnderflow)
	}
}

func TestRunSearchFindsAllKeys(t *testing.T) {
	a, errBuf := newTestApp(t, "-bits", "8,16", "-timeout", "10s", "-quiet")
	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf.String())
	}
}

func TestRunSearchVerboseOutput(t *testing.T) {
	a, _ := newTestApp(t, "-bits", "8", "-timeout", "10s")
	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"Key Search Configuration", "Search Summary", "✓ Found"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunSearchEntropyFailure(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"hexcalc", "-bits", "8", "-quiet"}, &errBuf, WithSource(failingSource{}))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
}

func TestResultsExitCode(t *testing.T) {
	tests := []struct {
		name    string
		results []search.Result
		want    int
	}{
		{"all found", []search.Result{{Bits: 8}, {Bits: 16}}, apperrors.ExitSuccess},
		{"generic failure", []search.Result{{Bits: 8, Err: errors.New("boom")}}, apperrors.ExitErrorGeneric},
		{"timeout wins over generic", []search.Result{
			{Bits: 8, Err: errors.New("boom")},
			{Bits: 16, Err: context.DeadlineExceeded},
		}, apperrors.ExitErrorTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resultsExitCode(tt.results); got != tt.want {
				t.Errorf("resultsExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"-version"}, true},
		{[]string{"--version"}, true},
		{[]string{"-V"}, true},
		{[]string{"-op", "add"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "hexcalc") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestRunSearchHonorsTimeout(t *testing.T) {
	// A 4096-bit search against crypto randomness cannot finish; the
	// timeout must abort it with the timeout exit code.
	var errBuf bytes.Buffer
	a, err := New([]string{"hexcalc", "-bits", "64", "-timeout", "50ms", "-quiet"}, &errBuf)
	if err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("run took %s, timeout not honored", elapsed)
	}
}
