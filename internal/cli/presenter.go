package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/agbru/hexcalc/internal/config"
	"github.com/agbru/hexcalc/internal/format"
	"github.com/agbru/hexcalc/internal/keygen"
	"github.com/agbru/hexcalc/internal/search"
	"github.com/agbru/hexcalc/internal/ui"
)

// PrintRunHeader displays the configuration of a demo run: the key sizes to
// search, the key space of each, the timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintRunHeader(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Key Search Configuration ---\n")
	fmt.Fprintf(out, "Searching %s%d%s key sizes with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), len(cfg.BitLengths), ui.ColorReset(),
		ui.ColorWarning(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorPrimary(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorPrimary(), runtime.Version(), ui.ColorReset())
	for _, bits := range cfg.BitLengths {
		fmt.Fprintf(out, "  %4d-bit keys: %s possibilities\n", bits, keygen.KeySpace(uint(bits)).String())
	}
	fmt.Fprintf(out, "\n--- Starting Search ---\n")
}

// PresentSearchResults displays the summary table for a demo run with key
// size, truncated target, attempt count, duration, and status per search.
// Uses manual padding to correctly handle ANSI color codes.
func PresentSearchResults(results []search.Result, out io.Writer) {
	fmt.Fprintf(out, "\n--- Search Summary ---\n")

	maxTargetLen := 6 // "Target" header length
	maxDurationLen := 8
	maxAttemptsLen := 8
	for _, res := range results {
		target := format.TruncateHex(res.TargetHex, TargetDisplayEdges)
		if len(target) > maxTargetLen {
			maxTargetLen = len(target)
		}
		if d := format.Duration(res.Duration); len(d) > maxDurationLen {
			maxDurationLen = len(d)
		}
		if a := format.Attempts(res.Attempts); len(a) > maxAttemptsLen {
			maxAttemptsLen = len(a)
		}
	}

	fmt.Fprintf(out, "%sBits%s   %sTarget%s%s   %sAttempts%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxTargetLen-6),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxAttemptsLen-8),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s✗ %v%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✓ Found%s", ui.ColorSuccess(), ui.ColorReset())
		}
		target := format.TruncateHex(res.TargetHex, TargetDisplayEdges)
		attempts := format.Attempts(res.Attempts)
		duration := format.Duration(res.Duration)
		fmt.Fprintf(out, "%s%4d%s   %s%s   %s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Bits, ui.ColorReset(),
			target, padRight("", maxTargetLen-len(target)),
			ui.ColorBold(), attempts, ui.ColorReset(), padRight("", maxAttemptsLen-len(attempts)),
			ui.ColorWarning(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns s followed by enough spaces to add the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentExpressionResult displays the outcome of a single engine operation.
// Long results are truncated unless verbose output is requested.
//
// Parameters:
//   - op: The operation name (add, xor, shl, ...).
//   - resultHex: The hex rendering of the result.
//   - duration: How long the evaluation took.
//   - verbose: When true, the full result is printed without truncation.
//   - out: The writer for standard output.
func PresentExpressionResult(op, resultHex string, duration time.Duration, verbose bool, out io.Writer) {
	display := resultHex
	if !verbose {
		display = format.TruncateHex(resultHex, TargetDisplayEdges)
	}
	if display == "" {
		display = "(empty)"
	}
	fmt.Fprintf(out, "%s%s%s = %s%s%s  (%s%s%s)\n",
		ui.ColorPrimary(), op, ui.ColorReset(),
		ui.ColorBold(), display, ui.ColorReset(),
		ui.ColorWarning(), format.Duration(duration), ui.ColorReset())
	if !verbose && display != resultHex {
		fmt.Fprintf(out, "  (%d hex chars, truncated; use -verbose for the full value)\n", len(resultHex))
	}
}

// DisplayQuietResult outputs a result in quiet mode: the bare hex value on a
// single line, suitable for scripting.
func DisplayQuietResult(resultHex string, out io.Writer) {
	fmt.Fprintln(out, resultHex)
}
