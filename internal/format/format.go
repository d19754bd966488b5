// Package format holds presentation-free formatting helpers shared by the
// CLI and TUI layers.
package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display. It shows microseconds for
// durations under a millisecond and milliseconds for durations under a
// second; longer durations use the default representation. Short brute-force
// searches finish in microseconds, so the default rendering would be noise.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Attempts renders an attempt count with thousands separators for
// readability: 1234567 becomes "1,234,567".
func Attempts(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

// TruncateHex shortens a long hex string for terminal display, keeping the
// given number of characters at each edge.
func TruncateHex(s string, edges int) string {
	if len(s) <= 2*edges+3 {
		return s
	}
	return s[:edges] + "..." + s[len(s)-edges:]
}
