package format

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{999 * time.Microsecond, "999µs"},
		{250 * time.Millisecond, "250ms"},
		{2 * time.Second, "2s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestAttempts(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := Attempts(tt.n); got != tt.want {
			t.Errorf("Attempts(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTruncateHex(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		if got := TruncateHex("abcdef", 4); got != "abcdef" {
			t.Errorf("TruncateHex = %q", got)
		}
	})

	t.Run("long strings keep both edges", func(t *testing.T) {
		got := TruncateHex("0123456789abcdef0123456789abcdef", 4)
		if got != "0123...cdef" {
			t.Errorf("TruncateHex = %q, want %q", got, "0123...cdef")
		}
	})
}
