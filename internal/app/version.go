package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, injected at link time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// HasVersionFlag reports whether the argument list requests version output.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes the build information to the given writer.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "hexcalc %s (commit %s, built %s, %s)\n",
		Version, Commit, Date, runtime.Version())
}
