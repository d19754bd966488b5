package search

import (
	"io"
	"sync"
)

// Update is one progress notification from a running search.
type Update struct {
	// Index identifies the search within the current run (stable ordering
	// for display).
	Index int
	// Bits is the key bit length being searched.
	Bits int
	// Attempts is the cumulative number of keys drawn so far.
	Attempts uint64
	// Found reports whether this update is the terminal "key found" event.
	Found bool
}

// ProgressReporter defines the interface for displaying search progress.
// It decouples the search layer from the presentation layer: implementations
// render spinners, counters or TUI rows while this package only coordinates
// the brute-force loops.
type ProgressReporter interface {
	// DisplayProgress consumes updates until the channel is closed. It is
	// run in its own goroutine and must call wg.Done on return.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan Update, numSearches int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan Update, numSearches int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan Update, numSearches int, out io.Writer) {
	f(wg, updates, numSearches, out)
}

// NullProgressReporter drains the update channel without displaying
// anything. Useful for quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
		// Drain silently.
	}
}
