package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/hexcalc/internal/format"
	"github.com/agbru/hexcalc/internal/search"
	"github.com/agbru/hexcalc/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	// 200ms keeps the terminal readable without burning cycles on redraws.
	ProgressRefreshRate = 200 * time.Millisecond

	// TargetDisplayEdges specifies the number of hex characters to display
	// at the beginning and end of a truncated target key.
	TargetDisplayEdges = 12
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the DisplayProgress function to be decoupled from a specific
// spinner implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// CLIProgressReporter implements search.ProgressReporter for terminal output.
// It renders a spinner whose suffix aggregates the attempt counters of all
// concurrent searches, and prints a line whenever one of them finds its key.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements search.ProgressReporter.
var _ search.ProgressReporter = CLIProgressReporter{}

// DisplayProgress consumes search updates until the channel is closed.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan search.Update, numSearches int, out io.Writer) {
	DisplayProgress(wg, updates, numSearches, out)
}

// DisplayProgress renders a spinner with the aggregated state of all running
// searches. Each terminal "found" update produces its own line so completed
// searches stay visible while the remaining ones keep spinning.
//
// Parameters:
//   - wg: The wait group to signal on return.
//   - updates: The channel of progress updates, closed by the producer.
//   - numSearches: The number of concurrent searches being tracked.
//   - out: The writer for progress output.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan search.Update, numSearches int, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	attempts := make([]uint64, numSearches)
	remaining := numSearches

	for u := range updates {
		if u.Index >= 0 && u.Index < len(attempts) {
			attempts[u.Index] = u.Attempts
		}
		if u.Found {
			remaining--
			sp.Stop()
			fmt.Fprintf(out, "\r%s✓%s %d-bit key found after %s attempts\n",
				ui.ColorSuccess(), ui.ColorReset(), u.Bits, format.Attempts(u.Attempts))
			if remaining > 0 {
				sp.Start()
			}
		}
		sp.UpdateSuffix(fmt.Sprintf(" %d/%d searches running, %s keys tried",
			remaining, numSearches, format.Attempts(totalAttempts(attempts))))
	}
}

func totalAttempts(attempts []uint64) uint64 {
	var total uint64
	for _, a := range attempts {
		total += a
	}
	return total
}
