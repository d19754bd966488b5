package search

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ncw/gmp"

	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/keygen/mocks"
	"github.com/agbru/hexcalc/internal/logging"
	"github.com/agbru/hexcalc/internal/metrics"
)

// newTestSearcher builds a Searcher with quiet logging and throwaway metrics.
func newTestSearcher(src *mocks.MockSource) *Searcher {
	logger := logging.NewStdLoggerAdapter(log.New(io.Discard, "", 0))
	return New(src, metrics.NopSearchMetrics(), logger)
}

// scriptedKeys programs the mock source to return the given values in
// sequence, repeating the last one forever.
func scriptedKeys(src *mocks.MockSource, bits int, values ...int64) {
	calls := 0
	src.EXPECT().Key(bits).DoAndReturn(func(int) (*gmp.Int, error) {
		v := values[len(values)-1]
		if calls < len(values) {
			v = values[calls]
		}
		calls++
		return gmp.NewInt(v), nil
	}).AnyTimes()
}

// TestSearcher_FindsKeyOnNthDraw verifies the attempt count: the first draw
// is the target, subsequent draws are candidates.
func TestSearcher_FindsKeyOnNthDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	// Target 0x05; two misses; then the match.
	scriptedKeys(src, 8, 0x05, 0x21, 0x3c, 0x05)

	results := newTestSearcher(src).Run(context.Background(), []int{8}, NullProgressReporter{}, io.Discard)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	res := results[0]
	if res.Err != nil {
		t.Fatalf("search failed: %v", res.Err)
	}
	if res.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", res.Attempts)
	}
	if res.TargetHex != "05" {
		t.Errorf("TargetHex = %q, want %q", res.TargetHex, "05")
	}
	if res.Bits != 8 {
		t.Errorf("Bits = %d, want 8", res.Bits)
	}
}

// TestSearcher_EntropyFailure verifies that a failing source surfaces a
// typed SearchError.
func TestSearcher_EntropyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cause := errors.New("entropy exhausted")
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Key(16).Return(nil, cause)

	results := newTestSearcher(src).Run(context.Background(), []int{16}, NullProgressReporter{}, io.Discard)

	var searchErr apperrors.SearchError
	if !errors.As(results[0].Err, &searchErr) {
		t.Fatalf("error should be SearchError, got %v", results[0].Err)
	}
	if searchErr.Bits != 16 {
		t.Errorf("SearchError.Bits = %d, want 16", searchErr.Bits)
	}
	if !errors.Is(results[0].Err, cause) {
		t.Error("SearchError should wrap the entropy failure")
	}
}

// TestSearcher_HonorsContextCancellation verifies that a search that never
// matches terminates when the context expires.
func TestSearcher_HonorsContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	// Target 0x05, candidates forever 0x06: no match possible.
	scriptedKeys(src, 8, 0x05, 0x06)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan []Result, 1)
	go func() {
		done <- newTestSearcher(src).Run(ctx, []int{8}, NullProgressReporter{}, io.Discard)
	}()

	select {
	case results := <-done:
		if results[0].Err == nil {
			t.Fatal("expected a cancellation error")
		}
		if !apperrors.IsContextError(results[0].Err) {
			t.Errorf("error should be a context error, got %v", results[0].Err)
		}
		if results[0].Attempts == 0 {
			t.Error("some attempts should have been made before cancellation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("search did not stop after context expiry")
	}
}

// recordingReporter captures every update for assertion.
type recordingReporter struct {
	mu      sync.Mutex
	updates []Update
}

func (r *recordingReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan Update, _ int, _ io.Writer) {
	defer wg.Done()
	for u := range updates {
		r.mu.Lock()
		r.updates = append(r.updates, u)
		r.mu.Unlock()
	}
}

// TestSearcher_ReportsTerminalUpdate verifies the Found update is published
// with the final attempt count.
func TestSearcher_ReportsTerminalUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	scriptedKeys(src, 8, 0x05, 0x06, 0x05)

	reporter := &recordingReporter{}
	newTestSearcher(src).Run(context.Background(), []int{8}, reporter, io.Discard)

	if len(reporter.updates) == 0 {
		t.Fatal("no updates received")
	}
	last := reporter.updates[len(reporter.updates)-1]
	if !last.Found {
		t.Error("terminal update should have Found set")
	}
	if last.Attempts != 2 {
		t.Errorf("terminal Attempts = %d, want 2", last.Attempts)
	}
}

// TestSearcher_RunPreservesInputOrder verifies results line up with the
// requested bit lengths even though searches run concurrently.
func TestSearcher_RunPreservesInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	scriptedKeys(src, 8, 0x05, 0x05)
	scriptedKeys(src, 16, 0x1234, 0x1234)

	results := newTestSearcher(src).Run(context.Background(), []int{8, 16}, NullProgressReporter{}, io.Discard)

	if results[0].Bits != 8 || results[1].Bits != 16 {
		t.Errorf("result order = [%d, %d], want [8, 16]", results[0].Bits, results[1].Bits)
	}
}

// TestProgressReporterFunc verifies the function adapter drains and
// delegates.
func TestProgressReporterFunc(t *testing.T) {
	var seen int
	f := ProgressReporterFunc(func(wg *sync.WaitGroup, updates <-chan Update, _ int, _ io.Writer) {
		defer wg.Done()
		for range updates {
			seen++
		}
	})

	updates := make(chan Update, 2)
	updates <- Update{}
	updates <- Update{}
	close(updates)

	var wg sync.WaitGroup
	wg.Add(1)
	f.DisplayProgress(&wg, updates, 1, io.Discard)
	wg.Wait()

	if seen != 2 {
		t.Errorf("seen = %d, want 2", seen)
	}
}
