// Package search runs the demo brute-force key search: for each configured
// bit length it draws a random target key, then draws random keys until one
// matches, counting attempts. Equality goes through the hex-digit engine so
// the demo exercises the same comparison path as the library API. The
// expected attempt count doubles per bit, so anything beyond a few dozen
// bits only terminates via context timeout; that is the demonstration.
package search

import (
	"context"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/hexcalc/internal/bigint"
	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/keygen"
	"github.com/agbru/hexcalc/internal/logging"
	"github.com/agbru/hexcalc/internal/metrics"
)

const (
	// progressBatch is the number of draws between progress updates and
	// context checks. Checking every draw measurably slows the hot loop.
	progressBatch = 1024

	// UpdateBufferMultiplier sizes the update channel per search, so slow
	// consumers do not stall the brute-force loops.
	UpdateBufferMultiplier = 5

	tracerName = "hexcalc/search"
)

// Result is the outcome of one brute-force search.
type Result struct {
	// Bits is the key bit length searched.
	Bits int
	// TargetHex is the fixed-width hex rendering of the target key.
	TargetHex string
	// Attempts is the number of keys drawn, including the matching one.
	Attempts uint64
	// Duration is the wall time spent searching.
	Duration time.Duration
	// Err is non-nil if the search was aborted (entropy failure,
	// cancellation, timeout).
	Err error
}

// Searcher coordinates brute-force searches over a key source.
type Searcher struct {
	source  keygen.Source
	metrics *metrics.SearchMetrics
	logger  logging.Logger
}

// New creates a Searcher. A nil metrics argument disables metric export; a
// nil logger falls back to the default stderr logger.
func New(source keygen.Source, m *metrics.SearchMetrics, logger logging.Logger) *Searcher {
	if m == nil {
		m = metrics.NopSearchMetrics()
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Searcher{source: source, metrics: m, logger: logger}
}

// Run executes one search per bit length concurrently and returns the
// results in input order. Progress updates are delivered to the reporter
// until all searches finish; cancellation of ctx aborts the remaining loops.
func (s *Searcher) Run(ctx context.Context, bitLengths []int, reporter ProgressReporter, out io.Writer) []Result {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]Result, len(bitLengths))
	updates := make(chan Update, len(bitLengths)*UpdateBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, updates, len(bitLengths), out)

	for i, bits := range bitLengths {
		idx, bits := i, bits
		g.Go(func() error {
			results[idx] = s.searchOne(ctx, idx, bits, updates)
			return nil
		})
	}

	g.Wait()
	close(updates)
	displayWg.Wait()

	return results
}

// searchOne draws a target key for the given bit length, then loops drawing
// candidates until one compares equal through the engine.
func (s *Searcher) searchOne(ctx context.Context, idx, bits int, updates chan<- Update) Result {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "search.bruteforce",
		trace.WithAttributes(attribute.Int("key.bits", bits)))
	defer span.End()

	start := time.Now()
	result := Result{Bits: bits}

	targetKey, err := s.source.Key(bits)
	if err != nil {
		result.Err = apperrors.SearchError{Bits: bits, Cause: err}
		return result
	}
	result.TargetHex = keygen.HexKey(targetKey, bits)
	target := bigint.New(result.TargetHex)

	s.logger.Info("search started",
		logging.Int("bits", bits),
		logging.String("target", result.TargetHex),
		logging.String("keyspace", keygen.KeySpace(uint(bits)).String()))

	var attempts, sinceReport uint64
	for {
		candidate, err := s.source.Key(bits)
		if err != nil {
			result.Err = apperrors.SearchError{Bits: bits, Cause: err}
			break
		}
		attempts++
		sinceReport++

		if target.Equal(bigint.New(keygen.HexKey(candidate, bits))) {
			s.metrics.AddAttempts(bits, sinceReport)
			s.metrics.ObserveFound(bits, time.Since(start).Seconds())
			span.SetAttributes(attribute.Int64("search.attempts", int64(attempts)))
			updates <- Update{Index: idx, Bits: bits, Attempts: attempts, Found: true}
			break
		}

		if sinceReport >= progressBatch {
			s.metrics.AddAttempts(bits, sinceReport)
			sinceReport = 0
			updates <- Update{Index: idx, Bits: bits, Attempts: attempts}
			if err := ctx.Err(); err != nil {
				result.Err = apperrors.WrapError(err, "search for %d-bit key aborted", bits)
				break
			}
		}
	}

	result.Attempts = attempts
	result.Duration = time.Since(start)

	if result.Err != nil {
		s.logger.Error("search aborted", result.Err, logging.Int("bits", bits),
			logging.Uint64("attempts", attempts))
	} else {
		s.logger.Info("key found", logging.Int("bits", bits),
			logging.Uint64("attempts", attempts),
			logging.Float64("seconds", result.Duration.Seconds()))
	}
	return result
}
