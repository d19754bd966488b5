package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/hexcalc/internal/cli"
	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/logging"
	"github.com/agbru/hexcalc/internal/metrics"
	"github.com/agbru/hexcalc/internal/search"
	"github.com/agbru/hexcalc/internal/server"
	"github.com/agbru/hexcalc/internal/tui"
)

// shutdownGrace bounds how long the metrics server may take to drain.
const shutdownGrace = 5 * time.Second

// runSearch executes the brute-force key search for every configured bit
// length and prints the summary table.
func (a *Application) runSearch(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	searcher, shutdown := a.buildSearcher()
	defer shutdown()

	if !a.Config.Quiet {
		cli.PrintRunHeader(a.Config, out)
	}

	var reporter search.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		reporter = search.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{}
	}

	mem := metrics.NewMemoryCollector()
	results := searcher.Run(ctx, a.Config.BitLengths, reporter, progressOut)
	snap := mem.Snapshot()

	a.Logger.Debug("search run finished",
		logging.Uint64("heap_alloc", snap.HeapAlloc),
		logging.Uint64("gc_pause_ns", snap.PauseTotalNs))

	if !a.Config.Quiet {
		cli.PresentSearchResults(results, out)
	}
	return resultsExitCode(results)
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	searcher, shutdown := a.buildSearcher()
	defer shutdown()

	return tui.Run(ctx, a.Config, searcher, Version)
}

// buildSearcher assembles the searcher and, when configured, the metrics
// server exposing its counters. The returned shutdown function stops the
// server; it is a no-op when no server was started.
func (a *Application) buildSearcher() (*search.Searcher, func()) {
	shutdown := func() {}

	var reg prometheus.Registerer = prometheus.NewRegistry()
	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, a.Logger)
		reg = srv.Registry()
		go func() {
			if err := srv.Start(); err != nil {
				a.Logger.Error("metrics server failed", err,
					logging.String("addr", a.Config.MetricsAddr))
			}
		}()
		shutdown = func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				a.Logger.Error("metrics server shutdown failed", err)
			}
		}
	}

	sm := metrics.NewSearchMetrics(reg)
	return search.New(a.Source, sm, a.Logger), shutdown
}

// resultsExitCode maps a result set to a process exit code. Timeouts and
// cancellations take precedence over generic failures so scripted callers
// can distinguish them.
func resultsExitCode(results []search.Result) int {
	code := apperrors.ExitSuccess
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		if apperrors.IsContextError(res.Err) {
			return apperrors.ExitErrorTimeout
		}
		code = apperrors.ExitErrorGeneric
	}
	return code
}
