// Package server exposes the application's Prometheus metrics over HTTP for
// observing long-running brute-force searches.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the server's own instruments with the registry that all
// application metrics (search counters included) register against.
type Metrics struct {
	registry       *prometheus.Registry
	handler        http.Handler
	activeRequests prometheus.Gauge
	totalRequests  prometheus.Counter
}

// NewMetrics creates a registry with Go runtime and process collectors plus
// the HTTP request instruments, and a handler rendering it.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hexcalc_active_requests",
			Help: "HTTP requests currently being served.",
		}),
		totalRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hexcalc_requests_total",
			Help: "HTTP requests served since start.",
		}),
	}
	registry.MustRegister(m.activeRequests, m.totalRequests)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Registry returns the registerer application metrics should use so they
// appear on the /metrics endpoint.
func (m *Metrics) Registry() prometheus.Registerer {
	return m.registry
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.totalRequests.Inc()
}

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// WritePrometheus renders the registry in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
