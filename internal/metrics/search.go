package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// SearchMetrics holds the Prometheus instruments for the brute-force key
// search. Attempts are counted per key bit length so the exponential cost
// growth is visible across series.
type SearchMetrics struct {
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
	found    *prometheus.CounterVec
}

// NewSearchMetrics creates the search instruments and registers them with
// the given registerer.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	m := &SearchMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hexcalc_search_attempts_total",
			Help: "Random keys drawn while brute-forcing, per key bit length.",
		}, []string{"bits"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "hexcalc_search_duration_seconds",
			Help: "Wall time to find a matching key, per key bit length.",
			// Brute-force times span from microseconds (8 bits) to
			// effectively unbounded; wide exponential buckets.
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"bits"}),
		found: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hexcalc_search_found_total",
			Help: "Completed searches that found the target key, per bit length.",
		}, []string{"bits"}),
	}
	reg.MustRegister(m.attempts, m.duration, m.found)
	return m
}

// AddAttempts records a batch of drawn keys for the given bit length.
func (m *SearchMetrics) AddAttempts(bits int, n uint64) {
	m.attempts.WithLabelValues(strconv.Itoa(bits)).Add(float64(n))
}

// ObserveFound records a completed search.
func (m *SearchMetrics) ObserveFound(bits int, seconds float64) {
	label := strconv.Itoa(bits)
	m.duration.WithLabelValues(label).Observe(seconds)
	m.found.WithLabelValues(label).Inc()
}

// NopSearchMetrics returns instruments bound to a throwaway registry, for
// callers that do not export metrics.
func NopSearchMetrics() *SearchMetrics {
	return NewSearchMetrics(prometheus.NewRegistry())
}
