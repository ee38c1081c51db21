// Package metrics holds the Prometheus collectors for the catalog service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "monster_codex"

// Outcome labels
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

var (
	// upstreamFetches counts monster list fetches against the upstream API.
	// Labels: outcome (ok, error, canceled)
	upstreamFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "fetches_total",
		Help:      "Upstream monster list fetches by outcome",
	}, []string{"outcome"})

	// upstreamLatency measures upstream round trips.
	upstreamLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "latency_seconds",
		Help:      "Upstream monster list latency in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	// pageCacheLookups counts page cache lookups.
	// Labels: outcome (hit, miss, error)
	pageCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pagecache",
		Name:      "lookups_total",
		Help:      "Page cache lookups by outcome",
	}, []string{"outcome"})

	// aiLookups counts generative lookups.
	// Labels: provider, outcome (found, not_found, error)
	aiLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ai",
		Name:      "lookups_total",
		Help:      "AI monster lookups by provider and outcome",
	}, []string{"provider", "outcome"})

	// httpRequests measures API request durations.
	// Labels: route (chi route pattern), method, status
	httpRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)

// RecordUpstreamFetch records one upstream call
func RecordUpstreamFetch(outcome string, elapsed time.Duration) {
	upstreamFetches.WithLabelValues(outcome).Inc()
	upstreamLatency.Observe(elapsed.Seconds())
}

// RecordPageCacheLookup records a page cache hit, miss or error
func RecordPageCacheLookup(outcome string) {
	pageCacheLookups.WithLabelValues(outcome).Inc()
}

// RecordAILookup records the result of one generative lookup
func RecordAILookup(provider, outcome string) {
	aiLookups.WithLabelValues(provider, outcome).Inc()
}

// ObserveHTTPRequest records a finished API request
func ObserveHTTPRequest(route, method, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, status).Observe(elapsed.Seconds())
}
