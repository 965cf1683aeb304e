// Package metrics defines the Prometheus collectors shared across the
// service. Collectors are registered with the default registerer and served
// from the HTTP metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ChecksTotal counts identifier checks by query type and outcome
	// (ok, degraded, invalid).
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leakwatch",
		Name:      "checks_total",
		Help:      "Identifier checks performed, by query type and outcome.",
	}, []string{"type", "outcome"})

	// CheckDuration observes end-to-end check latency.
	CheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "leakwatch",
		Name:      "check_duration_seconds",
		Help:      "End-to-end identifier check latency.",
		Buckets:   DefaultBuckets,
	})

	// SourceErrorsTotal counts upstream source failures by source name.
	SourceErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leakwatch",
		Name:      "source_errors_total",
		Help:      "Upstream source failures, by source.",
	}, []string{"source"})

	// MonitorCyclesTotal counts completed monitoring cycles by kind.
	MonitorCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leakwatch",
		Name:      "monitor_cycles_total",
		Help:      "Completed monitoring cycles, by kind.",
	}, []string{"kind"})

	// NotificationsSentTotal counts alerts delivered, by notification kind.
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leakwatch",
		Name:      "notifications_sent_total",
		Help:      "Alerts delivered to owners, by notification kind.",
	}, []string{"kind"})
)
