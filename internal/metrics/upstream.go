package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(upstreamRequestsTotal, upstreamDuration)
}

// Upstream call outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeError        = "error"
	OutcomeUnconfigured = "unconfigured"
)

var (
	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zarbot_upstream_requests_total",
			Help: "Upstream provider calls by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zarbot_upstream_duration_seconds",
			Help:    "Upstream provider call latency.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"provider"},
	)
)

// ObserveUpstream records one completed upstream call.
func ObserveUpstream(provider, outcome string, elapsed time.Duration) {
	upstreamRequestsTotal.WithLabelValues(norm(provider), norm(outcome)).Inc()
	upstreamDuration.WithLabelValues(norm(provider)).Observe(elapsed.Seconds())
}

// IncUpstreamSkipped counts a call that was never attempted.
func IncUpstreamSkipped(provider, outcome string) {
	upstreamRequestsTotal.WithLabelValues(norm(provider), norm(outcome)).Inc()
}
