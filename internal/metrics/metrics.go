// Package metrics exposes the Prometheus collectors for the vend pipeline:
// counts and latency by provider and response code, plus rate-limit and
// requery-worker activity, so an operator can see where a vend attempt is
// spending its time or failing without reading transaction rows.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every Prometheus collector registered for this gateway.
type Metrics struct {
	VendRequestsTotal   *prometheus.CounterVec
	VendDuration        *prometheus.HistogramVec
	ProviderCallsTotal  *prometheus.CounterVec
	ProviderCallLatency *prometheus.HistogramVec
	RateLimitHitsTotal  *prometheus.CounterVec
	RequeryAttemptTotal *prometheus.CounterVec
	SweepReversedTotal  prometheus.Counter
}

// New creates and registers every collector against registry. A nil
// registry falls back to prometheus.DefaultRegisterer.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		VendRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vas_gateway",
			Name:      "vend_requests_total",
			Help:      "Vend attempts by category and terminal response code.",
		}, []string{"category", "response_code"}),

		VendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vas_gateway",
			Name:      "vend_duration_seconds",
			Help:      "End-to-end vend() latency, from idempotency check through dispatch.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"category"}),

		ProviderCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vas_gateway",
			Name:      "provider_calls_total",
			Help:      "C5 dispatch calls by provider code and normalized response code.",
		}, []string{"provider_code", "response_code"}),

		ProviderCallLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vas_gateway",
			Name:      "provider_call_duration_seconds",
			Help:      "Latency of a single C4 adapter call, by provider code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider_code"}),

		RateLimitHitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vas_gateway",
			Name:      "rate_limit_hits_total",
			Help:      "Requests rejected by the C6 rate limiter, by rule group.",
		}, []string{"group"}),

		RequeryAttemptTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vas_gateway",
			Name:      "requery_attempts_total",
			Help:      "C8 async requery attempts by outcome.",
		}, []string{"outcome"}),

		SweepReversedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "vas_gateway",
			Name:      "sweep_reversed_total",
			Help:      "Transactions reversed by the timeout sweeper.",
		}),
	}
}

// ObserveVendDuration records the wall-clock cost of a vend() call.
func (m *Metrics) ObserveVendDuration(category string, start time.Time) {
	if m == nil {
		return
	}
	m.VendDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
}
