// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fooddelivery"

// Claim outcomes recorded by ClaimOutcomes.
const (
	ClaimSucceeded      = "claimed"
	ClaimAlreadyClaimed = "already_claimed"
	ClaimCourierBusy    = "courier_busy"
	ClaimNotFound       = "not_found"
	ClaimFailed         = "error"
)

type ServerMetrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	ClaimOutcomes *prometheus.CounterVec
	OutboxRelayed prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewServerMetrics registers the collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() so registrations do not collide.
func NewServerMetrics(reg *prometheus.Registry) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	claims := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatch",
		Name:      "claims_total",
		Help:      "Courier claim attempts by outcome.",
	}, []string{"outcome"})
	relayed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "outbox",
		Name:      "relayed_total",
		Help:      "Outbox messages published to the broker.",
	})

	reg.MustRegister(requests, latency, claims, relayed)
	return &ServerMetrics{
		Requests:      requests,
		LatencyMS:     latency,
		ClaimOutcomes: claims,
		OutboxRelayed: relayed,
		gatherer:      reg,
	}
}

// Handler serves the registry the metrics were registered on.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
