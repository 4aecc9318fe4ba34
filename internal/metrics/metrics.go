// Package metrics defines the Prometheus instruments of the export endpoint.
//
// Instruments live on a private registry so tests and multiple servers in
// one process never collide on the global default registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geoconfirmed_export"

// Metrics groups the instruments and their registry.
type Metrics struct {
	Registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration prometheus.Histogram
	eventsReturned  prometheus.Histogram
}

// New creates and registers all instruments on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Export requests by HTTP status code",
		}, []string{"status"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time spent serving export requests",
			Buckets:   prometheus.DefBuckets,
		}),
		eventsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "events_returned",
			Help:      "Number of events returned per successful export",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	m.Registry.MustRegister(m.requests, m.requestDuration, m.eventsReturned)

	return m
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(status int, elapsed time.Duration) {
	m.requests.WithLabelValues(strconv.Itoa(status)).Inc()
	m.requestDuration.Observe(elapsed.Seconds())
}

// ObserveEvents records the size of a successful export.
func (m *Metrics) ObserveEvents(n int) {
	m.eventsReturned.Observe(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
