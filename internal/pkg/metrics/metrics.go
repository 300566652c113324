package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rsvp"

const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeNotFound     = "not_found"
	OutcomeConflict     = "conflict"
	OutcomeStorageError = "db_error"
	OutcomeCanceled     = "canceled"
	OutcomeUnknown      = "unknown"
)

// Metrics owns a private registry so tests and multiple instances never
// collide on the global one.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	streamed   prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_operations_total",
				Help:      "Count of reservation manager operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "reservation_operation_duration_seconds",
				Help:      "Latency of reservation manager operations.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		streamed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_streamed_rows_total",
				Help:      "Count of reservations delivered by streaming queries.",
			},
		),
	}

	m.registry.MustRegister(
		m.operations,
		m.duration,
		m.streamed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Observe(operation, outcome string, started time.Time) {
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) IncStreamed() {
	m.streamed.Inc()
}

func (m *Metrics) Operations() *prometheus.CounterVec {
	return m.operations
}

func (m *Metrics) Streamed() prometheus.Counter {
	return m.streamed
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
