package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains library-level metrics shared by every buffer and arena
// registered against one registry. Instance-level metrics (per-buffer
// operation counters, per-arena usage gauges) are created by the ringbuffer
// and arena packages themselves.
type Metrics struct {
	// Instance lifecycle
	BuffersActive prometheus.Gauge
	ArenasActive  prometheus.Gauge

	// Aggregate operation tracking across all instrumented buffers
	OperationsTotal   *prometheus.CounterVec
	OperationFailures *prometheus.CounterVec

	// Aggregate arena usage
	AllocatedBytes prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all library metrics
func NewMetrics() *Metrics {
	return &Metrics{
		BuffersActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "libring",
				Subsystem: "core",
				Name:      "buffers_active",
				Help:      "Number of instrumented ring buffers currently registered",
			},
		),

		ArenasActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "libring",
				Subsystem: "core",
				Name:      "arenas_active",
				Help:      "Number of instrumented arenas currently registered",
			},
		),

		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "libring",
				Subsystem: "core",
				Name:      "operations_total",
				Help:      "Total buffer operations across all instrumented buffers",
			},
			[]string{"buffer", "op"},
		),

		OperationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "libring",
				Subsystem: "core",
				Name:      "operation_failures_total",
				Help:      "Buffer operations rejected because the buffer was full or empty",
			},
			[]string{"buffer", "reason"},
		),

		AllocatedBytes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "libring",
				Subsystem: "core",
				Name:      "allocated_bytes",
				Help:      "Total bytes currently handed out by instrumented arenas",
			},
		),
	}
}

// RecordOperation increments the aggregate operation counter
func (m *Metrics) RecordOperation(buffer, op string) {
	m.OperationsTotal.WithLabelValues(buffer, op).Inc()
}

// RecordFailure increments the aggregate failure counter
func (m *Metrics) RecordFailure(buffer, reason string) {
	m.OperationFailures.WithLabelValues(buffer, reason).Inc()
}
