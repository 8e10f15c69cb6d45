package ringbuffer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eagletrt/libring-buffer-sw/metric"
)

// bufferMetrics holds Prometheus metrics for buffer operations.
type bufferMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	pushes          prometheus.Counter
	pops            prometheus.Counter
	peeks           prometheus.Counter
	fullRejections  prometheus.Counter
	emptyRejections prometheus.Counter
	clears          prometheus.Counter

	// Gauge metrics - updated on operations
	size        prometheus.Gauge
	utilization prometheus.Gauge

	// Per-operation counters resolved once from the core operation vec so
	// the hot path never does a label lookup
	opPushFront prometheus.Counter
	opPushBack  prometheus.Counter
	opPopFront  prometheus.Counter
	opPopBack   prometheus.Counter
	failFull    prometheus.Counter
	failEmpty   prometheus.Counter

	core *metric.Metrics
}

// newBufferMetrics creates and registers buffer metrics with the provided registry.
func newBufferMetrics(registry *metric.MetricsRegistry, prefix string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "libring",
			Subsystem:   "buffer",
			Name:        "pushes_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful push operations",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "libring",
			Subsystem:   "buffer",
			Name:        "pops_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful pop operations",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "libring",
			Subsystem:   "buffer",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of non-mutating read operations",
		}),
		fullRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "libring",
			Subsystem:   "buffer",
			Name:        "full_rejections_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Pushes rejected because the buffer was full",
		}),
		emptyRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "libring",
			Subsystem:   "buffer",
			Name:        "empty_rejections_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Pops and reads rejected because the buffer was empty",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "libring",
			Subsystem:   "buffer",
			Name:        "clears_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of bulk resets",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "libring",
			Subsystem:   "buffer",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of items in the buffer",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "libring",
			Subsystem:   "buffer",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Buffer utilization as a fraction (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "buffer_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_pops", m.pops); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_full_rejections", m.fullRejections); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_empty_rejections", m.emptyRejections); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_clears", m.clears); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_utilization", m.utilization); err != nil {
		return nil, err
	}

	core := registry.CoreMetrics()
	m.core = core
	m.opPushFront = core.OperationsTotal.WithLabelValues(prefix, "push_front")
	m.opPushBack = core.OperationsTotal.WithLabelValues(prefix, "push_back")
	m.opPopFront = core.OperationsTotal.WithLabelValues(prefix, "pop_front")
	m.opPopBack = core.OperationsTotal.WithLabelValues(prefix, "pop_back")
	m.failFull = core.OperationFailures.WithLabelValues(prefix, "full")
	m.failEmpty = core.OperationFailures.WithLabelValues(prefix, "empty")

	return m, nil
}

// recordCreate marks the buffer active in the core lifecycle gauge.
func (m *bufferMetrics) recordCreate() {
	m.core.BuffersActive.Inc()
}

// recordPushFront increments push counters and updates size/utilization.
func (m *bufferMetrics) recordPushFront(size, capacity int) {
	m.pushes.Inc()
	m.opPushFront.Inc()
	m.updateSize(size, capacity)
}

// recordPushBack increments push counters and updates size/utilization.
func (m *bufferMetrics) recordPushBack(size, capacity int) {
	m.pushes.Inc()
	m.opPushBack.Inc()
	m.updateSize(size, capacity)
}

// recordPopFront increments pop counters and updates size/utilization.
func (m *bufferMetrics) recordPopFront(size, capacity int) {
	m.pops.Inc()
	m.opPopFront.Inc()
	m.updateSize(size, capacity)
}

// recordPopBack increments pop counters and updates size/utilization.
func (m *bufferMetrics) recordPopBack(size, capacity int) {
	m.pops.Inc()
	m.opPopBack.Inc()
	m.updateSize(size, capacity)
}

// recordPeek increments the peek counter.
func (m *bufferMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordFullRejection counts a push rejected on a full buffer.
func (m *bufferMetrics) recordFullRejection() {
	m.fullRejections.Inc()
	m.failFull.Inc()
}

// recordEmptyRejection counts a pop or read rejected on an empty buffer.
func (m *bufferMetrics) recordEmptyRejection() {
	m.emptyRejections.Inc()
	m.failEmpty.Inc()
}

// recordClear counts a bulk reset and zeroes size/utilization.
func (m *bufferMetrics) recordClear(capacity int) {
	m.clears.Inc()
	m.updateSize(0, capacity)
}

// updateSize sets the current buffer size and utilization.
func (m *bufferMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}
