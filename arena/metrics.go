package arena

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eagletrt/libring-buffer-sw/metric"
)

// arenaMetrics holds Prometheus metrics for one arena instance.
type arenaMetrics struct {
	allocations prometheus.Counter
	failures    prometheus.Counter

	used        prometheus.Gauge
	utilization prometheus.Gauge

	core *metric.Metrics
}

// newArenaMetrics creates and registers arena metrics with the provided registry.
func newArenaMetrics(registry *metric.MetricsRegistry, prefix string) (*arenaMetrics, error) {
	m := &arenaMetrics{
		allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "libring",
			Subsystem:   "arena",
			Name:        "allocations_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful bump allocations",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "libring",
			Subsystem:   "arena",
			Name:        "allocation_failures_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of allocations rejected because the region was exhausted",
		}),
		used: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "libring",
			Subsystem:   "arena",
			Name:        "used_bytes",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Bytes currently handed out, including alignment padding",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "libring",
			Subsystem:   "arena",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Arena utilization as a percentage (0.0 to 1.0)",
		}),
		core: registry.CoreMetrics(),
	}

	if err := registry.RegisterCounter(prefix, "arena_allocations", m.allocations); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "arena_allocation_failures", m.failures); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "arena_used_bytes", m.used); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "arena_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordCreate marks this arena as active in the core metrics.
func (m *arenaMetrics) recordCreate() {
	m.core.ArenasActive.Inc()
	m.used.Set(0)
	m.utilization.Set(0)
}

// recordAlloc updates usage gauges after a successful allocation.
// delta is the number of bytes the allocation consumed, padding included.
func (m *arenaMetrics) recordAlloc(delta, used, capacity int) {
	m.allocations.Inc()
	m.setUsage(used, capacity)
	m.core.AllocatedBytes.Add(float64(delta))
}

// recordFailure increments the failure counter.
func (m *arenaMetrics) recordFailure() {
	m.failures.Inc()
}

// recordRewind updates usage gauges after a Reset.
func (m *arenaMetrics) recordRewind(previouslyUsed int) {
	m.core.AllocatedBytes.Sub(float64(previouslyUsed))
	m.used.Set(0)
	m.utilization.Set(0)
}

// recordRelease updates gauges when the arena is torn down.
func (m *arenaMetrics) recordRelease(used int) {
	m.core.ArenasActive.Dec()
	m.core.AllocatedBytes.Sub(float64(used))
	m.used.Set(0)
	m.utilization.Set(0)
}

func (m *arenaMetrics) setUsage(used, capacity int) {
	m.used.Set(float64(used))
	if capacity > 0 {
		m.utilization.Set(float64(used) / float64(capacity))
	}
}
