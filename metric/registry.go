package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/eagletrt/libring-buffer-sw/errors"
)

// MetricsRegistrar defines the interface for registering instance-specific metrics
type MetricsRegistrar interface {
	RegisterCounter(instanceName, metricName string, counter prometheus.Counter) error
	RegisterGauge(instanceName, metricName string, gauge prometheus.Gauge) error
	RegisterHistogram(instanceName, metricName string, histogram prometheus.Histogram) error
	RegisterCounterVec(instanceName, metricName string, counterVec *prometheus.CounterVec) error
	RegisterGaugeVec(instanceName, metricName string, gaugeVec *prometheus.GaugeVec) error
	Unregister(instanceName, metricName string) bool
}

// MetricsRegistry manages the registration and lifecycle of metrics for
// buffers and arenas. Each buffer or arena instance registers its metrics
// under a caller-chosen prefix so multiple instances can share one registry.
type MetricsRegistry struct {
	prometheusRegistry *prometheus.Registry
	Metrics            *Metrics
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewMetricsRegistry creates a new metrics registry with core library metrics
func NewMetricsRegistry() *MetricsRegistry {
	prometheusRegistry := prometheus.NewRegistry()

	registry := &MetricsRegistry{
		prometheusRegistry: prometheusRegistry,
		registeredMetrics:  make(map[string]prometheus.Collector),
	}

	// Initialize and register core metrics
	registry.Metrics = NewMetrics()
	registry.registerMetrics()

	// Add Go runtime metrics
	registry.prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// PrometheusRegistry returns the underlying Prometheus registry
func (r *MetricsRegistry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// CoreMetrics returns the core library metrics
func (r *MetricsRegistry) CoreMetrics() *Metrics {
	return r.Metrics
}

// RegisterCounter registers a counter metric for an instance
func (r *MetricsRegistry) RegisterCounter(instanceName, metricName string, counter prometheus.Counter) error {
	return r.register(instanceName, metricName, "RegisterCounter", counter)
}

// RegisterGauge registers a gauge metric for an instance
func (r *MetricsRegistry) RegisterGauge(instanceName, metricName string, gauge prometheus.Gauge) error {
	return r.register(instanceName, metricName, "RegisterGauge", gauge)
}

// RegisterHistogram registers a histogram metric for an instance
func (r *MetricsRegistry) RegisterHistogram(instanceName, metricName string, histogram prometheus.Histogram) error {
	return r.register(instanceName, metricName, "RegisterHistogram", histogram)
}

// RegisterCounterVec registers a counter vector metric for an instance
func (r *MetricsRegistry) RegisterCounterVec(instanceName, metricName string, counterVec *prometheus.CounterVec) error {
	return r.register(instanceName, metricName, "RegisterCounterVec", counterVec)
}

// RegisterGaugeVec registers a gauge vector metric for an instance
func (r *MetricsRegistry) RegisterGaugeVec(instanceName, metricName string, gaugeVec *prometheus.GaugeVec) error {
	return r.register(instanceName, metricName, "RegisterGaugeVec", gaugeVec)
}

// register adds a collector under the instance-qualified key, rejecting
// duplicates at both the registry and Prometheus level
func (r *MetricsRegistry) register(instanceName, metricName, operation string, collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", instanceName, metricName)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("metric %s already registered for instance %s", metricName, instanceName),
			"MetricsRegistry", operation, "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		// Check if it's a duplicate registration error from Prometheus
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.WrapInvalid(err, "MetricsRegistry", operation,
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.WrapFatal(err, "MetricsRegistry", operation,
			"failed to register collector with prometheus")
	}

	r.registeredMetrics[key] = collector
	return nil
}

// Unregister removes a metric from the registry
func (r *MetricsRegistry) Unregister(instanceName, metricName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", instanceName, metricName)

	collector, exists := r.registeredMetrics[key]
	if !exists {
		return false
	}

	success := r.prometheusRegistry.Unregister(collector)
	if success {
		delete(r.registeredMetrics, key)
	}

	return success
}

// registerMetrics registers all core library metrics
func (r *MetricsRegistry) registerMetrics() {
	r.prometheusRegistry.MustRegister(
		r.Metrics.BuffersActive,
		r.Metrics.ArenasActive,
		r.Metrics.OperationsTotal,
		r.Metrics.OperationFailures,
		r.Metrics.AllocatedBytes,
	)
}
