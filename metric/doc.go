// Package metric provides Prometheus metrics registration and serving for the
// ring buffer library.
//
// # Overview
//
// The package centers on MetricsRegistry, which wraps a private
// prometheus.Registry and tracks every registered collector under an
// instance-qualified key so duplicate registrations fail fast with a
// classified error instead of a Prometheus panic.
//
// Core library metrics (active buffer/arena counts, aggregate operation
// counters, allocated bytes) are registered automatically. Instance metrics
// are created by the ringbuffer and arena packages when their WithMetrics
// option is supplied:
//
//	registry := metric.NewMetricsRegistry()
//
//	buf, err := ringbuffer.New[int32](1024, a,
//	    ringbuffer.WithMetrics[int32](registry, "can_rx"),
//	)
//
// # Serving
//
// Server exposes the registry over HTTP with promhttp:
//
//	srv := metric.NewServer(9090, "/metrics", registry)
//	go func() {
//	    if err := srv.Start(); err != nil {
//	        slog.Error("metrics server stopped", "error", err)
//	    }
//	}()
//	defer srv.Stop()
//
// The server also exposes /health and an index page. Start blocks until the
// server stops, so run it on its own goroutine.
//
// # Naming
//
// All metrics live under the "libring" namespace. Instance metrics carry the
// caller-chosen prefix as a "component" label, so two buffers instrumented
// against the same registry stay distinguishable.
//
// # Thread Safety
//
// MetricsRegistry is safe for concurrent use; registration and
// unregistration are serialized behind an internal mutex.
package metric
