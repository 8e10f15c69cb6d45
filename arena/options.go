package arena

import (
	"github.com/eagletrt/libring-buffer-sw/metric"
)

// Option configures arena behavior using the functional options pattern.
type Option func(*arenaOptions)

// arenaOptions holds internal configuration for arena instances.
type arenaOptions struct {
	// metricsReg is optional - if provided, arena usage is exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string
}

// WithMetrics enables Prometheus metrics export for arena usage.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics(registry *metric.MetricsRegistry, prefix string) Option {
	return func(opts *arenaOptions) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create final arena configuration.
func applyOptions(options ...Option) *arenaOptions {
	opts := &arenaOptions{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
