package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wen911119/preact/pkg/vdom"
)

// DefaultChildBuckets are the histogram buckets for children per node.
var DefaultChildBuckets = []float64{0, 1, 2, 4, 8, 16, 32, 64, 128, 256}

// MetricsConfig configures the Prometheus hook.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "preact").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for the children count.
	// Default: DefaultChildBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus hook.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "preact",
		Buckets:   DefaultChildBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// MetricsHook counts created nodes. It implements vdom.Hook.
type MetricsHook struct {
	created  *prometheus.CounterVec
	children prometheus.Histogram
}

// Metrics creates a hook that collects Prometheus metrics for built nodes.
//
// Metrics collected:
//   - preact_vnodes_created_total: Counter of nodes by kind (element, component)
//   - preact_vnode_children: Histogram of normalized children per node
//
// The collectors are registered with the configured registry. Like promauto,
// Metrics panics if a collector with the same name is already registered
// there; use a dedicated registry per hook.
func Metrics(opts ...MetricsOption) *MetricsHook {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &MetricsHook{
		created: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "vnodes_created_total",
			Help:        "Total number of virtual nodes built",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		children: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "vnode_children",
			Help:        "Number of normalized children per built node",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// VNodeCreated implements vdom.Hook.
func (m *MetricsHook) VNodeCreated(node *vdom.VNode) {
	m.created.WithLabelValues(node.Kind().String()).Inc()
	m.children.Observe(float64(node.Children.Len()))
}
