package observe

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/notify/pkg/notify"
)

// MetricsConfig configures the Prometheus hook.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "notify").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

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

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "notify",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// MetricsHook exports notification counts to Prometheus.
type MetricsHook struct {
	appended *prometheus.CounterVec
	removed  *prometheus.CounterVec
	active   prometheus.Gauge
}

// Prometheus creates a metrics hook and registers its collectors with the
// configured registry. Registering two hooks with the same registry and
// namespace panics, as duplicate collector registration always does.
func Prometheus(opts ...MetricsOption) *MetricsHook {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	return &MetricsHook{
		appended: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "notifications_appended_total",
			Help:        "Total notifications appended to the queue.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"level"}),
		removed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "notifications_removed_total",
			Help:        "Total notifications removed from the queue.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"level"}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "notifications_active",
			Help:        "Notifications currently pending in the queue.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// NotificationAppended implements notify.Hook.
func (m *MetricsHook) NotificationAppended(n notify.Notification) {
	m.appended.WithLabelValues(levelLabel(n.Level)).Inc()
	m.active.Inc()
}

// NotificationRemoved implements notify.Hook.
func (m *MetricsHook) NotificationRemoved(n notify.Notification) {
	m.removed.WithLabelValues(levelLabel(n.Level)).Inc()
	m.active.Dec()
}

// levelLabel is the lower-cased level name used as the metric label value.
func levelLabel(l notify.Level) string {
	return strings.ToLower(l.String())
}
