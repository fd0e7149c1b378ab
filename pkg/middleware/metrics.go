package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/pardna"
)

// MetricsConfig configures the Prometheus decorator.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "pardna").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for create duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus decorator.
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
		Namespace: "pardna",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the create-call collectors.
type Metrics struct {
	createsTotal   *prometheus.CounterVec
	createDuration prometheus.Histogram
	createErrors   *prometheus.CounterVec
	inFlight       prometheus.Gauge
	participants   prometheus.Histogram
}

// NewMetrics registers the create-call collectors. Registering twice on the
// same registry panics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		createsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "creates_total",
			Help:        "Total number of create pardna calls",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		createDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "create_duration_seconds",
			Help:        "Create pardna call duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		createErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "create_errors_total",
			Help:        "Total number of failed create pardna calls",
			ConstLabels: config.ConstLabels,
		}, []string{"error_type"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "creates_in_flight",
			Help:        "Number of create pardna calls in flight",
			ConstLabels: config.ConstLabels,
		}),

		participants: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "create_participants",
			Help:        "Participants per successfully created pardna",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}
}

// Wrap instruments next.
func (m *Metrics) Wrap(next pardna.Creator) pardna.Creator {
	return pardna.CreatorFunc(func(ctx context.Context, p pardna.Payload) (string, error) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		id, err := next.CreatePardna(ctx, p)
		m.createDuration.Observe(time.Since(start).Seconds())

		status := "success"
		if err != nil {
			status = "error"
			m.createErrors.WithLabelValues(categorizeError(err)).Inc()
		} else {
			m.participants.Observe(float64(len(p.Participants)))
		}
		m.createsTotal.WithLabelValues(status).Inc()

		return id, err
	})
}

// Prometheus returns a decorator that records create-call metrics.
//
//	reg := prometheus.NewRegistry()
//	creator = middleware.Prometheus(middleware.WithRegistry(reg))(creator)
func Prometheus(opts ...MetricsOption) Decorator {
	return NewMetrics(opts...).Wrap
}

// categorizeError returns a low-cardinality label for err.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, "P201"):
		return "graphql"
	case errors.Is(err, "P202"):
		return "http_status"
	case errors.CategoryOf(err) == errors.CategoryValidation:
		return "validation"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "deadline exceeded"), strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "canceled"):
		return "canceled"
	case strings.Contains(msg, "connection refused"):
		return "unavailable"
	default:
		return "internal"
	}
}
