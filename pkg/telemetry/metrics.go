package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics provides Prometheus metrics for configuration operations.
type Metrics struct {
	config MetricsConfig

	// Document metrics
	documentsRead    prometheus.Counter
	documentsWritten prometheus.Counter

	// Validation metrics
	validationFailures *prometheus.CounterVec

	// Render metrics
	rendersProduced *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		// Return a no-op metrics instance
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		documentsRead: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_read_total",
				Help:      "Total number of configuration documents read",
			},
		),
		documentsWritten: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_written_total",
				Help:      "Total number of configuration documents written",
			},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of configuration validation failures",
			},
			[]string{"kind"},
		),
		rendersProduced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "renders_produced_total",
				Help:      "Total number of tool argument renders produced",
			},
			[]string{"tool"},
		),
	}

	registry.MustRegister(
		m.documentsRead,
		m.documentsWritten,
		m.validationFailures,
		m.rendersProduced,
	)

	return m, nil
}

// Registry returns the underlying Prometheus registry, or nil when metrics
// are disabled.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// DocumentRead records one configuration document read.
func (m *Metrics) DocumentRead() {
	if m.registry == nil {
		return
	}
	m.documentsRead.Inc()
}

// DocumentWritten records one configuration document written.
func (m *Metrics) DocumentWritten() {
	if m.registry == nil {
		return
	}
	m.documentsWritten.Inc()
}

// ValidationFailure records a validation failure of the given kind.
func (m *Metrics) ValidationFailure(kind string) {
	if m.registry == nil {
		return
	}
	m.validationFailures.WithLabelValues(kind).Inc()
}

// RenderProduced records one rendered argument set for a tool stage.
func (m *Metrics) RenderProduced(tool string) {
	if m.registry == nil {
		return
	}
	m.rendersProduced.WithLabelValues(tool).Inc()
}
