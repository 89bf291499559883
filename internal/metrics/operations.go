package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/dhcalc/internal/bigint"
	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// OperationMetrics records forwarded engine operations as Prometheus metrics.
// It implements bigint.Observer and owns its registry, so several instances
// can coexist in tests.
type OperationMetrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewOperationMetrics creates the collectors and registers them, together
// with the Go runtime collector, on a private registry.
func NewOperationMetrics() *OperationMetrics {
	m := &OperationMetrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dhcalc_operations_total",
			Help: "Number of arithmetic operations forwarded to an engine.",
		}, []string{"engine", "op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dhcalc_operation_errors_total",
			Help: "Number of arithmetic operations that returned an error.",
		}, []string{"engine", "op", "kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dhcalc_operation_duration_seconds",
			Help:    "Wall-clock duration of arithmetic operations.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 9),
		}, []string{"engine", "op"}),
	}
	m.registry.MustRegister(m.operations, m.failures, m.duration, collectors.NewGoCollector())
	return m
}

// Observe implements bigint.Observer.
func (m *OperationMetrics) Observe(engine bigint.EngineName, op bigint.Op, elapsed time.Duration, err error) {
	m.operations.WithLabelValues(string(engine), string(op)).Inc()
	m.duration.WithLabelValues(string(engine), string(op)).Observe(elapsed.Seconds())
	if err != nil {
		m.failures.WithLabelValues(string(engine), string(op), errorKind(err)).Inc()
	}
}

// Registry exposes the underlying registry.
func (m *OperationMetrics) Registry() *prometheus.Registry { return m.registry }

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (m *OperationMetrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func errorKind(err error) string {
	var (
		domainErr apperrors.DomainError
		parseErr  apperrors.ParseError
	)
	switch {
	case errors.As(err, &domainErr):
		return "domain"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "other"
	}
}
