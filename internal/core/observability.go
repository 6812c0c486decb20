package core

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRecorder receives one observation per service operation.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

type noopMetricsRecorder struct{}

func (noopMetricsRecorder) Observe(context.Context, string, bool, time.Duration) {}

// PrometheusMetricsRecorder counts operations by result and tracks their
// latency. It only registers collectors; exposing them is up to the caller.
type PrometheusMetricsRecorder struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewPrometheusMetricsRecorder registers the recorder's collectors on reg
// under namespace. Collectors already registered by an earlier recorder are
// reused.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer, namespace string) (*PrometheusMetricsRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "operations_total",
		Help:      "Service operations by name and result.",
	}, []string{"operation", "result"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "operation_duration_seconds",
		Help:      "Service operation latency.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"operation"})

	var err error
	if operations, err = register(reg, operations); err != nil {
		return nil, err
	}
	if durations, err = register(reg, durations); err != nil {
		return nil, err
	}
	return &PrometheusMetricsRecorder{operations: operations, durations: durations}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// Observe implements MetricsRecorder.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "error"
	}
	r.operations.WithLabelValues(operation, result).Inc()
	r.durations.WithLabelValues(operation).Observe(duration.Seconds())
}
