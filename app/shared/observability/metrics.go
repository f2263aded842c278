package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ServiceMetrics records the outcome of service operations.
type ServiceMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
}

// MatchMetrics adds the counters specific to match event processing.
type MatchMetrics interface {
	ServiceMetrics
	RecordEventApplied(ctx context.Context, eventType string)
	RecordGoalCredited(ctx context.Context, side string)
}

// PrometheusMetrics implements MatchMetrics on a prometheus registry.
type PrometheusMetrics struct {
	attempts      *prometheus.CounterVec
	successes     *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	eventsApplied *prometheus.CounterVec
	goals         *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) *PrometheusMetrics {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, []string{"service", "operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Service operations that completed without an infrastructure error.",
		}, []string{"service", "operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failure_total",
			Help:      "Service operations that returned an infrastructure error or panicked.",
		}, []string{"service", "operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		eventsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_events_applied_total",
			Help:      "Match events persisted, by type.",
		}, []string{"type"}),
		goals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_goals_credited_total",
			Help:      "Goals credited to a side of a match.",
		}, []string{"side"}),
	}

	if reg != nil {
		reg.MustRegister(m.attempts, m.successes, m.failures, m.duration, m.eventsApplied, m.goals)
	}
	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.attempts.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.successes.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.failures.WithLabelValues(service, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	m.duration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordEventApplied(_ context.Context, eventType string) {
	m.eventsApplied.WithLabelValues(eventType).Inc()
}

func (m *PrometheusMetrics) RecordGoalCredited(_ context.Context, side string) {
	m.goals.WithLabelValues(side).Inc()
}

// NoopMetrics discards every measurement.
type NoopMetrics struct{}

// NewNoop returns metrics that record nothing.
func NewNoop() *NoopMetrics { return &NoopMetrics{} }

func (*NoopMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (*NoopMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (*NoopMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (*NoopMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (*NoopMetrics) RecordEventApplied(context.Context, string)                             {}
func (*NoopMetrics) RecordGoalCredited(context.Context, string)                             {}

var (
	_ MatchMetrics = (*PrometheusMetrics)(nil)
	_ MatchMetrics = (*NoopMetrics)(nil)
)
