// Package metrics инструментирует операции ядра счётчиками Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/model"
)

const namespace = "rentlok"

const (
	OutcomeOK         = "ok"
	OutcomeStoreError = "store_error"
)

type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	cascades   *prometheus.CounterVec
}

// New регистрирует метрики в reg. nil reg допустим: метрики считаются,
// но никуда не экспортируются.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Lifecycle operations by entity, operation and outcome.",
		}, []string{"entity", "operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Lifecycle operation latency including the transaction.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity", "operation"}),
		cascades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascade_deactivations_total",
			Help:      "Child records deactivated by a parent deactivation.",
		}, []string{"parent", "child"}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.duration, m.cascades)
	}
	return m
}

// Observe фиксирует исход и длительность операции.
func (m *Metrics) Observe(entity model.Kind, op string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(string(entity), op, Outcome(err)).Inc()
	m.duration.WithLabelValues(string(entity), op).Observe(time.Since(started).Seconds())
}

// Cascade учитывает дочерние записи, погашенные каскадом.
func (m *Metrics) Cascade(parent, child model.Kind, affected int64) {
	if m == nil || affected <= 0 {
		return
	}
	m.cascades.WithLabelValues(string(parent), string(child)).Add(float64(affected))
}

// Outcome — метка исхода: ok, код ошибки ядра или store_error.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if code := apperr.CodeOf(err); code != "" {
		return string(code)
	}
	return OutcomeStoreError
}
