package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the underwriting pipeline.
type Metrics struct {
	Decisions           *prometheus.CounterVec
	DegradedProjections prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credflow_decisions_total",
			Help: "Total number of underwriting decisions, by outcome",
		}, []string{"outcome"}),
		DegradedProjections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "credflow_degraded_projections_total",
			Help: "Total number of installment projections that used the simplified fallback",
		}),
	}
}

// ObserveDecision counts one decision with the given outcome.
func (m *Metrics) ObserveDecision(outcome string) {
	m.Decisions.WithLabelValues(outcome).Inc()
}

// ObserveDegradedProjection counts one fallback installment projection.
func (m *Metrics) ObserveDegradedProjection() {
	m.DegradedProjections.Inc()
}
