package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks registration outcomes and store latency.
type Metrics struct {
	RegistrationsCreated prometheus.Counter
	RegistrationsDeleted prometheus.Counter
	Conflicts            *prometheus.CounterVec
	StoreDuration        *prometheus.HistogramVec
}

// New registers every registration metric on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "musabaqa_registrations_created_total",
			Help: "Total number of registrations created",
		}),
		RegistrationsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "musabaqa_registrations_deleted_total",
			Help: "Total number of registrations deleted",
		}),
		Conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "musabaqa_registration_conflicts_total",
			Help: "Writes rejected because they would duplicate an existing registration",
		}, []string{"operation"}),
		StoreDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "musabaqa_registration_operation_duration_seconds",
			Help:    "Duration of registration use case operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementCreated() {
	if m == nil {
		return
	}
	m.RegistrationsCreated.Inc()
}

func (m *Metrics) IncrementDeleted() {
	if m == nil {
		return
	}
	m.RegistrationsDeleted.Inc()
}

func (m *Metrics) IncrementConflict(operation string) {
	if m == nil {
		return
	}
	m.Conflicts.WithLabelValues(operation).Inc()
}

// Observe records the duration of an operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) Observe(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
