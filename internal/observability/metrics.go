// Package observability records workout metrics with Prometheus collectors.
//
// The CLI is short-lived, so nothing is served over HTTP. Collectors live on a
// private registry that can be written out in the text exposition format for
// the node-exporter textfile collector.
package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"ftracker/internal/domain"
)

const namespace = "ftracker"

// Metrics groups the collectors updated by the tracker.
type Metrics struct {
	registry *prometheus.Registry

	processed *prometheus.CounterVec
	failed    *prometheus.CounterVec
	calories  *prometheus.HistogramVec
	distance  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "workouts_processed_total",
			Help:      "Number of workouts summarised, by kind.",
		}, []string{"kind"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "packages_failed_total",
			Help:      "Number of sensor packages rejected, by code and reason.",
		}, []string{"code", "reason"}),
		calories: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "workout_calories_kcal",
			Help:      "Calories burned per workout, by kind.",
			Buckets:   []float64{50, 100, 200, 300, 500, 750, 1000, 1500},
		}, []string{"kind"}),
		distance: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "distance_km_total",
			Help:      "Total distance covered, by kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(m.processed, m.failed, m.calories, m.distance)
	return m
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordWorkout counts a summarised workout.
func (m *Metrics) RecordWorkout(s domain.Summary) {
	m.processed.WithLabelValues(s.Kind).Inc()
	m.calories.WithLabelValues(s.Kind).Observe(s.Calories)
	if s.Distance >= 0 {
		m.distance.WithLabelValues(s.Kind).Add(s.Distance)
	}
}

// RecordFailure counts a rejected package.
func (m *Metrics) RecordFailure(code domain.Code, err error) {
	m.failed.WithLabelValues(code.String(), Reason(err)).Inc()
}

// WriteTextfile writes all collected metrics to path. The write goes through
// a temporary file so readers never see a partial file.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Reason maps an engine error to a short metric label.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownWorkoutKind):
		return "unknown_kind"
	case errors.Is(err, domain.ErrArityMismatch):
		return "arity_mismatch"
	case errors.Is(err, domain.ErrInvalidMeasurement):
		return "invalid_measurement"
	case errors.Is(err, domain.ErrDivisionByZero):
		return "division_by_zero"
	default:
		return "other"
	}
}
