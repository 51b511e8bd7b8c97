package training

import (
	"fmt"
	"math"

	"ftracker/internal/domain"
)

const (
	// LenStep is the step length in metres for running and walking.
	LenStep = 0.65
	// MInKm is the number of metres in a kilometre.
	MInKm = 1000.0
	// MinInHour is the number of minutes in an hour.
	MinInHour = 60
)

// base holds the measurements every workout kind carries.
type base struct {
	action   int     // steps or strokes
	duration float64 // hours
	weight   float64 // kg
}

func newBase(action int, duration, weight float64) (base, error) {
	if action < 0 {
		return base{}, fmt.Errorf("%w: action count %d is negative", domain.ErrInvalidMeasurement, action)
	}
	if !positive(duration) {
		return base{}, fmt.Errorf("%w: duration %v must be positive", domain.ErrInvalidMeasurement, duration)
	}
	if !positive(weight) {
		return base{}, fmt.Errorf("%w: weight %v must be positive", domain.ErrInvalidMeasurement, weight)
	}
	return base{action: action, duration: duration, weight: weight}, nil
}

// positive reports whether v is a finite number above zero. NaN fails.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Action returns the number of steps or strokes.
func (b base) Action() int { return b.action }

// Duration returns the workout length in hours.
func (b base) Duration() float64 { return b.duration }

// Weight returns the athlete weight in kg.
func (b base) Weight() float64 { return b.weight }

// distance converts the action count into kilometres for the given step length.
func (b base) distance(lenStep float64) float64 {
	return float64(b.action) * lenStep / MInKm
}

// meanSpeed divides distance by duration.
func (b base) meanSpeed(distance float64) (float64, error) {
	return divide(distance, b.duration, "duration")
}

func divide(num, den float64, what string) (float64, error) {
	if den == 0 {
		return 0, fmt.Errorf("%w: %s is zero", domain.ErrDivisionByZero, what)
	}
	return num / den, nil
}

// info collects the metrics of t into a Summary. Each kind passes itself so
// that its own MeanSpeed and SpentCalories are used.
func info(t domain.Training, duration float64) (domain.Summary, error) {
	distance, err := t.Distance()
	if err != nil {
		return domain.Summary{}, err
	}
	speed, err := t.MeanSpeed()
	if err != nil {
		return domain.Summary{}, err
	}
	calories, err := t.SpentCalories()
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{
		Kind:     t.Kind(),
		Duration: duration,
		Distance: distance,
		Speed:    speed,
		Calories: calories,
	}, nil
}
