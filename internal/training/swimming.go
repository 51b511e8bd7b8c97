package training

import (
	"fmt"

	"ftracker/internal/domain"
)

const (
	// KindSwimming is the display label for swimming workouts.
	KindSwimming = "Swimming"
	// SwimLenStep is the stroke length in metres.
	SwimLenStep = 1.38

	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Swimming is a pool swimming workout.
type Swimming struct {
	base
	lengthPool float64 // m
	countPool  int
}

// NewSwimming validates the measurements and returns a Swimming workout.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (Swimming, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	if !positive(lengthPool) {
		return Swimming{}, fmt.Errorf("%w: pool length %v must be positive", domain.ErrInvalidMeasurement, lengthPool)
	}
	if countPool < 0 {
		return Swimming{}, fmt.Errorf("%w: pool lap count %d is negative", domain.ErrInvalidMeasurement, countPool)
	}
	return Swimming{base: b, lengthPool: lengthPool, countPool: countPool}, nil
}

// LengthPool returns the pool length in metres.
func (s Swimming) LengthPool() float64 { return s.lengthPool }

// CountPool returns the number of pool laps.
func (s Swimming) CountPool() int { return s.countPool }

// Kind returns KindSwimming.
func (Swimming) Kind() string { return KindSwimming }

// Distance returns the distance covered in km, using the stroke length.
func (s Swimming) Distance() (float64, error) { return s.distance(SwimLenStep), nil }

// MeanSpeed returns the mean speed in km/h, computed from pool laps rather
// than strokes.
func (s Swimming) MeanSpeed() (float64, error) {
	return divide(s.lengthPool*float64(s.countPool)/MInKm, s.duration, "duration")
}

// SpentCalories returns the calories burned in kcal.
func (s Swimming) SpentCalories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (speed + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.weight, nil
}

// Info returns the workout summary.
func (s Swimming) Info() (domain.Summary, error) { return info(s, s.duration) }

var _ domain.Training = Swimming{}
