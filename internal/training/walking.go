package training

import (
	"fmt"
	"math"

	"ftracker/internal/domain"
)

const (
	// KindSportsWalking is the display label for walking workouts.
	KindSportsWalking = "SportsWalking"

	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029
)

// SportsWalking is a brisk walking workout. Height feeds the calorie formula.
type SportsWalking struct {
	base
	height float64 // cm
}

// NewSportsWalking validates the measurements and returns a SportsWalking workout.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	if !positive(height) {
		return SportsWalking{}, fmt.Errorf("%w: height %v must be positive", domain.ErrInvalidMeasurement, height)
	}
	return SportsWalking{base: b, height: height}, nil
}

// Height returns the athlete height in cm.
func (w SportsWalking) Height() float64 { return w.height }

// Kind returns KindSportsWalking.
func (SportsWalking) Kind() string { return KindSportsWalking }

// Distance returns the distance covered in km.
func (w SportsWalking) Distance() (float64, error) { return w.distance(LenStep), nil }

// MeanSpeed returns the mean speed in km/h.
func (w SportsWalking) MeanSpeed() (float64, error) {
	d, _ := w.Distance()
	return w.meanSpeed(d)
}

// SpentCalories returns the calories burned in kcal.
//
// speed² / height is floored before it is scaled.
func (w SportsWalking) SpentCalories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, err
	}
	ratio, err := divide(speed*speed, w.height, "height")
	if err != nil {
		return 0, err
	}
	return (walkCaloriesWeightMultiplier*w.weight +
		math.Floor(ratio)*walkCaloriesSpeedMultiplier*w.weight) *
		(w.duration * MinInHour), nil
}

// Info returns the workout summary.
func (w SportsWalking) Info() (domain.Summary, error) { return info(w, w.duration) }

var _ domain.Training = SportsWalking{}
