package training

import "ftracker/internal/domain"

const (
	// KindRunning is the display label for running workouts.
	KindRunning = "Running"

	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20
)

// Running is a running workout.
type Running struct {
	base
}

// NewRunning validates the measurements and returns a Running workout.
func NewRunning(action int, duration, weight float64) (Running, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{base: b}, nil
}

// Kind returns KindRunning.
func (Running) Kind() string { return KindRunning }

// Distance returns the distance covered in km.
func (r Running) Distance() (float64, error) { return r.distance(LenStep), nil }

// MeanSpeed returns the mean speed in km/h.
func (r Running) MeanSpeed() (float64, error) {
	d, _ := r.Distance()
	return r.meanSpeed(d)
}

// SpentCalories returns the calories burned in kcal.
func (r Running) SpentCalories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (runCaloriesSpeedMultiplier*speed - runCaloriesSpeedShift) *
		r.weight / MInKm * r.duration * MinInHour, nil
}

// Info returns the workout summary.
func (r Running) Info() (domain.Summary, error) { return info(r, r.duration) }

var _ domain.Training = Running{}
