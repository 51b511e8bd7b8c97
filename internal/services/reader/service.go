package reader

import (
	"fmt"
	"math"

	"ftracker/internal/domain"
	"ftracker/internal/training"
)

// builder binds positional values to one workout constructor.
type builder struct {
	arity int
	build func(v []float64) (domain.Training, error)
}

var builders = map[domain.Code]builder{
	domain.CodeSwimming: {arity: 5, build: func(v []float64) (domain.Training, error) {
		action, err := count(v[0], "action")
		if err != nil {
			return nil, err
		}
		laps, err := count(v[4], "pool lap count")
		if err != nil {
			return nil, err
		}
		return training.NewSwimming(action, v[1], v[2], v[3], laps)
	}},
	domain.CodeRunning: {arity: 3, build: func(v []float64) (domain.Training, error) {
		action, err := count(v[0], "action")
		if err != nil {
			return nil, err
		}
		return training.NewRunning(action, v[1], v[2])
	}},
	domain.CodeWalking: {arity: 4, build: func(v []float64) (domain.Training, error) {
		action, err := count(v[0], "action")
		if err != nil {
			return nil, err
		}
		return training.NewSportsWalking(action, v[1], v[2], v[3])
	}},
}

// Service reads sensor packages into workouts.
type Service struct{}

// New returns a reader service.
func New() *Service { return &Service{} }

// Read selects the workout kind for code and builds it from values.
func (s *Service) Read(code domain.Code, values []float64) (domain.Training, error) {
	b, ok := builders[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownWorkoutKind, code)
	}
	if len(values) != b.arity {
		return nil, fmt.Errorf("%w: %s takes %d values, got %d", domain.ErrArityMismatch, code, b.arity, len(values))
	}
	return b.build(values)
}

// Arity reports how many values code expects.
func Arity(code domain.Code) (int, bool) {
	b, ok := builders[code]
	return b.arity, ok
}

// count converts a positional value that must hold a whole number.
func count(v float64, what string) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s %v is not a whole number", domain.ErrInvalidMeasurement, what, v)
	}
	return int(v), nil
}

// Compile-time assertion that Service implements domain.TrainingReader.
var _ domain.TrainingReader = (*Service)(nil)
