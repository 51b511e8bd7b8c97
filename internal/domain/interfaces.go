package domain

// Training is a completed workout that can report its derived metrics.
type Training interface {
	// Kind returns the display label of the workout kind.
	Kind() string
	Distance() (float64, error)
	MeanSpeed() (float64, error)
	SpentCalories() (float64, error)
	// Info collects all metrics into a Summary.
	Info() (Summary, error)
}

// TrainingReader builds a Training from a raw sensor package.
type TrainingReader interface {
	Read(code Code, values []float64) (Training, error)
}
