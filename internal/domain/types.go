package domain

// Code is the short sensor code that selects a workout kind.
type Code string

// String returns the string form of the code.
func (c Code) String() string { return string(c) }

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

// Package is one raw reading from the sensors: a code plus positional values.
type Package struct {
	Code   Code      `json:"code"`
	Values []float64 `json:"values"`
}

// Summary holds the derived metrics of one workout, ready for display.
type Summary struct {
	Kind     string  // display label, e.g. "Running"
	Duration float64 // hours
	Distance float64 // km
	Speed    float64 // km/h
	Calories float64 // kcal
}
