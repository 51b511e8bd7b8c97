package domain

import "errors"

var (
	// ErrUnknownWorkoutKind is returned for a code outside the fixed mapping.
	ErrUnknownWorkoutKind = errors.New("unknown workout kind")
	// ErrArityMismatch is returned when a package carries the wrong number of values.
	ErrArityMismatch = errors.New("wrong number of values for workout kind")
	// ErrInvalidMeasurement is returned when a measurement is out of range
	// (non-positive duration, height or pool length, negative or fractional counts).
	ErrInvalidMeasurement = errors.New("invalid measurement")
	// ErrDivisionByZero is returned when a formula would divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
)
