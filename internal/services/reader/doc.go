// Package reader turns raw sensor packages into workouts.
//
// A package is a short code plus positional values. The code selects the
// workout kind from a fixed table and the values are bound to that kind's
// constructor strictly by position:
//
//	SWM  action, duration, weight, pool length, pool lap count
//	RUN  action, duration, weight
//	WLK  action, duration, weight, height
//
// Unknown codes fail with domain.ErrUnknownWorkoutKind and a wrong number of
// values with domain.ErrArityMismatch. There is no default kind.
package reader
