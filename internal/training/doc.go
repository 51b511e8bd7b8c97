// Package training implements the three supported workout kinds and the
// formulas behind them.
//
// Contents
//
//   - Running        distance from steps, calories from mean speed and weight
//   - SportsWalking  as Running, with a height factor in the calorie formula
//   - Swimming       longer stroke length, speed taken from pool laps
//
// # Notes
//
// Values are immutable once built. The constructors reject non-positive
// durations, heights and pool lengths with domain.ErrInvalidMeasurement, so the
// division guards inside the formulas only fire for zero-value structs.
//
// The walking calorie formula floors speed²/height before scaling. The
// flooring is kept as-is.
package training
