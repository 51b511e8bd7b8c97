// Package tracker drives the engine over a list of sensor packages.
//
// Each package is read into a workout, summarised, formatted and written as
// one line, strictly in input order. Nothing runs concurrently.
//
// # Failure policy
//
// FailFast (the default) stops at the first package that fails and returns its
// error; lines already written stay written. ContinueOnError skips failing
// packages and returns every failure joined together once the list is done.
// Write errors always stop the run.
package tracker
