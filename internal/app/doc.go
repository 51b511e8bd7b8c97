// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment (optionally seeded from a .env file),
// builds the logger, reader, tracker and metrics, and exposes them via the
// Wire struct for commands to use.
package app
