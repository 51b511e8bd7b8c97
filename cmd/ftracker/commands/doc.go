// Package commands defines the ftracker CLI and wires dependencies for subcommands.
//
// Commands
//
//   - run          Summarise the reference packages, or those in a JSON file
//   - calc         Summarise a single package given on the command line
//   - fingerprint  Print a short fingerprint of a package
//
// # Implementation
//
// The root command loads configuration (environment, optionally seeded from a
// .env file) and builds the dependency graph before any subcommand runs.
// Summary lines go to stdout; diagnostics go to stderr through the logger.
package commands
