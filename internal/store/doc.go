// Package store loads sensor packages for the tracker.
//
// Packages come either from the built-in reference list or from a JSON file
// holding an array of {"code": "RUN", "values": [15000, 1, 75]} objects. Files
// are only read; nothing is written back.
package store
