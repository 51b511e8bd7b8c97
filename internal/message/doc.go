// Package message renders workout summaries as the single-line report shown
// to users.
package message
