// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (packages, summaries), the Training contract and the
// sentinel errors returned by the engine.
package domain
