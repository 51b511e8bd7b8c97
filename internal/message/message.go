package message

import (
	"fmt"

	"ftracker/internal/domain"
)

// Template is the report line. Every number is printed fixed-point with three
// decimals.
const Template = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage is the informational message about a completed workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// New builds an InfoMessage from a summary.
func New(s domain.Summary) InfoMessage {
	return InfoMessage{
		TrainingType: s.Kind,
		Duration:     s.Duration,
		Distance:     s.Distance,
		Speed:        s.Speed,
		Calories:     s.Calories,
	}
}

// String returns the formatted report line.
func (m InfoMessage) String() string {
	return fmt.Sprintf(Template, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Format renders s using Template.
func Format(s domain.Summary) string { return New(s).String() }
