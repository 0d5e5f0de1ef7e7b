// Package training computes distance, speed and calorie figures for supported workouts.
package training

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSample is returned when sensor readings violate a numeric precondition.
var ErrInvalidSample = errors.New("invalid workout sample")

const (
	mInKm   = 1000
	minInH  = 60
	message = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."
)

// Calculator is implemented by every workout variant.
type Calculator interface {
	Name() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// Summary is the derived view of a workout, computed on demand.
type Summary struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// Summarize evaluates each calculator figure exactly once.
func Summarize(c Calculator) Summary {
	return Summary{
		TrainingType: c.Name(),
		Duration:     c.Duration(),
		Distance:     c.Distance(),
		Speed:        c.MeanSpeed(),
		Calories:     c.SpentCalories(),
	}
}

// Message renders the summary in the tracker's fixed output format.
func (s Summary) Message() string {
	return fmt.Sprintf(message, s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}

// sample holds the readings shared by all workout variants.
type sample struct {
	action   int
	duration float64
	weight   float64
}

func newSample(action int, duration, weight float64) (sample, error) {
	if action < 0 {
		return sample{}, fmt.Errorf("%w: action count must be >= 0, got %d", ErrInvalidSample, action)
	}
	if err := positive("duration", duration); err != nil {
		return sample{}, err
	}
	if err := positive("weight", weight); err != nil {
		return sample{}, err
	}
	return sample{action: action, duration: duration, weight: weight}, nil
}

func positive(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidSample, field, value)
	}
	if value <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidSample, field, value)
	}
	return nil
}

// Duration returns the workout duration in hours.
func (s sample) Duration() float64 {
	return s.duration
}
