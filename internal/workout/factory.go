// Package workout turns raw sensor packages into training calculators.
package workout

import (
	"errors"
	"fmt"
	"math"

	"example.com/fittracker/internal/training"
)

var (
	// ErrUnknownWorkoutType is returned for codes outside RUN, WLK and SWM.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArityMismatch is returned when the parameter count does not fit the workout type.
	ErrArityMismatch = errors.New("parameter count mismatch")
)

// Code identifies a workout type in a sensor package.
type Code string

const (
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
	CodeSwimming Code = "SWM"
)

// Package is a single sensor reading as delivered by a tracker.
type Package struct {
	Code   string
	Params []float64
}

type builder struct {
	arity int
	build func(p []float64) (training.Calculator, error)
}

var builders = map[Code]builder{
	CodeRunning: {arity: 3, build: func(p []float64) (training.Calculator, error) {
		action, err := count("action", p[0])
		if err != nil {
			return nil, err
		}
		r, err := training.NewRunning(action, p[1], p[2])
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	CodeWalking: {arity: 4, build: func(p []float64) (training.Calculator, error) {
		action, err := count("action", p[0])
		if err != nil {
			return nil, err
		}
		w, err := training.NewSportsWalking(action, p[1], p[2], p[3])
		if err != nil {
			return nil, err
		}
		return w, nil
	}},
	CodeSwimming: {arity: 5, build: func(p []float64) (training.Calculator, error) {
		action, err := count("action", p[0])
		if err != nil {
			return nil, err
		}
		laps, err := count("pool count", p[4])
		if err != nil {
			return nil, err
		}
		s, err := training.NewSwimming(action, p[1], p[2], p[3], laps)
		if err != nil {
			return nil, err
		}
		return s, nil
	}},
}

// Arity reports how many parameters the workout type expects.
func Arity(code string) (int, error) {
	b, ok := builders[Code(code)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	return b.arity, nil
}

// Create builds the calculator for code from its ordered parameters:
// action count, duration in hours, weight in kg, then height in cm for WLK
// or pool length in m and pool count for SWM.
func Create(code string, params []float64) (training.Calculator, error) {
	b, ok := builders[Code(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	if len(params) != b.arity {
		return nil, fmt.Errorf("%w: %s expects %d parameters, got %d", ErrArityMismatch, code, b.arity, len(params))
	}
	return b.build(params)
}

// Summarize is Create followed by training.Summarize.
func Summarize(pkg Package) (training.Summary, error) {
	calc, err := Create(pkg.Code, pkg.Params)
	if err != nil {
		return training.Summary{}, err
	}
	return training.Summarize(calc), nil
}

func count(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", training.ErrInvalidSample, field, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s out of range, got %v", training.ErrInvalidSample, field, v)
	}
	return int(v), nil
}
