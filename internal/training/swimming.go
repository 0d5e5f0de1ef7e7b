package training

import "fmt"

const (
	swimmingStrokeLenM       = 1.38
	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2.0
)

// Swimming is a pool workout measured in strokes.
type Swimming struct {
	sample
	poolLength float64
	poolCount  int
}

// NewSwimming validates the readings and builds a Swimming workout.
// poolLength is in metres, poolCount is the number of lengths swum.
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (*Swimming, error) {
	s, err := newSample(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if err := positive("pool length", poolLength); err != nil {
		return nil, err
	}
	if poolCount < 0 {
		return nil, fmt.Errorf("%w: pool count must be >= 0, got %d", ErrInvalidSample, poolCount)
	}
	return &Swimming{sample: s, poolLength: poolLength, poolCount: poolCount}, nil
}

func (s *Swimming) Name() string { return "Swimming" }

func (s *Swimming) Distance() float64 {
	return float64(s.action) * swimmingStrokeLenM / mInKm
}

// MeanSpeed is derived from pool lengths, not from strokes.
func (s *Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolCount) / mInKm / s.duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * s.weight
}
