package training

const (
	walkingStepLenM          = 0.65
	walkingWeightMultiplier  = 0.035
	walkingSpeedHeightFactor = 0.029
)

// SportsWalking is a race-walking workout measured in steps.
type SportsWalking struct {
	sample
	height float64
}

// NewSportsWalking validates the readings and builds a SportsWalking workout.
// Height is in centimetres.
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	s, err := newSample(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if err := positive("height", height); err != nil {
		return nil, err
	}
	return &SportsWalking{sample: s, height: height}, nil
}

func (w *SportsWalking) Name() string { return "SportsWalking" }

func (w *SportsWalking) Distance() float64 {
	return float64(w.action) * walkingStepLenM / mInKm
}

func (w *SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.duration
}

// SpentCalories returns kcal burned. The speed/height ratio is a true
// division; truncating it zeroes the second term for realistic inputs.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingWeightMultiplier*w.weight +
		(speed*speed/w.height)*walkingSpeedHeightFactor*w.weight) * (w.duration * minInH)
}
