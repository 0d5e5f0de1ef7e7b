package training

const (
	runningStepLenM        = 0.65
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20
)

// Running is a jogging workout measured in steps.
type Running struct {
	sample
}

// NewRunning validates the readings and builds a Running workout.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	s, err := newSample(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{sample: s}, nil
}

func (r *Running) Name() string { return "Running" }

// Distance returns kilometres covered.
func (r *Running) Distance() float64 {
	return float64(r.action) * runningStepLenM / mInKm
}

// MeanSpeed returns km/h.
func (r *Running) MeanSpeed() float64 {
	return r.Distance() / r.duration
}

// SpentCalories returns kcal burned.
func (r *Running) SpentCalories() float64 {
	return (runningSpeedMultiplier*r.MeanSpeed() - runningSpeedShift) * r.weight / mInKm * (r.duration * minInH)
}
