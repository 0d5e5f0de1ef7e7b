package workout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/fittracker/internal/training"
)

func TestCreateRunning(t *testing.T) {
	calc, err := Create("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)
	require.IsType(t, &training.Running{}, calc)

	require.InDelta(t, 9.75, calc.Distance(), 1e-9)
	require.InDelta(t, 9.75, calc.MeanSpeed(), 1e-9)
	require.InDelta(t, (18*9.75-20)*75.0/1000*60, calc.SpentCalories(), 1e-9)
}

func TestCreateSwimming(t *testing.T) {
	calc, err := Create("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	require.IsType(t, &training.Swimming{}, calc)

	require.InDelta(t, 0.9936, calc.Distance(), 1e-9)
	require.InDelta(t, 1.0, calc.MeanSpeed(), 1e-9)
	require.InDelta(t, 336.0, calc.SpentCalories(), 1e-9)
}

func TestCreateWalking(t *testing.T) {
	calc, err := Create("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	require.IsType(t, &training.SportsWalking{}, calc)

	speed := calc.MeanSpeed()
	require.InDelta(t, 5.85, calc.Distance(), 1e-9)
	require.InDelta(t, (0.035*75+(speed*speed/180)*0.029*75)*60, calc.SpentCalories(), 1e-9)
	require.NotEqual(t, 157.5, calc.SpentCalories())
}

func TestCreateUnknownType(t *testing.T) {
	calc, err := Create("XYZ", []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrUnknownWorkoutType)
	require.Nil(t, calc)

	_, err = Create("run", []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrUnknownWorkoutType)
}

func TestCreateArityMismatch(t *testing.T) {
	cases := []Package{
		{Code: "RUN", Params: []float64{1, 2}},
		{Code: "RUN", Params: []float64{1, 2, 3, 4}},
		{Code: "WLK", Params: []float64{9000, 1, 75}},
		{Code: "SWM", Params: []float64{720, 1, 80, 25}},
		{Code: "SWM", Params: nil},
	}
	for _, pkg := range cases {
		_, err := Create(pkg.Code, pkg.Params)
		require.ErrorIs(t, err, ErrArityMismatch, "%s %v", pkg.Code, pkg.Params)
	}
}

func TestCreateRejectsZeroDuration(t *testing.T) {
	for _, pkg := range []Package{
		{Code: "RUN", Params: []float64{15000, 0, 75}},
		{Code: "WLK", Params: []float64{9000, 0, 75, 180}},
		{Code: "SWM", Params: []float64{720, 0, 80, 25, 40}},
	} {
		_, err := Create(pkg.Code, pkg.Params)
		require.ErrorIs(t, err, training.ErrInvalidSample, pkg.Code)
	}
}

func TestCreateRejectsFractionalCounts(t *testing.T) {
	_, err := Create("RUN", []float64{150.5, 1, 75})
	require.ErrorIs(t, err, training.ErrInvalidSample)

	_, err = Create("SWM", []float64{720, 1, 80, 25, 40.2})
	require.ErrorIs(t, err, training.ErrInvalidSample)
}

func TestArity(t *testing.T) {
	for code, want := range map[string]int{"RUN": 3, "WLK": 4, "SWM": 5} {
		got, err := Arity(code)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := Arity("ROW")
	require.ErrorIs(t, err, ErrUnknownWorkoutType)
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize(Package{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}})
	require.NoError(t, err)
	require.Equal(t, "Swimming", summary.TrainingType)
	require.InDelta(t, 336.0, summary.Calories, 1e-9)

	_, err = Summarize(Package{Code: "XYZ", Params: []float64{1, 2, 3}})
	require.ErrorIs(t, err, ErrUnknownWorkoutType)
}
