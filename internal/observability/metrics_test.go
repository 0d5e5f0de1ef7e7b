package observability

import (
	"errors"
	"fmt"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"example.com/fittracker/internal/training"
	"example.com/fittracker/internal/workout"
)

func TestReason(t *testing.T) {
	require.Equal(t, ReasonUnknownWorkoutType, Reason(fmt.Errorf("wrap: %w", workout.ErrUnknownWorkoutType)))
	require.Equal(t, ReasonArityMismatch, Reason(workout.ErrArityMismatch))
	require.Equal(t, ReasonInvalidSample, Reason(fmt.Errorf("%w: duration", training.ErrInvalidSample)))
	require.Equal(t, ReasonOther, Reason(errors.New("broker down")))

	require.True(t, IsPermanent(workout.ErrArityMismatch))
	require.False(t, IsPermanent(errors.New("broker down")))
}

func TestRecordRejectionIncrementsCounter(t *testing.T) {
	before := counterValue(t, rejectionsCounter.WithLabelValues(ReasonArityMismatch))

	reason := RecordRejection(workout.ErrArityMismatch)
	require.Equal(t, ReasonArityMismatch, reason)

	after := counterValue(t, rejectionsCounter.WithLabelValues(ReasonArityMismatch))
	require.Equal(t, before+1, after)
}

func TestRecordSummaryIncrementsCounter(t *testing.T) {
	before := counterValue(t, summariesCounter.WithLabelValues("RUN"))
	RecordSummary("RUN")
	require.Equal(t, before+1, counterValue(t, summariesCounter.WithLabelValues("RUN")))
}

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()

	metric := &dto.Metric{}
	require.NoError(t, c.Write(metric))
	return metric.GetCounter().GetValue()
}
