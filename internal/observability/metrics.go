// Package observability holds the process-wide training metrics.
package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/fittracker/internal/training"
	"example.com/fittracker/internal/workout"
)

// Rejection reasons used as metric labels.
const (
	ReasonUnknownWorkoutType = "unknown_workout_type"
	ReasonArityMismatch      = "arity_mismatch"
	ReasonInvalidSample      = "invalid_sample"
	ReasonOther              = "other"
)

var (
	summariesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "training",
		Name:      "summaries_total",
		Help:      "Number of workout summaries computed, labeled by workout type.",
	}, []string{"workout_type"})

	rejectionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "training",
		Name:      "rejections_total",
		Help:      "Number of sensor packages rejected, labeled by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(summariesCounter, rejectionsCounter)
}

// RecordSummary counts a computed summary.
func RecordSummary(workoutType string) {
	summariesCounter.WithLabelValues(workoutType).Inc()
}

// RecordRejection counts a rejected package and returns the reason label.
func RecordRejection(err error) string {
	reason := Reason(err)
	rejectionsCounter.WithLabelValues(reason).Inc()
	return reason
}

// Reason classifies a factory or calculator error.
func Reason(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		return ReasonUnknownWorkoutType
	case errors.Is(err, workout.ErrArityMismatch):
		return ReasonArityMismatch
	case errors.Is(err, training.ErrInvalidSample):
		return ReasonInvalidSample
	default:
		return ReasonOther
	}
}

// IsPermanent reports whether err is a validation failure that cannot succeed on retry.
func IsPermanent(err error) bool {
	return Reason(err) != ReasonOther
}
