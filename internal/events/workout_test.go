package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWorkoutSummarizedWireNames(t *testing.T) {
	evt := WorkoutSummarized{
		EventID:      "evt-1",
		WorkoutType:  "SWM",
		TrainingType: "Swimming",
		DurationH:    1,
		DistanceKm:   0.9936,
		SpeedKmh:     1,
		CaloriesKcal: 336,
		Message:      "msg",
		OccurredAt:   time.Date(2025, time.October, 27, 20, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(evt)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"event_id":"evt-1",
		"workout_type":"SWM",
		"training_type":"Swimming",
		"duration_h":1,
		"distance_km":0.9936,
		"speed_kmh":1,
		"calories_kcal":336,
		"message":"msg",
		"occurred_at":"2025-10-27T20:00:00Z"
	}`, string(raw))
}
