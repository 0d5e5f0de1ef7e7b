// Package events defines the payloads exchanged over Kafka.
package events

import "time"

// WorkoutPackage is a raw sensor package as delivered by a tracker device.
type WorkoutPackage struct {
	WorkoutType string    `json:"workout_type"`
	Params      []float64 `json:"params"`
}

// WorkoutSummarized is emitted once a package has been turned into a summary.
type WorkoutSummarized struct {
	EventID      string    `json:"event_id"`
	WorkoutType  string    `json:"workout_type"`
	TrainingType string    `json:"training_type"`
	DurationH    float64   `json:"duration_h"`
	DistanceKm   float64   `json:"distance_km"`
	SpeedKmh     float64   `json:"speed_kmh"`
	CaloriesKcal float64   `json:"calories_kcal"`
	Message      string    `json:"message"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Event types carried in the event_type header.
const (
	TypeWorkoutPackage    = "workout.package"
	TypeWorkoutSummarized = "workout.summarized"
)
