package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"example.com/fittracker/internal/events"
	"example.com/fittracker/internal/training"
)

// MessageWriter is the subset of KafkaProducer used by Publisher.
type MessageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

// SummaryPublisher is implemented by Publisher and NoopPublisher.
type SummaryPublisher interface {
	Publish(ctx context.Context, workoutType string, summary training.Summary) (events.WorkoutSummarized, error)
}

// Publisher emits WorkoutSummarized events to a single topic.
type Publisher struct {
	writer MessageWriter
	topic  string
	now    func() time.Time
}

// NewPublisher constructs a Publisher writing to topic.
func NewPublisher(writer MessageWriter, topic string) *Publisher {
	return &Publisher{
		writer: writer,
		topic:  topic,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Publish encodes the summary and writes it keyed by workout type.
func (p *Publisher) Publish(ctx context.Context, workoutType string, summary training.Summary) (events.WorkoutSummarized, error) {
	evt := NewEvent(workoutType, summary, p.now())

	payload, err := json.Marshal(evt)
	if err != nil {
		return evt, fmt.Errorf("encode summary event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(workoutType),
		Value: payload,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(events.TypeWorkoutSummarized)},
			{Key: "workout_type", Value: []byte(workoutType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, p.topic, msg); err != nil {
		failedCounter.Inc()
		return evt, fmt.Errorf("publish summary event: %w", err)
	}
	publishedCounter.Inc()
	return evt, nil
}

// NoopPublisher builds events without delivering them.
type NoopPublisher struct{}

// Publish returns the event that would have been sent.
func (NoopPublisher) Publish(_ context.Context, workoutType string, summary training.Summary) (events.WorkoutSummarized, error) {
	return NewEvent(workoutType, summary, time.Now().UTC()), nil
}

// NewEvent packages a summary as a WorkoutSummarized event with a fresh ID.
func NewEvent(workoutType string, summary training.Summary, at time.Time) events.WorkoutSummarized {
	return events.WorkoutSummarized{
		EventID:      uuid.NewString(),
		WorkoutType:  workoutType,
		TrainingType: summary.TrainingType,
		DurationH:    summary.Duration,
		DistanceKm:   summary.Distance,
		SpeedKmh:     summary.Speed,
		CaloriesKcal: summary.Calories,
		Message:      summary.Message(),
		OccurredAt:   at,
	}
}
