package consumer

import (
	"context"
	"log"

	"example.com/fittracker/internal/observability"
	"example.com/fittracker/internal/publish"
	"example.com/fittracker/internal/workout"
)

// SummaryHandler summarizes each package and publishes the result.
type SummaryHandler struct {
	publisher publish.SummaryPublisher
	logger    *log.Logger
}

// NewSummaryHandler constructs a handler that publishes through publisher.
func NewSummaryHandler(publisher publish.SummaryPublisher, logger *log.Logger) *SummaryHandler {
	if logger == nil {
		logger = log.New(log.Writer(), "[summary] ", log.LstdFlags)
	}
	return &SummaryHandler{publisher: publisher, logger: logger}
}

// Handle drops packages that fail validation after logging them, so the
// record is committed; publish failures are returned and left uncommitted.
func (h *SummaryHandler) Handle(ctx context.Context, msg Message) error {
	pkg := msg.Package
	summary, err := workout.Summarize(workout.Package{Code: pkg.WorkoutType, Params: pkg.Params})
	if err != nil {
		reason := observability.RecordRejection(err)
		h.logger.Printf("rejected package (offset=%d, reason=%s): %v", msg.Offset, reason, err)
		return nil
	}
	observability.RecordSummary(pkg.WorkoutType)
	h.logger.Print(summary.Message())

	_, err = h.publisher.Publish(ctx, pkg.WorkoutType, summary)
	return err
}
