// Package api exposes HTTP handlers for workout summaries.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"example.com/fittracker/internal/auth"
	"example.com/fittracker/internal/events"
	"example.com/fittracker/internal/observability"
	"example.com/fittracker/internal/publish"
	"example.com/fittracker/internal/training"
	"example.com/fittracker/internal/workout"
)

const maxBatchSize = 100

// Handler coordinates HTTP requests with the workout factory.
type Handler struct {
	publisher    publish.SummaryPublisher
	authRequired bool
	logger       *log.Logger
}

// NewHandler builds a Handler. When authRequired is set every summary
// request must carry claims with the workouts:summarize scope.
func NewHandler(publisher publish.SummaryPublisher, authRequired bool) *Handler {
	if publisher == nil {
		publisher = publish.NoopPublisher{}
	}
	return &Handler{
		publisher:    publisher,
		authRequired: authRequired,
		logger:       log.New(log.Writer(), "[api] ", log.LstdFlags),
	}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/workouts/summary", h.summary)
	mux.HandleFunc("/v1/workouts/batch", h.batch)
	mux.HandleFunc("/healthz", healthz)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.authorize(w, r) {
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	view, err := h.summarize(r, req)
	if err != nil {
		status, code := errorStatus(err)
		writeError(w, status, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.authorize(w, r) {
		return
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if len(req.Packages) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "packages must not be empty")
		return
	}
	if len(req.Packages) > maxBatchSize {
		writeError(w, http.StatusBadRequest, "invalid_request", "too many packages")
		return
	}

	resp := BatchResponse{Results: make([]BatchResult, 0, len(req.Packages))}
	for _, pkg := range req.Packages {
		result := BatchResult{WorkoutType: pkg.WorkoutType}
		if err := pkg.Validate(); err != nil {
			result.Error = &ErrorView{Type: "invalid_request", Detail: err.Error()}
			resp.Failed++
			resp.Results = append(resp.Results, result)
			continue
		}
		view, err := h.summarize(r, pkg)
		if err != nil {
			_, code := errorStatus(err)
			result.Error = &ErrorView{Type: code, Detail: err.Error()}
			resp.Failed++
		} else {
			result.Summary = &view
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, result)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if !h.authRequired {
		return true
	}
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasScope(auth.ScopeWorkoutsSummarize) {
		writeError(w, http.StatusForbidden, "forbidden", "scope workouts:summarize required")
		return false
	}
	return true
}

func (h *Handler) summarize(r *http.Request, req SummaryRequest) (SummaryView, error) {
	summary, err := workout.Summarize(workout.Package{Code: req.WorkoutType, Params: req.Params})
	if err != nil {
		observability.RecordRejection(err)
		return SummaryView{}, err
	}
	observability.RecordSummary(req.WorkoutType)

	evt, err := h.publisher.Publish(r.Context(), req.WorkoutType, summary)
	if err != nil {
		// The summary is still valid; delivery is best effort from the API.
		h.logger.Printf("publish failed (workout_type=%s): %v", req.WorkoutType, err)
	}
	return toSummaryView(evt, summary), nil
}

// SummaryRequest is the payload for POST /v1/workouts/summary.
type SummaryRequest struct {
	WorkoutType string    `json:"workout_type"`
	Params      []float64 `json:"params"`
}

// Validate ensures request correctness. Parameter counts are checked by the factory.
func (r SummaryRequest) Validate() error {
	if strings.TrimSpace(r.WorkoutType) == "" {
		return errors.New("workout_type is required")
	}
	if r.Params == nil {
		return errors.New("params is required")
	}
	return nil
}

// BatchRequest is the payload for POST /v1/workouts/batch.
type BatchRequest struct {
	Packages []SummaryRequest `json:"packages"`
}

// SummaryView exposes a computed workout summary.
type SummaryView struct {
	SummaryID    string  `json:"summary_id"`
	WorkoutType  string  `json:"workout_type"`
	TrainingType string  `json:"training_type"`
	DurationH    float64 `json:"duration_h"`
	DistanceKm   float64 `json:"distance_km"`
	SpeedKmh     float64 `json:"speed_kmh"`
	CaloriesKcal float64 `json:"calories_kcal"`
	Message      string  `json:"message"`
}

// ErrorView mirrors the error body returned by single requests.
type ErrorView struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// BatchResult holds either a summary or an error for one package.
type BatchResult struct {
	WorkoutType string       `json:"workout_type"`
	Summary     *SummaryView `json:"summary,omitempty"`
	Error       *ErrorView   `json:"error,omitempty"`
}

// BatchResponse packages batch results in request order.
type BatchResponse struct {
	Results   []BatchResult `json:"results"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}

func errorStatus(err error) (int, string) {
	reason := observability.Reason(err)
	if reason == observability.ReasonOther {
		return http.StatusInternalServerError, "server_error"
	}
	return http.StatusBadRequest, reason
}

func toSummaryView(evt events.WorkoutSummarized, summary training.Summary) SummaryView {
	return SummaryView{
		SummaryID:    evt.EventID,
		WorkoutType:  evt.WorkoutType,
		TrainingType: summary.TrainingType,
		DurationH:    summary.Duration,
		DistanceKm:   summary.Distance,
		SpeedKmh:     summary.Speed,
		CaloriesKcal: summary.Calories,
		Message:      summary.Message(),
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, ErrorView{Type: code, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
