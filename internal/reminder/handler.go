package reminder

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"compliancedesk/pkg/platform/httputil"
	"compliancedesk/pkg/requestcontext"
)

// Evaluator computes due reminders for a reference instant.
type Evaluator interface {
	Due(ctx context.Context, at time.Time) ([]Reminder, error)
}

type Handler struct {
	service Evaluator
	logger  *slog.Logger
}

func NewHandler(svc Evaluator, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/reminders", h.HandleDue)
}

type dueResponse struct {
	At        string        `json:"at"`
	Reminders []Reminder    `json:"reminders"`
	Counts    map[Level]int `json:"counts"`
}

// HandleDue lists reminders due at ?at= (default now) without raising them.
func (h *Handler) HandleDue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	at, err := httputil.ReferenceTime(r, "at", requestcontext.Now(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid reminder request", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	due, err := h.service.Due(ctx, at)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute reminders", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	if due == nil {
		due = []Reminder{}
	}
	httputil.WriteJSON(w, http.StatusOK, dueResponse{
		At:        at.UTC().Format(time.RFC3339),
		Reminders: due,
		Counts:    CountByLevel(due),
	})
}
