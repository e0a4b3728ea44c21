package audit

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "compliancedesk/pkg/domain-errors"
	"compliancedesk/pkg/platform/httputil"
	"compliancedesk/pkg/requestcontext"
)

// Handler exposes the audit trail read-only.
type Handler struct {
	publisher *Publisher
	logger    *slog.Logger
}

func NewHandler(publisher *Publisher, logger *slog.Logger) *Handler {
	return &Handler{publisher: publisher, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/audit", h.HandleList)
}

// HandleList returns events newest first, optionally narrowed by register,
// record and limit query parameters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	q := Query{
		Register: Register(r.URL.Query().Get("register")),
		RecordID: r.URL.Query().Get("record"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a non-negative integer"))
			return
		}
		q.Limit = limit
	}

	events, err := h.publisher.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit events",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"events": events})
}
