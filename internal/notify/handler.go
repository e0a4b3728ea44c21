package notify

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"compliancedesk/pkg/platform/httputil"
	"compliancedesk/pkg/requestcontext"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/notifications", h.HandleList)
	r.Delete("/api/notifications/{id}", h.HandleDismiss)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notifications",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"notifications": list})
}

func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if err := h.service.Dismiss(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "failed to dismiss notification",
			"request_id", requestcontext.RequestID(ctx),
			"notification_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
