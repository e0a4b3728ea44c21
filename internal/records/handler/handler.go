package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"compliancedesk/internal/records/filter"
	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/service"
	"compliancedesk/internal/records/validation"
	dErrors "compliancedesk/pkg/domain-errors"
	"compliancedesk/pkg/platform/httputil"
	"compliancedesk/pkg/requestcontext"
)

// Service defines the register operations the HTTP layer needs.
type Service interface {
	Dashboard(ctx context.Context, at time.Time) (service.Dashboard, error)

	ListDocuments(ctx context.Context, q filter.DocumentQuery) ([]models.Document, error)
	GetDocument(ctx context.Context, id string) (models.Document, error)
	ValidateDocument(ctx context.Context, draft validation.DocumentDraft) validation.FieldErrors
	CreateDocument(ctx context.Context, draft validation.DocumentDraft) (models.Document, error)
	UpdateDocument(ctx context.Context, id string, draft validation.DocumentDraft) (models.Document, error)
	DeleteDocument(ctx context.Context, id string) error

	ListNotices(ctx context.Context, q filter.NoticeQuery) ([]models.LegalNotice, error)
	GetNotice(ctx context.Context, id string) (models.LegalNotice, error)
	ValidateNotice(ctx context.Context, draft validation.LegalNoticeDraft) validation.FieldErrors
	CreateNotice(ctx context.Context, draft validation.LegalNoticeDraft) (models.LegalNotice, error)
	UpdateNotice(ctx context.Context, id string, draft validation.LegalNoticeDraft) (models.LegalNotice, error)
	AddReply(ctx context.Context, id string, draft validation.ReplyDraft) (models.LegalNotice, error)
	DeleteNotice(ctx context.Context, id string) error

	ListInward(ctx context.Context, q filter.InwardQuery) ([]models.InwardRegisterEntry, error)
	GetInward(ctx context.Context, id string) (models.InwardRegisterEntry, error)
	CreateInward(ctx context.Context, draft validation.InwardDraft) (models.InwardRegisterEntry, error)
	UpdateInward(ctx context.Context, id string, draft validation.InwardDraft) (models.InwardRegisterEntry, error)
	DeleteInward(ctx context.Context, id string) error
}

// Handler serves the register API.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new register Handler.
func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register registers the register routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/dashboard", h.HandleDashboard)

	r.Route("/api/documents", func(r chi.Router) {
		r.Get("/", h.HandleListDocuments)
		r.Post("/", h.HandleCreateDocument)
		r.Post("/validate", h.HandleValidateDocument)
		r.Get("/{id}", h.HandleGetDocument)
		r.Put("/{id}", h.HandleUpdateDocument)
		r.Delete("/{id}", h.HandleDeleteDocument)
	})

	r.Route("/api/notices", func(r chi.Router) {
		r.Get("/", h.HandleListNotices)
		r.Post("/", h.HandleCreateNotice)
		r.Post("/validate", h.HandleValidateNotice)
		r.Get("/{id}", h.HandleGetNotice)
		r.Put("/{id}", h.HandleUpdateNotice)
		r.Delete("/{id}", h.HandleDeleteNotice)
		r.Post("/{id}/replies", h.HandleAddReply)
	})

	r.Route("/api/inward", func(r chi.Router) {
		r.Get("/", h.HandleListInward)
		r.Post("/", h.HandleCreateInward)
		r.Get("/{id}", h.HandleGetInward)
		r.Put("/{id}", h.HandleUpdateInward)
		r.Delete("/{id}", h.HandleDeleteInward)
	})
}

// fail logs and writes a service error. Client errors log at warn.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	}
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	at, err := httputil.ReferenceTime(r, "at", requestcontext.Now(r.Context()))
	if err != nil {
		h.fail(w, r, "invalid dashboard request", err)
		return
	}
	d, err := h.service.Dashboard(r.Context(), at)
	if err != nil {
		h.fail(w, r, "failed to build dashboard", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDashboardResponse(d))
}
