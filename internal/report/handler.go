package report

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"compliancedesk/internal/records/service"
	"compliancedesk/pkg/platform/httputil"
	"compliancedesk/pkg/requestcontext"
)

// Source supplies the data behind the reports.
type Source interface {
	Snapshot(ctx context.Context) (service.Snapshot, error)
	Dashboard(ctx context.Context, at time.Time) (service.Dashboard, error)
}

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type Handler struct {
	source Source
	logger *slog.Logger
}

func NewHandler(source Source, logger *slog.Logger) *Handler {
	return &Handler{source: source, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/reports/workbook.xlsx", h.HandleWorkbook)
	r.Get("/api/reports/dashboard.pdf", h.HandleDashboardPDF)
}

func (h *Handler) HandleWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	at, err := httputil.ReferenceTime(r, "at", requestcontext.Now(ctx))
	if err != nil {
		h.fail(ctx, w, "invalid workbook request", err)
		return
	}
	snap, err := h.source.Snapshot(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to load registers", err)
		return
	}
	body, err := Workbook(snap, at)
	if err != nil {
		h.fail(ctx, w, "failed to render workbook", err)
		return
	}
	h.attach(w, contentTypeXLSX, "compliance-registers-"+at.UTC().Format("20060102")+".xlsx", body)
}

func (h *Handler) HandleDashboardPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	at, err := httputil.ReferenceTime(r, "at", requestcontext.Now(ctx))
	if err != nil {
		h.fail(ctx, w, "invalid dashboard report request", err)
		return
	}
	d, err := h.source.Dashboard(ctx, at)
	if err != nil {
		h.fail(ctx, w, "failed to build dashboard", err)
		return
	}
	body, err := DashboardPDF(d)
	if err != nil {
		h.fail(ctx, w, "failed to render dashboard pdf", err)
		return
	}
	h.attach(w, contentTypePDF, "compliance-dashboard-"+at.UTC().Format("20060102")+".pdf", body)
}

func (h *Handler) attach(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
