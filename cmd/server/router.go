package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"compliancedesk/internal/audit"
	"compliancedesk/internal/notify"
	"compliancedesk/internal/platform/metrics"
	"compliancedesk/internal/platform/middleware"
	recordshandler "compliancedesk/internal/records/handler"
	"compliancedesk/internal/reminder"
	"compliancedesk/internal/report"
	"compliancedesk/pkg/platform/httputil"
	"compliancedesk/pkg/platform/middleware/metadata"
	"compliancedesk/pkg/platform/middleware/requesttime"
)

// newRouter wires every public endpoint behind the shared middleware chain.
// m may be nil to skip latency metrics.
func newRouter(a *app, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Actor)
	r.Use(m.Latency)
	r.Use(middleware.Logger(a.logger))
	r.Use(middleware.Timeout(a.cfg.Server.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		status := map[string]string{"status": "ok", "notifications": "memory"}
		if a.redis != nil {
			status["notifications"] = "redis"
			if err := a.redis.Health(req.Context()); err != nil {
				status["status"] = "degraded"
				httputil.WriteJSON(w, http.StatusServiceUnavailable, status)
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, status)
	})
	r.Handle("/metrics", metrics.Handler())

	recordshandler.New(a.records, a.logger).Register(r)
	notify.NewHandler(a.notifier, a.logger).Register(r)
	audit.NewHandler(a.audit, a.logger).Register(r)
	reminder.NewHandler(a.reminders, a.logger).Register(r)
	report.NewHandler(a.records, a.logger).Register(r)
	return r
}
