// Package requesttime pins one "now" per request so every timestamp and
// derived status computed while serving it agrees.
package requesttime

import (
	"net/http"
	"time"

	"compliancedesk/pkg/requestcontext"
)

// Middleware stores the request start time, in UTC, in the context. Record
// dates are UTC calendar days, so days-left counts do not depend on the
// server's zone. A clock already pinned upstream (tests) is kept.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, pinned := ctx.Value(requestcontext.ContextKeyRequestTime).(time.Time); !pinned {
			ctx = requestcontext.WithTime(ctx, time.Now().UTC())
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
