package requesttime

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"compliancedesk/pkg/requestcontext"
)

func TestMiddleware(t *testing.T) {
	var seen time.Time
	h := Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestcontext.Now(r.Context())
	}))

	t.Run("stamps a UTC time", func(t *testing.T) {
		before := time.Now()
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, time.UTC, seen.Location())
		assert.False(t, seen.Before(before.Truncate(time.Second)))
	})

	t.Run("keeps a pinned clock", func(t *testing.T) {
		pinned := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(requestcontext.WithTime(req.Context(), pinned))

		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, pinned, seen)
	})
}
