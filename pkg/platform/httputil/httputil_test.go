package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "compliancedesk/pkg/domain-errors"
)

type detailedErr struct{}

func (detailedErr) Error() string      { return "2 fields invalid" }
func (detailedErr) ErrorDetails() any { return []string{"department", "subject"} }

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		status      int
		code        string
		description string
	}{
		{"unknown record", dErrors.New(dErrors.CodeNotFound, "document DOC-009 not found"), http.StatusNotFound, "not_found", "document DOC-009 not found"},
		{"malformed body", dErrors.New(dErrors.CodeBadRequest, "invalid request body"), http.StatusBadRequest, "bad_request", "invalid request body"},
		{"id clash", dErrors.New(dErrors.CodeConflict, "id already taken"), http.StatusConflict, "conflict", "id already taken"},
		{"backend down", dErrors.New(dErrors.CodeUnavailable, "redis unreachable"), http.StatusServiceUnavailable, "unavailable", "redis unreachable"},
		{"internal hides description", dErrors.New(dErrors.CodeInternal, "store corrupted"), http.StatusInternalServerError, "internal_error", ""},
		{"uncoded error is internal", assert.AnError, http.StatusInternalServerError, "internal_error", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["error"])
			if tt.description == "" {
				assert.NotContains(t, body, "error_description")
			} else {
				assert.Equal(t, tt.description, body["error_description"])
			}
			assert.NotContains(t, body, "errors")
		})
	}

	t.Run("validation error carries details", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.Wrap(detailedErr{}, dErrors.CodeValidation, "notice is invalid"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body struct {
			Error  string   `json:"error"`
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "validation_error", body.Error)
		assert.Equal(t, []string{"department", "subject"}, body.Errors)
	})
}

func TestDecodeJSON(t *testing.T) {
	type draft struct {
		Subject string `json:"subject"`
	}

	t.Run("decodes known fields", func(t *testing.T) {
		var d draft
		req := httptest.NewRequest(http.MethodPost, "/api/notices", strings.NewReader(`{"subject":"Wage audit"}`))
		require.NoError(t, DecodeJSON(req, &d))
		assert.Equal(t, "Wage audit", d.Subject)
	})

	t.Run("unknown field is a bad request", func(t *testing.T) {
		var d draft
		req := httptest.NewRequest(http.MethodPost, "/api/notices", strings.NewReader(`{"subject":"x","stage":"Open!"}`))
		assert.True(t, dErrors.HasCode(DecodeJSON(req, &d), dErrors.CodeBadRequest))
	})

	t.Run("unknown field accepted when allowed", func(t *testing.T) {
		var d draft
		req := httptest.NewRequest(http.MethodPut, "/api/notices/LN-001", strings.NewReader(`{"id":"LN-001","subject":"Wage audit","daysLeft":3}`))
		require.NoError(t, DecodeJSON(req, &d, AllowUnknownFields()))
		assert.Equal(t, "Wage audit", d.Subject)
	})

	t.Run("truncated body is a bad request", func(t *testing.T) {
		var d draft
		req := httptest.NewRequest(http.MethodPost, "/api/notices", strings.NewReader(`{"subject":`))
		assert.True(t, dErrors.HasCode(DecodeJSON(req, &d), dErrors.CodeBadRequest))
	})
}

func TestReferenceTime(t *testing.T) {
	fallback := time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC)

	t.Run("absent uses fallback", func(t *testing.T) {
		got, err := ReferenceTime(httptest.NewRequest(http.MethodGet, "/x", nil), "at", fallback)
		require.NoError(t, err)
		assert.Equal(t, fallback, got)
	})

	t.Run("date is midnight UTC", func(t *testing.T) {
		got, err := ReferenceTime(httptest.NewRequest(http.MethodGet, "/x?at=2025-01-14", nil), "at", fallback)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("timestamp", func(t *testing.T) {
		got, err := ReferenceTime(httptest.NewRequest(http.MethodGet, "/x?at=2025-01-04T23:00:00Z", nil), "at", fallback)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 1, 4, 23, 0, 0, 0, time.UTC)))
	})

	t.Run("garbage is a bad request", func(t *testing.T) {
		_, err := ReferenceTime(httptest.NewRequest(http.MethodGet, "/x?at=soon", nil), "at", fallback)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}
