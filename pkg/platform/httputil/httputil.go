// Package httputil holds the JSON envelope helpers shared by every handler.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	dErrors "compliancedesk/pkg/domain-errors"
)

// maxBodyBytes caps request bodies; record drafts are a few hundred bytes.
const maxBodyBytes = 1 << 20

// Detailed is implemented by errors that carry a structured payload for the
// client, such as a batch of field errors.
type Detailed interface {
	ErrorDetails() any
}

type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
	Errors      any    `json:"errors,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error to its HTTP status and JSON envelope.
// Internal errors never leak their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	resp := errorResponse{Error: string(code)}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if errors.As(err, &de) {
			resp.Description = de.Message
		}
	}
	var detailed Detailed
	if errors.As(err, &detailed) {
		resp.Errors = detailed.ErrorDetails()
	}
	WriteJSON(w, StatusFor(code), resp)
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict, dErrors.CodeInvariantViolation:
		return http.StatusConflict
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DecodeOption adjusts how DecodeJSON treats a request body.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	allowUnknown bool
}

// AllowUnknownFields accepts fields the target does not declare. Update
// routes use it so a client can send back the record it fetched, derived
// fields and all.
func AllowUnknownFields() DecodeOption {
	return func(c *decodeConfig) { c.allowUnknown = true }
}

// DecodeJSON decodes the request body into v. Unknown fields are rejected
// unless AllowUnknownFields is given.
func DecodeJSON(r *http.Request, v any, opts ...DecodeOption) error {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if !cfg.allowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

// ReferenceTime reads an optional date (YYYY-MM-DD) or RFC 3339 instant from
// the named query parameter. When absent, fallback is returned.
func ReferenceTime(r *http.Request, param string, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(param))
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, dErrors.New(dErrors.CodeBadRequest, param+" must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
}
