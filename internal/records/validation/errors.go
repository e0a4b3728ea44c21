// Package validation checks record drafts before they reach a store.
//
// Validation is total: every violated constraint is reported in one pass so a
// form can highlight all problems at once. All functions are pure; they never
// perform I/O and never mutate their input.
package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single violated constraint keyed by the draft's field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is an ordered batch of violations. A nil or empty batch means valid.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("%d invalid field(s): %s", len(e), strings.Join(parts, "; "))
}

// ErrorDetails exposes the batch to the HTTP error envelope.
func (e FieldErrors) ErrorDetails() any {
	return []FieldError(e)
}

// Fields lists the offending field names in report order, without duplicates.
func (e FieldErrors) Fields() []string {
	seen := make(map[string]struct{}, len(e))
	out := make([]string, 0, len(e))
	for _, fe := range e {
		if _, ok := seen[fe.Field]; ok {
			continue
		}
		seen[fe.Field] = struct{}{}
		out = append(out, fe.Field)
	}
	return out
}

// ByField collapses the batch to one message per field. When a field has
// several violations the last one wins.
func (e FieldErrors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.Field] = fe.Message
	}
	return out
}

// Without returns the batch minus every error for field. Forms call this as
// soon as a field is edited so stale errors disappear immediately.
func (e FieldErrors) Without(field string) FieldErrors {
	var out FieldErrors
	for _, fe := range e {
		if fe.Field != field {
			out = append(out, fe)
		}
	}
	return out
}

// requiredField pairs a draft field with its presence message.
type requiredField struct {
	name    string
	value   string
	message string
}

func checkRequired(fields []requiredField) FieldErrors {
	var errs FieldErrors
	for _, f := range fields {
		if isBlank(f.value) {
			errs = append(errs, FieldError{Field: f.name, Message: f.message})
		}
	}
	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
