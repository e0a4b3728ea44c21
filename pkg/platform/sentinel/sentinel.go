package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers return
// these (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: record does not exist in the store
// - ErrConflict: record with the same id already exists
// - ErrUnavailable: backing service (redis, kafka) temporarily unavailable
//
// For validation errors (bad input, missing fields), use the validation package.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
