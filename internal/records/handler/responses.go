package handler

import (
	"time"

	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/service"
	"compliancedesk/internal/records/status"
	"compliancedesk/internal/records/validation"
)

// DocumentResponse is a document plus its derived columns at response time.
type DocumentResponse struct {
	models.Document
	TypeLabel string `json:"typeLabel"`
	status.Derived
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Count     int                `json:"count"`
}

type NoticeListResponse struct {
	Notices []models.LegalNotice `json:"notices"`
	Count   int                  `json:"count"`
}

type InwardListResponse struct {
	Entries []models.InwardRegisterEntry `json:"entries"`
	Count   int                          `json:"count"`
}

type ValidationResponse struct {
	Valid  bool                    `json:"valid"`
	Errors []validation.FieldError `json:"errors"`
}

type DashboardResponse struct {
	At                string             `json:"at"`
	ExpiringDocuments int                `json:"expiringDocuments"`
	OpenLegalNotices  int                `json:"openLegalNotices"`
	HighRisk          int                `json:"highRisk"`
	Expiring          []DocumentResponse `json:"expiring"`
}

func toDocumentResponse(d models.Document, now time.Time) DocumentResponse {
	return DocumentResponse{
		Document:  d,
		TypeLabel: d.DocumentType.Label(),
		Derived:   status.Derive(d, now),
	}
}

func toValidationResponse(errs validation.FieldErrors) ValidationResponse {
	out := ValidationResponse{Valid: len(errs) == 0, Errors: []validation.FieldError{}}
	if len(errs) > 0 {
		out.Errors = errs
	}
	return out
}

func toDashboardResponse(d service.Dashboard) DashboardResponse {
	expiring := make([]DocumentResponse, 0, len(d.ExpiringDocuments))
	for _, doc := range d.ExpiringDocuments {
		expiring = append(expiring, toDocumentResponse(doc, d.At))
	}
	return DashboardResponse{
		At:                d.At.UTC().Format(time.RFC3339),
		ExpiringDocuments: d.Metrics.ExpiringDocuments,
		OpenLegalNotices:  d.Metrics.OpenLegalNotices,
		HighRisk:          d.Metrics.HighRisk,
		Expiring:          expiring,
	}
}
