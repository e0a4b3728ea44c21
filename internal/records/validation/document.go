package validation

import (
	"strings"

	"compliancedesk/internal/records/models"
)

// DocumentDraft is the unvalidated form input for a document.
type DocumentDraft struct {
	DocumentType      string `json:"documentType"`
	PeriodFrom        string `json:"periodFrom"`
	PeriodTo          string `json:"periodTo"`
	ExpiryDate        string `json:"expiryDate"`
	InwardNumber      string `json:"inwardNumber"`
	InwardDate        string `json:"inwardDate"`
	AutoRenewalAlert  bool   `json:"autoRenewalAlert"`
	ResponsiblePerson string `json:"responsiblePerson"`
	EscalationL1      string `json:"escalationL1"`
	EscalationL2      string `json:"escalationL2"`
	EscalationL3      string `json:"escalationL3"`
	Status            string `json:"status"`
}

// DraftFromDocument turns a stored document back into editable form input.
func DraftFromDocument(d models.Document) DocumentDraft {
	return DocumentDraft{
		DocumentType:      string(d.DocumentType),
		PeriodFrom:        d.PeriodFrom.String(),
		PeriodTo:          d.PeriodTo.String(),
		ExpiryDate:        d.ExpiryDate.String(),
		InwardNumber:      d.InwardNumber,
		InwardDate:        d.InwardDate.String(),
		AutoRenewalAlert:  d.AutoRenewalAlert,
		ResponsiblePerson: d.ResponsiblePerson,
		EscalationL1:      d.EscalationL1,
		EscalationL2:      d.EscalationL2,
		EscalationL3:      d.EscalationL3,
		Status:            string(d.Status),
	}
}

// ValidateDocument reports every violated document constraint: required
// fields in declaration order, then the two date-ordering checks.
//
// The ordering checks run even when the dates were reported missing; a blank
// or unparsable date compares false against everything, so it raises no
// ordering error of its own.
func ValidateDocument(d DocumentDraft) FieldErrors {
	errs := checkRequired([]requiredField{
		{"documentType", d.DocumentType, "Document type is required"},
		{"periodFrom", d.PeriodFrom, "Period from date is required"},
		{"periodTo", d.PeriodTo, "Period to date is required"},
		{"expiryDate", d.ExpiryDate, "Expiry date is required"},
		{"inwardNumber", d.InwardNumber, "Inward number is required"},
		{"inwardDate", d.InwardDate, "Inward date is required"},
		{"responsiblePerson", d.ResponsiblePerson, "Responsible person is required"},
		{"escalationL1", d.EscalationL1, "Escalation Level 1 is required"},
		{"escalationL2", d.EscalationL2, "Escalation Level 2 is required"},
		{"escalationL3", d.EscalationL3, "Escalation Level 3 is required"},
	})

	from := models.ParseDate(d.PeriodFrom)
	to := models.ParseDate(d.PeriodTo)
	expiry := models.ParseDate(d.ExpiryDate)

	if from.Valid() && to.Valid() && !from.Before(to) {
		errs = append(errs, FieldError{Field: "periodTo", Message: "Period To must be after Period From"})
	}
	if expiry.Before(to) {
		errs = append(errs, FieldError{Field: "expiryDate", Message: "Expiry date must be after Period To"})
	}
	return errs
}

// ParseDocument validates the draft and, when valid, returns the typed
// document. Enumerated values outside their enumeration are reported after
// the contract checks. A blank status defaults to Active.
//
// The returned document has no id or timestamps; the caller assigns them.
func ParseDocument(d DocumentDraft) (models.Document, error) {
	errs := ValidateDocument(d)

	docType := models.DocumentType(strings.TrimSpace(d.DocumentType))
	if !isBlank(d.DocumentType) && !docType.IsValid() {
		errs = append(errs, FieldError{Field: "documentType", Message: "Document type is invalid"})
	}
	status := models.DocumentStatus(strings.TrimSpace(d.Status))
	if status == "" {
		status = models.DocumentStatusActive
	}
	if !status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "Status is invalid"})
	}
	if len(errs) > 0 {
		return models.Document{}, errs
	}

	return models.Document{
		DocumentType:      docType,
		PeriodFrom:        models.ParseDate(d.PeriodFrom),
		PeriodTo:          models.ParseDate(d.PeriodTo),
		ExpiryDate:        models.ParseDate(d.ExpiryDate),
		InwardNumber:      strings.TrimSpace(d.InwardNumber),
		InwardDate:        models.ParseDate(d.InwardDate),
		AutoRenewalAlert:  d.AutoRenewalAlert,
		ResponsiblePerson: strings.TrimSpace(d.ResponsiblePerson),
		EscalationL1:      strings.TrimSpace(d.EscalationL1),
		EscalationL2:      strings.TrimSpace(d.EscalationL2),
		EscalationL3:      strings.TrimSpace(d.EscalationL3),
		Status:            status,
	}, nil
}
