package validation

import (
	"strings"

	"compliancedesk/internal/records/models"
)

// LegalNoticeDraft is the unvalidated form input for a legal notice.
type LegalNoticeDraft struct {
	RelatedDocumentID string         `json:"relatedDocumentId"`
	Department        string         `json:"department"`
	Subject           string         `json:"subject"`
	InwardNumber      string         `json:"inwardNumber"`
	InwardDate        string         `json:"inwardDate"`
	Replies           []models.Reply `json:"replies"`
	Period            string         `json:"period"`
	Amount            Amount         `json:"amount"`
	Remarks           string         `json:"remarks"`
	Stage             string         `json:"stage"`
	FinalStatus       string         `json:"finalStatus"`
	AlertDays         int            `json:"alertDays"`
	EscalationL1      string         `json:"escalationL1"`
	EscalationL2      string         `json:"escalationL2"`
}

// DraftFromNotice turns a stored notice back into editable form input.
func DraftFromNotice(n models.LegalNotice) LegalNoticeDraft {
	return LegalNoticeDraft{
		RelatedDocumentID: n.RelatedDocumentID,
		Department:        n.Department,
		Subject:           n.Subject,
		InwardNumber:      n.InwardNumber,
		InwardDate:        n.InwardDate.String(),
		Replies:           append([]models.Reply(nil), n.Replies...),
		Period:            n.Period,
		Amount:            NumericAmount(n.Amount),
		Remarks:           n.Remarks,
		Stage:             string(n.Stage),
		FinalStatus:       n.FinalStatus,
		AlertDays:         n.AlertDays,
		EscalationL1:      n.EscalationL1,
		EscalationL2:      n.EscalationL2,
	}
}

// ValidateLegalNotice reports every violated notice constraint in field order.
// An amount of zero is accepted.
func ValidateLegalNotice(n LegalNoticeDraft) FieldErrors {
	errs := checkRequired([]requiredField{
		{"department", n.Department, "Department is required"},
		{"subject", n.Subject, "Subject is required"},
		{"inwardNumber", n.InwardNumber, "Inward number is required"},
		{"inwardDate", n.InwardDate, "Inward date is required"},
	})
	if !n.Amount.Numeric || n.Amount.Value < 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "Amount must be a positive number"})
	}
	errs = append(errs, checkRequired([]requiredField{
		{"period", n.Period, "Period is required"},
		{"escalationL1", n.EscalationL1, "Escalation Level 1 is required"},
		{"escalationL2", n.EscalationL2, "Escalation Level 2 is required"},
	})...)
	return errs
}

// ParseLegalNotice validates the draft and, when valid, returns the typed
// notice. A blank stage defaults to Open; any other value outside the stage
// enumeration is reported after the contract checks.
func ParseLegalNotice(n LegalNoticeDraft) (models.LegalNotice, error) {
	errs := ValidateLegalNotice(n)

	stage := models.NoticeStage(strings.TrimSpace(n.Stage))
	if stage == "" {
		stage = models.NoticeStageOpen
	}
	if !stage.IsValid() {
		errs = append(errs, FieldError{Field: "stage", Message: "Stage is invalid"})
	}
	if len(errs) > 0 {
		return models.LegalNotice{}, errs
	}

	replies := append([]models.Reply{}, n.Replies...)
	return models.LegalNotice{
		RelatedDocumentID: strings.TrimSpace(n.RelatedDocumentID),
		Department:        strings.TrimSpace(n.Department),
		Subject:           strings.TrimSpace(n.Subject),
		InwardNumber:      strings.TrimSpace(n.InwardNumber),
		InwardDate:        models.ParseDate(n.InwardDate),
		Replies:           replies,
		Period:            strings.TrimSpace(n.Period),
		Amount:            n.Amount.Value,
		Remarks:           n.Remarks,
		Stage:             stage,
		FinalStatus:       strings.TrimSpace(n.FinalStatus),
		AlertDays:         n.AlertDays,
		EscalationL1:      strings.TrimSpace(n.EscalationL1),
		EscalationL2:      strings.TrimSpace(n.EscalationL2),
	}, nil
}

// ReplyDraft is the unvalidated input for appending a reply to a notice.
type ReplyDraft struct {
	Text              string `json:"text"`
	Type              string `json:"type"`
	ResponsiblePerson string `json:"responsiblePerson"`
	CreatedAt         string `json:"createdAt"`
}

// ParseReply validates a reply. A blank type defaults to Own and a blank
// date defaults to today.
func ParseReply(r ReplyDraft, today models.Date) (models.Reply, error) {
	errs := checkRequired([]requiredField{
		{"text", r.Text, "Reply text is required"},
		{"responsiblePerson", r.ResponsiblePerson, "Responsible person is required"},
	})
	created := today
	if !isBlank(r.CreatedAt) {
		created = models.ParseDate(r.CreatedAt)
		if !created.Valid() {
			errs = append(errs, FieldError{Field: "createdAt", Message: "Reply date is invalid"})
		}
	}
	if len(errs) > 0 {
		return models.Reply{}, errs
	}
	replyType := models.ReplyType(strings.TrimSpace(r.Type))
	if replyType == "" {
		replyType = models.ReplyTypeOwn
	}
	return models.Reply{
		Text:              strings.TrimSpace(r.Text),
		Type:              replyType,
		ResponsiblePerson: strings.TrimSpace(r.ResponsiblePerson),
		CreatedAt:         created,
	}, nil
}
