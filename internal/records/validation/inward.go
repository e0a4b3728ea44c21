package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"compliancedesk/internal/records/models"
)

// InwardDraft is the unvalidated form input for an inward register entry.
type InwardDraft struct {
	DocumentType    string `json:"documentType" validate:"required,oneof=LETTER NOTICE AGREEMENT LICENSE INVOICE OTHER"`
	ReceivedDate    string `json:"receivedDate" validate:"required,calendardate"`
	ReceivingPerson string `json:"receivingPerson" validate:"required"`
	Department      string `json:"department" validate:"required"`
	ForwardToPerson string `json:"forwardToPerson" validate:"required"`
	PhysicalFileNo  string `json:"physicalFileNo" validate:"required"`
	Remarks         string `json:"remarks"`
}

// DraftFromInward turns a stored entry back into editable form input.
func DraftFromInward(e models.InwardRegisterEntry) InwardDraft {
	return InwardDraft{
		DocumentType:    string(e.DocumentType),
		ReceivedDate:    e.ReceivedDate.String(),
		ReceivingPerson: e.ReceivingPerson,
		Department:      e.Department,
		ForwardToPerson: e.ForwardToPerson,
		PhysicalFileNo:  e.PhysicalFileNo,
		Remarks:         e.Remarks,
	}
}

var inwardLabels = map[string]string{
	"documentType":    "Document type",
	"receivedDate":    "Received date",
	"receivingPerson": "Receiving person",
	"department":      "Department",
	"forwardToPerson": "Forward to person",
	"physicalFileNo":  "Physical file number",
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		return models.ParseDate(fl.Field().String()).Valid()
	})
	return v
}

func (d InwardDraft) trimmed() InwardDraft {
	return InwardDraft{
		DocumentType:    strings.TrimSpace(d.DocumentType),
		ReceivedDate:    strings.TrimSpace(d.ReceivedDate),
		ReceivingPerson: strings.TrimSpace(d.ReceivingPerson),
		Department:      strings.TrimSpace(d.Department),
		ForwardToPerson: strings.TrimSpace(d.ForwardToPerson),
		PhysicalFileNo:  strings.TrimSpace(d.PhysicalFileNo),
		Remarks:         strings.TrimSpace(d.Remarks),
	}
}

// ValidateInward reports every violated register constraint in field order.
func ValidateInward(d InwardDraft) FieldErrors {
	err := structValidator.Struct(d.trimmed())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{{Field: "", Message: err.Error()}}
	}
	errs := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		label := inwardLabels[fe.Field()]
		var msg string
		switch fe.Tag() {
		case "required":
			msg = label + " is required"
		case "calendardate":
			msg = label + " must be a valid date"
		default:
			msg = label + " is invalid"
		}
		errs = append(errs, FieldError{Field: fe.Field(), Message: msg})
	}
	return errs
}

// ParseInward validates the draft and, when valid, returns the typed entry.
func ParseInward(d InwardDraft) (models.InwardRegisterEntry, error) {
	if errs := ValidateInward(d); len(errs) > 0 {
		return models.InwardRegisterEntry{}, errs
	}
	t := d.trimmed()
	return models.InwardRegisterEntry{
		DocumentType:    models.InwardDocumentType(t.DocumentType),
		ReceivedDate:    models.ParseDate(t.ReceivedDate),
		ReceivingPerson: t.ReceivingPerson,
		Department:      t.Department,
		ForwardToPerson: t.ForwardToPerson,
		PhysicalFileNo:  t.PhysicalFileNo,
		Remarks:         t.Remarks,
	}, nil
}
