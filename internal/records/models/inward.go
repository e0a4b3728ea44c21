package models

import "time"

// InwardDocumentType classifies correspondence entered in the inward register.
type InwardDocumentType string

const (
	InwardLetter    InwardDocumentType = "LETTER"
	InwardNotice    InwardDocumentType = "NOTICE"
	InwardAgreement InwardDocumentType = "AGREEMENT"
	InwardLicense   InwardDocumentType = "LICENSE"
	InwardInvoice   InwardDocumentType = "INVOICE"
	InwardOther     InwardDocumentType = "OTHER"
)

// InwardDocumentTypes lists the register's document types in form order.
var InwardDocumentTypes = []InwardDocumentType{
	InwardLetter, InwardNotice, InwardAgreement, InwardLicense, InwardInvoice, InwardOther,
}

// InwardDepartments lists the departments offered by the register form.
var InwardDepartments = []string{"ACCOUNTS", "ADMIN", "BILLING", "HR", "OPERATIONS"}

// InwardRegisterEntry records a piece of correspondence received by the records office.
type InwardRegisterEntry struct {
	ID              string             `json:"id" yaml:"id"`
	DocumentType    InwardDocumentType `json:"documentType" yaml:"documentType"`
	ReceivedDate    Date               `json:"receivedDate" yaml:"receivedDate"`
	ReceivingPerson string             `json:"receivingPerson" yaml:"receivingPerson"`
	Department      string             `json:"department" yaml:"department"`
	ForwardToPerson string             `json:"forwardToPerson" yaml:"forwardToPerson"`
	PhysicalFileNo  string             `json:"physicalFileNo" yaml:"physicalFileNo"`
	Remarks         string             `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" yaml:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" yaml:"updatedAt"`
}

func (e InwardRegisterEntry) RecordID() string { return e.ID }

func (e InwardRegisterEntry) Clone() InwardRegisterEntry { return e }

func (e InwardRegisterEntry) WithID(id string) InwardRegisterEntry {
	e.ID = id
	return e
}
