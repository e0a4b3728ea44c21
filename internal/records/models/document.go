package models

import "time"

// DocumentType is the statutory license/certificate kind a document records.
type DocumentType string

const (
	DocumentTypeCLRA       DocumentType = "CLRA"
	DocumentTypeShopAct    DocumentType = "SHOP_ACT"
	DocumentTypeISOCert    DocumentType = "ISO_CERT"
	DocumentTypePSARA      DocumentType = "PSARA"
	DocumentTypeElectrical DocumentType = "ELECTRICAL"
)

// documentTypeLabels is the single source of truth for valid document types.
var documentTypeLabels = map[DocumentType]string{
	DocumentTypeCLRA:       "Contract Labour License",
	DocumentTypeShopAct:    "Shop Act License",
	DocumentTypeISOCert:    "ISO Certification",
	DocumentTypePSARA:      "PSARA",
	DocumentTypeElectrical: "Electrical License",
}

func (t DocumentType) IsValid() bool {
	_, ok := documentTypeLabels[t]
	return ok
}

// Label is the human-readable name shown in tables and exports.
func (t DocumentType) Label() string {
	if l, ok := documentTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// DocumentStatus is the lifecycle status of a document.
type DocumentStatus string

const (
	DocumentStatusActive  DocumentStatus = "Active"
	DocumentStatusExpired DocumentStatus = "Expired"
	DocumentStatusRenewed DocumentStatus = "Renewed"
)

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusActive, DocumentStatusExpired, DocumentStatusRenewed:
		return true
	}
	return false
}

// Document is a statutory document with a coverage period and an expiry.
//
// Invariants (enforced by validation.ParseDocument, not by construction):
//   - PeriodFrom is strictly before PeriodTo
//   - ExpiryDate is not before PeriodTo
type Document struct {
	ID                string         `json:"id" yaml:"id"`
	DocumentType      DocumentType   `json:"documentType" yaml:"documentType"`
	PeriodFrom        Date           `json:"periodFrom" yaml:"periodFrom"`
	PeriodTo          Date           `json:"periodTo" yaml:"periodTo"`
	ExpiryDate        Date           `json:"expiryDate" yaml:"expiryDate"`
	InwardNumber      string         `json:"inwardNumber" yaml:"inwardNumber"`
	InwardDate        Date           `json:"inwardDate" yaml:"inwardDate"`
	AutoRenewalAlert  bool           `json:"autoRenewalAlert" yaml:"autoRenewalAlert"`
	ResponsiblePerson string         `json:"responsiblePerson" yaml:"responsiblePerson"`
	EscalationL1      string         `json:"escalationL1" yaml:"escalationL1"`
	EscalationL2      string         `json:"escalationL2" yaml:"escalationL2"`
	EscalationL3      string         `json:"escalationL3" yaml:"escalationL3"`
	Status            DocumentStatus `json:"status" yaml:"status"`
	CreatedAt         time.Time      `json:"createdAt" yaml:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt" yaml:"updatedAt"`
}

func (d Document) RecordID() string { return d.ID }

func (d Document) Clone() Document { return d }

func (d Document) WithID(id string) Document {
	d.ID = id
	return d
}

// EscalationContacts lists the contacts in severity order.
func (d Document) EscalationContacts() []string {
	return []string{d.EscalationL1, d.EscalationL2, d.EscalationL3}
}
