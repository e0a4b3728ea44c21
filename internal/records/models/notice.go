package models

import "time"

// NoticeStage is the lifecycle phase of a legal notice.
type NoticeStage string

const (
	NoticeStageOpen   NoticeStage = "Open"
	NoticeStageClosed NoticeStage = "Closed"
)

func (s NoticeStage) IsValid() bool {
	return s == NoticeStageOpen || s == NoticeStageClosed
}

// ReplyType tags who authored a reply. Values outside the named constants
// ("Audit Body", "Authority") occur in practice and are kept verbatim.
type ReplyType string

const (
	ReplyTypeOwn        ReplyType = "Own"
	ReplyTypeAdvocate   ReplyType = "Advocate"
	ReplyTypeConsultant ReplyType = "Consultant"
)

// Reply is an immutable response entry owned by its notice.
type Reply struct {
	Text              string    `json:"text" yaml:"text"`
	Type              ReplyType `json:"type" yaml:"type"`
	ResponsiblePerson string    `json:"responsiblePerson" yaml:"responsiblePerson"`
	CreatedAt         Date      `json:"createdAt" yaml:"createdAt"`
}

// LegalNotice is a notice received from an authority or counterparty.
// Replies are kept in insertion order, which is chronological order.
type LegalNotice struct {
	ID                string      `json:"id" yaml:"id"`
	RelatedDocumentID string      `json:"relatedDocumentId,omitempty" yaml:"relatedDocumentId,omitempty"`
	Department        string      `json:"department" yaml:"department"`
	Subject           string      `json:"subject" yaml:"subject"`
	InwardNumber      string      `json:"inwardNumber" yaml:"inwardNumber"`
	InwardDate        Date        `json:"inwardDate" yaml:"inwardDate"`
	Replies           []Reply     `json:"replies" yaml:"replies"`
	Period            string      `json:"period" yaml:"period"`
	Amount            float64     `json:"amount" yaml:"amount"`
	Remarks           string      `json:"remarks" yaml:"remarks"`
	Stage             NoticeStage `json:"stage" yaml:"stage"`
	FinalStatus       string      `json:"finalStatus" yaml:"finalStatus"`
	AlertDays         int         `json:"alertDays" yaml:"alertDays"`
	EscalationL1      string      `json:"escalationL1" yaml:"escalationL1"`
	EscalationL2      string      `json:"escalationL2" yaml:"escalationL2"`
	CreatedAt         time.Time   `json:"createdAt" yaml:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt" yaml:"updatedAt"`
}

func (n LegalNotice) RecordID() string { return n.ID }

// Clone copies the notice so callers never share its reply slice.
func (n LegalNotice) Clone() LegalNotice {
	out := n
	out.Replies = append([]Reply(nil), n.Replies...)
	if out.Replies == nil {
		out.Replies = []Reply{}
	}
	return out
}

func (n LegalNotice) WithID(id string) LegalNotice {
	out := n.Clone()
	out.ID = id
	return out
}

// WithReply returns a copy of the notice with r appended.
func (n LegalNotice) WithReply(r Reply) LegalNotice {
	out := n.Clone()
	out.Replies = append(out.Replies, r)
	return out
}

func (n LegalNotice) IsOpen() bool { return n.Stage == NoticeStageOpen }

// EscalationContacts lists the contacts in severity order.
func (n LegalNotice) EscalationContacts() []string {
	return []string{n.EscalationL1, n.EscalationL2}
}
