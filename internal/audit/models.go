package audit

import "time"

// Action names a record change.
type Action string

const (
	ActionCreated    Action = "created"
	ActionUpdated    Action = "updated"
	ActionDeleted    Action = "deleted"
	ActionReplyAdded Action = "reply_added"
)

// Register names the collection a record belongs to.
type Register string

const (
	RegisterDocuments Register = "documents"
	RegisterNotices   Register = "notices"
	RegisterInward    Register = "inward"
)

// Event is emitted from the record services to capture every change. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Register  Register  `json:"register"`
	RecordID  string    `json:"recordId"`
	Action    Action    `json:"action"`
	Summary   string    `json:"summary,omitempty"`
	Actor     string    `json:"actor"`
	RequestID string    `json:"requestId,omitempty"`
	ClientIP  string    `json:"clientIp,omitempty"`
	Device    string    `json:"device,omitempty"`
}

// Query narrows a listing. Zero fields match anything.
type Query struct {
	Register Register
	RecordID string
	Limit    int
}

func (q Query) matches(e Event) bool {
	return (q.Register == "" || q.Register == e.Register) &&
		(q.RecordID == "" || q.RecordID == e.RecordID)
}
