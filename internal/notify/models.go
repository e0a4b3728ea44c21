// Package notify keeps short-lived banner notifications. Each banner
// disappears on its own after a fixed delay unless it is dismissed first.
package notify

import "time"

// Kind is the banner severity.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Title is the banner heading shown above the message.
func (k Kind) Title() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindError:
		return "Error"
	case KindWarning:
		return "Warning"
	default:
		return "Info"
	}
}

// DefaultTTL is how long a banner stays visible.
const DefaultTTL = 5 * time.Second

type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
