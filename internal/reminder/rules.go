// Package reminder computes escalation reminders for documents nearing expiry
// and legal notices nearing their reply deadline, and runs the daily sweep.
package reminder

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/status"
	pkgstrings "compliancedesk/pkg/platform/strings"
)

// Level is the escalation tier a reminder is addressed to.
type Level string

const (
	LevelL1 Level = "L1"
	LevelL2 Level = "L2"
	LevelL3 Level = "L3"
)

// Levels lists the tiers in escalation order.
var Levels = []Level{LevelL1, LevelL2, LevelL3}

// Subject identifies the register a reminder came from.
type Subject string

const (
	SubjectDocument Subject = "document"
	SubjectNotice   Subject = "notice"
)

// FinalWarningDays is the last stretch before expiry that goes to level 2.
const FinalWarningDays = 7

// Reminder is one escalation due at the reference instant.
type Reminder struct {
	Subject    Subject     `json:"subject"`
	RecordID   string      `json:"recordId"`
	Title      string      `json:"title"`
	Level      Level       `json:"level"`
	DaysLeft   int         `json:"daysLeft"`
	Due        models.Date `json:"due"`
	EscalateTo string      `json:"escalateTo"`
	// Recipients is the escalation chain up to and including Level.
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
}

// ForDocuments returns reminders for documents that asked for renewal alerts.
// A document is due when its expiry falls inside the expiring window or has
// already passed. Renewed documents are skipped.
func ForDocuments(docs []models.Document, now time.Time) []Reminder {
	var out []Reminder
	for _, d := range docs {
		if !d.AutoRenewalAlert || d.Status == models.DocumentStatusRenewed {
			continue
		}
		left, ok := status.DaysUntilExpiry(d.ExpiryDate, now)
		if !ok || left > status.ExpiringWindowDays {
			continue
		}
		r := Reminder{
			Subject:  SubjectDocument,
			RecordID: d.ID,
			Title:    d.DocumentType.Label(),
			DaysLeft: left,
			Due:      d.ExpiryDate,
		}
		switch {
		case left < 0:
			r.Level, r.EscalateTo = LevelL3, d.EscalationL3
			r.Message = fmt.Sprintf("%s (%s) expired %d day(s) ago; escalate to %s", d.ID, r.Title, -left, r.EscalateTo)
		case left <= FinalWarningDays:
			r.Level, r.EscalateTo = LevelL2, d.EscalationL2
			r.Message = fmt.Sprintf("%s (%s) expires in %d day(s); escalate to %s", d.ID, r.Title, left, r.EscalateTo)
		default:
			r.Level, r.EscalateTo = LevelL1, d.EscalationL1
			r.Message = fmt.Sprintf("%s (%s) expires in %d day(s); notify %s", d.ID, r.Title, left, r.EscalateTo)
		}
		r.Recipients = chain(d.EscalationContacts(), r.Level)
		out = append(out, r)
	}
	return out
}

// ForNotices returns reminders for open notices. The reply deadline is the
// inward date plus the notice period; notices whose period does not read as
// a day count have no deadline and are skipped.
func ForNotices(notices []models.LegalNotice, now time.Time) []Reminder {
	var out []Reminder
	for _, n := range notices {
		if !n.IsOpen() {
			continue
		}
		deadline, ok := Deadline(n)
		if !ok {
			continue
		}
		left, ok := status.DaysUntilExpiry(deadline, now)
		if !ok {
			continue
		}
		r := Reminder{
			Subject:  SubjectNotice,
			RecordID: n.ID,
			Title:    n.Subject,
			DaysLeft: left,
			Due:      deadline,
		}
		switch {
		case left < 0:
			r.Level, r.EscalateTo = LevelL2, n.EscalationL2
			r.Message = fmt.Sprintf("%s %q reply overdue by %d day(s); escalate to %s", n.ID, n.Subject, -left, r.EscalateTo)
		case left <= n.AlertDays:
			r.Level, r.EscalateTo = LevelL1, n.EscalationL1
			r.Message = fmt.Sprintf("%s %q reply due in %d day(s); notify %s", n.ID, n.Subject, left, r.EscalateTo)
		default:
			continue
		}
		r.Recipients = chain(n.EscalationContacts(), r.Level)
		out = append(out, r)
	}
	return out
}

// Due merges document and notice reminders, most urgent first.
func Due(docs []models.Document, notices []models.LegalNotice, now time.Time) []Reminder {
	out := append(ForDocuments(docs, now), ForNotices(notices, now)...)
	slices.SortStableFunc(out, func(a, b Reminder) int {
		if c := cmp.Compare(a.DaysLeft, b.DaysLeft); c != 0 {
			return c
		}
		return cmp.Compare(a.RecordID, b.RecordID)
	})
	return out
}

var periodDays = regexp.MustCompile(`(?i)^\s*(\d+)\s*days?\s*$`)

// PeriodDays reads a notice period such as "30 days".
func PeriodDays(period string) (int, bool) {
	m := periodDays.FindStringSubmatch(period)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Deadline is the notice's reply-by date.
func Deadline(n models.LegalNotice) (models.Date, bool) {
	days, ok := PeriodDays(n.Period)
	if !ok || !n.InwardDate.Valid() {
		return models.Date{}, false
	}
	return n.InwardDate.AddDays(days), true
}

// chain returns the contacts up to the level, without blanks or repeats.
func chain(contacts []string, level Level) []string {
	n := slices.Index(Levels, level) + 1
	if n > len(contacts) {
		n = len(contacts)
	}
	return pkgstrings.UniqueNames(contacts[:n])
}

// CountByLevel tallies reminders per level; every level is present.
func CountByLevel(reminders []Reminder) map[Level]int {
	out := make(map[Level]int, len(Levels))
	for _, l := range Levels {
		out[l] = 0
	}
	for _, r := range reminders {
		out[r.Level]++
	}
	return out
}
