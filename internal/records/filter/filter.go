// Package filter holds the conjunctive list predicates behind the register
// tables. A selector of "all" or "" matches anything; search is a
// case-insensitive substring match over a fixed set of fields.
package filter

import (
	"strings"

	"compliancedesk/internal/records/models"
)

// All is the selector value that disables a filter.
const All = "all"

// DocumentQuery selects documents.
type DocumentQuery struct {
	Status string
	Type   string
	Search string
}

// NoticeQuery selects legal notices.
type NoticeQuery struct {
	Stage  string
	Search string
}

// InwardQuery selects inward register entries.
type InwardQuery struct {
	Department string
	Search     string
}

func selects(selector, value string) bool {
	selector = strings.TrimSpace(selector)
	return selector == "" || strings.EqualFold(selector, All) || selector == value
}

func contains(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// MatchDocument reports whether d satisfies every part of q.
func MatchDocument(d models.Document, q DocumentQuery) bool {
	return selects(q.Status, string(d.Status)) &&
		selects(q.Type, string(d.DocumentType)) &&
		contains(q.Search, d.InwardNumber, d.ResponsiblePerson)
}

// MatchNotice reports whether n satisfies every part of q.
func MatchNotice(n models.LegalNotice, q NoticeQuery) bool {
	return selects(q.Stage, string(n.Stage)) &&
		contains(q.Search, n.Subject, n.Department)
}

// MatchInward reports whether e satisfies every part of q.
func MatchInward(e models.InwardRegisterEntry, q InwardQuery) bool {
	return selects(q.Department, e.Department) &&
		contains(q.Search, e.ReceivingPerson, e.ForwardToPerson, string(e.DocumentType), e.PhysicalFileNo)
}

// Documents returns the matching documents in input order.
func Documents(docs []models.Document, q DocumentQuery) []models.Document {
	return keep(docs, func(d models.Document) bool { return MatchDocument(d, q) })
}

// Notices returns the matching notices in input order.
func Notices(notices []models.LegalNotice, q NoticeQuery) []models.LegalNotice {
	return keep(notices, func(n models.LegalNotice) bool { return MatchNotice(n, q) })
}

// Inward returns the matching register entries in input order.
func Inward(entries []models.InwardRegisterEntry, q InwardQuery) []models.InwardRegisterEntry {
	return keep(entries, func(e models.InwardRegisterEntry) bool { return MatchInward(e, q) })
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
