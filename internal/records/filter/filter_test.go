package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"compliancedesk/internal/records/filter"
	"compliancedesk/internal/records/models"
)

func ids[T models.Record[T]](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.RecordID())
	}
	return out
}

var documents = []models.Document{
	{ID: "DOC-001", DocumentType: models.DocumentTypeCLRA, InwardNumber: "IN-2023-001", ResponsiblePerson: "John Smith", Status: models.DocumentStatusActive},
	{ID: "DOC-002", DocumentType: models.DocumentTypeISOCert, InwardNumber: "IN-2022-045", ResponsiblePerson: "Sarah Johnson", Status: models.DocumentStatusActive},
	{ID: "DOC-003", DocumentType: models.DocumentTypeShopAct, InwardNumber: "IN-2020-012", ResponsiblePerson: "Michael Brown", Status: models.DocumentStatusExpired},
}

func TestDocuments(t *testing.T) {
	tests := []struct {
		name string
		q    filter.DocumentQuery
		want []string
	}{
		{"zero query matches all", filter.DocumentQuery{}, []string{"DOC-001", "DOC-002", "DOC-003"}},
		{"all selectors match all", filter.DocumentQuery{Status: "all", Type: "all"}, []string{"DOC-001", "DOC-002", "DOC-003"}},
		{"status", filter.DocumentQuery{Status: "Expired"}, []string{"DOC-003"}},
		{"type", filter.DocumentQuery{Type: "ISO_CERT"}, []string{"DOC-002"}},
		{"search person case-insensitive", filter.DocumentQuery{Search: "sMiTh"}, []string{"DOC-001"}},
		{"search inward number", filter.DocumentQuery{Search: "2022"}, []string{"DOC-002"}},
		{"conjunctive", filter.DocumentQuery{Status: "Active", Search: "brown"}, []string{}},
		{"search term is not trimmed", filter.DocumentQuery{Search: "smith "}, []string{}},
		{"leading space is part of the term", filter.DocumentQuery{Search: " 2022"}, []string{}},
		{"no match", filter.DocumentQuery{Type: "PSARA"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(filter.Documents(documents, tt.q)))
		})
	}
}

func TestNotices(t *testing.T) {
	notices := []models.LegalNotice{
		{ID: "LN-001", Department: "HR", Subject: "Contract Labour Compliance Review", Stage: models.NoticeStageOpen},
		{ID: "LN-002", Department: "Legal", Subject: "Tax Notice - FY 2023-24", Stage: models.NoticeStageOpen},
		{ID: "LN-003", Department: "Operations", Subject: "Shop Act Violation Notice", Stage: models.NoticeStageClosed},
	}

	assert.Equal(t, []string{"LN-001", "LN-002"}, ids(filter.Notices(notices, filter.NoticeQuery{Stage: "Open"})))
	assert.Equal(t, []string{"LN-002", "LN-003"}, ids(filter.Notices(notices, filter.NoticeQuery{Search: "notice"})))
	assert.Equal(t, []string{"LN-002"}, ids(filter.Notices(notices, filter.NoticeQuery{Stage: "Open", Search: "NOTICE"})))
	assert.Equal(t, []string{"LN-003"}, ids(filter.Notices(notices, filter.NoticeQuery{Search: "operations"})))
}

func TestInward(t *testing.T) {
	entries := []models.InwardRegisterEntry{
		{ID: "INR-001", DocumentType: models.InwardLetter, Department: "HR", ReceivingPerson: "pratik", ForwardToPerson: "ops", PhysicalFileNo: "21"},
		{ID: "INR-002", DocumentType: models.InwardInvoice, Department: "ACCOUNTS", ReceivingPerson: "meera", ForwardToPerson: "finance", PhysicalFileNo: "F-9"},
	}

	assert.Equal(t, []string{"INR-002"}, ids(filter.Inward(entries, filter.InwardQuery{Department: "ACCOUNTS"})))
	assert.Equal(t, []string{"INR-001"}, ids(filter.Inward(entries, filter.InwardQuery{Search: "letter"})))
	assert.Equal(t, []string{"INR-002"}, ids(filter.Inward(entries, filter.InwardQuery{Search: "f-9"})))
	assert.Equal(t, []string{"INR-001", "INR-002"}, ids(filter.Inward(entries, filter.InwardQuery{Department: "All"})))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	before := append([]models.Document(nil), documents...)
	filter.Documents(documents, filter.DocumentQuery{Status: "Expired"})
	assert.Equal(t, before, documents)
}
