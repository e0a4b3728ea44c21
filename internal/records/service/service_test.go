package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"compliancedesk/internal/audit"
	"compliancedesk/internal/notify"
	"compliancedesk/internal/records/filter"
	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/status"
	"compliancedesk/internal/records/store"
	"compliancedesk/internal/records/validation"
	dErrors "compliancedesk/pkg/domain-errors"
	"compliancedesk/pkg/requestcontext"
)

// =============================================================================
// Records Service Test Suite
// =============================================================================
// Runs against the seeded in-memory stores so dashboard counts, id sequences
// and audit emission are exercised together.

type ServiceSuite struct {
	suite.Suite
	stores   *store.Stores
	auditLog *audit.InMemoryStore
	banners  *notify.InMemory
	service  *Service
	ctx      context.Context
	now      time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.stores = store.NewStores(store.DefaultSeed())
	s.auditLog = audit.NewInMemoryStore(100)
	s.banners = notify.NewInMemory(time.Minute)
	logger := slog.New(slog.DiscardHandler)

	s.service = New(s.stores.Documents, s.stores.Notices, s.stores.Inward,
		WithLogger(logger),
		WithAuditPublisher(audit.NewPublisher(s.auditLog)),
		WithNotifier(notify.NewService(s.banners, logger)),
	)
	s.now = time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithActor(requestcontext.WithTime(context.Background(), s.now), "clerk")
}

func (s *ServiceSuite) TearDownTest() {
	s.banners.Close()
}

func (s *ServiceSuite) documentDraft() validation.DocumentDraft {
	return validation.DocumentDraft{
		DocumentType:      "PSARA",
		PeriodFrom:        "2025-01-01",
		PeriodTo:          "2025-12-31",
		ExpiryDate:        "2026-01-15",
		InwardNumber:      "IN-2025-001",
		InwardDate:        "2025-01-02",
		ResponsiblePerson: "Priya Nair",
		EscalationL1:      "Security Lead",
		EscalationL2:      "Operations Head",
		EscalationL3:      "COO",
	}
}

func (s *ServiceSuite) noticeDraft() validation.LegalNoticeDraft {
	return validation.LegalNoticeDraft{
		Department:   "Legal",
		Subject:      "GST Show Cause",
		InwardNumber: "IN-LN-2025-001",
		InwardDate:   "2025-01-03",
		Period:       "60 days",
		Amount:       validation.NumericAmount(0),
		EscalationL1: "Legal Head",
		EscalationL2: "CFO",
	}
}

func (s *ServiceSuite) auditActions() []audit.Action {
	events, err := s.auditLog.List(context.Background(), audit.Query{})
	s.Require().NoError(err)
	out := make([]audit.Action, 0, len(events))
	for _, e := range events {
		out = append(out, e.Action)
	}
	return out
}

// =============================================================================
// Documents
// =============================================================================

func (s *ServiceSuite) TestCreateDocument() {
	s.Run("stores a valid draft with the next id", func() {
		doc, err := s.service.CreateDocument(s.ctx, s.documentDraft())
		s.Require().NoError(err)
		s.Equal("DOC-005", doc.ID)
		s.Equal(s.now, doc.CreatedAt)
		s.Equal(s.now, doc.UpdatedAt)
		s.Equal(models.DocumentStatusActive, doc.Status)

		s.Equal([]audit.Action{audit.ActionCreated}, s.auditActions())
		banners, err := s.banners.List(context.Background())
		s.Require().NoError(err)
		s.Require().Len(banners, 1)
		s.Equal("Document created successfully!", banners[0].Message)
	})

	s.Run("rejects an invalid draft with every field error", func() {
		draft := s.documentDraft()
		draft.ResponsiblePerson = ""
		draft.ExpiryDate = "2025-06-30"

		_, err := s.service.CreateDocument(s.ctx, draft)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		var fieldErrs validation.FieldErrors
		s.Require().True(errors.As(err, &fieldErrs))
		s.Equal([]string{"responsiblePerson", "expiryDate"}, fieldErrs.Fields())
	})
}

func (s *ServiceSuite) TestUpdateDocument() {
	s.Run("replaces wholesale and keeps creation time", func() {
		before, err := s.service.GetDocument(s.ctx, "DOC-002")
		s.Require().NoError(err)

		draft := validation.DraftFromDocument(before)
		draft.Status = "Renewed"
		updated, err := s.service.UpdateDocument(s.ctx, "DOC-002", draft)
		s.Require().NoError(err)
		s.Equal("DOC-002", updated.ID)
		s.Equal(models.DocumentStatusRenewed, updated.Status)
		s.Equal(before.CreatedAt, updated.CreatedAt)
		s.Equal(s.now, updated.UpdatedAt)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.service.UpdateDocument(s.ctx, "DOC-404", s.documentDraft())
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestDeleteDocument() {
	s.Require().NoError(s.service.DeleteDocument(s.ctx, "DOC-004"))
	_, err := s.service.GetDocument(s.ctx, "DOC-004")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.True(dErrors.HasCode(s.service.DeleteDocument(s.ctx, "DOC-004"), dErrors.CodeNotFound))
	s.True(dErrors.HasCode(s.service.DeleteDocument(s.ctx, ""), dErrors.CodeBadRequest))

	created, err := s.service.CreateDocument(s.ctx, s.documentDraft())
	s.Require().NoError(err)
	s.Equal("DOC-005", created.ID, "deleted ids are never reused")
}

func (s *ServiceSuite) TestListDocuments() {
	docs, err := s.service.ListDocuments(s.ctx, filter.DocumentQuery{Status: "Active", Search: "emily"})
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Equal("DOC-004", docs[0].ID)
}

// =============================================================================
// Legal notices
// =============================================================================

func (s *ServiceSuite) TestNotices() {
	s.Run("create defaults stage to open", func() {
		n, err := s.service.CreateNotice(s.ctx, s.noticeDraft())
		s.Require().NoError(err)
		s.Equal("LN-007", n.ID)
		s.Equal(models.NoticeStageOpen, n.Stage)
		s.NotNil(n.Replies)
	})

	s.Run("negative amount is rejected", func() {
		draft := s.noticeDraft()
		draft.Amount = validation.NumericAmount(-5)
		_, err := s.service.CreateNotice(s.ctx, draft)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("reply is appended last", func() {
		n, err := s.service.AddReply(s.ctx, "LN-002", validation.ReplyDraft{
			Text:              "Hearing attended.",
			Type:              "Advocate",
			ResponsiblePerson: "Advocate ABC",
		})
		s.Require().NoError(err)
		s.Require().Len(n.Replies, 3)
		s.Equal("Hearing attended.", n.Replies[2].Text)
		s.Equal(models.NewDate(2025, 1, 5), n.Replies[2].CreatedAt)
		s.Equal(s.now, n.UpdatedAt)
	})

	s.Run("reply to unknown notice", func() {
		_, err := s.service.AddReply(s.ctx, "LN-999", validation.ReplyDraft{Text: "x", ResponsiblePerson: "y"})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("update closes a notice", func() {
		current, err := s.service.GetNotice(s.ctx, "LN-004")
		s.Require().NoError(err)
		draft := validation.DraftFromNotice(current)
		draft.Stage = "Closed"
		draft.FinalStatus = "Resolved"
		updated, err := s.service.UpdateNotice(s.ctx, "LN-004", draft)
		s.Require().NoError(err)
		s.Equal(models.NoticeStageClosed, updated.Stage)
		s.Len(updated.Replies, 1)
	})

	s.Run("delete", func() {
		s.Require().NoError(s.service.DeleteNotice(s.ctx, "LN-006"))
		s.True(dErrors.HasCode(s.service.DeleteNotice(s.ctx, "LN-006"), dErrors.CodeNotFound))
	})

	s.Run("filters by stage and search", func() {
		list, err := s.service.ListNotices(s.ctx, filter.NoticeQuery{Stage: "Open", Search: "tax"})
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal("LN-002", list[0].ID)
	})
}

// =============================================================================
// Inward register
// =============================================================================

func (s *ServiceSuite) TestInward() {
	draft := validation.InwardDraft{
		DocumentType:    "INVOICE",
		ReceivedDate:    "2025-01-04",
		ReceivingPerson: "meera",
		Department:      "ACCOUNTS",
		ForwardToPerson: "finance",
		PhysicalFileNo:  "F-9",
	}

	created, err := s.service.CreateInward(s.ctx, draft)
	s.Require().NoError(err)
	s.Equal("INR-002", created.ID)

	draft.Remarks = "paid"
	updated, err := s.service.UpdateInward(s.ctx, created.ID, draft)
	s.Require().NoError(err)
	s.Equal("paid", updated.Remarks)

	list, err := s.service.ListInward(s.ctx, filter.InwardQuery{Department: "ACCOUNTS"})
	s.Require().NoError(err)
	s.Len(list, 1)

	_, err = s.service.CreateInward(s.ctx, validation.InwardDraft{})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	s.Require().NoError(s.service.DeleteInward(s.ctx, created.ID))
	s.Equal([]audit.Action{audit.ActionDeleted, audit.ActionUpdated, audit.ActionCreated}, s.auditActions())
}

// =============================================================================
// Dashboard
// =============================================================================

func (s *ServiceSuite) TestDashboard() {
	s.Run("seed counts at the reference date", func() {
		d, err := s.service.Dashboard(s.ctx, s.now)
		s.Require().NoError(err)
		s.Equal(status.Metrics{ExpiringDocuments: 2, OpenLegalNotices: 4, HighRisk: 2}, d.Metrics)
		s.Require().Len(d.ExpiringDocuments, 2)
		s.Equal("DOC-001", d.ExpiringDocuments[0].ID)
		s.Equal("DOC-004", d.ExpiringDocuments[1].ID)
	})

	s.Run("snapshot carries every register", func() {
		snap, err := s.service.Snapshot(s.ctx)
		s.Require().NoError(err)
		s.Len(snap.Documents, 4)
		s.Len(snap.Notices, 6)
		s.Len(snap.Inward, 1)
	})
}

func (s *ServiceSuite) TestValidationPreview() {
	s.Empty(s.service.ValidateDocument(s.ctx, s.documentDraft()))
	s.Len(s.service.ValidateNotice(s.ctx, validation.LegalNoticeDraft{}), 8)
	s.Empty(s.auditActions(), "previews never emit events")
}
