package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"compliancedesk/internal/audit"
	"compliancedesk/internal/records/filter"
	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/validation"
	dErrors "compliancedesk/pkg/domain-errors"
	"compliancedesk/pkg/requestcontext"
)

// ListNotices returns the legal notices matching q in register order.
func (s *Service) ListNotices(ctx context.Context, q filter.NoticeQuery) ([]models.LegalNotice, error) {
	notices, err := s.notices.List(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, audit.RegisterNotices, "list")
	}
	return filter.Notices(notices, q), nil
}

func (s *Service) GetNotice(ctx context.Context, id string) (models.LegalNotice, error) {
	n, err := s.notices.FindByID(ctx, id)
	if err != nil {
		return models.LegalNotice{}, wrapStoreErr(err, audit.RegisterNotices, "load")
	}
	return n, nil
}

// ValidateNotice previews validation without storing anything.
func (s *Service) ValidateNotice(_ context.Context, draft validation.LegalNoticeDraft) validation.FieldErrors {
	return validation.ValidateLegalNotice(draft)
}

func (s *Service) CreateNotice(ctx context.Context, draft validation.LegalNoticeDraft) (_ models.LegalNotice, err error) {
	ctx, span := s.startSpan(ctx, "records.CreateNotice")
	defer func() { endSpan(span, err) }()

	n, err := validation.ParseLegalNotice(draft)
	if err != nil {
		return models.LegalNotice{}, s.rejectDraft(ctx, audit.RegisterNotices, err)
	}
	now := requestcontext.Now(ctx)
	n.CreatedAt = now
	n.UpdatedAt = now

	created, err := s.notices.Create(ctx, n)
	if err != nil {
		return models.LegalNotice{}, wrapStoreErr(err, audit.RegisterNotices, "create")
	}
	span.SetAttributes(attribute.String("record.id", created.ID))
	s.record(ctx, audit.RegisterNotices, audit.ActionCreated, created.ID, created.Subject, "Legal notice created successfully!")
	return created, nil
}

// UpdateNotice replaces the notice wholesale, keeping its id and creation time.
// The draft's replies replace the stored replies.
func (s *Service) UpdateNotice(ctx context.Context, id string, draft validation.LegalNoticeDraft) (_ models.LegalNotice, err error) {
	ctx, span := s.startSpan(ctx, "records.UpdateNotice", attribute.String("record.id", id))
	defer func() { endSpan(span, err) }()

	parsed, err := validation.ParseLegalNotice(draft)
	if err != nil {
		return models.LegalNotice{}, s.rejectDraft(ctx, audit.RegisterNotices, err)
	}
	now := requestcontext.Now(ctx)
	updated, err := s.notices.Modify(ctx, id, func(current models.LegalNotice) (models.LegalNotice, error) {
		parsed.CreatedAt = current.CreatedAt
		parsed.UpdatedAt = now
		return parsed, nil
	})
	if err != nil {
		return models.LegalNotice{}, wrapStoreErr(err, audit.RegisterNotices, "update")
	}
	s.record(ctx, audit.RegisterNotices, audit.ActionUpdated, updated.ID, updated.Subject, "Legal notice updated successfully!")
	return updated, nil
}

// AddReply appends a reply to the end of the notice's reply list.
func (s *Service) AddReply(ctx context.Context, id string, draft validation.ReplyDraft) (_ models.LegalNotice, err error) {
	ctx, span := s.startSpan(ctx, "records.AddReply", attribute.String("record.id", id))
	defer func() { endSpan(span, err) }()

	now := requestcontext.Now(ctx)
	reply, err := validation.ParseReply(draft, models.DateOf(now))
	if err != nil {
		return models.LegalNotice{}, s.rejectDraft(ctx, audit.RegisterNotices, err)
	}
	updated, err := s.notices.Modify(ctx, id, func(current models.LegalNotice) (models.LegalNotice, error) {
		next := current.WithReply(reply)
		next.UpdatedAt = now
		return next, nil
	})
	if err != nil {
		return models.LegalNotice{}, wrapStoreErr(err, audit.RegisterNotices, "update")
	}
	s.record(ctx, audit.RegisterNotices, audit.ActionReplyAdded, updated.ID, string(reply.Type), "Reply added successfully!")
	return updated, nil
}

func (s *Service) DeleteNotice(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "records.DeleteNotice", attribute.String("record.id", id))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return dErrors.New(dErrors.CodeBadRequest, "legal notice id is required")
	}
	if err := s.notices.Delete(ctx, id); err != nil {
		return wrapStoreErr(err, audit.RegisterNotices, "delete")
	}
	s.record(ctx, audit.RegisterNotices, audit.ActionDeleted, id, "", "Legal notice deleted successfully!")
	return nil
}
