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

// ListInward returns the register entries matching q in register order.
func (s *Service) ListInward(ctx context.Context, q filter.InwardQuery) ([]models.InwardRegisterEntry, error) {
	entries, err := s.inward.List(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, audit.RegisterInward, "list")
	}
	return filter.Inward(entries, q), nil
}

func (s *Service) GetInward(ctx context.Context, id string) (models.InwardRegisterEntry, error) {
	e, err := s.inward.FindByID(ctx, id)
	if err != nil {
		return models.InwardRegisterEntry{}, wrapStoreErr(err, audit.RegisterInward, "load")
	}
	return e, nil
}

func (s *Service) CreateInward(ctx context.Context, draft validation.InwardDraft) (_ models.InwardRegisterEntry, err error) {
	ctx, span := s.startSpan(ctx, "records.CreateInward")
	defer func() { endSpan(span, err) }()

	entry, err := validation.ParseInward(draft)
	if err != nil {
		return models.InwardRegisterEntry{}, s.rejectDraft(ctx, audit.RegisterInward, err)
	}
	now := requestcontext.Now(ctx)
	entry.CreatedAt = now
	entry.UpdatedAt = now

	created, err := s.inward.Create(ctx, entry)
	if err != nil {
		return models.InwardRegisterEntry{}, wrapStoreErr(err, audit.RegisterInward, "create")
	}
	span.SetAttributes(attribute.String("record.id", created.ID))
	s.record(ctx, audit.RegisterInward, audit.ActionCreated, created.ID, created.PhysicalFileNo, "Inward entry created successfully!")
	return created, nil
}

func (s *Service) UpdateInward(ctx context.Context, id string, draft validation.InwardDraft) (_ models.InwardRegisterEntry, err error) {
	ctx, span := s.startSpan(ctx, "records.UpdateInward", attribute.String("record.id", id))
	defer func() { endSpan(span, err) }()

	parsed, err := validation.ParseInward(draft)
	if err != nil {
		return models.InwardRegisterEntry{}, s.rejectDraft(ctx, audit.RegisterInward, err)
	}
	now := requestcontext.Now(ctx)
	updated, err := s.inward.Modify(ctx, id, func(current models.InwardRegisterEntry) (models.InwardRegisterEntry, error) {
		parsed.CreatedAt = current.CreatedAt
		parsed.UpdatedAt = now
		return parsed, nil
	})
	if err != nil {
		return models.InwardRegisterEntry{}, wrapStoreErr(err, audit.RegisterInward, "update")
	}
	s.record(ctx, audit.RegisterInward, audit.ActionUpdated, updated.ID, updated.PhysicalFileNo, "Inward entry updated successfully!")
	return updated, nil
}

func (s *Service) DeleteInward(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "records.DeleteInward", attribute.String("record.id", id))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return dErrors.New(dErrors.CodeBadRequest, "inward entry id is required")
	}
	if err := s.inward.Delete(ctx, id); err != nil {
		return wrapStoreErr(err, audit.RegisterInward, "delete")
	}
	s.record(ctx, audit.RegisterInward, audit.ActionDeleted, id, "", "Inward entry deleted successfully!")
	return nil
}
