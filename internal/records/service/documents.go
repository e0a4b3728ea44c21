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

// ListDocuments returns the documents matching q in register order.
func (s *Service) ListDocuments(ctx context.Context, q filter.DocumentQuery) ([]models.Document, error) {
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, audit.RegisterDocuments, "list")
	}
	return filter.Documents(docs, q), nil
}

func (s *Service) GetDocument(ctx context.Context, id string) (models.Document, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return models.Document{}, wrapStoreErr(err, audit.RegisterDocuments, "load")
	}
	return doc, nil
}

// ValidateDocument previews validation without storing anything.
func (s *Service) ValidateDocument(_ context.Context, draft validation.DocumentDraft) validation.FieldErrors {
	return validation.ValidateDocument(draft)
}

func (s *Service) CreateDocument(ctx context.Context, draft validation.DocumentDraft) (_ models.Document, err error) {
	ctx, span := s.startSpan(ctx, "records.CreateDocument")
	defer func() { endSpan(span, err) }()

	doc, err := validation.ParseDocument(draft)
	if err != nil {
		return models.Document{}, s.rejectDraft(ctx, audit.RegisterDocuments, err)
	}
	now := requestcontext.Now(ctx)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	created, err := s.documents.Create(ctx, doc)
	if err != nil {
		return models.Document{}, wrapStoreErr(err, audit.RegisterDocuments, "create")
	}
	span.SetAttributes(attribute.String("record.id", created.ID))
	s.record(ctx, audit.RegisterDocuments, audit.ActionCreated, created.ID, created.InwardNumber, "Document created successfully!")
	return created, nil
}

// UpdateDocument replaces the document wholesale, keeping its id and
// creation time.
func (s *Service) UpdateDocument(ctx context.Context, id string, draft validation.DocumentDraft) (_ models.Document, err error) {
	ctx, span := s.startSpan(ctx, "records.UpdateDocument", attribute.String("record.id", id))
	defer func() { endSpan(span, err) }()

	parsed, err := validation.ParseDocument(draft)
	if err != nil {
		return models.Document{}, s.rejectDraft(ctx, audit.RegisterDocuments, err)
	}
	now := requestcontext.Now(ctx)
	updated, err := s.documents.Modify(ctx, id, func(current models.Document) (models.Document, error) {
		parsed.CreatedAt = current.CreatedAt
		parsed.UpdatedAt = now
		return parsed, nil
	})
	if err != nil {
		return models.Document{}, wrapStoreErr(err, audit.RegisterDocuments, "update")
	}
	s.record(ctx, audit.RegisterDocuments, audit.ActionUpdated, updated.ID, updated.InwardNumber, "Document updated successfully!")
	return updated, nil
}

func (s *Service) DeleteDocument(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "records.DeleteDocument", attribute.String("record.id", id))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return dErrors.New(dErrors.CodeBadRequest, "document id is required")
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return wrapStoreErr(err, audit.RegisterDocuments, "delete")
	}
	s.record(ctx, audit.RegisterDocuments, audit.ActionDeleted, id, "", "Document deleted successfully!")
	return nil
}
