// Package service orchestrates the three registers: it parses drafts, stamps
// timestamps, persists through the stores and emits audit events,
// notifications and metrics on every change.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"compliancedesk/internal/audit"
	"compliancedesk/internal/notify"
	recordmetrics "compliancedesk/internal/records/metrics"
	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/validation"
	dErrors "compliancedesk/pkg/domain-errors"
	"compliancedesk/pkg/platform/sentinel"
	"compliancedesk/pkg/requestcontext"
)

// Store is the state container for one register.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Modify(ctx context.Context, id string, fn func(T) (T, error)) (T, error)
	Delete(ctx context.Context, id string) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

type Notifier interface {
	Notify(ctx context.Context, kind notify.Kind, message string)
}

// Service orchestrates document, legal notice and inward register management.
type Service struct {
	documents Store[models.Document]
	notices   Store[models.LegalNotice]
	inward    Store[models.InwardRegisterEntry]

	logger   *slog.Logger
	metrics  *recordmetrics.Metrics
	auditor  AuditPublisher
	notifier Notifier
	tracer   trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *recordmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = publisher
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(documents Store[models.Document], notices Store[models.LegalNotice], inward Store[models.InwardRegisterEntry], opts ...Option) *Service {
	s := &Service{
		documents: documents,
		notices:   notices,
		inward:    inward,
		logger:    slog.Default(),
		tracer:    otel.Tracer("compliancedesk/records"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// record emits the audit event, success banner and counter for a mutation.
func (s *Service) record(ctx context.Context, register audit.Register, action audit.Action, id, summary, banner string) {
	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{
			Register: register,
			RecordID: id,
			Action:   action,
			Summary:  summary,
		})
	}
	if s.notifier != nil && banner != "" {
		s.notifier.Notify(ctx, notify.KindSuccess, banner)
	}
	s.metrics.IncrementOperation(string(register), string(action))
	s.logger.InfoContext(ctx, "record changed",
		"request_id", requestcontext.RequestID(ctx),
		"register", register,
		"action", action,
		"record_id", id,
	)
}

// rejectDraft converts a parse failure into a validation error.
func (s *Service) rejectDraft(ctx context.Context, register audit.Register, err error) error {
	s.metrics.IncrementValidationFailure(string(register))
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		s.logger.InfoContext(ctx, "draft rejected",
			"request_id", requestcontext.RequestID(ctx),
			"register", register,
			"fields", fieldErrs.Fields(),
		)
		return dErrors.Wrap(fieldErrs, dErrors.CodeValidation, fmt.Sprintf("%s draft is invalid", singular(register)))
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to parse draft")
}

func wrapStoreErr(err error, register audit.Register, op string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, singular(register)+" not found")
	}
	if dErrors.CodeOf(err) != dErrors.CodeInternal {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("failed to %s %s", op, singular(register)))
}

func singular(register audit.Register) string {
	switch register {
	case audit.RegisterDocuments:
		return "document"
	case audit.RegisterNotices:
		return "legal notice"
	case audit.RegisterInward:
		return "inward entry"
	default:
		return "record"
	}
}
