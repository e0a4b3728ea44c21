package notify

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	dErrors "compliancedesk/pkg/domain-errors"
	"compliancedesk/pkg/platform/sentinel"
	"compliancedesk/pkg/requestcontext"
)

// Store holds banners until they expire or are dismissed.
type Store interface {
	Push(ctx context.Context, n Notification) (Notification, error)
	List(ctx context.Context) ([]Notification, error)
	Dismiss(ctx context.Context, id string) error
}

// Service raises and dismisses banners.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Notify raises a banner. It is best-effort: a store failure is logged and
// the banner is skipped.
func (s *Service) Notify(ctx context.Context, kind Kind, message string) {
	if s == nil || strings.TrimSpace(message) == "" {
		return
	}
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     kind.Title(),
		Message:   message,
		CreatedAt: requestcontext.Now(ctx),
	}
	if _, err := s.store.Push(ctx, n); err != nil {
		s.logger.WarnContext(ctx, "failed to raise notification",
			"request_id", requestcontext.RequestID(ctx),
			"kind", kind,
			"error", err,
		)
	}
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, translate(err, "failed to list notifications")
	}
	return list, nil
}

func (s *Service) Dismiss(ctx context.Context, id string) error {
	if err := s.store.Dismiss(ctx, id); err != nil {
		return translate(err, "failed to dismiss notification")
	}
	return nil
}

func translate(err error, msg string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "notification not found")
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "notification store unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}
