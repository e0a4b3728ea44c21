package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"compliancedesk/internal/notify"
	"compliancedesk/internal/records/service"
	"compliancedesk/pkg/requestcontext"
)

// Source supplies the registers a sweep evaluates.
type Source interface {
	Snapshot(ctx context.Context) (service.Snapshot, error)
}

// Notifier raises the banner for each due reminder.
type Notifier interface {
	Notify(ctx context.Context, kind notify.Kind, message string)
}

// Service evaluates reminders against the current registers.
type Service struct {
	source   Source
	notifier Notifier
	logger   *slog.Logger
	metrics  *Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func NewService(source Source, opts ...Option) *Service {
	s := &Service{source: source, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Due computes the reminders due at the given instant without raising them.
func (s *Service) Due(ctx context.Context, at time.Time) ([]Reminder, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registers: %w", err)
	}
	return Due(snap.Documents, snap.Notices, at), nil
}

// Sweep computes the reminders due now and raises a warning for each one.
func (s *Service) Sweep(ctx context.Context) ([]Reminder, error) {
	at := requestcontext.Now(ctx)
	due, err := s.Due(ctx, at)
	if err != nil {
		s.metrics.IncrementSweep("error")
		s.logger.ErrorContext(ctx, "reminder sweep failed", "error", err)
		return nil, err
	}

	counts := CountByLevel(due)
	s.metrics.SetPending(counts)
	s.metrics.IncrementSweep("ok")

	if s.notifier != nil {
		for _, r := range due {
			s.notifier.Notify(ctx, notify.KindWarning, r.Message)
		}
	}

	s.logger.InfoContext(ctx, "reminder sweep complete",
		"at", at.UTC().Format(time.RFC3339),
		"due", len(due),
		"l1", counts[LevelL1],
		"l2", counts[LevelL2],
		"l3", counts[LevelL3],
	)
	return due, nil
}
