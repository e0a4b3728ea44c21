package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the sweep daily at 08:00 UTC. Schedules use the
// six-field cron format with a leading seconds field.
const DefaultSchedule = "0 0 8 * * *"

// Sweeper is the job the scheduler runs.
type Sweeper interface {
	Sweep(ctx context.Context) ([]Reminder, error)
}

// Scheduler runs the reminder sweep on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	logger  *slog.Logger
	timeout time.Duration
	entry   cron.EntryID
}

// NewScheduler parses the schedule and registers the sweep. An empty
// schedule selects DefaultSchedule.
func NewScheduler(schedule string, sweeper Sweeper, logger *slog.Logger) (*Scheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	s := &Scheduler{
		sweeper: sweeper,
		logger:  logger,
		timeout: time.Minute,
	}
	s.cron = cron.New(
		cron.WithSeconds(),
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
	)
	id, err := s.cron.AddFunc(schedule, s.runOnce)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}
	s.entry = id
	return s, nil
}

// Next reports when the sweep will run next. Zero until Run starts the cron.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// Run starts the schedule and blocks until ctx is cancelled, then waits for
// an in-flight sweep to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.logger.InfoContext(ctx, "reminder scheduler started", "next_run", s.Next().Format(time.RFC3339))

	<-ctx.Done()

	stopped := s.cron.Stop()
	<-stopped.Done()
	s.logger.Info("reminder scheduler stopped")
	return nil
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.sweeper.Sweep(ctx); err != nil {
		s.logger.ErrorContext(ctx, "scheduled reminder sweep failed", "error", err)
	}
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
