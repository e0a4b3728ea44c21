package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"compliancedesk/internal/audit"
	"compliancedesk/internal/notify"
	"compliancedesk/internal/platform/config"
	"compliancedesk/internal/platform/kafka"
	"compliancedesk/internal/platform/logger"
	"compliancedesk/internal/platform/redis"
	"compliancedesk/internal/records/metrics"
	"compliancedesk/internal/records/service"
	"compliancedesk/internal/records/store"
	"compliancedesk/internal/reminder"
)

// app holds the process-wide dependencies shared by every command.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	stores    *store.Stores
	records   *service.Service
	audit     *audit.Publisher
	notifier  *notify.Service
	reminders *reminder.Service
	redis     *redis.Client

	closers []func()
}

// appOptions switches off the parts a one-shot command does not need.
type appOptions struct {
	withMetrics bool
	withBrokers bool
}

func newApp(ctx context.Context, cfg config.Config, opts appOptions) (*app, error) {
	a := &app{
		cfg:    cfg,
		logger: logger.New(cfg.Log.Level, cfg.Log.Format),
	}

	seed, err := store.LoadSeed(cfg.Records.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	a.stores = store.NewStores(seed)

	notifyStore, err := a.notifyStore(ctx, opts.withBrokers)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.notifier = notify.NewService(notifyStore, a.logger)

	auditOpts := []audit.Option{audit.WithLogger(a.logger)}
	if opts.withMetrics {
		auditOpts = append(auditOpts, audit.WithMetrics(audit.NewMetrics()))
	}
	if opts.withBrokers {
		sinkOpt, err := a.kafkaSink(ctx)
		if err != nil {
			a.Close()
			return nil, err
		}
		if sinkOpt != nil {
			auditOpts = append(auditOpts, sinkOpt)
		}
	}
	a.audit = audit.NewPublisher(audit.NewInMemoryStore(cfg.Audit.Capacity), auditOpts...)
	a.closers = append(a.closers, a.audit.Close)

	recordOpts := []service.Option{
		service.WithLogger(a.logger),
		service.WithAuditPublisher(a.audit),
		service.WithNotifier(a.notifier),
		service.WithTracer(otel.Tracer("compliancedesk/records")),
	}
	reminderOpts := []reminder.Option{
		reminder.WithLogger(a.logger),
		reminder.WithNotifier(a.notifier),
	}
	if opts.withMetrics {
		recordOpts = append(recordOpts, service.WithMetrics(metrics.New()))
		reminderOpts = append(reminderOpts, reminder.WithMetrics(reminder.NewMetrics()))
	}
	a.records = service.New(a.stores.Documents, a.stores.Notices, a.stores.Inward, recordOpts...)
	a.reminders = reminder.NewService(a.records, reminderOpts...)
	return a, nil
}

// notifyStore picks Redis when configured, otherwise the in-process store.
func (a *app) notifyStore(ctx context.Context, useRedis bool) (notify.Store, error) {
	if useRedis {
		client, err := redis.New(ctx, a.cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		if client != nil {
			a.redis = client
			a.closers = append(a.closers, func() { _ = client.Close() })
			a.logger.Info("notifications backed by redis")
			return notify.NewRedis(client.Client, a.cfg.Notify.TTL), nil
		}
	}
	mem := notify.NewInMemory(a.cfg.Notify.TTL)
	a.closers = append(a.closers, mem.Close)
	return mem, nil
}

// kafkaSink returns the audit option that mirrors events to Kafka, or nil
// when no brokers are configured.
func (a *app) kafkaSink(ctx context.Context) (audit.Option, error) {
	client, err := kafka.New(ctx, a.cfg.Kafka)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}
	if client == nil {
		return nil, nil
	}
	a.closers = append(a.closers, client.Close)

	sink := audit.NewKafkaSink(client, a.cfg.Kafka.Topic)
	if err := sink.EnsureTopic(ctx, a.cfg.Kafka.Partitions, a.cfg.Kafka.ReplicationFactor); err != nil {
		a.logger.Warn("audit topic bootstrap failed; producing anyway",
			"topic", a.cfg.Kafka.Topic,
			"error", err,
		)
	}
	a.logger.Info("audit events mirrored to kafka", "topic", a.cfg.Kafka.Topic)
	return audit.WithAsyncSink("kafka", sink, a.cfg.Kafka.Buffer), nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
