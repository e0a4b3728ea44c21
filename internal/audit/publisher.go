package audit

import (
	"context"
	"log/slog"
	"sync"

	"compliancedesk/pkg/requestcontext"
)

// Publisher captures record-change events. The store is written
// synchronously; async sinks are fed through bounded buffers drained by
// workers. Publishing is best-effort: failures are logged and counted and
// never surface to the caller.
type Publisher struct {
	store   Store
	logger  *slog.Logger
	metrics *Metrics

	sinks   []asyncSink
	mu      sync.RWMutex
	closed  bool
	inboxes map[string]chan Event
	wg      sync.WaitGroup
}

type asyncSink struct {
	name   string
	sink   Sink
	buffer int
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) { p.metrics = m }
}

// WithAsyncSink forwards every event to sink through a buffer of the given
// size. Events are dropped when the buffer is full.
func WithAsyncSink(name string, sink Sink, buffer int) Option {
	return func(p *Publisher) {
		if buffer <= 0 {
			buffer = 100
		}
		p.sinks = append(p.sinks, asyncSink{name: name, sink: sink, buffer: buffer})
	}
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:   store,
		logger:  slog.Default(),
		inboxes: make(map[string]chan Event),
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, as := range p.sinks {
		inbox := make(chan Event, as.buffer)
		p.inboxes[as.name] = inbox
		worker := NewWorker(as.name, as.sink, inbox, p.logger, p.metrics)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			worker.Run(context.Background())
		}()
	}
	return p
}

// Emit enriches the event from the request context and fans it out.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Actor == "" {
		event.Actor = requestcontext.Actor(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.Device == "" {
		event.Device = requestcontext.Device(ctx)
	}

	if err := p.store.Append(ctx, event); err != nil {
		p.metrics.IncPublishFailure("store")
		p.logger.WarnContext(ctx, "audit store append failed",
			"request_id", event.RequestID,
			"record_id", event.RecordID,
			"error", err,
		)
	} else {
		p.metrics.IncPublished("store")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	for name, inbox := range p.inboxes {
		select {
		case inbox <- event:
		default:
			p.metrics.IncDropped()
			p.logger.WarnContext(ctx, "audit buffer full, event dropped",
				"sink", name,
				"request_id", event.RequestID,
				"record_id", event.RecordID,
			)
		}
	}
}

// List reads the trail back from the store.
func (p *Publisher) List(ctx context.Context, q Query) ([]Event, error) {
	return p.store.List(ctx, q)
}

// Close stops accepting async work and waits for buffered events to drain.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, inbox := range p.inboxes {
		close(inbox)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
