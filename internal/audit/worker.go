package audit

import (
	"context"
	"log/slog"
)

// Worker drains events from a channel into a slow sink. A sink failure is
// logged and counted; the worker keeps going.
type Worker struct {
	name    string
	sink    Sink
	inbox   <-chan Event
	logger  *slog.Logger
	metrics *Metrics
}

func NewWorker(name string, sink Sink, inbox <-chan Event, logger *slog.Logger, metrics *Metrics) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{name: name, sink: sink, inbox: inbox, logger: logger, metrics: metrics}
}

// Run processes events until the inbox is closed.
func (w *Worker) Run(ctx context.Context) {
	for event := range w.inbox {
		if err := w.sink.Append(ctx, event); err != nil {
			w.metrics.IncPublishFailure(w.name)
			w.logger.WarnContext(ctx, "audit sink append failed",
				"sink", w.name,
				"register", event.Register,
				"record_id", event.RecordID,
				"error", err,
			)
			continue
		}
		w.metrics.IncPublished(w.name)
	}
}
