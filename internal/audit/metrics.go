package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for audit publishing.
type Metrics struct {
	Published       *prometheus.CounterVec
	PublishFailures *prometheus.CounterVec
	Dropped         prometheus.Counter
}

// NewMetrics creates a new Metrics instance with audit metrics registered.
func NewMetrics() *Metrics {
	return &Metrics{
		Published: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_audit_published_total",
			Help: "Total audit events delivered, by sink",
		}, []string{"sink"}),
		PublishFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_audit_publish_failures_total",
			Help: "Total audit events a sink failed to accept",
		}, []string{"sink"}),
		Dropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "compliance_audit_dropped_total",
			Help: "Total audit events dropped because the async buffer was full",
		}),
	}
}

func (m *Metrics) IncPublished(sink string) {
	if m != nil {
		m.Published.WithLabelValues(sink).Inc()
	}
}

func (m *Metrics) IncPublishFailure(sink string) {
	if m != nil {
		m.PublishFailures.WithLabelValues(sink).Inc()
	}
}

func (m *Metrics) IncDropped() {
	if m != nil {
		m.Dropped.Inc()
	}
}
