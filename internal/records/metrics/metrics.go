package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the record registers.
type Metrics struct {
	// Record mutations by register and operation
	RecordOperations *prometheus.CounterVec

	// Rejected drafts by register
	ValidationFailures *prometheus.CounterVec

	// Latest dashboard rollup, one series per bucket
	DashboardCount *prometheus.GaugeVec

	// Time to assemble a dashboard
	DashboardLatency prometheus.Histogram
}

// New creates a new Metrics instance with all register metrics registered.
func New() *Metrics {
	return &Metrics{
		RecordOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_record_operations_total",
			Help: "Total record mutations by register and operation",
		}, []string{"register", "operation"}), // register: "documents", "notices", "inward"

		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_validation_failures_total",
			Help: "Total drafts rejected by validation, by register",
		}, []string{"register"}),

		DashboardCount: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "compliance_dashboard_records",
			Help: "Latest dashboard rollup counts by bucket",
		}, []string{"bucket"}), // bucket: "expiring", "open_notices", "high_risk"

		DashboardLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "compliance_dashboard_duration_seconds",
			Help:    "Duration of dashboard assembly",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementOperation records a successful mutation.
func (m *Metrics) IncrementOperation(register, operation string) {
	if m != nil {
		m.RecordOperations.WithLabelValues(register, operation).Inc()
	}
}

// IncrementValidationFailure records a rejected draft.
func (m *Metrics) IncrementValidationFailure(register string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(register).Inc()
	}
}

// SetDashboard publishes the latest rollup.
func (m *Metrics) SetDashboard(expiring, openNotices, highRisk int) {
	if m != nil {
		m.DashboardCount.WithLabelValues("expiring").Set(float64(expiring))
		m.DashboardCount.WithLabelValues("open_notices").Set(float64(openNotices))
		m.DashboardCount.WithLabelValues("high_risk").Set(float64(highRisk))
	}
}

// ObserveDashboardLatency records how long a dashboard took to assemble.
func (m *Metrics) ObserveDashboardLatency(d time.Duration) {
	if m != nil {
		m.DashboardLatency.Observe(d.Seconds())
	}
}
