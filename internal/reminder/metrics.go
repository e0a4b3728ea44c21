package reminder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks sweep outcomes.
type Metrics struct {
	Pending *prometheus.GaugeVec
	Sweeps  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Pending: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "compliance_reminders_pending",
			Help: "Escalation reminders due at the last sweep, by level",
		}, []string{"level"}),
		Sweeps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_reminder_sweeps_total",
			Help: "Reminder sweeps run, by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) SetPending(counts map[Level]int) {
	if m == nil {
		return
	}
	for level, n := range counts {
		m.Pending.WithLabelValues(string(level)).Set(float64(n))
	}
}

func (m *Metrics) IncrementSweep(outcome string) {
	if m == nil {
		return
	}
	m.Sweeps.WithLabelValues(outcome).Inc()
}
