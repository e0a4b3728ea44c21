package status

import (
	"time"

	"compliancedesk/internal/records/models"
)

// HighRiskNoticePeriod is the notice period that marks an open notice as
// high risk. The match is an exact string comparison.
const HighRiskNoticePeriod = "60 days"

// Metrics are the dashboard rollup counts.
type Metrics struct {
	ExpiringDocuments int `json:"expiringDocuments"`
	OpenLegalNotices  int `json:"openLegalNotices"`
	HighRisk          int `json:"highRisk"`
}

// Dashboard computes the rollup counts at now.
//
// A document is expiring when its days-left lies in the expiring window and
// its status is not Expired. High risk counts Expired documents plus open
// notices whose period is exactly HighRiskNoticePeriod.
func Dashboard(documents []models.Document, notices []models.LegalNotice, now time.Time) Metrics {
	var m Metrics
	for _, d := range documents {
		if IsDocumentExpiring(d, now) {
			m.ExpiringDocuments++
		}
		if d.Status == models.DocumentStatusExpired {
			m.HighRisk++
		}
	}
	for _, n := range notices {
		if !n.IsOpen() {
			continue
		}
		m.OpenLegalNotices++
		if n.Period == HighRiskNoticePeriod {
			m.HighRisk++
		}
	}
	return m
}

// IsDocumentExpiring reports whether d counts toward the expiring bucket at now.
func IsDocumentExpiring(d models.Document, now time.Time) bool {
	if d.Status == models.DocumentStatusExpired {
		return false
	}
	left, ok := DaysUntilExpiry(d.ExpiryDate, now)
	return ok && IsExpiringSoon(left)
}

// Derived bundles the per-document derived columns shown in tables and exports.
type Derived struct {
	DaysLeft    *int     `json:"daysLeft"`
	Category    Category `json:"expiryCategory,omitempty"`
	StatusColor Color    `json:"statusColor"`
}

// Derive computes the derived columns for one document. DaysLeft and Category
// are empty when the expiry date is invalid.
func Derive(d models.Document, now time.Time) Derived {
	out := Derived{StatusColor: StatusColor(d.Status)}
	if left, ok := DaysUntilExpiry(d.ExpiryDate, now); ok {
		out.DaysLeft = &left
		out.Category = ExpiryCategory(left)
	}
	return out
}
