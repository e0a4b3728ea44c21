// Package status derives time-relative facts about records: days until
// expiry, expiry category, status colour and dashboard rollups.
//
// Every function takes the reference instant explicitly and is pure.
package status

import (
	"time"

	"compliancedesk/internal/records/models"
)

// ExpiringWindowDays is the inclusive upper bound of the expiring_soon band.
const ExpiringWindowDays = 30

const day = 24 * time.Hour

// Category buckets a document by how close it is to expiry.
type Category string

const (
	CategoryExpired      Category = "expired"
	CategoryExpiringSoon Category = "expiring_soon"
	CategoryActive       Category = "active"
)

// DaysUntilExpiry is the ceiling of (expiry - now) in whole days, with expiry
// taken as midnight UTC. It returns false when the expiry date is invalid.
func DaysUntilExpiry(expiry models.Date, now time.Time) (int, bool) {
	if !expiry.Valid() {
		return 0, false
	}
	d := expiry.Time().Sub(now)
	q := int(d / day)
	if d%day > 0 {
		q++
	}
	return q, true
}

// ExpiryCategory classifies a days-left figure.
func ExpiryCategory(daysLeft int) Category {
	switch {
	case daysLeft < 0:
		return CategoryExpired
	case daysLeft <= ExpiringWindowDays:
		return CategoryExpiringSoon
	default:
		return CategoryActive
	}
}

// IsExpiringSoon reports whether daysLeft falls in the expiring window.
func IsExpiringSoon(daysLeft int) bool {
	return ExpiryCategory(daysLeft) == CategoryExpiringSoon
}
