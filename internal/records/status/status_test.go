package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/status"
)

func TestDaysUntilExpiry(t *testing.T) {
	expiry := models.NewDate(2025, 1, 14)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"partial day rounds up", time.Date(2025, 1, 4, 23, 0, 0, 0, time.UTC), 10},
		{"same instant is zero", time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), 0},
		{"whole days", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 9},
		{"later that day is zero", time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC), 0},
		{"day after is negative", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), -1},
		{"a day and a half after", time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := status.DaysUntilExpiry(expiry, tt.now)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("timestamp expiry counts as its calendar day", func(t *testing.T) {
		now := time.Date(2025, 1, 14, 1, 0, 0, 0, time.UTC)
		dateOnly, ok := status.DaysUntilExpiry(models.ParseDate("2025-01-14"), now)
		require.True(t, ok)
		stamped, ok := status.DaysUntilExpiry(models.ParseDate("2025-01-14T23:00:00Z"), now)
		require.True(t, ok)
		assert.Equal(t, 0, dateOnly)
		assert.Equal(t, dateOnly, stamped)
	})

	t.Run("invalid expiry", func(t *testing.T) {
		_, ok := status.DaysUntilExpiry(models.ParseDate("soon"), time.Now())
		assert.False(t, ok)
	})
}

func TestExpiryCategory(t *testing.T) {
	assert.Equal(t, status.CategoryExpired, status.ExpiryCategory(-1))
	assert.Equal(t, status.CategoryExpiringSoon, status.ExpiryCategory(0))
	assert.Equal(t, status.CategoryExpiringSoon, status.ExpiryCategory(30))
	assert.Equal(t, status.CategoryActive, status.ExpiryCategory(31))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, status.ColorGreen, status.StatusColor(models.DocumentStatusActive))
	assert.Equal(t, status.ColorRed, status.StatusColor(models.DocumentStatusExpired))
	assert.Equal(t, status.ColorBlue, status.StatusColor(models.DocumentStatusRenewed))
	assert.Equal(t, status.ColorGray, status.StatusColor("Suspended"))
	assert.Equal(t, status.ColorGray, status.StatusColor(""))
}

func seedLikeDocuments() []models.Document {
	return []models.Document{
		{ID: "DOC-001", ExpiryDate: models.NewDate(2025, 1, 14), Status: models.DocumentStatusActive},
		{ID: "DOC-002", ExpiryDate: models.NewDate(2025, 6, 9), Status: models.DocumentStatusActive},
		{ID: "DOC-003", ExpiryDate: models.NewDate(2025, 3, 19), Status: models.DocumentStatusExpired},
		{ID: "DOC-004", ExpiryDate: models.NewDate(2025, 1, 31), Status: models.DocumentStatusActive},
	}
}

func seedLikeNotices() []models.LegalNotice {
	return []models.LegalNotice{
		{ID: "LN-001", Period: "30 days", Stage: models.NoticeStageOpen},
		{ID: "LN-002", Period: "60 days", Stage: models.NoticeStageOpen},
		{ID: "LN-003", Period: "45 days", Stage: models.NoticeStageClosed},
		{ID: "LN-004", Period: "30 days", Stage: models.NoticeStageOpen},
		{ID: "LN-005", Period: "90 days", Stage: models.NoticeStageOpen},
		{ID: "LN-006", Period: "60 days", Stage: models.NoticeStageClosed},
	}
}

func TestDashboard(t *testing.T) {
	now := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("seed set", func(t *testing.T) {
		got := status.Dashboard(seedLikeDocuments(), seedLikeNotices(), now)
		assert.Equal(t, status.Metrics{ExpiringDocuments: 2, OpenLegalNotices: 4, HighRisk: 2}, got)
	})

	t.Run("empty collections", func(t *testing.T) {
		assert.Equal(t, status.Metrics{}, status.Dashboard(nil, nil, now))
	})

	t.Run("expired status never counts as expiring", func(t *testing.T) {
		docs := []models.Document{{ExpiryDate: models.NewDate(2025, 1, 10), Status: models.DocumentStatusExpired}}
		got := status.Dashboard(docs, nil, now)
		assert.Equal(t, 0, got.ExpiringDocuments)
		assert.Equal(t, 1, got.HighRisk)
	})

	t.Run("invalid expiry drops out of date buckets", func(t *testing.T) {
		docs := []models.Document{{ExpiryDate: models.ParseDate(""), Status: models.DocumentStatusActive}}
		assert.Equal(t, status.Metrics{}, status.Dashboard(docs, nil, now))
	})

	t.Run("period match is exact", func(t *testing.T) {
		notices := []models.LegalNotice{
			{Period: "60 Days", Stage: models.NoticeStageOpen},
			{Period: "60 days ", Stage: models.NoticeStageOpen},
		}
		got := status.Dashboard(nil, notices, now)
		assert.Equal(t, 2, got.OpenLegalNotices)
		assert.Equal(t, 0, got.HighRisk)
	})

	t.Run("window bounds", func(t *testing.T) {
		docs := []models.Document{
			{ExpiryDate: models.NewDate(2025, 1, 5), Status: models.DocumentStatusActive},
			{ExpiryDate: models.NewDate(2025, 2, 4), Status: models.DocumentStatusRenewed},
			{ExpiryDate: models.NewDate(2025, 2, 5), Status: models.DocumentStatusActive},
			{ExpiryDate: models.NewDate(2025, 1, 4), Status: models.DocumentStatusActive},
		}
		assert.Equal(t, 2, status.Dashboard(docs, nil, now).ExpiringDocuments)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		docs := seedLikeDocuments()
		before := append([]models.Document(nil), docs...)
		status.Dashboard(docs, nil, now)
		assert.Equal(t, before, docs)
	})
}

func TestDerive(t *testing.T) {
	now := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	d := status.Derive(models.Document{ExpiryDate: models.NewDate(2025, 1, 14), Status: models.DocumentStatusActive}, now)
	require.NotNil(t, d.DaysLeft)
	assert.Equal(t, 9, *d.DaysLeft)
	assert.Equal(t, status.CategoryExpiringSoon, d.Category)
	assert.Equal(t, status.ColorGreen, d.StatusColor)

	invalid := status.Derive(models.Document{Status: "Other"}, now)
	assert.Nil(t, invalid.DaysLeft)
	assert.Empty(t, invalid.Category)
	assert.Equal(t, status.ColorGray, invalid.StatusColor)
}
