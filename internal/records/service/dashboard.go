package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"compliancedesk/internal/audit"
	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/status"
)

// Snapshot is a consistent-enough copy of every register for read-only
// consumers such as exports and the reminder sweep.
type Snapshot struct {
	Documents []models.Document
	Notices   []models.LegalNotice
	Inward    []models.InwardRegisterEntry
}

// Dashboard is the rollup shown on the landing page.
type Dashboard struct {
	At                time.Time         `json:"at"`
	Metrics           status.Metrics    `json:"metrics"`
	ExpiringDocuments []models.Document `json:"expiringDocuments"`
}

// Snapshot loads the three registers concurrently.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := s.documents.List(gctx)
		if err != nil {
			return wrapStoreErr(err, audit.RegisterDocuments, "list")
		}
		snap.Documents = docs
		return nil
	})
	g.Go(func() error {
		notices, err := s.notices.List(gctx)
		if err != nil {
			return wrapStoreErr(err, audit.RegisterNotices, "list")
		}
		snap.Notices = notices
		return nil
	})
	g.Go(func() error {
		entries, err := s.inward.List(gctx)
		if err != nil {
			return wrapStoreErr(err, audit.RegisterInward, "list")
		}
		snap.Inward = entries
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Dashboard computes the rollup counts at the given instant.
func (s *Service) Dashboard(ctx context.Context, at time.Time) (_ Dashboard, err error) {
	ctx, span := s.startSpan(ctx, "records.Dashboard")
	defer func() { endSpan(span, err) }()
	start := time.Now()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	m := status.Dashboard(snap.Documents, snap.Notices, at)

	expiring := make([]models.Document, 0, m.ExpiringDocuments)
	for _, d := range snap.Documents {
		if status.IsDocumentExpiring(d, at) {
			expiring = append(expiring, d)
		}
	}

	s.metrics.SetDashboard(m.ExpiringDocuments, m.OpenLegalNotices, m.HighRisk)
	s.metrics.ObserveDashboardLatency(time.Since(start))
	return Dashboard{At: at, Metrics: m, ExpiringDocuments: expiring}, nil
}
