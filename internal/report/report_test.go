package report

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/service"
	"compliancedesk/internal/records/status"
	"compliancedesk/internal/records/store"
	"compliancedesk/pkg/testutil"
)

var at = time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

func seedSnapshot() service.Snapshot {
	seed := store.DefaultSeed()
	return service.Snapshot{Documents: seed.Documents, Notices: seed.Notices, Inward: seed.Inward}
}

func TestWorkbook(t *testing.T) {
	body, err := Workbook(seedSnapshot(), at)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetDocuments, SheetNotices, SheetInward}, f.GetSheetList())

	t.Run("documents carry derived columns", func(t *testing.T) {
		rows, err := f.GetRows(SheetDocuments)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, "Days Left", rows[0][5])

		first := rows[1]
		assert.Equal(t, "DOC-001", first[0])
		assert.Equal(t, "Contract Labour License", first[1])
		assert.Equal(t, "2025-01-14", first[4])
		assert.Equal(t, "9", first[5])
		assert.Equal(t, string(status.CategoryExpiringSoon), first[6])
		assert.Equal(t, string(status.ColorGreen), first[8])
	})

	t.Run("notices carry reply deadline and latest reply", func(t *testing.T) {
		rows, err := f.GetRows(SheetNotices)
		require.NoError(t, err)
		require.Len(t, rows, 7)
		assert.Equal(t, "LN-001", rows[1][0])
		assert.Equal(t, "2024-12-20", rows[1][7])
	})

	t.Run("inward register", func(t *testing.T) {
		rows, err := f.GetRows(SheetInward)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "INR-001", rows[1][0])
	})
}

func TestWorkbookInvalidExpiryLeavesDaysBlank(t *testing.T) {
	snap := service.Snapshot{Documents: []models.Document{{ID: "DOC-009", Status: models.DocumentStatusActive}}}

	body, err := Workbook(snap, at)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(SheetDocuments, "F2")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestDashboardPDF(t *testing.T) {
	seed := store.DefaultSeed()
	body, err := DashboardPDF(service.Dashboard{
		At:                at,
		Metrics:           status.Dashboard(seed.Documents, seed.Notices, at),
		ExpiringDocuments: seed.Documents[:1],
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))

	empty, err := DashboardPDF(service.Dashboard{At: at})
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}

type stubSource struct {
	err error
}

func (s stubSource) Snapshot(context.Context) (service.Snapshot, error) {
	return seedSnapshot(), s.err
}

func (s stubSource) Dashboard(_ context.Context, at time.Time) (service.Dashboard, error) {
	return service.Dashboard{At: at}, s.err
}

func TestHandler(t *testing.T) {
	newRouter := func(src Source) chi.Router {
		r := chi.NewRouter()
		NewHandler(src, slog.New(slog.DiscardHandler)).Register(r)
		return r
	}

	t.Run("workbook download", func(t *testing.T) {
		rr := testutil.DoRequest(newRouter(stubSource{}), httptest.NewRequest(http.MethodGet, "/api/reports/workbook.xlsx?at=2025-01-05", nil))

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, contentTypeXLSX, rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "compliance-registers-20250105.xlsx")
	})

	t.Run("dashboard pdf download", func(t *testing.T) {
		rr := testutil.DoRequest(newRouter(stubSource{}), httptest.NewRequest(http.MethodGet, "/api/reports/dashboard.pdf", nil))

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, contentTypePDF, rr.Header().Get("Content-Type"))
	})

	t.Run("source failure", func(t *testing.T) {
		rr := testutil.DoRequest(newRouter(stubSource{err: errors.New("offline")}), httptest.NewRequest(http.MethodGet, "/api/reports/dashboard.pdf", nil))

		testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
	})
}
