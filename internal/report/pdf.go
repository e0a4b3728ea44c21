package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"compliancedesk/internal/records/service"
	"compliancedesk/internal/records/status"
)

// DashboardPDF renders the dashboard counts and the expiring documents table.
func DashboardPDF(d service.Dashboard) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Compliance Dashboard", false)
	pdf.SetCreationDate(d.At)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Compliance Dashboard")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "As of "+d.At.UTC().Format(time.DateOnly))
	pdf.Ln(12)

	tiles := []struct {
		label string
		value int
	}{
		{"Expiring documents (next 30 days)", d.Metrics.ExpiringDocuments},
		{"Open legal notices", d.Metrics.OpenLegalNotices},
		{"High-risk items", d.Metrics.HighRisk},
	}
	pdf.SetFillColor(240, 240, 240)
	for _, t := range tiles {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(120, 9, t.label, "1", 0, "L", true, 0, "")
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(30, 9, strconv.Itoa(t.value), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Expiring documents")
	pdf.Ln(9)

	cols := []struct {
		title string
		width float64
	}{
		{"ID", 22}, {"Type", 52}, {"Expiry", 26}, {"Days Left", 22}, {"Responsible", 48},
	}
	pdf.SetFont("Arial", "B", 10)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	if len(d.ExpiringDocuments) == 0 {
		pdf.CellFormat(170, 7, "No documents expire in the next 30 days.", "1", 1, "L", false, 0, "")
	}
	for _, doc := range d.ExpiringDocuments {
		days := ""
		if left, ok := status.DaysUntilExpiry(doc.ExpiryDate, d.At); ok {
			days = strconv.Itoa(left)
		}
		cells := []string{doc.ID, doc.DocumentType.Label(), doc.ExpiryDate.String(), days, doc.ResponsiblePerson}
		for i, c := range cols {
			pdf.CellFormat(c.width, 7, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render dashboard pdf: %w", err)
	}
	return buf.Bytes(), nil
}
