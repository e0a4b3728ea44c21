// Package report renders the registers as an XLSX workbook and the dashboard
// as a one-page PDF.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/service"
	"compliancedesk/internal/records/status"
	"compliancedesk/internal/reminder"
)

// Sheet names, in workbook order.
const (
	SheetDocuments = "Documents"
	SheetNotices   = "Legal Notices"
	SheetInward    = "Inward Register"
)

var (
	documentHeader = []any{
		"ID", "Type", "Period From", "Period To", "Expiry Date", "Days Left", "Expiry Category",
		"Status", "Status Colour", "Inward Number", "Inward Date", "Auto Renewal Alert",
		"Responsible Person", "Escalation L1", "Escalation L2", "Escalation L3",
	}
	noticeHeader = []any{
		"ID", "Related Document", "Department", "Subject", "Inward Number", "Inward Date", "Period",
		"Reply Deadline", "Amount", "Stage", "Final Status", "Replies", "Latest Reply", "Alert Days",
		"Escalation L1", "Escalation L2", "Remarks",
	}
	inwardHeader = []any{
		"ID", "Document Type", "Received Date", "Receiving Person", "Department",
		"Forward To", "Physical File No", "Remarks",
	}
)

// Workbook renders one sheet per register. Derived columns are computed
// against at.
func Workbook(snap service.Snapshot, at time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetDocuments); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	for _, name := range []string{SheetNotices, SheetInward} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	docRows := make([][]any, 0, len(snap.Documents))
	for _, d := range snap.Documents {
		docRows = append(docRows, documentRow(d, at))
	}
	noticeRows := make([][]any, 0, len(snap.Notices))
	for _, n := range snap.Notices {
		noticeRows = append(noticeRows, noticeRow(n))
	}
	inwardRows := make([][]any, 0, len(snap.Inward))
	for _, e := range snap.Inward {
		inwardRows = append(inwardRows, inwardRow(e))
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetDocuments, documentHeader, docRows},
		{SheetNotices, noticeHeader, noticeRows},
		{SheetInward, inwardHeader, inwardRows},
	}
	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.header, sh.rows, headerStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func documentRow(d models.Document, at time.Time) []any {
	derived := status.Derive(d, at)
	var daysLeft any = ""
	if derived.DaysLeft != nil {
		daysLeft = *derived.DaysLeft
	}
	return []any{
		d.ID, d.DocumentType.Label(), d.PeriodFrom.String(), d.PeriodTo.String(), d.ExpiryDate.String(),
		daysLeft, string(derived.Category), string(d.Status), string(derived.StatusColor),
		d.InwardNumber, d.InwardDate.String(), yesNo(d.AutoRenewalAlert),
		d.ResponsiblePerson, d.EscalationL1, d.EscalationL2, d.EscalationL3,
	}
}

func noticeRow(n models.LegalNotice) []any {
	deadline := ""
	if due, ok := reminder.Deadline(n); ok {
		deadline = due.String()
	}
	latest := ""
	if len(n.Replies) > 0 {
		r := n.Replies[len(n.Replies)-1]
		latest = fmt.Sprintf("%s (%s, %s)", r.Text, r.Type, r.CreatedAt)
	}
	return []any{
		n.ID, n.RelatedDocumentID, n.Department, n.Subject, n.InwardNumber, n.InwardDate.String(), n.Period,
		deadline, n.Amount, string(n.Stage), n.FinalStatus, len(n.Replies), latest, n.AlertDays,
		n.EscalationL1, n.EscalationL2, n.Remarks,
	}
}

func inwardRow(e models.InwardRegisterEntry) []any {
	return []any{
		e.ID, string(e.DocumentType), e.ReceivedDate.String(), e.ReceivingPerson, e.Department,
		e.ForwardToPerson, e.PhysicalFileNo, e.Remarks,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
