package render

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Hasitha-J/tea-management/internal/report"
)

// XLSX writes the document as a workbook with one sheet per section.
func XLSX(w io.Writer, doc *report.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	sw := &sheetWriter{f: f, header: header}

	sw.sheet("Summary", nil)
	sw.row("Estate Report", doc.Period.Start.Format(dateLayout)+" to "+doc.Period.End.Format(dateLayout))
	sw.row("Generated", doc.GeneratedAt.Format("2006-01-02 15:04"))
	sw.row()
	sw.row("Total Income", money(doc.Summary.TotalIncome))
	sw.row("Total Expenses", money(doc.Summary.TotalExpense))
	sw.row("Net Profit", money(doc.Summary.NetProfit))

	sw.sheet("Fields", []string{"Field", "Income", "Expenses", "Net Profit"})
	for _, fs := range doc.Summary.Fields {
		sw.row(fs.FieldName, money(fs.TotalIncome), money(fs.TotalExpense), money(fs.NetProfit))
	}
	g := doc.Summary.General
	sw.row(g.FieldName, money(g.TotalIncome), money(g.TotalExpense), money(g.NetProfit))

	sw.sheet("Production", []string{"Crop", "Total Weight (kg)", "Revenue"})
	for _, c := range doc.Crops {
		sw.row(string(c.Crop), money(c.TotalWeight), money(c.TotalRevenue))
	}

	sw.sheet("Expenses", []string{"Expense Kind", "Amount"})
	for _, e := range doc.ExpenseKinds {
		sw.row(string(e.Kind), money(e.Amount))
	}

	sw.sheet("Collectors", []string{"Collector", "Weight (kg)", "Revenue", "Advances", "Balance"})
	for _, c := range doc.Collectors {
		sw.row(c.Name, money(c.TotalWeight), money(c.TotalRevenue), money(c.TotalAdvances), money(c.Balance))
	}

	sw.sheet("Log", []string{"Date", "Type", "Field", "Details", "Amount"})
	for _, e := range doc.Log {
		sw.row(e.Date.Format(dateLayout), string(e.Kind), e.FieldName, e.Details, money(e.Amount))
	}

	if sw.err != nil {
		return fmt.Errorf("writing workbook: %w", sw.err)
	}

	// The default sheet excelize creates is replaced by Summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

// money converts a decimal into the float form excelize stores in
// numeric cells. Reports are for reading, not further arithmetic, so
// the float conversion is acceptable here.
func money(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// sheetWriter appends rows to the current sheet, keeping the first
// error and turning subsequent calls into no-ops.
type sheetWriter struct {
	f      *excelize.File
	header int

	name string
	next   int
	err    error
}

func (s *sheetWriter) sheet(name string, headers []string) {
	if s.err != nil {
		return
	}

	if _, err := s.f.NewSheet(name); err != nil {
		s.err = err
		return
	}

	s.name = name
	s.next = 1

	if len(headers) == 0 {
		return
	}

	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}

	s.row(cells...)
	if s.err != nil {
		return
	}

	end, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		s.err = err
		return
	}

	s.err = s.f.SetCellStyle(name, "A1", end, s.header)
}

func (s *sheetWriter) row(cells ...any) {
	if s.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(1, s.next)
	if err != nil {
		s.err = err
		return
	}

	s.err = s.f.SetSheetRow(s.name, cell, &cells)
	s.next++
}
