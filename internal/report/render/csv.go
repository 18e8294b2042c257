// Package render turns a compiled report document into downloadable
// files. Each renderer writes the same sections in the same order:
// summary, field profitability, production, expense breakdown,
// collector summary, then the combined log.
package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Hasitha-J/tea-management/internal/report"
)

const dateLayout = "2006-01-02"

// CSV writes the document as a single CSV stream with a blank line
// between sections. Amounts use the decimal string form so nothing is
// lost to float rounding.
func CSV(w io.Writer, doc *report.Document) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Estate Report", doc.Period.Start.Format(dateLayout) + " to " + doc.Period.End.Format(dateLayout)},
		{"Generated", doc.GeneratedAt.Format("2006-01-02 15:04")},
		{},
		{"Total Income", doc.Summary.TotalIncome.String()},
		{"Total Expenses", doc.Summary.TotalExpense.String()},
		{"Net Profit", doc.Summary.NetProfit.String()},
		{},
		{"Field", "Income", "Expenses", "Net Profit"},
	}

	for _, f := range doc.Summary.Fields {
		rows = append(rows, []string{f.FieldName, f.TotalIncome.String(), f.TotalExpense.String(), f.NetProfit.String()})
	}

	g := doc.Summary.General
	rows = append(rows, []string{g.FieldName, g.TotalIncome.String(), g.TotalExpense.String(), g.NetProfit.String()})

	rows = append(rows, []string{}, []string{"Crop", "Total Weight (kg)", "Revenue"})
	for _, c := range doc.Crops {
		rows = append(rows, []string{string(c.Crop), c.TotalWeight.String(), c.TotalRevenue.String()})
	}

	rows = append(rows, []string{}, []string{"Expense Kind", "Amount"})
	for _, e := range doc.ExpenseKinds {
		rows = append(rows, []string{string(e.Kind), e.Amount.String()})
	}

	rows = append(rows, []string{}, []string{"Collector", "Weight (kg)", "Revenue", "Advances", "Balance"})
	for _, c := range doc.Collectors {
		rows = append(rows, []string{c.Name, c.TotalWeight.String(), c.TotalRevenue.String(), c.TotalAdvances.String(), c.Balance.String()})
	}

	rows = append(rows, []string{}, []string{"Date", "Type", "Field", "Details", "Amount"})
	for _, e := range doc.Log {
		rows = append(rows, []string{e.Date.Format(dateLayout), string(e.Kind), e.FieldName, e.Details, e.Amount.String()})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}
