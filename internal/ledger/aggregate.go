package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/expense"
	"github.com/Hasitha-J/tea-management/internal/field"
)

// GeneralLabel names the synthetic row that collects records without a
// field: estate-wide overheads and income orphaned by a field deletion.
const GeneralLabel = "General"

// FieldSummary is the income/expense/profit of one field within the
// requested period. The general bucket has a nil FieldID.
type FieldSummary struct {
	FieldID      *uuid.UUID
	FieldName    string
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetProfit    decimal.Decimal
}

// Summary is the aggregated ledger for a period. Estate totals cover
// every per-field row plus the general bucket, so
// Σ fields.NetProfit + General.NetProfit == NetProfit exactly.
type Summary struct {
	Period  Period
	Fields  []FieldSummary
	General FieldSummary

	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetProfit    decimal.Decimal

	Warnings []Warning
}

// Aggregate folds resolved harvests and expenses into per-field and
// estate-wide totals. Harvests must already have passed through
// ResolveHarvests. Records outside the period are ignored; a non-nil
// fieldFilter restricts the output (and the estate totals) to that one
// field, dropping the general bucket since unattributed records belong
// to no field in particular.
//
// Records referencing a field that is not in the fields snapshot are
// excluded with a warning rather than silently miscounted. Execution is
// all-or-nothing by construction: the inputs are complete snapshots, so
// there is no partial state to leak.
func Aggregate(harvests []ResolvedHarvest, expenses []*expense.Expense, fields []*field.Field, period Period, fieldFilter *uuid.UUID) *Summary {
	s := &Summary{Period: period}

	known := make(map[uuid.UUID]int, len(fields))

	for _, f := range fields {
		if fieldFilter != nil && f.ID != *fieldFilter {
			continue
		}

		known[f.ID] = len(s.Fields)
		s.Fields = append(s.Fields, FieldSummary{
			FieldID:   &f.ID,
			FieldName: f.Name,
		})
	}

	s.General = FieldSummary{FieldName: GeneralLabel}

	for _, h := range harvests {
		if !period.Contains(h.Date) {
			continue
		}

		row, ok := s.bucket(known, h.FieldID, fieldFilter)
		if !ok {
			if h.FieldID != nil && fieldFilter == nil {
				s.Warnings = append(s.Warnings, Warning{
					Kind:     WarningUnknownField,
					RecordID: h.ID,
					Detail:   fmt.Sprintf("harvest references missing field %s", *h.FieldID),
				})
			}

			continue
		}

		row.TotalIncome = row.TotalIncome.Add(h.TotalAmount)
	}

	for _, e := range expenses {
		if !period.Contains(e.Date) {
			continue
		}

		row, ok := s.bucket(known, e.FieldID, fieldFilter)
		if !ok {
			if e.FieldID != nil && fieldFilter == nil {
				s.Warnings = append(s.Warnings, Warning{
					Kind:     WarningUnknownField,
					RecordID: e.ID,
					Detail:   fmt.Sprintf("expense references missing field %s", *e.FieldID),
				})
			}

			continue
		}

		row.TotalExpense = row.TotalExpense.Add(e.TotalAmount)
	}

	for i := range s.Fields {
		row := &s.Fields[i]
		row.NetProfit = row.TotalIncome.Sub(row.TotalExpense)
		s.TotalIncome = s.TotalIncome.Add(row.TotalIncome)
		s.TotalExpense = s.TotalExpense.Add(row.TotalExpense)
	}

	s.General.NetProfit = s.General.TotalIncome.Sub(s.General.TotalExpense)

	if fieldFilter == nil {
		s.TotalIncome = s.TotalIncome.Add(s.General.TotalIncome)
		s.TotalExpense = s.TotalExpense.Add(s.General.TotalExpense)
	}

	s.NetProfit = s.TotalIncome.Sub(s.TotalExpense)

	return s
}

// bucket returns the summary row a record belongs to. Records without a
// field go to the general bucket; records for a field outside the filter
// scope, or referencing an unknown field, get no bucket.
func (s *Summary) bucket(known map[uuid.UUID]int, fieldID, fieldFilter *uuid.UUID) (*FieldSummary, bool) {
	if fieldID == nil {
		if fieldFilter != nil {
			return nil, false
		}

		return &s.General, true
	}

	idx, ok := known[*fieldID]
	if !ok {
		return nil, false
	}

	return &s.Fields[idx], true
}
