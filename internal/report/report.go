// Package report assembles the printable estate report: the ledger
// summary plus production, expense-kind, and collector breakdowns, and
// a combined chronological log. The compiled Document is a passive
// structure; renderers under report/render turn it into files.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/expense"
	"github.com/Hasitha-J/tea-management/internal/harvest"
	"github.com/Hasitha-J/tea-management/internal/ledger"
)

// FetchError reports which upstream collection failed to load. Any
// fetch failure aborts the whole operation; partial reports are never
// returned.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// EntryKind tags rows of the combined log.
type EntryKind string

const (
	EntryIncome  EntryKind = "Income"
	EntryExpense EntryKind = "Expense"
	EntryAdvance EntryKind = "Advance"
)

// LogEntry is one row of the combined transaction log. FieldName is "-"
// for records not tied to a field (general expenses, advances).
type LogEntry struct {
	Date      time.Time
	Kind      EntryKind
	FieldName string
	Details   string
	Amount    decimal.Decimal
}

// CropRow sums production and revenue for one crop across all resolved
// harvests in the period.
type CropRow struct {
	Crop         harvest.Crop
	TotalWeight  decimal.Decimal
	TotalRevenue decimal.Decimal
}

// ExpenseKindRow is the period spend for one expense kind.
type ExpenseKindRow struct {
	Kind   expense.Kind
	Amount decimal.Decimal
}

// CollectorRow summarizes one collector's deliveries and advances.
// Balance is revenue minus advances, recomputed on every compile and
// never stored.
type CollectorRow struct {
	CollectorID   uuid.UUID
	Name          string
	TotalWeight   decimal.Decimal
	TotalRevenue  decimal.Decimal
	TotalAdvances decimal.Decimal
	Balance       decimal.Decimal
}

// Document is the compiled report. The log is sorted by date
// descending; rows with equal dates keep source order (harvests, then
// expenses, then advances, each in fetch order).
type Document struct {
	Period      ledger.Period
	GeneratedAt time.Time

	Summary      *ledger.Summary
	Crops        []CropRow
	ExpenseKinds []ExpenseKindRow
	Collectors   []CollectorRow
	Log          []LogEntry

	Advisories []ledger.RateAdvisory

	// Skipped counts records excluded from the aggregates because of
	// data-integrity issues (details in Summary.Warnings).
	Skipped int
}
