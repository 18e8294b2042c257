// Package importer loads historical records from fieldbook spreadsheet
// exports. Parsers turn raw files into neutral records; the service
// resolves field and collector names and writes the records through the
// domain services.
package importer

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

type Format string

const (
	FormatFieldbook Format = "fieldbook"
)

type RecordKind string

const (
	RecordHarvest RecordKind = "harvest"
	RecordExpense RecordKind = "expense"
)

// Record is one parsed row, still carrying names rather than IDs.
// Which fields are set depends on Kind.
type Record struct {
	Kind RecordKind
	Date time.Time

	FieldName string

	// Harvest rows.
	Crop          string
	Weight        decimal.Decimal
	Rate          *decimal.Decimal
	CollectorName string

	// Expense rows.
	ExpenseKind string
	Description string
	Quantity    decimal.Decimal
	Amount      decimal.Decimal
}

type Parser interface {
	Parse(r io.Reader) ([]Record, error)
}
