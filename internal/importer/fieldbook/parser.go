// Package fieldbook parses CSV exports of the paper fieldbook. It
// auto-detects whether a file is a harvest sheet or an expense sheet by
// matching column headers against known profiles.
package fieldbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/Hasitha-J/tea-management/internal/encoding"
	"github.com/Hasitha-J/tea-management/internal/importer"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]importer.Record, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching fieldbook layout found: expected a harvest or expense sheet header")
	}

	return parseRows(profile, cols, rows[headerIdx+1:])
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Sheets exported from spreadsheets often carry title rows above the
// real header, so every row is a candidate.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(p *Profile, cols colIndex, rows [][]string) ([]importer.Record, error) {
	var records []importer.Record

	for _, row := range rows {
		date, ok := parseDate(cellValue(row, cols[p.DateCol]))
		if !ok {
			// Footer or blank row.
			continue
		}

		rec := importer.Record{
			Date:      date,
			FieldName: lookupCell(row, cols, p.FieldCol),
		}

		if p.harvest() {
			rec.Kind = importer.RecordHarvest
			rec.Crop = strings.ToLower(lookupCell(row, cols, p.CropCol))
			rec.CollectorName = lookupCell(row, cols, p.CollectorCol)

			weight, err := parseAmount(cellValue(row, cols[p.WeightCol]))
			if err != nil {
				continue
			}

			rec.Weight = weight

			if s := lookupCell(row, cols, p.RateCol); s != "" {
				rate, err := parseAmount(s)
				if err == nil && !rate.IsZero() {
					rec.Rate = &rate
				}
			}
		} else {
			rec.Kind = importer.RecordExpense
			rec.ExpenseKind = normalizeKind(lookupCell(row, cols, p.KindCol))
			rec.Description = lookupCell(row, cols, p.DescCol)

			amount, err := parseAmount(cellValue(row, cols[p.AmountCol]))
			if err != nil || amount.IsZero() {
				continue
			}

			rec.Amount = amount
			rec.Quantity = decimal.NewFromInt(1)

			if s := lookupCell(row, cols, p.QuantityCol); s != "" {
				qty, err := parseAmount(s)
				if err == nil && !qty.IsZero() {
					rec.Quantity = qty
				}
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// normalizeKind maps the human labels written in the book to the stored
// expense kinds.
func normalizeKind(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "labor", "labour", "labor cost", "labour cost":
		return "labor_cost"
	case "goods", "materials", "goods cost":
		return "goods_cost"
	case "owner", "owner labor", "owner labour":
		return "owner_labor"
	case "overhead", "general":
		return "overhead"
	default:
		return strings.ToLower(strings.TrimSpace(s))
	}
}

// lookupCell reads an optional column, returning "" when the profile
// does not define it.
func lookupCell(row []string, cols colIndex, name string) string {
	if name == "" {
		return ""
	}

	idx, ok := cols[name]
	if !ok {
		return ""
	}

	return cellValue(row, idx)
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
