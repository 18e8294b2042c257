package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasitha-J/tea-management/internal/expense"
	"github.com/Hasitha-J/tea-management/internal/harvest"
	"github.com/Hasitha-J/tea-management/internal/ledger"
	"github.com/Hasitha-J/tea-management/internal/report"
	"github.com/Hasitha-J/tea-management/internal/report/render"
)

func sampleDocument(t *testing.T) *report.Document {
	t.Helper()

	period, err := ledger.NewPeriod(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	fieldID := uuid.New()

	return &report.Document{
		Period:      period,
		GeneratedAt: time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC),
		Summary: &ledger.Summary{
			Period: period,
			Fields: []ledger.FieldSummary{
				{
					FieldID:      &fieldID,
					FieldName:    "Upper Division",
					TotalIncome:  decimal.NewFromInt(5000),
					TotalExpense: decimal.NewFromInt(3000),
					NetProfit:    decimal.NewFromInt(2000),
				},
			},
			General: ledger.FieldSummary{
				FieldName:    ledger.GeneralLabel,
				TotalExpense: decimal.NewFromInt(300),
				NetProfit:    decimal.NewFromInt(-300),
			},
			TotalIncome:  decimal.NewFromInt(5000),
			TotalExpense: decimal.NewFromInt(3300),
			NetProfit:    decimal.NewFromInt(1700),
		},
		Crops: []report.CropRow{
			{Crop: harvest.CropTea, TotalWeight: decimal.NewFromInt(100), TotalRevenue: decimal.NewFromInt(5000)},
		},
		ExpenseKinds: []report.ExpenseKindRow{
			{Kind: expense.KindLaborCost, Amount: decimal.NewFromInt(3300)},
		},
		Collectors: []report.CollectorRow{
			{
				CollectorID:   uuid.New(),
				Name:          "Silva",
				TotalWeight:   decimal.NewFromInt(100),
				TotalRevenue:  decimal.NewFromInt(5000),
				TotalAdvances: decimal.NewFromInt(2000),
				Balance:       decimal.NewFromInt(3000),
			},
		},
		Log: []report.LogEntry{
			{
				Date:      time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
				Kind:      report.EntryIncome,
				FieldName: "Upper Division",
				Details:   "tea (Silva)",
				Amount:    decimal.NewFromInt(5000),
			},
		},
	}
}

func TestCSV(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, render.CSV(&sb, sampleDocument(t)))
	out := sb.String()

	expectedLines := []string{
		"Estate Report,2024-06-01 to 2024-06-30",
		"Net Profit,1700",
		"Upper Division,5000,3000,2000",
		"General,0,300,-300",
		"tea,100,5000",
		"labor_cost,3300",
		"Silva,100,5000,2000,3000",
		"2024-06-05,Income,Upper Division,tea (Silva),5000",
	}

	for _, line := range expectedLines {
		assert.Contains(t, out, line+"\n")
	}
}

func TestXLSX(t *testing.T) {
	var buf strings.Builder

	// The workbook is a zip archive; a non-empty write with the PK
	// signature is enough to know the file assembled.
	require.NoError(t, render.XLSX(&buf, sampleDocument(t)))
	assert.True(t, strings.HasPrefix(buf.String(), "PK"))
}
