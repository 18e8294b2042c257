package fieldbook_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasitha-J/tea-management/internal/importer"
	"github.com/Hasitha-J/tea-management/internal/importer/fieldbook"
)

func TestParser_HarvestSheet(t *testing.T) {
	csv := strings.Join([]string{
		"Date,Field,Crop,Weight (kg),Rate,Collector",
		"2024-06-05,Upper Division,Tea,102.5,,Silva",
		"2024-06-12,Lower Division,Pepper,5,2000,",
		"Total,,,107.5,,",
	}, "\n")

	records, err := fieldbook.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2, "footer row must be skipped")

	tea := records[0]
	assert.Equal(t, importer.RecordHarvest, tea.Kind)
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), tea.Date)
	assert.Equal(t, "Upper Division", tea.FieldName)
	assert.Equal(t, "tea", tea.Crop)
	assert.Equal(t, "Silva", tea.CollectorName)
	assert.True(t, tea.Weight.Equal(decimal.NewFromFloat(102.5)))
	assert.Nil(t, tea.Rate, "blank rate stays deferred")

	pepper := records[1]
	assert.Equal(t, "pepper", pepper.Crop)
	assert.Empty(t, pepper.CollectorName)
	require.NotNil(t, pepper.Rate)
	assert.True(t, pepper.Rate.Equal(decimal.NewFromInt(2000)))
}

func TestParser_SkipsTitleRowsAboveHeader(t *testing.T) {
	csv := strings.Join([]string{
		"Galaha Estate Fieldbook",
		"June 2024",
		"",
		"Date,Field,Crop,Weight,Rate,Collector",
		"05/06/2024,Upper Division,Tea,80,,Silva",
	}, "\n")

	records, err := fieldbook.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.True(t, records[0].Weight.Equal(decimal.NewFromInt(80)))
}

func TestParser_ExpenseSheet(t *testing.T) {
	csv := strings.Join([]string{
		"Date,Field,Type,Description,Qty,Amount",
		"2024-06-10,Upper Division,Labour,Plucking,3,\"4,500.00\"",
		"2024-06-11,,General,Electricity bill,,2400",
		"2024-06-12,Lower Division,Materials,Fertilizer,2,6400",
		"not a date,,,,,",
	}, "\n")

	records, err := fieldbook.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 3)

	labor := records[0]
	assert.Equal(t, importer.RecordExpense, labor.Kind)
	assert.Equal(t, "labor_cost", labor.ExpenseKind)
	assert.Equal(t, "Plucking", labor.Description)
	assert.True(t, labor.Quantity.Equal(decimal.NewFromInt(3)))
	assert.True(t, labor.Amount.Equal(decimal.NewFromFloat(4500)), "thousands separator must parse")

	overhead := records[1]
	assert.Equal(t, "overhead", overhead.ExpenseKind)
	assert.Empty(t, overhead.FieldName)
	assert.True(t, overhead.Quantity.Equal(decimal.NewFromInt(1)), "blank quantity defaults to one")

	goods := records[2]
	assert.Equal(t, "goods_cost", goods.ExpenseKind)
	assert.True(t, goods.Quantity.Equal(decimal.NewFromInt(2)))
}

func TestParser_UnknownLayout(t *testing.T) {
	csv := "Timestamp,Reading,Sensor\n2024-06-05,21.5,north"

	_, err := fieldbook.NewParser().Parse(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestParser_SkipsUnparseableRows(t *testing.T) {
	csv := strings.Join([]string{
		"Date,Field,Crop,Weight (kg),Rate,Collector",
		"2024-06-05,Upper Division,Tea,not-a-number,,Silva",
		"2024-06-06,Upper Division,Tea,50,,Silva",
	}, "\n")

	records, err := fieldbook.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Weight.Equal(decimal.NewFromInt(50)))
}
