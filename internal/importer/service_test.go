package importer_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasitha-J/tea-management/internal/catalog"
	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/expense"
	"github.com/Hasitha-J/tea-management/internal/field"
	"github.com/Hasitha-J/tea-management/internal/harvest"
	"github.com/Hasitha-J/tea-management/internal/importer"
)

type stubParser struct {
	records []importer.Record
	err     error
}

func (p *stubParser) Parse(io.Reader) ([]importer.Record, error) {
	return p.records, p.err
}

// worldFake backs every directory interface with in-memory maps so one
// import run can be observed end to end.
type worldFake struct {
	fields     []*field.Field
	collectors []*collector.Collector
	activities []*catalog.Activity
	inventory  []*catalog.InventoryItem

	loggedHarvests   []harvest.CreateParams
	recordedExpenses []expense.CreateParams

	createdFields     []string
	createdCollectors []string
}

func (w *worldFake) List(context.Context) ([]*field.Field, error) { return w.fields, nil }

func (w *worldFake) Create(_ context.Context, name string) (*field.Field, error) {
	f := &field.Field{ID: uuid.New(), Name: name}
	w.fields = append(w.fields, f)
	w.createdFields = append(w.createdFields, name)

	return f, nil
}

type collectorFake struct{ w *worldFake }

func (c collectorFake) List(context.Context) ([]*collector.Collector, error) {
	return c.w.collectors, nil
}

func (c collectorFake) Add(_ context.Context, name, contact string) (*collector.Collector, error) {
	col := &collector.Collector{ID: uuid.New(), Name: name, Contact: contact}
	c.w.collectors = append(c.w.collectors, col)
	c.w.createdCollectors = append(c.w.createdCollectors, name)

	return col, nil
}

type catalogFake struct{ w *worldFake }

func (c catalogFake) Activities(context.Context) ([]*catalog.Activity, error) {
	return c.w.activities, nil
}

func (c catalogFake) Inventory(context.Context) ([]*catalog.InventoryItem, error) {
	return c.w.inventory, nil
}

type harvestFake struct{ w *worldFake }

func (h harvestFake) Log(_ context.Context, params harvest.CreateParams) (*harvest.Harvest, error) {
	h.w.loggedHarvests = append(h.w.loggedHarvests, params)

	return &harvest.Harvest{ID: uuid.New()}, nil
}

type expenseFake struct{ w *worldFake }

func (e expenseFake) Record(_ context.Context, params expense.CreateParams) (*expense.Expense, error) {
	e.w.recordedExpenses = append(e.w.recordedExpenses, params)

	return &expense.Expense{ID: uuid.New()}, nil
}

func newService(w *worldFake, records []importer.Record) *importer.Service {
	return importer.NewService(
		&stubParser{records: records},
		w,
		collectorFake{w},
		catalogFake{w},
		harvestFake{w},
		expenseFake{w},
	)
}

func TestService_Import_CreatesMissingFieldsAndCollectors(t *testing.T) {
	w := &worldFake{
		fields: []*field.Field{{ID: uuid.New(), Name: "Upper Division"}},
	}

	records := []importer.Record{
		{
			Kind:      importer.RecordHarvest,
			Date:      time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			FieldName: "upper division", // case-insensitive match
			Crop:      "tea",
			Weight:    decimal.NewFromInt(100),

			CollectorName: "Silva",
		},
		{
			Kind:      importer.RecordHarvest,
			Date:      time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
			FieldName: "New Clearing",
			Crop:      "pepper",
			Weight:    decimal.NewFromInt(5),
			Rate:      decPtr(decimal.NewFromInt(2000)),
		},
	}

	result, err := newService(w, records).Import(context.Background(), importer.FormatFieldbook, strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Harvests)
	assert.Zero(t, result.Expenses)
	assert.Empty(t, result.Skipped)

	assert.Equal(t, []string{"New Clearing"}, w.createdFields)
	assert.Equal(t, []string{"Silva"}, w.createdCollectors)

	require.Len(t, w.loggedHarvests, 2)
	assert.NotNil(t, w.loggedHarvests[0].CollectorID)
	assert.Nil(t, w.loggedHarvests[0].Rate)
	assert.Nil(t, w.loggedHarvests[1].CollectorID)
}

func TestService_Import_ExpenseCategoryMatching(t *testing.T) {
	plucking := &catalog.Activity{ID: uuid.New(), Name: "Plucking"}
	fertilizer := &catalog.InventoryItem{ID: uuid.New(), Name: "Fertilizer"}

	w := &worldFake{
		activities: []*catalog.Activity{plucking},
		inventory:  []*catalog.InventoryItem{fertilizer},
	}

	records := []importer.Record{
		{
			Kind:        importer.RecordExpense,
			Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			ExpenseKind: "labor_cost",
			Description: "Plucking upper field",
			Amount:      decimal.NewFromInt(4500),
		},
		{
			Kind:        importer.RecordExpense,
			Date:        time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
			ExpenseKind: "goods_cost",
			Description: "Fertilizer",
			Amount:      decimal.NewFromInt(6400),
		},
		{
			Kind:        importer.RecordExpense,
			Date:        time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			ExpenseKind: "goods_cost",
			Description: "Mystery item",
			Amount:      decimal.NewFromInt(100),
		},
	}

	result, err := newService(w, records).Import(context.Background(), importer.FormatFieldbook, strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Expenses)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0], "row 3")
	assert.Contains(t, result.Skipped[0], "Mystery item")

	require.Len(t, w.recordedExpenses, 2)

	labor := w.recordedExpenses[0]
	require.NotNil(t, labor.CategoryID)
	assert.Equal(t, plucking.ID, *labor.CategoryID)
	// Imported amounts land as quantity one at the full amount.
	assert.True(t, labor.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, labor.Rate.Equal(decimal.NewFromInt(4500)))

	goods := w.recordedExpenses[1]
	require.NotNil(t, goods.CategoryID)
	assert.Equal(t, fertilizer.ID, *goods.CategoryID)
}

func TestService_Import_BlankKindFallsBackToOverhead(t *testing.T) {
	w := &worldFake{}

	records := []importer.Record{
		{
			Kind:   importer.RecordExpense,
			Date:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			Amount: decimal.NewFromInt(2400),
		},
	}

	result, err := newService(w, records).Import(context.Background(), importer.FormatFieldbook, strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Expenses)
	require.Len(t, w.recordedExpenses, 1)
	assert.Equal(t, expense.KindOverhead, w.recordedExpenses[0].Kind)
	assert.Equal(t, "Imported expense 2024-06-15", w.recordedExpenses[0].Description)
}

func TestService_Import_UnknownFormat(t *testing.T) {
	w := &worldFake{}

	_, err := newService(w, nil).Import(context.Background(), importer.Format("pdf"), strings.NewReader(""))
	assert.Error(t, err)
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
