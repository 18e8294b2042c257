package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/expense"
	"github.com/Hasitha-J/tea-management/internal/field"
	"github.com/Hasitha-J/tea-management/internal/harvest"
	"github.com/Hasitha-J/tea-management/internal/ledger"
	"github.com/Hasitha-J/tea-management/internal/report"
)

type fakeFields struct {
	list func(ctx context.Context) ([]*field.Field, error)
}

func (f *fakeFields) List(ctx context.Context) ([]*field.Field, error) {
	return f.list(ctx)
}

type fakeHarvests struct {
	list func(ctx context.Context, filter harvest.ListFilter) ([]*harvest.Harvest, error)
}

func (f *fakeHarvests) List(ctx context.Context, filter harvest.ListFilter) ([]*harvest.Harvest, error) {
	return f.list(ctx, filter)
}

type fakeExpenses struct {
	list func(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
}

func (f *fakeExpenses) List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	return f.list(ctx, filter)
}

type fakeCollectors struct {
	list     func(ctx context.Context) ([]*collector.Collector, error)
	rates    func(ctx context.Context, filter collector.RateFilter) ([]*collector.Rate, error)
	advances func(ctx context.Context, filter collector.AdvanceFilter) ([]*collector.Advance, error)
}

func (f *fakeCollectors) List(ctx context.Context) ([]*collector.Collector, error) {
	return f.list(ctx)
}

func (f *fakeCollectors) Rates(ctx context.Context, filter collector.RateFilter) ([]*collector.Rate, error) {
	return f.rates(ctx, filter)
}

func (f *fakeCollectors) Advances(ctx context.Context, filter collector.AdvanceFilter) ([]*collector.Advance, error) {
	return f.advances(ctx, filter)
}

// fixture is a small estate in June 2024: one field, one collector with
// a rate set, two harvests, one expense, one advance.
type fixture struct {
	fieldID     uuid.UUID
	collectorID uuid.UUID

	fields     *fakeFields
	harvests   *fakeHarvests
	expenses   *fakeExpenses
	collectors *fakeCollectors
}

func newFixture() *fixture {
	fx := &fixture{
		fieldID:     uuid.New(),
		collectorID: uuid.New(),
	}

	teaDate := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	pepperDate := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	fx.fields = &fakeFields{
		list: func(context.Context) ([]*field.Field, error) {
			return []*field.Field{{ID: fx.fieldID, Name: "Upper Division"}}, nil
		},
	}

	fx.harvests = &fakeHarvests{
		list: func(_ context.Context, filter harvest.ListFilter) ([]*harvest.Harvest, error) {
			// The advisory scan fetches the previous month with a crop
			// filter; this estate has no deliveries there.
			if filter.Crop != nil {
				return nil, nil
			}

			return []*harvest.Harvest{
				{
					ID:            uuid.New(),
					Date:          teaDate,
					FieldID:       &fx.fieldID,
					Crop:          harvest.CropTea,
					Weight:        decimal.NewFromInt(100),
					CollectorID:   &fx.collectorID,
					CollectorName: "Silva",
					FieldName:     "Upper Division",
				},
				{
					ID:          uuid.New(),
					Date:        pepperDate,
					FieldID:     &fx.fieldID,
					Crop:        harvest.CropPepper,
					Weight:      decimal.NewFromInt(5),
					Rate:        decPtr(decimal.NewFromInt(2000)),
					TotalAmount: decimal.NewFromInt(10000),
					FieldName:   "Upper Division",
				},
			}, nil
		},
	}

	fx.expenses = &fakeExpenses{
		list: func(_ context.Context, _ expense.ListFilter) ([]*expense.Expense, error) {
			return []*expense.Expense{
				{
					ID:          uuid.New(),
					Date:        time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
					Kind:        expense.KindLaborCost,
					Description: "Plucking",
					TotalAmount: decimal.NewFromInt(3000),
				},
			}, nil
		},
	}

	fx.collectors = &fakeCollectors{
		list: func(context.Context) ([]*collector.Collector, error) {
			return []*collector.Collector{
				{ID: fx.collectorID, Name: "Silva"},
				{ID: uuid.New(), Name: "Idle Collector"},
			}, nil
		},
		rates: func(context.Context, collector.RateFilter) ([]*collector.Rate, error) {
			return []*collector.Rate{
				{ID: uuid.New(), CollectorID: fx.collectorID, Month: 6, Year: 2024, Rate: decimal.NewFromInt(50)},
			}, nil
		},
		advances: func(context.Context, collector.AdvanceFilter) ([]*collector.Advance, error) {
			return []*collector.Advance{
				{
					ID:            uuid.New(),
					CollectorID:   fx.collectorID,
					Date:          time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
					Amount:        decimal.NewFromInt(2000),
					CollectorName: "Silva",
				},
			}, nil
		},
	}

	return fx
}

func (fx *fixture) compiler() *report.Compiler {
	return report.NewCompiler(fx.fields, fx.harvests, fx.expenses, fx.collectors)
}

func junePeriod(t *testing.T) ledger.Period {
	t.Helper()

	p, err := ledger.NewPeriod(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	return p
}

func TestCompiler_Compile(t *testing.T) {
	fx := newFixture()
	doc, err := fx.compiler().Compile(context.Background(), junePeriod(t))
	require.NoError(t, err)

	// Tea priced from the monthly rate: 100 kg * 50.
	assert.True(t, doc.Summary.TotalIncome.Equal(decimal.NewFromInt(15000)))
	assert.True(t, doc.Summary.TotalExpense.Equal(decimal.NewFromInt(3000)))
	assert.True(t, doc.Summary.NetProfit.Equal(decimal.NewFromInt(12000)))
	assert.Zero(t, doc.Skipped)

	require.Len(t, doc.Crops, 2)
	assert.Equal(t, harvest.CropTea, doc.Crops[0].Crop)
	assert.True(t, doc.Crops[0].TotalWeight.Equal(decimal.NewFromInt(100)))
	assert.True(t, doc.Crops[0].TotalRevenue.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, harvest.CropPepper, doc.Crops[1].Crop)

	require.Len(t, doc.ExpenseKinds, 1)
	assert.Equal(t, expense.KindLaborCost, doc.ExpenseKinds[0].Kind)

	// The idle collector has neither deliveries nor advances and is
	// left out.
	require.Len(t, doc.Collectors, 1)
	row := doc.Collectors[0]
	assert.Equal(t, "Silva", row.Name)
	assert.True(t, row.TotalWeight.Equal(decimal.NewFromInt(100)))
	assert.True(t, row.TotalRevenue.Equal(decimal.NewFromInt(5000)))
	assert.True(t, row.TotalAdvances.Equal(decimal.NewFromInt(2000)))
	assert.True(t, row.Balance.Equal(decimal.NewFromInt(3000)))

	// Log is date descending: advance (20th), pepper and labor (12th,
	// source order: harvests before expenses), tea (5th).
	require.Len(t, doc.Log, 4)
	assert.Equal(t, report.EntryAdvance, doc.Log[0].Kind)
	assert.Equal(t, "Advance: Silva", doc.Log[0].Details)
	assert.Equal(t, report.EntryIncome, doc.Log[1].Kind)
	assert.Equal(t, "pepper", doc.Log[1].Details)
	assert.Equal(t, report.EntryExpense, doc.Log[2].Kind)
	assert.Equal(t, "Plucking", doc.Log[2].Details)
	assert.Equal(t, report.EntryIncome, doc.Log[3].Kind)
	assert.Equal(t, "tea (Silva)", doc.Log[3].Details)
}

func TestCompiler_Compile_FetchFailureAborts(t *testing.T) {
	fx := newFixture()
	fx.expenses.list = func(context.Context, expense.ListFilter) ([]*expense.Expense, error) {
		return nil, errors.New("connection refused")
	}

	doc, err := fx.compiler().Compile(context.Background(), junePeriod(t))

	assert.Nil(t, doc)

	var fetchErr *report.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "transactions", fetchErr.Collection)
}

func TestCompiler_Summarize_FieldFilter(t *testing.T) {
	fx := newFixture()

	summary, _, err := fx.compiler().Summarize(context.Background(), junePeriod(t), &fx.fieldID)
	require.NoError(t, err)

	require.Len(t, summary.Fields, 1)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(15000)))
	assert.True(t, summary.General.TotalIncome.IsZero())
}

func TestCompiler_Compile_CountsUnknownFieldWarnings(t *testing.T) {
	fx := newFixture()
	ghost := uuid.New()
	fx.expenses.list = func(context.Context, expense.ListFilter) ([]*expense.Expense, error) {
		return []*expense.Expense{
			{
				ID:          uuid.New(),
				Date:        time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
				FieldID:     &ghost,
				Kind:        expense.KindLaborCost,
				TotalAmount: decimal.NewFromInt(500),
			},
		}, nil
	}

	doc, err := fx.compiler().Compile(context.Background(), junePeriod(t))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Skipped)
	assert.True(t, doc.Summary.TotalExpense.IsZero())
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
