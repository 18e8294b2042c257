package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasitha-J/tea-management/internal/expense"
	"github.com/Hasitha-J/tea-management/internal/field"
	"github.com/Hasitha-J/tea-management/internal/harvest"
	"github.com/Hasitha-J/tea-management/internal/ledger"
)

func june2024(t *testing.T) ledger.Period {
	t.Helper()

	p, err := ledger.NewPeriod(date(2024, time.June, 1), date(2024, time.June, 30))
	require.NoError(t, err)

	return p
}

func priced(d time.Time, fieldID *uuid.UUID, amount int64) ledger.ResolvedHarvest {
	return ledger.ResolvedHarvest{Harvest: harvest.Harvest{
		ID:          uuid.New(),
		Date:        d,
		FieldID:     fieldID,
		Crop:        harvest.CropTea,
		TotalAmount: decimal.NewFromInt(amount),
	}}
}

func spent(d time.Time, fieldID *uuid.UUID, amount int64) *expense.Expense {
	return &expense.Expense{
		ID:          uuid.New(),
		Date:        d,
		FieldID:     fieldID,
		Kind:        expense.KindLaborCost,
		TotalAmount: decimal.NewFromInt(amount),
	}
}

func TestAggregate_FieldAndEstateTotals(t *testing.T) {
	fieldA := &field.Field{ID: uuid.New(), Name: "Upper Division"}
	fieldB := &field.Field{ID: uuid.New(), Name: "Lower Division"}
	period := june2024(t)

	harvests := []ledger.ResolvedHarvest{
		priced(date(2024, time.June, 5), &fieldA.ID, 2500),
		priced(date(2024, time.June, 20), &fieldA.ID, 1500),
	}
	expenses := []*expense.Expense{
		spent(date(2024, time.June, 10), &fieldA.ID, 1000),
		spent(date(2024, time.June, 12), nil, 300),
	}

	s := ledger.Aggregate(harvests, expenses, []*field.Field{fieldA, fieldB}, period, nil)

	require.Len(t, s.Fields, 2)
	assert.Empty(t, s.Warnings)

	rowA := s.Fields[0]
	assert.Equal(t, "Upper Division", rowA.FieldName)
	assert.True(t, rowA.TotalIncome.Equal(decimal.NewFromInt(4000)))
	assert.True(t, rowA.TotalExpense.Equal(decimal.NewFromInt(1000)))
	assert.True(t, rowA.NetProfit.Equal(decimal.NewFromInt(3000)))

	rowB := s.Fields[1]
	assert.True(t, rowB.TotalIncome.IsZero())
	assert.True(t, rowB.NetProfit.IsZero())

	assert.Equal(t, ledger.GeneralLabel, s.General.FieldName)
	assert.Nil(t, s.General.FieldID)
	assert.True(t, s.General.TotalExpense.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.General.NetProfit.Equal(decimal.NewFromInt(-300)))

	// Estate totals include the general bucket.
	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(4000)))
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(1300)))
	assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(2700)))
}

func TestAggregate_PeriodExcludesOutsideRecords(t *testing.T) {
	f := &field.Field{ID: uuid.New(), Name: "East Block"}
	period := june2024(t)

	harvests := []ledger.ResolvedHarvest{
		priced(date(2024, time.May, 31), &f.ID, 999),
		priced(date(2024, time.June, 1), &f.ID, 100),
		priced(date(2024, time.June, 30), &f.ID, 200),
		priced(date(2024, time.July, 1), &f.ID, 999),
	}
	expenses := []*expense.Expense{
		spent(date(2024, time.July, 2), &f.ID, 500),
	}

	s := ledger.Aggregate(harvests, expenses, []*field.Field{f}, period, nil)

	require.Len(t, s.Fields, 1)
	assert.True(t, s.Fields[0].TotalIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.Fields[0].TotalExpense.IsZero())
}

func TestAggregate_FieldFilterDropsGeneralAndOthers(t *testing.T) {
	fieldA := &field.Field{ID: uuid.New(), Name: "Upper Division"}
	fieldB := &field.Field{ID: uuid.New(), Name: "Lower Division"}
	period := june2024(t)

	harvests := []ledger.ResolvedHarvest{
		priced(date(2024, time.June, 5), &fieldA.ID, 4000),
		priced(date(2024, time.June, 6), &fieldB.ID, 7000),
		priced(date(2024, time.June, 7), nil, 500),
	}
	expenses := []*expense.Expense{
		spent(date(2024, time.June, 8), &fieldA.ID, 1000),
		spent(date(2024, time.June, 9), nil, 300),
	}

	s := ledger.Aggregate(harvests, expenses, []*field.Field{fieldA, fieldB}, period, &fieldA.ID)

	require.Len(t, s.Fields, 1)
	assert.Equal(t, "Upper Division", s.Fields[0].FieldName)
	assert.True(t, s.General.TotalIncome.IsZero())
	assert.True(t, s.General.TotalExpense.IsZero())
	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(4000)))
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(3000)))
	assert.Empty(t, s.Warnings, "filtered-out records are not data problems")
}

func TestAggregate_UnknownFieldWarnsAndExcludes(t *testing.T) {
	f := &field.Field{ID: uuid.New(), Name: "East Block"}
	ghost := uuid.New()
	period := june2024(t)

	harvests := []ledger.ResolvedHarvest{
		priced(date(2024, time.June, 5), &ghost, 1000),
		priced(date(2024, time.June, 6), &f.ID, 400),
	}
	expenses := []*expense.Expense{
		spent(date(2024, time.June, 7), &ghost, 200),
	}

	s := ledger.Aggregate(harvests, expenses, []*field.Field{f}, period, nil)

	require.Len(t, s.Warnings, 2)
	assert.Equal(t, ledger.WarningUnknownField, s.Warnings[0].Kind)
	assert.Equal(t, ledger.WarningUnknownField, s.Warnings[1].Kind)

	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(400)))
	assert.True(t, s.TotalExpense.IsZero())
}

func TestAggregate_EmptyInputs(t *testing.T) {
	s := ledger.Aggregate(nil, nil, nil, june2024(t), nil)

	assert.Empty(t, s.Fields)
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.NetProfit.IsZero())
}

func TestNewPeriod_RejectsInvertedRange(t *testing.T) {
	_, err := ledger.NewPeriod(date(2024, time.June, 30), date(2024, time.June, 1))

	assert.ErrorIs(t, err, ledger.ErrInvalidPeriod)
}
