package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/harvest"
	"github.com/Hasitha-J/tea-management/internal/ledger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveHarvests_PricesPendingTea(t *testing.T) {
	collectorID := uuid.New()

	harvests := []*harvest.Harvest{
		{
			ID:          uuid.New(),
			Date:        date(2024, time.June, 15),
			Crop:        harvest.CropTea,
			Weight:      decimal.NewFromInt(100),
			CollectorID: &collectorID,
		},
	}

	rates := []*collector.Rate{
		{ID: uuid.New(), CollectorID: collectorID, Month: 6, Year: 2024, Rate: decimal.NewFromInt(50)},
	}

	resolved, warnings := ledger.ResolveHarvests(harvests, rates)

	require.Len(t, resolved, 1)
	assert.Empty(t, warnings)
	assert.False(t, resolved[0].RatePending)
	require.NotNil(t, resolved[0].Rate)
	assert.True(t, resolved[0].Rate.Equal(decimal.NewFromInt(50)))
	assert.True(t, resolved[0].TotalAmount.Equal(decimal.NewFromInt(5000)),
		"want 5000, got %s", resolved[0].TotalAmount)

	// The input harvest must not be touched.
	assert.Nil(t, harvests[0].Rate)
	assert.True(t, harvests[0].TotalAmount.IsZero())
}

func TestResolveHarvests_MissingRateStaysPending(t *testing.T) {
	collectorID := uuid.New()

	harvests := []*harvest.Harvest{
		{
			ID:          uuid.New(),
			Date:        date(2024, time.July, 2),
			Crop:        harvest.CropTea,
			Weight:      decimal.NewFromInt(80),
			CollectorID: &collectorID,
		},
	}

	// Rate exists for a different month only.
	rates := []*collector.Rate{
		{ID: uuid.New(), CollectorID: collectorID, Month: 6, Year: 2024, Rate: decimal.NewFromInt(50)},
	}

	resolved, warnings := ledger.ResolveHarvests(harvests, rates)

	require.Len(t, resolved, 1)
	assert.Empty(t, warnings)
	assert.True(t, resolved[0].RatePending)
	assert.Nil(t, resolved[0].Rate)
	assert.True(t, resolved[0].TotalAmount.IsZero())
}

func TestResolveHarvests_PricedEntriesPassThrough(t *testing.T) {
	collectorID := uuid.New()
	entryRate := decimal.NewFromInt(60)

	harvests := []*harvest.Harvest{
		{
			ID:          uuid.New(),
			Date:        date(2024, time.June, 10),
			Crop:        harvest.CropTea,
			Weight:      decimal.NewFromInt(10),
			Rate:        &entryRate,
			CollectorID: &collectorID,
			TotalAmount: decimal.NewFromInt(600),
		},
		{
			ID:          uuid.New(),
			Date:        date(2024, time.June, 11),
			Crop:        harvest.CropPepper,
			Weight:      decimal.NewFromInt(5),
			Rate:        decPtr(decimal.NewFromInt(2000)),
			TotalAmount: decimal.NewFromInt(10000),
		},
	}

	// The monthly rate differs from the entry rate; it must not win.
	rates := []*collector.Rate{
		{ID: uuid.New(), CollectorID: collectorID, Month: 6, Year: 2024, Rate: decimal.NewFromInt(50)},
	}

	resolved, _ := ledger.ResolveHarvests(harvests, rates)

	require.Len(t, resolved, 2)
	assert.True(t, resolved[0].TotalAmount.Equal(decimal.NewFromInt(600)))
	assert.True(t, resolved[0].Rate.Equal(entryRate))
	assert.False(t, resolved[0].RatePending)
	assert.True(t, resolved[1].TotalAmount.Equal(decimal.NewFromInt(10000)))
	assert.False(t, resolved[1].RatePending)
}

func TestResolveHarvests_Idempotent(t *testing.T) {
	collectorID := uuid.New()

	harvests := []*harvest.Harvest{
		{
			ID:          uuid.New(),
			Date:        date(2024, time.June, 15),
			Crop:        harvest.CropTea,
			Weight:      decimal.NewFromInt(100),
			CollectorID: &collectorID,
		},
	}

	rates := []*collector.Rate{
		{ID: uuid.New(), CollectorID: collectorID, Month: 6, Year: 2024, Rate: decimal.NewFromInt(50)},
	}

	once, _ := ledger.ResolveHarvests(harvests, rates)

	// Feed the resolved output back in as if it had been stored.
	again := []*harvest.Harvest{&once[0].Harvest}
	twice, _ := ledger.ResolveHarvests(again, rates)

	require.Len(t, twice, 1)
	assert.True(t, twice[0].TotalAmount.Equal(once[0].TotalAmount))
	assert.True(t, twice[0].Rate.Equal(*once[0].Rate))
}

func TestResolveHarvests_DuplicateRateWarnsFirstWins(t *testing.T) {
	collectorID := uuid.New()

	harvests := []*harvest.Harvest{
		{
			ID:          uuid.New(),
			Date:        date(2024, time.June, 15),
			Crop:        harvest.CropTea,
			Weight:      decimal.NewFromInt(10),
			CollectorID: &collectorID,
		},
	}

	dupID := uuid.New()
	rates := []*collector.Rate{
		{ID: uuid.New(), CollectorID: collectorID, Month: 6, Year: 2024, Rate: decimal.NewFromInt(50)},
		{ID: dupID, CollectorID: collectorID, Month: 6, Year: 2024, Rate: decimal.NewFromInt(70)},
	}

	resolved, warnings := ledger.ResolveHarvests(harvests, rates)

	require.Len(t, warnings, 1)
	assert.Equal(t, ledger.WarningDuplicateRate, warnings[0].Kind)
	assert.Equal(t, dupID, warnings[0].RecordID)

	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestResolveHarvests_TeaWithoutCollectorNeedsNoRate(t *testing.T) {
	harvests := []*harvest.Harvest{
		{
			ID:          uuid.New(),
			Date:        date(2024, time.June, 15),
			Crop:        harvest.CropTea,
			Weight:      decimal.NewFromInt(20),
			Rate:        decPtr(decimal.NewFromInt(55)),
			TotalAmount: decimal.NewFromInt(1100),
		},
	}

	resolved, warnings := ledger.ResolveHarvests(harvests, nil)

	require.Len(t, resolved, 1)
	assert.Empty(t, warnings)
	assert.False(t, resolved[0].RatePending)
	assert.True(t, resolved[0].TotalAmount.Equal(decimal.NewFromInt(1100)))
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
