package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/harvest"
)

// ResolvedHarvest is a harvest whose effective price has been settled
// against the rate table. RatePending marks tea harvests whose collector
// has not announced a rate for the month yet; their total stays as
// stored (zero for unpriced entries).
type ResolvedHarvest struct {
	harvest.Harvest

	RatePending bool
}

type rateKey struct {
	collectorID uuid.UUID
	month       int
	year        int
}

// ResolveHarvests prices tea harvests that were recorded without a rate,
// using the monthly rate of their collector. It never mutates its inputs
// and is idempotent: harvests already carrying a non-zero rate pass
// through untouched, as do cash sales and non-tea crops.
//
// The rate slice must cover the month and year of every candidate
// harvest; the caller fetches the table for the query window. Duplicate
// (collector, month, year) rows cannot be produced by the upsert key, so
// finding one is a data-integrity problem: the first match wins and a
// warning is recorded.
func ResolveHarvests(harvests []*harvest.Harvest, rates []*collector.Rate) ([]ResolvedHarvest, []Warning) {
	var warnings []Warning

	index := make(map[rateKey]*collector.Rate, len(rates))

	for _, r := range rates {
		k := rateKey{collectorID: r.CollectorID, month: r.Month, year: r.Year}

		if _, exists := index[k]; exists {
			warnings = append(warnings, Warning{
				Kind:     WarningDuplicateRate,
				RecordID: r.ID,
				Detail:   fmt.Sprintf("duplicate rate for collector %s %d/%d", r.CollectorID, r.Month, r.Year),
			})

			continue
		}

		index[k] = r
	}

	resolved := make([]ResolvedHarvest, 0, len(harvests))

	for _, h := range harvests {
		rh := ResolvedHarvest{Harvest: *h}

		if eligible(h) {
			k := rateKey{
				collectorID: *h.CollectorID,
				month:       int(h.Date.Month()),
				year:        h.Date.Year(),
			}

			r, found := index[k]
			if found {
				rate := r.Rate
				rh.Rate = &rate
				rh.TotalAmount = h.Weight.Mul(rate)
			} else {
				rh.RatePending = true
			}
		}

		resolved = append(resolved, rh)
	}

	return resolved, warnings
}

// eligible reports whether a harvest defers its price to the rate table:
// tea, sold to a collector, with no entry-time rate.
func eligible(h *harvest.Harvest) bool {
	return h.Crop == harvest.CropTea && h.CollectorID != nil && !h.Priced()
}
