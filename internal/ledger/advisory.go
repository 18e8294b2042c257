package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/harvest"
)

// RateAdvisory flags a collector who took tea deliveries in a month that
// still has no rate entry. It is a prompt for the user, not an error:
// the affected harvests simply stay rate-pending until the rate lands.
type RateAdvisory struct {
	CollectorID   uuid.UUID
	CollectorName string
	Month         int
	Year          int
	Harvests      int
}

// MissingRates scans the calendar month before now for tea harvests
// whose collector has no rate for that month. Advisories come back in
// the order collectors first appear in the harvest slice.
func MissingRates(harvests []*harvest.Harvest, rates []*collector.Rate, now time.Time) []RateAdvisory {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prev := first.AddDate(0, -1, 0)
	month, year := int(prev.Month()), prev.Year()

	covered := make(map[uuid.UUID]bool, len(rates))

	for _, r := range rates {
		if r.Month == month && r.Year == year {
			covered[r.CollectorID] = true
		}
	}

	var advisories []RateAdvisory

	seen := make(map[uuid.UUID]int)

	for _, h := range harvests {
		if h.Crop != harvest.CropTea || h.CollectorID == nil {
			continue
		}

		if int(h.Date.Month()) != month || h.Date.Year() != year {
			continue
		}

		if covered[*h.CollectorID] {
			continue
		}

		idx, ok := seen[*h.CollectorID]
		if !ok {
			seen[*h.CollectorID] = len(advisories)
			advisories = append(advisories, RateAdvisory{
				CollectorID:   *h.CollectorID,
				CollectorName: h.CollectorName,
				Month:         month,
				Year:          year,
			})
			idx = len(advisories) - 1
		}

		advisories[idx].Harvests++
	}

	return advisories
}
