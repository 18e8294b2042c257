package harvest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Crop identifies what was harvested.
type Crop string

const (
	CropTea    Crop = "tea"
	CropPepper Crop = "pepper"
	CropCoffee Crop = "coffee"
)

// Harvest is one weighing of produce. Rate is nil for tea handed to a
// collector before the monthly price is announced; such rows carry a
// zero TotalAmount until the ledger resolver (or the rate-set reprice)
// prices them. A nil CollectorID means a direct cash sale, which must be
// priced at entry and is never resolved against the rate table.
type Harvest struct {
	ID          uuid.UUID
	Date        time.Time
	FieldID     *uuid.UUID
	Crop        Crop
	Weight      decimal.Decimal // kg
	Rate        *decimal.Decimal
	CollectorID *uuid.UUID
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	FieldName     string // loaded via JOIN
	CollectorName string // loaded via JOIN
}

// Priced reports whether the harvest carries an entry-time price.
func (h *Harvest) Priced() bool {
	return h.Rate != nil && !h.Rate.IsZero()
}
