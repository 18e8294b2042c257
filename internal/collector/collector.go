package collector

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Collector is a tea buyer who picks up green leaf and announces a
// price per kilogram once a month, after the fact. Harvests sold to a
// collector are priced from the monthly rate table; harvests with no
// collector are cash sales priced at entry time.
type Collector struct {
	ID        uuid.UUID
	Name      string
	Contact   string
	CreatedAt time.Time
}

// Rate is the announced price for one collector in one calendar month.
// (CollectorID, Month, Year) is the upsert key: setting a rate again
// replaces the previous value.
type Rate struct {
	ID          uuid.UUID
	CollectorID uuid.UUID
	Month       int // 1-12
	Year        int
	Rate        decimal.Decimal

	CollectorName string // loaded via JOIN
}

// Advance is cash paid to a collector against future harvest proceeds.
// Advances are never netted into harvest amounts; the running balance
// (revenue minus advances) is computed at report time only.
type Advance struct {
	ID          uuid.UUID
	CollectorID uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time

	CollectorName string // loaded via JOIN
}
