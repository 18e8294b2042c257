// Package ledger derives financial summaries from harvest and expense
// records. Everything in here is a pure transform over fetched
// snapshots: the resolver prices deferred tea harvests from the monthly
// collector rate table, the aggregator folds priced harvests and
// expenses into per-field profitability, and the advisory scan flags
// months still waiting for a rate.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPeriod = errors.New("period start is after end")

// Period is an inclusive date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod validates and builds an inclusive date range.
func NewPeriod(start, end time.Time) (Period, error) {
	if start.After(end) {
		return Period{}, fmt.Errorf("%w: %s > %s",
			ErrInvalidPeriod, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return Period{Start: start, End: end}, nil
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// WarningKind classifies non-fatal data issues found during derivation.
// The affected record is excluded (or taken first-match, for duplicate
// rates) and the computation continues.
type WarningKind string

const (
	WarningDuplicateRate    WarningKind = "duplicate_rate"
	WarningUnknownField     WarningKind = "unknown_field"
	WarningUnknownCollector WarningKind = "unknown_collector"
)

type Warning struct {
	Kind     WarningKind
	RecordID uuid.UUID
	Detail   string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (%s)", w.Kind, w.Detail, w.RecordID)
}
