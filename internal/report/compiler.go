package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/expense"
	"github.com/Hasitha-J/tea-management/internal/field"
	"github.com/Hasitha-J/tea-management/internal/harvest"
	"github.com/Hasitha-J/tea-management/internal/ledger"
)

type FieldLister interface {
	List(ctx context.Context) ([]*field.Field, error)
}

type HarvestLister interface {
	List(ctx context.Context, filter harvest.ListFilter) ([]*harvest.Harvest, error)
}

type ExpenseLister interface {
	List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
}

type CollectorDirectory interface {
	List(ctx context.Context) ([]*collector.Collector, error)
	Rates(ctx context.Context, filter collector.RateFilter) ([]*collector.Rate, error)
	Advances(ctx context.Context, filter collector.AdvanceFilter) ([]*collector.Advance, error)
}

// Compiler fetches the record snapshots and compiles them into ledger
// summaries and report documents. All fetches are reads; cancelling the
// context aborts before any computation.
type Compiler struct {
	fields     FieldLister
	harvests   HarvestLister
	expenses   ExpenseLister
	collectors CollectorDirectory

	now func() time.Time
}

func NewCompiler(fields FieldLister, harvests HarvestLister, expenses ExpenseLister, collectors CollectorDirectory) *Compiler {
	return &Compiler{
		fields:     fields,
		harvests:   harvests,
		expenses:   expenses,
		collectors: collectors,
		now:        time.Now,
	}
}

// snapshot holds one consistent set of fetched collections.
type snapshot struct {
	fields     []*field.Field
	harvests   []*harvest.Harvest
	expenses   []*expense.Expense
	rates      []*collector.Rate
	advances   []*collector.Advance
	collectors []*collector.Collector
}

// fetch loads the requested collections concurrently and joins before
// returning. withCollectors additionally loads advances and the
// collector directory (only report compilation needs them). Any failure
// cancels the remaining fetches and surfaces as a FetchError naming the
// collection.
func (c *Compiler) fetch(ctx context.Context, period ledger.Period, withCollectors bool) (*snapshot, error) {
	snap := &snapshot{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fields, err := c.fields.List(ctx)
		if err != nil {
			return &FetchError{Collection: "fields", Err: err}
		}

		snap.fields = fields

		return nil
	})

	g.Go(func() error {
		harvests, err := c.harvests.List(ctx, harvest.ListFilter{
			StartDate: &period.Start,
			EndDate:   &period.End,
		})
		if err != nil {
			return &FetchError{Collection: "harvests", Err: err}
		}

		snap.harvests = harvests

		return nil
	})

	g.Go(func() error {
		expenses, err := c.expenses.List(ctx, expense.ListFilter{
			StartDate: &period.Start,
			EndDate:   &period.End,
		})
		if err != nil {
			return &FetchError{Collection: "transactions", Err: err}
		}

		snap.expenses = expenses

		return nil
	})

	g.Go(func() error {
		rates, err := c.collectors.Rates(ctx, collector.RateFilter{})
		if err != nil {
			return &FetchError{Collection: "collector_rates", Err: err}
		}

		snap.rates = rates

		return nil
	})

	if withCollectors {
		g.Go(func() error {
			advances, err := c.collectors.Advances(ctx, collector.AdvanceFilter{
				StartDate: &period.Start,
				EndDate:   &period.End,
			})
			if err != nil {
				return &FetchError{Collection: "collector_advances", Err: err}
			}

			snap.advances = advances

			return nil
		})

		g.Go(func() error {
			collectors, err := c.collectors.List(ctx)
			if err != nil {
				return &FetchError{Collection: "tea_collectors", Err: err}
			}

			snap.collectors = collectors

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}

// Summarize computes the dashboard view: per-field profitability for the
// period plus missing-rate advisories for the previous calendar month.
func (c *Compiler) Summarize(ctx context.Context, period ledger.Period, fieldFilter *uuid.UUID) (*ledger.Summary, []ledger.RateAdvisory, error) {
	snap, err := c.fetch(ctx, period, false)
	if err != nil {
		return nil, nil, err
	}

	resolved, warnings := ledger.ResolveHarvests(snap.harvests, snap.rates)
	summary := ledger.Aggregate(resolved, snap.expenses, snap.fields, period, fieldFilter)
	summary.Warnings = append(warnings, summary.Warnings...)

	// The advisory window (previous calendar month) may fall outside
	// the requested period, so it gets its own harvest fetch.
	advisories, err := c.missingRates(ctx, snap.rates)
	if err != nil {
		return nil, nil, err
	}

	return summary, advisories, nil
}

func (c *Compiler) missingRates(ctx context.Context, rates []*collector.Rate) ([]ledger.RateAdvisory, error) {
	first := time.Date(c.now().Year(), c.now().Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, -1, 0)
	end := first.AddDate(0, 0, -1)

	crop := harvest.CropTea

	harvests, err := c.harvests.List(ctx, harvest.ListFilter{
		StartDate: &start,
		EndDate:   &end,
		Crop:      &crop,
	})
	if err != nil {
		return nil, &FetchError{Collection: "harvests", Err: err}
	}

	return ledger.MissingRates(harvests, rates, c.now()), nil
}

// Compile builds the full report document for the period.
func (c *Compiler) Compile(ctx context.Context, period ledger.Period) (*Document, error) {
	snap, err := c.fetch(ctx, period, true)
	if err != nil {
		return nil, err
	}

	resolved, warnings := ledger.ResolveHarvests(snap.harvests, snap.rates)
	summary := ledger.Aggregate(resolved, snap.expenses, snap.fields, period, nil)
	summary.Warnings = append(warnings, summary.Warnings...)

	doc := &Document{
		Period:       period,
		GeneratedAt:  c.now(),
		Summary:      summary,
		Crops:        cropRows(resolved),
		ExpenseKinds: expenseKindRows(snap.expenses),
		Collectors:   collectorRows(snap.collectors, resolved, snap.advances),
		Log:          combinedLog(resolved, snap.expenses, snap.advances),
	}

	advisories, err := c.missingRates(ctx, snap.rates)
	if err != nil {
		return nil, err
	}

	doc.Advisories = advisories

	for _, w := range summary.Warnings {
		if w.Kind == ledger.WarningUnknownField {
			doc.Skipped++
		}
	}

	return doc, nil
}

func cropRows(harvests []ledger.ResolvedHarvest) []CropRow {
	var rows []CropRow

	idx := make(map[harvest.Crop]int)

	for _, h := range harvests {
		i, ok := idx[h.Crop]
		if !ok {
			idx[h.Crop] = len(rows)
			rows = append(rows, CropRow{Crop: h.Crop})
			i = len(rows) - 1
		}

		rows[i].TotalWeight = rows[i].TotalWeight.Add(h.Weight)
		rows[i].TotalRevenue = rows[i].TotalRevenue.Add(h.TotalAmount)
	}

	return rows
}

// expenseKindRows breaks spend down by kind, in the enumeration order,
// keeping only kinds with spend.
func expenseKindRows(expenses []*expense.Expense) []ExpenseKindRow {
	totals := make(map[expense.Kind]ExpenseKindRow, 4)

	for _, e := range expenses {
		row := totals[e.Kind]
		row.Kind = e.Kind
		row.Amount = row.Amount.Add(e.TotalAmount)
		totals[e.Kind] = row
	}

	var rows []ExpenseKindRow

	for _, kind := range expense.Kinds() {
		row, ok := totals[kind]
		if ok && !row.Amount.IsZero() {
			rows = append(rows, row)
		}
	}

	return rows
}

// collectorRows keeps only collectors with activity in the period:
// either deliveries or outstanding advances.
func collectorRows(collectors []*collector.Collector, harvests []ledger.ResolvedHarvest, advances []*collector.Advance) []CollectorRow {
	var rows []CollectorRow

	for _, c := range collectors {
		row := CollectorRow{CollectorID: c.ID, Name: c.Name}

		for _, h := range harvests {
			if h.CollectorID == nil || *h.CollectorID != c.ID {
				continue
			}

			row.TotalWeight = row.TotalWeight.Add(h.Weight)
			row.TotalRevenue = row.TotalRevenue.Add(h.TotalAmount)
		}

		for _, a := range advances {
			if a.CollectorID == c.ID {
				row.TotalAdvances = row.TotalAdvances.Add(a.Amount)
			}
		}

		if row.TotalWeight.IsZero() && row.TotalAdvances.IsZero() {
			continue
		}

		row.Balance = row.TotalRevenue.Sub(row.TotalAdvances)
		rows = append(rows, row)
	}

	return rows
}

func combinedLog(harvests []ledger.ResolvedHarvest, expenses []*expense.Expense, advances []*collector.Advance) []LogEntry {
	entries := make([]LogEntry, 0, len(harvests)+len(expenses)+len(advances))

	for _, h := range harvests {
		details := string(h.Crop)
		if h.Crop == harvest.CropTea && h.CollectorID != nil {
			details = fmt.Sprintf("%s (%s)", h.Crop, orDash(h.CollectorName))
		}

		entries = append(entries, LogEntry{
			Date:      h.Date,
			Kind:      EntryIncome,
			FieldName: orDash(h.FieldName),
			Details:   details,
			Amount:    h.TotalAmount,
		})
	}

	for _, e := range expenses {
		details := e.Description
		if details == "" {
			details = string(e.Kind)
		}

		entries = append(entries, LogEntry{
			Date:      e.Date,
			Kind:      EntryExpense,
			FieldName: orDash(e.FieldName),
			Details:   details,
			Amount:    e.TotalAmount,
		})
	}

	for _, a := range advances {
		entries = append(entries, LogEntry{
			Date:      a.Date,
			Kind:      EntryAdvance,
			FieldName: "-",
			Details:   fmt.Sprintf("Advance: %s", orDash(a.CollectorName)),
			Amount:    a.Amount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
