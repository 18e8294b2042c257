package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/catalog"
	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/expense"
	"github.com/Hasitha-J/tea-management/internal/field"
	"github.com/Hasitha-J/tea-management/internal/harvest"
)

type FieldDirectory interface {
	List(ctx context.Context) ([]*field.Field, error)
	Create(ctx context.Context, name string) (*field.Field, error)
}

type CollectorDirectory interface {
	List(ctx context.Context) ([]*collector.Collector, error)
	Add(ctx context.Context, name, contact string) (*collector.Collector, error)
}

type Catalog interface {
	Activities(ctx context.Context) ([]*catalog.Activity, error)
	Inventory(ctx context.Context) ([]*catalog.InventoryItem, error)
}

type HarvestLogger interface {
	Log(ctx context.Context, params harvest.CreateParams) (*harvest.Harvest, error)
}

type ExpenseRecorder interface {
	Record(ctx context.Context, params expense.CreateParams) (*expense.Expense, error)
}

// Result summarizes one import run. Skipped holds one human-readable
// reason per row that could not be written.
type Result struct {
	Harvests int
	Expenses int
	Skipped  []string
}

type Service struct {
	fieldbookParser Parser

	fields     FieldDirectory
	collectors CollectorDirectory
	catalog    Catalog
	harvests   HarvestLogger
	expenses   ExpenseRecorder
}

func NewService(parser Parser, fields FieldDirectory, collectors CollectorDirectory, cat Catalog, harvests HarvestLogger, expenses ExpenseRecorder) *Service {
	return &Service{
		fieldbookParser: parser,
		fields:          fields,
		collectors:      collectors,
		catalog:         cat,
		harvests:        harvests,
		expenses:        expenses,
	}
}

// Import parses the file and writes its rows through the domain
// services. Fields and collectors named in the file but missing from
// the directory are created on the fly; rows that still cannot be
// written are skipped with a reason rather than failing the run.
func (s *Service) Import(ctx context.Context, format Format, r io.Reader) (*Result, error) {
	var parser Parser

	switch format {
	case FormatFieldbook:
		parser = s.fieldbookParser
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	records, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s file: %w", format, err)
	}

	res, err := s.newResolver(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	for i, rec := range records {
		rowRef := fmt.Sprintf("row %d (%s)", i+1, rec.Date.Format("2006-01-02"))

		var rowErr error

		switch rec.Kind {
		case RecordHarvest:
			rowErr = s.importHarvest(ctx, res, rec)
			if rowErr == nil {
				result.Harvests++
			}
		case RecordExpense:
			rowErr = s.importExpense(ctx, res, rec)
			if rowErr == nil {
				result.Expenses++
			}
		default:
			rowErr = fmt.Errorf("unknown record kind %q", rec.Kind)
		}

		if rowErr != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s: %v", rowRef, rowErr))
		}
	}

	return result, nil
}

func (s *Service) importHarvest(ctx context.Context, res *resolver, rec Record) error {
	fieldID, err := res.fieldID(ctx, rec.FieldName)
	if err != nil {
		return err
	}

	params := harvest.CreateParams{
		Date:    rec.Date,
		FieldID: fieldID,
		Crop:    harvest.Crop(rec.Crop),
		Weight:  rec.Weight,
		Rate:    rec.Rate,
	}

	if rec.CollectorName != "" {
		collectorID, err := res.collectorID(ctx, rec.CollectorName)
		if err != nil {
			return err
		}

		params.CollectorID = collectorID
	}

	if _, err := s.harvests.Log(ctx, params); err != nil {
		return err
	}

	return nil
}

func (s *Service) importExpense(ctx context.Context, res *resolver, rec Record) error {
	fieldID, err := res.fieldID(ctx, rec.FieldName)
	if err != nil {
		return err
	}

	kind := expense.Kind(rec.ExpenseKind)
	if rec.ExpenseKind == "" {
		kind = expense.KindOverhead
	}

	params := expense.CreateParams{
		Date:        rec.Date,
		FieldID:     fieldID,
		Kind:        kind,
		Description: rec.Description,
		// Imported rows carry only the final amount, so it is stored as
		// quantity one at that amount to keep the total exact.
		Quantity: decimal.NewFromInt(1),
		Rate:     rec.Amount,
	}

	switch kind {
	case expense.KindLaborCost, expense.KindOwnerLabor:
		params.CategoryID = res.activityID(rec.Description)
		if params.CategoryID == nil {
			return fmt.Errorf("no activity matches %q", rec.Description)
		}
	case expense.KindGoodsCost:
		params.CategoryID = res.inventoryID(rec.Description)
		if params.CategoryID == nil {
			return fmt.Errorf("no inventory item matches %q", rec.Description)
		}
	case expense.KindOverhead:
		if params.Description == "" {
			params.Description = "Imported expense " + rec.Date.Format("2006-01-02")
		}
	}

	if _, err := s.expenses.Record(ctx, params); err != nil {
		return err
	}

	return nil
}

// resolver caches name lookups for the duration of one import run.
// Names match case-insensitively.
type resolver struct {
	svc *Service

	fields     map[string]uuid.UUID
	collectors map[string]uuid.UUID
	activities map[string]uuid.UUID
	inventory  map[string]uuid.UUID
}

func (s *Service) newResolver(ctx context.Context) (*resolver, error) {
	res := &resolver{
		svc:        s,
		fields:     make(map[string]uuid.UUID),
		collectors: make(map[string]uuid.UUID),
		activities: make(map[string]uuid.UUID),
		inventory:  make(map[string]uuid.UUID),
	}

	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	for _, f := range fields {
		res.fields[nameKey(f.Name)] = f.ID
	}

	collectors, err := s.collectors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collectors: %w", err)
	}

	for _, c := range collectors {
		res.collectors[nameKey(c.Name)] = c.ID
	}

	activities, err := s.catalog.Activities(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	for _, a := range activities {
		res.activities[nameKey(a.Name)] = a.ID
	}

	inventory, err := s.catalog.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}

	for _, item := range inventory {
		res.inventory[nameKey(item.Name)] = item.ID
	}

	return res, nil
}

// fieldID resolves a field name, creating the field when the book names
// one the directory does not have yet. An empty name means the row is
// not tied to a field.
func (r *resolver) fieldID(ctx context.Context, name string) (*uuid.UUID, error) {
	if name == "" {
		return nil, nil
	}

	if id, ok := r.fields[nameKey(name)]; ok {
		return &id, nil
	}

	f, err := r.svc.fields.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("creating field %q: %w", name, err)
	}

	r.fields[nameKey(name)] = f.ID

	return &f.ID, nil
}

func (r *resolver) collectorID(ctx context.Context, name string) (*uuid.UUID, error) {
	if id, ok := r.collectors[nameKey(name)]; ok {
		return &id, nil
	}

	c, err := r.svc.collectors.Add(ctx, name, "")
	if err != nil {
		return nil, fmt.Errorf("creating collector %q: %w", name, err)
	}

	r.collectors[nameKey(name)] = c.ID

	return &c.ID, nil
}

func (r *resolver) activityID(desc string) *uuid.UUID {
	return matchCatalog(r.activities, desc)
}

func (r *resolver) inventoryID(desc string) *uuid.UUID {
	return matchCatalog(r.inventory, desc)
}

// matchCatalog matches a free-text description against catalog names,
// exactly first, then by substring.
func matchCatalog(entries map[string]uuid.UUID, desc string) *uuid.UUID {
	key := nameKey(desc)
	if key == "" {
		return nil
	}

	if id, ok := entries[key]; ok {
		return &id
	}

	for name, id := range entries {
		if strings.Contains(key, name) {
			return &id
		}
	}

	return nil
}

func nameKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
