package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("collector not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=collector
type Repository interface {
	CreateCollector(ctx context.Context, c *Collector) error
	GetCollector(ctx context.Context, id uuid.UUID) (*Collector, error)
	ListCollectors(ctx context.Context) ([]*Collector, error)
	DeleteCollector(ctx context.Context, id uuid.UUID) error

	// SetRate upserts the rate by (collector, month, year) and reprices
	// the collector's stored tea harvest totals for that month in the
	// same database transaction. Returns the number of repriced rows.
	SetRate(ctx context.Context, r *Rate) (int64, error)
	ListRates(ctx context.Context, filter RateFilter) ([]*Rate, error)

	CreateAdvance(ctx context.Context, a *Advance) error
	ListAdvances(ctx context.Context, filter AdvanceFilter) ([]*Advance, error)
	DeleteAdvance(ctx context.Context, id uuid.UUID) error
}

type RateFilter struct {
	CollectorID *uuid.UUID
	Year        *int
}

type AdvanceFilter struct {
	CollectorID *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, name, contact string) (*Collector, error) {
	c := &Collector{Name: name, Contact: contact}
	if err := s.repo.CreateCollector(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Collector, error) {
	return s.repo.GetCollector(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Collector, error) {
	return s.repo.ListCollectors(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCollector(ctx, id)
}

// SetRate records the announced monthly rate and synchronizes stored
// totals of that collector's tea harvests in the month. The read-time
// resolver in the ledger package recomputes the same values, so the
// reprice is a denormalization for stored rows, not the source of truth.
func (s *Service) SetRate(ctx context.Context, collectorID uuid.UUID, month, year int, rate decimal.Decimal) (*Rate, int64, error) {
	if month < 1 || month > 12 {
		return nil, 0, fmt.Errorf("month must be 1-12, got %d", month)
	}

	if rate.IsNegative() {
		return nil, 0, fmt.Errorf("rate must not be negative")
	}

	r := &Rate{
		CollectorID: collectorID,
		Month:       month,
		Year:        year,
		Rate:        rate,
	}

	repriced, err := s.repo.SetRate(ctx, r)
	if err != nil {
		return nil, 0, err
	}

	return r, repriced, nil
}

func (s *Service) Rates(ctx context.Context, filter RateFilter) ([]*Rate, error) {
	return s.repo.ListRates(ctx, filter)
}

func (s *Service) RecordAdvance(ctx context.Context, collectorID uuid.UUID, date time.Time, amount decimal.Decimal, description string) (*Advance, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("advance amount must be positive")
	}

	a := &Advance{
		CollectorID: collectorID,
		Date:        date,
		Amount:      amount,
		Description: description,
	}
	if err := s.repo.CreateAdvance(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Advances(ctx context.Context, filter AdvanceFilter) ([]*Advance, error) {
	return s.repo.ListAdvances(ctx, filter)
}

func (s *Service) DeleteAdvance(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAdvance(ctx, id)
}
