package harvest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("harvest not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=harvest
type Repository interface {
	CreateHarvest(ctx context.Context, h *Harvest) error
	GetHarvest(ctx context.Context, id uuid.UUID) (*Harvest, error)
	ListHarvests(ctx context.Context, filter ListFilter) ([]*Harvest, error)
	UpdateHarvest(ctx context.Context, h *Harvest) error
	DeleteHarvest(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	FieldID     *uuid.UUID
	CollectorID *uuid.UUID
	Crop        *Crop
}

type CreateParams struct {
	Date        time.Time
	FieldID     *uuid.UUID
	Crop        Crop
	Weight      decimal.Decimal
	Rate        *decimal.Decimal
	CollectorID *uuid.UUID
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Log records a harvest. The stored total is weight times rate when a
// rate is known at entry; otherwise it stays zero until the monthly
// collector rate prices it.
func (s *Service) Log(ctx context.Context, params CreateParams) (*Harvest, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	h := &Harvest{
		Date:        params.Date,
		FieldID:     params.FieldID,
		Crop:        params.Crop,
		Weight:      params.Weight,
		Rate:        params.Rate,
		CollectorID: params.CollectorID,
		TotalAmount: totalAmount(params.Weight, params.Rate),
	}
	if err := s.repo.CreateHarvest(ctx, h); err != nil {
		return nil, err
	}

	return h, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Harvest, error) {
	return s.repo.GetHarvest(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Harvest, error) {
	return s.repo.ListHarvests(ctx, filter)
}

// Update persists an edited harvest, recomputing the stored total from
// the current weight and rate. A cleared rate puts the harvest back into
// the pending state with a zero total.
func (s *Service) Update(ctx context.Context, h *Harvest) error {
	h.TotalAmount = totalAmount(h.Weight, h.Rate)

	return s.repo.UpdateHarvest(ctx, h)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteHarvest(ctx, id)
}

func validate(params CreateParams) error {
	if params.Weight.IsNegative() || params.Weight.IsZero() {
		return fmt.Errorf("weight must be positive")
	}

	switch params.Crop {
	case CropTea, CropPepper, CropCoffee:
	default:
		return fmt.Errorf("unknown crop type: %s", params.Crop)
	}

	// Only tea sold to a collector may defer its price to the monthly
	// rate table. Everything else is priced at entry.
	deferred := params.Crop == CropTea && params.CollectorID != nil
	if !deferred && (params.Rate == nil || params.Rate.IsZero()) {
		return fmt.Errorf("rate is required for %s cash sales", params.Crop)
	}

	if params.Crop != CropTea && params.CollectorID != nil {
		return fmt.Errorf("collectors only buy tea")
	}

	return nil
}

func totalAmount(weight decimal.Decimal, rate *decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}

	return weight.Mul(*rate)
}
