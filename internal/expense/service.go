package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("expense not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	FieldID   *uuid.UUID
	Kind      *Kind
}

type CreateParams struct {
	Date        time.Time
	FieldID     *uuid.UUID
	Kind        Kind
	CategoryID  *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	HoursWorked *decimal.Decimal
	Rate        decimal.Decimal
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, params CreateParams) (*Expense, error) {
	if err := validate(&params); err != nil {
		return nil, err
	}

	e := &Expense{
		Date:        params.Date,
		FieldID:     params.FieldID,
		Kind:        params.Kind,
		CategoryID:  params.CategoryID,
		Description: params.Description,
		Quantity:    params.Quantity,
		HoursWorked: params.HoursWorked,
		Rate:        params.Rate,
		TotalAmount: params.Quantity.Mul(params.Rate),
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

// Update persists an edited expense. The total is always recomputed from
// quantity and rate so the write-time invariant cannot drift.
func (s *Service) Update(ctx context.Context, e *Expense) error {
	e.TotalAmount = e.Quantity.Mul(e.Rate)

	return s.repo.UpdateExpense(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

// validate enforces the per-kind shape and normalizes defaults.
func validate(params *CreateParams) error {
	if params.Rate.IsNegative() {
		return fmt.Errorf("rate must not be negative")
	}

	if params.Quantity.IsNegative() {
		return fmt.Errorf("quantity must not be negative")
	}

	switch params.Kind {
	case KindLaborCost, KindOwnerLabor:
		if params.CategoryID == nil {
			return fmt.Errorf("%s requires an activity", params.Kind)
		}
	case KindGoodsCost:
		if params.CategoryID == nil {
			return fmt.Errorf("goods_cost requires an inventory item")
		}

		if params.HoursWorked != nil {
			return fmt.Errorf("hours_worked only applies to labor expenses")
		}
	case KindOverhead:
		if params.Description == "" {
			return fmt.Errorf("overhead requires a description")
		}

		if params.CategoryID != nil || params.HoursWorked != nil {
			return fmt.Errorf("overhead carries no category or hours")
		}

		params.Quantity = decimal.NewFromInt(1)
	default:
		return fmt.Errorf("unknown expense kind: %s", params.Kind)
	}

	if params.Quantity.IsZero() {
		params.Quantity = decimal.NewFromInt(1)
	}

	return nil
}
