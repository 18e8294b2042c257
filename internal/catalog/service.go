package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("catalog entry not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	ListActivities(ctx context.Context) ([]*Activity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, name string, defaultRate decimal.Decimal) (*Activity, error)
	ListInventory(ctx context.Context) ([]*InventoryItem, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Activities(ctx context.Context) ([]*Activity, error) {
	return s.repo.ListActivities(ctx)
}

// UpdateActivity renames an activity or adjusts its default rate. The
// activity set itself is fixed by estate configuration.
func (s *Service) UpdateActivity(ctx context.Context, id uuid.UUID, name string, defaultRate decimal.Decimal) (*Activity, error) {
	return s.repo.UpdateActivity(ctx, id, name, defaultRate)
}

func (s *Service) Inventory(ctx context.Context) ([]*InventoryItem, error) {
	return s.repo.ListInventory(ctx)
}
