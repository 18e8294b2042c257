package field

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("field not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=field
type Repository interface {
	CreateField(ctx context.Context, f *Field) error
	GetField(ctx context.Context, id uuid.UUID) (*Field, error)
	ListFields(ctx context.Context) ([]*Field, error)
	DeleteField(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name string) (*Field, error) {
	f := &Field{Name: name}
	if err := s.repo.CreateField(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Field, error) {
	return s.repo.GetField(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Field, error) {
	return s.repo.ListFields(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteField(ctx, id)
}
