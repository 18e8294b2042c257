package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Hasitha-J/tea-management/internal/field"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateField(ctx context.Context, f *field.Field) error {
	query := `
		INSERT INTO fields (name, created_at)
		VALUES ($1, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, f.Name).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating field: %w", err)
	}

	return nil
}

func (s *Store) GetField(ctx context.Context, id uuid.UUID) (*field.Field, error) {
	query := `SELECT id, name, created_at FROM fields WHERE id = $1`

	var f field.Field

	err := s.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, field.ErrNotFound
		}

		return nil, fmt.Errorf("getting field: %w", err)
	}

	return &f, nil
}

func (s *Store) ListFields(ctx context.Context) ([]*field.Field, error) {
	query := `SELECT id, name, created_at FROM fields ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}
	defer rows.Close()

	var fields []*field.Field

	for rows.Next() {
		var f field.Field
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning field: %w", err)
		}

		fields = append(fields, &f)
	}

	return fields, rows.Err()
}

func (s *Store) DeleteField(ctx context.Context, id uuid.UUID) error {
	// Dependent harvest/expense rows fall back to NULL field_id via
	// ON DELETE SET NULL, so history keeps the amounts under "general".
	_, err := s.db.ExecContext(ctx, `DELETE FROM fields WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting field: %w", err)
	}

	return nil
}
