package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListActivities(ctx context.Context) ([]*catalog.Activity, error) {
	query := `SELECT id, name, default_rate FROM activity_master ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*catalog.Activity

	for rows.Next() {
		var a catalog.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.DefaultRate); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}

		activities = append(activities, &a)
	}

	return activities, rows.Err()
}

func (s *Store) UpdateActivity(ctx context.Context, id uuid.UUID, name string, defaultRate decimal.Decimal) (*catalog.Activity, error) {
	query := `
		UPDATE activity_master
		SET name = $1, default_rate = $2
		WHERE id = $3
		RETURNING id, name, default_rate
	`

	var a catalog.Activity

	err := s.db.QueryRowContext(ctx, query, name, defaultRate, id).
		Scan(&a.ID, &a.Name, &a.DefaultRate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("updating activity: %w", err)
	}

	return &a, nil
}

func (s *Store) ListInventory(ctx context.Context) ([]*catalog.InventoryItem, error) {
	query := `SELECT id, name, default_rate FROM inventory_master ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}
	defer rows.Close()

	var items []*catalog.InventoryItem

	for rows.Next() {
		var it catalog.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.DefaultRate); err != nil {
			return nil, fmt.Errorf("scanning inventory item: %w", err)
		}

		items = append(items, &it)
	}

	return items, rows.Err()
}
