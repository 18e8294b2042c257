package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/harvest"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectHarvestColumns = `
	h.id, h.date, h.field_id, h.crop_type, h.weight, h.rate, h.collector_id,
	h.total_amount, h.created_at, h.updated_at, f.name AS field_name, c.name AS collector_name
`

// scanHarvest reads a harvest row in selectHarvestColumns order.
func scanHarvest(s scanner) (*harvest.Harvest, error) {
	var h harvest.Harvest

	var cropStr string

	var rate decimal.NullDecimal

	var fieldID, collectorID *uuid.UUID

	var fieldName, collectorName sql.NullString

	if err := s.Scan(
		&h.ID, &h.Date, &fieldID, &cropStr, &h.Weight, &rate, &collectorID,
		&h.TotalAmount, &h.CreatedAt, &h.UpdatedAt, &fieldName, &collectorName,
	); err != nil {
		return nil, err
	}

	h.Crop = harvest.Crop(cropStr)
	h.FieldID = fieldID
	h.CollectorID = collectorID
	h.FieldName = fieldName.String
	h.CollectorName = collectorName.String

	if rate.Valid {
		h.Rate = &rate.Decimal
	}

	return &h, nil
}

func (s *Store) CreateHarvest(ctx context.Context, h *harvest.Harvest) error {
	query := `
		INSERT INTO harvests (date, field_id, crop_type, weight, rate, collector_id, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		h.Date,
		h.FieldID,
		h.Crop,
		h.Weight,
		nullDecimal(h.Rate),
		h.CollectorID,
		h.TotalAmount,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating harvest: %w", err)
	}

	return nil
}

func (s *Store) GetHarvest(ctx context.Context, id uuid.UUID) (*harvest.Harvest, error) {
	query := `SELECT ` + selectHarvestColumns + `
		FROM harvests h
		LEFT JOIN fields f ON h.field_id = f.id
		LEFT JOIN tea_collectors c ON h.collector_id = c.id
		WHERE h.id = $1`

	h, err := scanHarvest(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, harvest.ErrNotFound
		}

		return nil, fmt.Errorf("getting harvest: %w", err)
	}

	return h, nil
}

func (s *Store) ListHarvests(ctx context.Context, filter harvest.ListFilter) ([]*harvest.Harvest, error) {
	query := `SELECT ` + selectHarvestColumns + `
		FROM harvests h
		LEFT JOIN fields f ON h.field_id = f.id
		LEFT JOIN tea_collectors c ON h.collector_id = c.id
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND h.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND h.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.FieldID != nil {
		query += fmt.Sprintf(" AND h.field_id = $%d", argIdx)

		args = append(args, *filter.FieldID)
		argIdx++
	}

	if filter.CollectorID != nil {
		query += fmt.Sprintf(" AND h.collector_id = $%d", argIdx)

		args = append(args, *filter.CollectorID)
		argIdx++
	}

	if filter.Crop != nil {
		query += fmt.Sprintf(" AND h.crop_type = $%d", argIdx)

		args = append(args, *filter.Crop)
		argIdx++
	}

	query += " ORDER BY h.date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing harvests: %w", err)
	}
	defer rows.Close()

	var harvests []*harvest.Harvest

	for rows.Next() {
		h, err := scanHarvest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning harvest: %w", err)
		}

		harvests = append(harvests, h)
	}

	return harvests, rows.Err()
}

func (s *Store) UpdateHarvest(ctx context.Context, h *harvest.Harvest) error {
	query := `
		UPDATE harvests
		SET date = $1, field_id = $2, crop_type = $3, weight = $4, rate = $5,
		    collector_id = $6, total_amount = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		h.Date,
		h.FieldID,
		h.Crop,
		h.Weight,
		nullDecimal(h.Rate),
		h.CollectorID,
		h.TotalAmount,
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating harvest: %w", err)
	}

	return nil
}

func (s *Store) DeleteHarvest(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM harvests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting harvest: %w", err)
	}

	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
