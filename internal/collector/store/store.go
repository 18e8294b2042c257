package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Hasitha-J/tea-management/internal/collector"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCollector(ctx context.Context, c *collector.Collector) error {
	query := `
		INSERT INTO tea_collectors (name, contact, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Contact).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating collector: %w", err)
	}

	return nil
}

func (s *Store) GetCollector(ctx context.Context, id uuid.UUID) (*collector.Collector, error) {
	query := `SELECT id, name, contact, created_at FROM tea_collectors WHERE id = $1`

	var c collector.Collector

	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Contact, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, collector.ErrNotFound
		}

		return nil, fmt.Errorf("getting collector: %w", err)
	}

	return &c, nil
}

func (s *Store) ListCollectors(ctx context.Context) ([]*collector.Collector, error) {
	query := `SELECT id, name, contact, created_at FROM tea_collectors ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing collectors: %w", err)
	}
	defer rows.Close()

	var collectors []*collector.Collector

	for rows.Next() {
		var c collector.Collector
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning collector: %w", err)
		}

		collectors = append(collectors, &c)
	}

	return collectors, rows.Err()
}

func (s *Store) DeleteCollector(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tea_collectors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting collector: %w", err)
	}

	return nil
}

// SetRate upserts the monthly rate and refreshes the stored totals of
// the collector's unpriced tea harvests in that month, all in one
// database transaction. Only rows with a NULL or zero entry rate are
// touched, and their rate column stays NULL: the read-time resolver
// remains the source of truth, the stored total is just kept warm.
func (s *Store) SetRate(ctx context.Context, r *collector.Rate) (int64, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	rateQuery := `
		INSERT INTO collector_rates (collector_id, month, year, rate)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (collector_id, month, year) DO UPDATE SET rate = EXCLUDED.rate
		RETURNING id
	`

	err = dbTx.QueryRowContext(ctx, rateQuery, r.CollectorID, r.Month, r.Year, r.Rate).Scan(&r.ID)
	if err != nil {
		return 0, fmt.Errorf("upserting rate: %w", err)
	}

	repriceQuery := `
		UPDATE harvests
		SET total_amount = weight * $1
		WHERE crop_type = 'tea'
		  AND collector_id = $2
		  AND (rate IS NULL OR rate = 0)
		  AND date >= make_date($3, $4, 1)
		  AND date < make_date($3, $4, 1) + interval '1 month'
	`

	res, err := dbTx.ExecContext(ctx, repriceQuery, r.Rate, r.CollectorID, r.Year, r.Month)
	if err != nil {
		return 0, fmt.Errorf("repricing harvests: %w", err)
	}

	repriced, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting repriced harvests: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rate: %w", err)
	}

	return repriced, nil
}

func (s *Store) ListRates(ctx context.Context, filter collector.RateFilter) ([]*collector.Rate, error) {
	query := `
		SELECT r.id, r.collector_id, r.month, r.year, r.rate, c.name
		FROM collector_rates r
		JOIN tea_collectors c ON r.collector_id = c.id
		WHERE 1=1
	`

	var args []any

	argIdx := 1

	if filter.CollectorID != nil {
		query += fmt.Sprintf(" AND r.collector_id = $%d", argIdx)

		args = append(args, *filter.CollectorID)
		argIdx++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND r.year = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	query += " ORDER BY r.year DESC, r.month DESC, c.name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rates: %w", err)
	}
	defer rows.Close()

	var rates []*collector.Rate

	for rows.Next() {
		var r collector.Rate
		if err := rows.Scan(&r.ID, &r.CollectorID, &r.Month, &r.Year, &r.Rate, &r.CollectorName); err != nil {
			return nil, fmt.Errorf("scanning rate: %w", err)
		}

		rates = append(rates, &r)
	}

	return rates, rows.Err()
}

func (s *Store) CreateAdvance(ctx context.Context, a *collector.Advance) error {
	query := `
		INSERT INTO collector_advances (collector_id, date, amount, description, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, a.CollectorID, a.Date, a.Amount, a.Description).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating advance: %w", err)
	}

	return nil
}

func (s *Store) ListAdvances(ctx context.Context, filter collector.AdvanceFilter) ([]*collector.Advance, error) {
	query := `
		SELECT a.id, a.collector_id, a.date, a.amount, a.description, a.created_at, c.name
		FROM collector_advances a
		JOIN tea_collectors c ON a.collector_id = c.id
		WHERE 1=1
	`

	var args []any

	argIdx := 1

	if filter.CollectorID != nil {
		query += fmt.Sprintf(" AND a.collector_id = $%d", argIdx)

		args = append(args, *filter.CollectorID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND a.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND a.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY a.date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing advances: %w", err)
	}
	defer rows.Close()

	var advances []*collector.Advance

	for rows.Next() {
		var a collector.Advance
		if err := rows.Scan(&a.ID, &a.CollectorID, &a.Date, &a.Amount, &a.Description, &a.CreatedAt, &a.CollectorName); err != nil {
			return nil, fmt.Errorf("scanning advance: %w", err)
		}

		advances = append(advances, &a)
	}

	return advances, rows.Err()
}

func (s *Store) DeleteAdvance(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM collector_advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting advance: %w", err)
	}

	return nil
}
