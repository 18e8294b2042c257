package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/expense"
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

// category_id points into activity_master for labor kinds and
// inventory_master for goods, so the display name comes from whichever
// join produced one.
const selectExpenseColumns = `
	t.id, t.date, t.field_id, t.type, t.category_id, t.description, t.quantity,
	t.hours_worked, t.rate, t.total_amount, t.created_at, t.updated_at,
	f.name AS field_name, COALESCE(am.name, im.name, '') AS category_name
`

const expenseJoins = `
	FROM transactions t
	LEFT JOIN fields f ON t.field_id = f.id
	LEFT JOIN activity_master am ON t.category_id = am.id AND t.type IN ('labor_cost', 'owner_labor')
	LEFT JOIN inventory_master im ON t.category_id = im.id AND t.type = 'goods_cost'
`

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var kindStr string

	var fieldID, categoryID *uuid.UUID

	var hours decimal.NullDecimal

	var fieldName sql.NullString

	if err := s.Scan(
		&e.ID, &e.Date, &fieldID, &kindStr, &categoryID, &e.Description, &e.Quantity,
		&hours, &e.Rate, &e.TotalAmount, &e.CreatedAt, &e.UpdatedAt,
		&fieldName, &e.CategoryName,
	); err != nil {
		return nil, err
	}

	e.Kind = expense.Kind(kindStr)
	e.FieldID = fieldID
	e.CategoryID = categoryID
	e.FieldName = fieldName.String

	if hours.Valid {
		e.HoursWorked = &hours.Decimal
	}

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO transactions (date, field_id, type, category_id, description, quantity, hours_worked, rate, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Date,
		e.FieldID,
		e.Kind,
		e.CategoryID,
		e.Description,
		e.Quantity,
		nullDecimal(e.HoursWorked),
		e.Rate,
		e.TotalAmount,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + expenseJoins + ` WHERE t.id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + expenseJoins + ` WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.FieldID != nil {
		query += fmt.Sprintf(" AND t.field_id = $%d", argIdx)

		args = append(args, *filter.FieldID)
		argIdx++
	}

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	query += " ORDER BY t.date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE transactions
		SET date = $1, field_id = $2, type = $3, category_id = $4, description = $5,
		    quantity = $6, hours_worked = $7, rate = $8, total_amount = $9, updated_at = NOW()
		WHERE id = $10
	`

	_, err := s.db.ExecContext(ctx, query,
		e.Date,
		e.FieldID,
		e.Kind,
		e.CategoryID,
		e.Description,
		e.Quantity,
		nullDecimal(e.HoursWorked),
		e.Rate,
		e.TotalAmount,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
