package repository

import (
	"context"
	"errors"

	"budget-api/internal/domain/expense"
	"budget-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const expenseColumns = `id, user_id, description, category, amount, first_payment_date,
	is_recurring, until_canceled, expiry_date, created_at, updated_at`

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Category, &e.Amount,
		&e.FirstPaymentDate, &e.IsRecurring, &e.UntilCanceled, &e.ExpiryDate,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]expense.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expenses", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan expense row", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expense rows", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*expense.Expense, error) {
	e, err := scanExpense(r.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("expense not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find expense", err)
	}
	return e, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO expenses (id, user_id, description, category, amount, first_payment_date,
			is_recurring, until_canceled, expiry_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.UserID, e.Description, e.Category, e.Amount, e.FirstPaymentDate,
		e.IsRecurring, e.UntilCanceled, e.ExpiryDate, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create expense", err)
	}
	return nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE expenses
		 SET description = $3, category = $4, amount = $5, first_payment_date = $6,
		     is_recurring = $7, until_canceled = $8, expiry_date = $9, updated_at = $10
		 WHERE id = $1 AND user_id = $2`,
		e.ID, e.UserID, e.Description, e.Category, e.Amount, e.FirstPaymentDate,
		e.IsRecurring, e.UntilCanceled, e.ExpiryDate, e.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM expenses WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}
