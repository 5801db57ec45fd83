package repository

import (
	"context"
	"errors"

	"budget-api/internal/domain/income"
	"budget-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncomeRepository struct {
	pool *pgxpool.Pool
}

func NewIncomeRepository(pool *pgxpool.Pool) *IncomeRepository {
	return &IncomeRepository{pool: pool}
}

const incomeColumns = `id, user_id, date, category, amount, company, frequency, created_at, updated_at`

func scanIncome(row pgx.Row) (*income.Income, error) {
	var inc income.Income
	err := row.Scan(&inc.ID, &inc.UserID, &inc.Date, &inc.Category, &inc.Amount,
		&inc.Company, &inc.Frequency, &inc.CreatedAt, &inc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inc, nil
}

func (r *IncomeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]income.Income, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE user_id = $1 ORDER BY date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list incomes", err)
	}
	defer rows.Close()

	var incomes []income.Income
	for rows.Next() {
		inc, err := scanIncome(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan income row", err)
		}
		incomes = append(incomes, *inc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate income rows", err)
	}
	return incomes, nil
}

func (r *IncomeRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*income.Income, error) {
	inc, err := scanIncome(r.pool.QueryRow(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("income not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find income", err)
	}
	return inc, nil
}

func (r *IncomeRepository) Create(ctx context.Context, inc *income.Income) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO incomes (id, user_id, date, category, amount, company, frequency, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		inc.ID, inc.UserID, inc.Date, inc.Category, inc.Amount, inc.Company, inc.Frequency,
		inc.CreatedAt, inc.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create income", err)
	}
	return nil
}

func (r *IncomeRepository) Update(ctx context.Context, inc *income.Income) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE incomes
		 SET date = $3, category = $4, amount = $5, company = $6, frequency = $7, updated_at = $8
		 WHERE id = $1 AND user_id = $2`,
		inc.ID, inc.UserID, inc.Date, inc.Category, inc.Amount, inc.Company, inc.Frequency, inc.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update income", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("income not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IncomeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM incomes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete income", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("income not found", nil, infra.KindNotFound)
	}
	return nil
}
