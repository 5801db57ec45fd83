package repository

import (
	"context"
	"errors"

	"budget-api/internal/domain/template"
	"budget-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TemplateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

const templateColumns = `id, user_id, description, category, amount, first_payment_date,
	is_recurring, until_canceled, expiry_date, created_at, updated_at`

func scanTemplate(row pgx.Row) (*template.Template, error) {
	var t template.Template
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Category, &t.Amount,
		&t.FirstPaymentDate, &t.IsRecurring, &t.UntilCanceled, &t.ExpiryDate,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]template.Template, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+templateColumns+` FROM debt_templates WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list templates", err)
	}
	defer rows.Close()

	var templates []template.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan template row", err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate template rows", err)
	}
	return templates, nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*template.Template, error) {
	t, err := scanTemplate(r.pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM debt_templates WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find template", err)
	}
	return t, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *template.Template) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO debt_templates (id, user_id, description, category, amount, first_payment_date,
			is_recurring, until_canceled, expiry_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.UserID, t.Description, t.Category, t.Amount, t.FirstPaymentDate,
		t.IsRecurring, t.UntilCanceled, t.ExpiryDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create template", err)
	}
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *template.Template) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE debt_templates
		 SET description = $3, category = $4, amount = $5, first_payment_date = $6,
		     is_recurring = $7, until_canceled = $8, expiry_date = $9, updated_at = $10
		 WHERE id = $1 AND user_id = $2`,
		t.ID, t.UserID, t.Description, t.Category, t.Amount, t.FirstPaymentDate,
		t.IsRecurring, t.UntilCanceled, t.ExpiryDate, t.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM debt_templates WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	return nil
}
