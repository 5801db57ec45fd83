package repository

import (
	"context"
	"errors"

	"budget-api/internal/infra"
	"budget-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get returns the stored settings, or the defaults when the user has never
// saved any.
func (r *SettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*readmodel.Settings, error) {
	var s readmodel.Settings
	err := r.pool.QueryRow(ctx,
		`SELECT theme, tolerance FROM settings WHERE user_id = $1`,
		userID,
	).Scan(&s.Theme, &s.Tolerance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &readmodel.Settings{Theme: "light", Tolerance: 25}, nil
		}
		return nil, infra.WrapRepoErr("failed to load settings", err)
	}
	return &s, nil
}

func (r *SettingsRepository) UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settings (user_id, theme) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = now()`,
		userID, theme,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update theme", err)
	}
	return nil
}

func (r *SettingsRepository) UpdateTolerance(ctx context.Context, userID uuid.UUID, tolerance int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settings (user_id, tolerance) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET tolerance = EXCLUDED.tolerance, updated_at = now()`,
		userID, tolerance,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update tolerance", err)
	}
	return nil
}
