package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"budget-api/internal/domain/snapshot"
	"budget-api/internal/infra"
	"budget-api/internal/pkg/monthkey"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository persists one row per (user, month). The item list lives
// in a jsonb column, so every read-modify-write cycle is a single-row update:
// that row is the consistency boundary, last write wins.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func scanSnapshot(row pgx.Row) (*snapshot.Snapshot, error) {
	var (
		s        snapshot.Snapshot
		monthRaw string
		itemsRaw []byte
	)
	if err := row.Scan(&s.ID, &s.UserID, &monthRaw, &itemsRaw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	m, err := monthkey.Parse(monthRaw)
	if err != nil {
		return nil, err
	}
	s.Month = m
	if err := json.Unmarshal(itemsRaw, &s.Items); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SnapshotRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month monthkey.Month) (*snapshot.Snapshot, error) {
	s, err := scanSnapshot(r.pool.QueryRow(ctx,
		`SELECT id, user_id, month, items, created_at, updated_at
		 FROM monthly_expenses WHERE user_id = $1 AND month = $2`,
		userID, month.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("monthly snapshot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find monthly snapshot", err)
	}
	return s, nil
}

func (r *SnapshotRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*snapshot.Snapshot, error) {
	s, err := scanSnapshot(r.pool.QueryRow(ctx,
		`SELECT id, user_id, month, items, created_at, updated_at
		 FROM monthly_expenses WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("monthly snapshot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find monthly snapshot", err)
	}
	return s, nil
}

// Create inserts the snapshot, or yields the already-stored row when another
// request won the (user_id, month) race. Callers always get the persisted
// document, never a uniqueness error.
func (r *SnapshotRepository) Create(ctx context.Context, s *snapshot.Snapshot) (*snapshot.Snapshot, error) {
	itemsRaw, err := json.Marshal(s.Items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode snapshot items", err)
	}

	tag, err := r.pool.Exec(ctx,
		`INSERT INTO monthly_expenses (id, user_id, month, items, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, month) DO NOTHING`,
		s.ID, s.UserID, s.Month.String(), itemsRaw, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create monthly snapshot", err)
	}
	if tag.RowsAffected() == 0 {
		return r.FindByUserAndMonth(ctx, s.UserID, s.Month)
	}
	return s, nil
}

// ReplaceItems writes the full item list back to the snapshot row.
func (r *SnapshotRepository) ReplaceItems(ctx context.Context, userID, id uuid.UUID, items []snapshot.Item, now time.Time) error {
	itemsRaw, err := json.Marshal(items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode snapshot items", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE monthly_expenses SET items = $3, updated_at = $4 WHERE id = $1 AND user_id = $2`,
		id, userID, itemsRaw, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update monthly snapshot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("monthly snapshot not found", nil, infra.KindNotFound)
	}
	return nil
}
