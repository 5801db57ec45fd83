package repository

import (
	"context"
	"errors"

	"budget-api/internal/infra"
	"budget-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, email, name, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		email, name, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUser, string, error) {
	var (
		u    readmodel.AuthorizedUser
		hash string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &u, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUser, error) {
	var u readmodel.AuthorizedUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &u, nil
}
