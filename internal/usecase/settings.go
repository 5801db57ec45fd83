package usecase

import (
	"context"
	"errors"

	"budget-api/internal/pkg/errs"
	"budget-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidTheme     = errors.New("theme must be light or dark")
	ErrInvalidTolerance = errors.New("tolerance must be between 0 and 100")
)

type SettingsRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*readmodel.Settings, error)
	UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) error
	UpdateTolerance(ctx context.Context, userID uuid.UUID, tolerance int) error
}

type SettingsUseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (*readmodel.Settings, error)
	UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) error
	UpdateTolerance(ctx context.Context, userID uuid.UUID, tolerance int) error
}

type settingsUseCaseImpl struct {
	repo SettingsRepository
}

func NewSettingsUseCase(repo SettingsRepository) SettingsUseCase {
	return &settingsUseCaseImpl{repo: repo}
}

func (uc *settingsUseCaseImpl) Get(ctx context.Context, userID uuid.UUID) (*readmodel.Settings, error) {
	s, err := uc.repo.Get(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return s, nil
}

func (uc *settingsUseCaseImpl) UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) error {
	if theme != "light" && theme != "dark" {
		return ErrInvalidTheme
	}
	if err := uc.repo.UpdateTheme(ctx, userID, theme); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (uc *settingsUseCaseImpl) UpdateTolerance(ctx context.Context, userID uuid.UUID, tolerance int) error {
	if tolerance < 0 || tolerance > 100 {
		return ErrInvalidTolerance
	}
	if err := uc.repo.UpdateTolerance(ctx, userID, tolerance); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
