package usecase

import (
	"context"
	"errors"
	"time"

	"budget-api/internal/domain/income"
	"budget-api/internal/infra"
	"budget-api/internal/pkg/clock"
	"budget-api/internal/pkg/errs"
	"budget-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrIncomeNotFound = errors.New("income not found")

type IncomeRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]income.Income, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*income.Income, error)
	Create(ctx context.Context, inc *income.Income) error
	Update(ctx context.Context, inc *income.Income) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type CreateIncomeInput struct {
	Date      time.Time
	Category  string
	Amount    float64
	Company   string
	Frequency string
}

type UpdateIncomeInput struct {
	Date      *time.Time
	Category  *string
	Amount    *float64
	Company   *string
	Frequency *string
}

type IncomeUseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]income.Income, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateIncomeInput) (*income.Income, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdateIncomeInput) (*income.Income, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type incomeUseCaseImpl struct {
	repo  IncomeRepository
	clock clock.Clock
}

func NewIncomeUseCase(repo IncomeRepository, clk clock.Clock) IncomeUseCase {
	return &incomeUseCaseImpl{repo: repo, clock: clk}
}

func (uc *incomeUseCaseImpl) List(ctx context.Context, userID uuid.UUID) ([]income.Income, error) {
	incomes, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return incomes, nil
}

func (uc *incomeUseCaseImpl) Create(ctx context.Context, userID uuid.UUID, input CreateIncomeInput) (*income.Income, error) {
	inc, err := income.New(userID, input.Date, input.Category, input.Amount, input.Company, input.Frequency, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, inc); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return inc, nil
}

func (uc *incomeUseCaseImpl) Update(ctx context.Context, userID, id uuid.UUID, input UpdateIncomeInput) (*income.Income, error) {
	inc, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	inc.Date = patch.Coalesce(input.Date, inc.Date)
	inc.Category = patch.Coalesce(input.Category, inc.Category)
	inc.Amount = patch.Coalesce(input.Amount, inc.Amount)
	inc.Company = patch.Coalesce(input.Company, inc.Company)
	inc.Frequency = patch.Coalesce(input.Frequency, inc.Frequency)

	if err := inc.Validate(); err != nil {
		return nil, err
	}

	inc.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, inc); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return inc, nil
}

func (uc *incomeUseCaseImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrIncomeNotFound
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
