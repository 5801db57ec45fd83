package usecase

import (
	"context"
	"errors"

	"budget-api/internal/domain/expense"
	"budget-api/internal/infra"
	"budget-api/internal/pkg/clock"
	"budget-api/internal/pkg/errs"
	"budget-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]expense.Expense, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*expense.Expense, error)
	Create(ctx context.Context, e *expense.Expense) error
	Update(ctx context.Context, e *expense.Expense) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type CreateExpenseInput struct {
	Description      string
	Category         string
	Amount           float64
	FirstPaymentDate *string
	IsRecurring      bool
	UntilCanceled    bool
	ExpiryDate       *string
}

type UpdateExpenseInput struct {
	Description      *string
	Category         *string
	Amount           *float64
	FirstPaymentDate patch.Field[string]
	IsRecurring      *bool
	UntilCanceled    *bool
	ExpiryDate       patch.Field[string]
}

type ExpenseUseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]expense.Expense, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*expense.Expense, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateExpenseInput) (*expense.Expense, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdateExpenseInput) (*expense.Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type expenseUseCaseImpl struct {
	repo  ExpenseRepository
	clock clock.Clock
}

func NewExpenseUseCase(repo ExpenseRepository, clk clock.Clock) ExpenseUseCase {
	return &expenseUseCaseImpl{repo: repo, clock: clk}
}

func (uc *expenseUseCaseImpl) List(ctx context.Context, userID uuid.UUID) ([]expense.Expense, error) {
	expenses, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return expenses, nil
}

func (uc *expenseUseCaseImpl) Get(ctx context.Context, userID, id uuid.UUID) (*expense.Expense, error) {
	e, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return e, nil
}

func (uc *expenseUseCaseImpl) Create(ctx context.Context, userID uuid.UUID, input CreateExpenseInput) (*expense.Expense, error) {
	e, err := expense.New(userID, input.Description, input.Category, input.Amount,
		input.FirstPaymentDate, input.IsRecurring, input.UntilCanceled, input.ExpiryDate, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return e, nil
}

func (uc *expenseUseCaseImpl) Update(ctx context.Context, userID, id uuid.UUID, input UpdateExpenseInput) (*expense.Expense, error) {
	e, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	e.Description = patch.Coalesce(input.Description, e.Description)
	e.Category = patch.Coalesce(input.Category, e.Category)
	e.Amount = patch.Coalesce(input.Amount, e.Amount)
	e.IsRecurring = patch.Coalesce(input.IsRecurring, e.IsRecurring)
	e.UntilCanceled = patch.Coalesce(input.UntilCanceled, e.UntilCanceled)
	if input.FirstPaymentDate.Set {
		e.FirstPaymentDate = input.FirstPaymentDate.Value
	}
	if input.ExpiryDate.Set {
		e.ExpiryDate = input.ExpiryDate.Value
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	e.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return e, nil
}

func (uc *expenseUseCaseImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrExpenseNotFound
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
