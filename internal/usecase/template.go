package usecase

import (
	"context"
	"errors"

	"budget-api/internal/domain/template"
	"budget-api/internal/infra"
	"budget-api/internal/pkg/clock"
	"budget-api/internal/pkg/errs"
	"budget-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrTemplateNotFound = errors.New("template not found")

type TemplateRepository interface {
	TemplateReader
	FindByID(ctx context.Context, userID, id uuid.UUID) (*template.Template, error)
	Create(ctx context.Context, t *template.Template) error
	Update(ctx context.Context, t *template.Template) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type CreateTemplateInput struct {
	Description      string
	Category         string
	Amount           float64
	FirstPaymentDate string
	IsRecurring      bool
	UntilCanceled    bool
	ExpiryDate       *string
}

// UpdateTemplateInput is a partial update; nil fields keep their stored value.
// ExpiryDate uses patch.Field so an explicit null clears the date.
type UpdateTemplateInput struct {
	Description      *string
	Category         *string
	Amount           *float64
	FirstPaymentDate *string
	IsRecurring      *bool
	UntilCanceled    *bool
	ExpiryDate       patch.Field[string]
}

type TemplateUseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]template.Template, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateTemplateInput) (*template.Template, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdateTemplateInput) (*template.Template, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type templateUseCaseImpl struct {
	repo  TemplateRepository
	clock clock.Clock
}

func NewTemplateUseCase(repo TemplateRepository, clk clock.Clock) TemplateUseCase {
	return &templateUseCaseImpl{repo: repo, clock: clk}
}

func (uc *templateUseCaseImpl) List(ctx context.Context, userID uuid.UUID) ([]template.Template, error) {
	templates, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return templates, nil
}

func (uc *templateUseCaseImpl) Create(ctx context.Context, userID uuid.UUID, input CreateTemplateInput) (*template.Template, error) {
	t, err := template.New(userID, input.Description, input.Category, input.Amount,
		input.FirstPaymentDate, input.IsRecurring, input.UntilCanceled, input.ExpiryDate, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return t, nil
}

func (uc *templateUseCaseImpl) Update(ctx context.Context, userID, id uuid.UUID, input UpdateTemplateInput) (*template.Template, error) {
	t, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	t.Description = patch.Coalesce(input.Description, t.Description)
	t.Category = patch.Coalesce(input.Category, t.Category)
	t.Amount = patch.Coalesce(input.Amount, t.Amount)
	t.FirstPaymentDate = patch.Coalesce(input.FirstPaymentDate, t.FirstPaymentDate)
	t.IsRecurring = patch.Coalesce(input.IsRecurring, t.IsRecurring)
	t.UntilCanceled = patch.Coalesce(input.UntilCanceled, t.UntilCanceled)
	if input.ExpiryDate.Set {
		t.ExpiryDate = input.ExpiryDate.Value
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	t.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return t, nil
}

func (uc *templateUseCaseImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTemplateNotFound
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
