package expense

import (
	"strings"
	"time"

	"budget-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errs.New("description is required")
	ErrEmptyCategory    = errs.New("category is required")
	ErrNegativeAmount   = errs.New("amount must be non-negative")
)

// Expense is a raw field-level expense record. Unlike debt templates these
// rows never feed the monthly materializer; they exist for direct bookkeeping.
type Expense struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Description      string
	Category         string
	Amount           float64
	FirstPaymentDate *string
	IsRecurring      bool
	UntilCanceled    bool
	ExpiryDate       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func New(userID uuid.UUID, description, category string, amount float64, firstPaymentDate *string, isRecurring, untilCanceled bool, expiryDate *string, now time.Time) (*Expense, error) {
	e := &Expense{
		ID:               uuid.New(),
		UserID:           userID,
		Description:      strings.TrimSpace(description),
		Category:         strings.TrimSpace(category),
		Amount:           amount,
		FirstPaymentDate: firstPaymentDate,
		IsRecurring:      isRecurring,
		UntilCanceled:    untilCanceled,
		ExpiryDate:       expiryDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Expense) Validate() error {
	if e.Description == "" {
		return ErrEmptyDescription
	}
	if e.Category == "" {
		return ErrEmptyCategory
	}
	if e.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
