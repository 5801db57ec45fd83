package template

import (
	"strings"
	"time"

	"budget-api/internal/pkg/errs"
	"budget-api/internal/pkg/monthkey"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription       = errs.New("description is required")
	ErrEmptyCategory          = errs.New("category is required")
	ErrNegativeAmount         = errs.New("amount must be non-negative")
	ErrInvalidFirstPayment    = errs.New("first payment date must contain a valid month")
	ErrMissingExpiry          = errs.New("bounded recurring template requires an expiry date")
	ErrExpiryBeforeFirstMonth = errs.New("expiry month must not precede the first payment month")
)

// Template is a reusable definition of a recurring or one-off expense
// obligation. Dates are kept as the strings users entered; only the month
// component carries meaning.
type Template struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Description      string
	Category         string
	Amount           float64
	FirstPaymentDate string
	IsRecurring      bool
	UntilCanceled    bool
	ExpiryDate       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func New(userID uuid.UUID, description, category string, amount float64, firstPaymentDate string, isRecurring, untilCanceled bool, expiryDate *string, now time.Time) (*Template, error) {
	t := &Template{
		ID:               uuid.New(),
		UserID:           userID,
		Description:      strings.TrimSpace(description),
		Category:         strings.TrimSpace(category),
		Amount:           amount,
		FirstPaymentDate: strings.TrimSpace(firstPaymentDate),
		IsRecurring:      isRecurring,
		UntilCanceled:    untilCanceled,
		ExpiryDate:       expiryDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate enforces the creation-boundary invariants. Stored rows that predate
// or bypass them are still tolerated by AppliesTo.
func (t *Template) Validate() error {
	if t.Description == "" {
		return ErrEmptyDescription
	}
	if t.Category == "" {
		return ErrEmptyCategory
	}
	if t.Amount < 0 {
		return ErrNegativeAmount
	}
	firstMonth, ok := monthkey.FromDateString(t.FirstPaymentDate)
	if !ok {
		return ErrInvalidFirstPayment
	}
	if t.IsRecurring && !t.UntilCanceled {
		if t.ExpiryDate == nil || strings.TrimSpace(*t.ExpiryDate) == "" {
			return ErrMissingExpiry
		}
		expiryMonth, ok := monthkey.FromDateString(*t.ExpiryDate)
		if !ok {
			return ErrMissingExpiry
		}
		if expiryMonth.Before(firstMonth) {
			return ErrExpiryBeforeFirstMonth
		}
	}
	return nil
}
