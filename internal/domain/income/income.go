package income

import (
	"strings"
	"time"

	"budget-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCategory  = errs.New("category is required")
	ErrEmptyCompany   = errs.New("company is required")
	ErrEmptyFrequency = errs.New("frequency is required")
	ErrMissingDate    = errs.New("date is required")
)

// Income is a single recorded income entry.
type Income struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Category  string
	Amount    float64
	Company   string
	Frequency string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(userID uuid.UUID, date time.Time, category string, amount float64, company, frequency string, now time.Time) (*Income, error) {
	inc := &Income{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Category:  strings.TrimSpace(category),
		Amount:    amount,
		Company:   strings.TrimSpace(company),
		Frequency: strings.TrimSpace(frequency),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := inc.Validate(); err != nil {
		return nil, err
	}
	return inc, nil
}

func (i *Income) Validate() error {
	if i.Date.IsZero() {
		return ErrMissingDate
	}
	if i.Category == "" {
		return ErrEmptyCategory
	}
	if i.Company == "" {
		return ErrEmptyCompany
	}
	if i.Frequency == "" {
		return ErrEmptyFrequency
	}
	return nil
}
