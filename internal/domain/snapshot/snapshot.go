// Package snapshot holds the per-month materialized expense records. A
// snapshot freezes the template fields at the time each item is added; later
// template edits never reach back into existing months.
package snapshot

import (
	"time"

	"budget-api/internal/domain/template"
	"budget-api/internal/pkg/monthkey"

	"github.com/google/uuid"
)

// Item is a frozen copy of a template plus the month-local override layer.
// The json tags are the storage and wire format.
type Item struct {
	ID               uuid.UUID `json:"id"`
	TemplateID       uuid.UUID `json:"templateId"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Amount           float64   `json:"amount"`
	AmountOverride   *float64  `json:"amountOverride"`
	Included         bool      `json:"included"`
	IsRecurring      bool      `json:"isRecurring"`
	FirstPaymentDate string    `json:"firstPaymentDate"`
}

// EffectiveAmount is the amount that counts toward totals: the override when
// present, the frozen base amount otherwise.
func (i Item) EffectiveAmount() float64 {
	if i.AmountOverride != nil {
		return *i.AmountOverride
	}
	return i.Amount
}

// NewItemFromTemplate freezes a template into a snapshot line item. New items
// are included and carry no override.
func NewItemFromTemplate(t template.Template) Item {
	return Item{
		ID:               uuid.New(),
		TemplateID:       t.ID,
		Description:      t.Description,
		Category:         t.Category,
		Amount:           t.Amount,
		Included:         true,
		IsRecurring:      t.IsRecurring,
		FirstPaymentDate: t.FirstPaymentDate,
	}
}

// Snapshot is the one-per-(owner, month) materialized record. Items keep
// insertion order: first materialization order, then append order for
// templates discovered on later reconciliation passes.
type Snapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Month     monthkey.Month
	Items     []Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Snapshot) HasTemplate(templateID uuid.UUID) bool {
	for i := range s.Items {
		if s.Items[i].TemplateID == templateID {
			return true
		}
	}
	return false
}

// ItemByTemplate returns a pointer into Items so callers can patch in place.
func (s *Snapshot) ItemByTemplate(templateID uuid.UUID) (*Item, bool) {
	for i := range s.Items {
		if s.Items[i].TemplateID == templateID {
			return &s.Items[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) Append(item Item) {
	s.Items = append(s.Items, item)
}
