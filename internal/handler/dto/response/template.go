package response

import (
	"time"

	"budget-api/internal/domain/template"

	"github.com/google/uuid"
)

type TemplateResponse struct {
	ID               uuid.UUID `json:"id"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Amount           float64   `json:"amount"`
	FirstPaymentDate string    `json:"firstPaymentDate"`
	IsRecurring      bool      `json:"isRecurring"`
	UntilCanceled    bool      `json:"untilCanceled"`
	ExpiryDate       *string   `json:"expiryDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromTemplate(t *template.Template) TemplateResponse {
	return TemplateResponse{
		ID:               t.ID,
		Description:      t.Description,
		Category:         t.Category,
		Amount:           t.Amount,
		FirstPaymentDate: t.FirstPaymentDate,
		IsRecurring:      t.IsRecurring,
		UntilCanceled:    t.UntilCanceled,
		ExpiryDate:       t.ExpiryDate,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func FromTemplates(ts []template.Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(ts))
	for i := range ts {
		out = append(out, FromTemplate(&ts[i]))
	}
	return out
}
