package response

import (
	"time"

	"budget-api/internal/domain/expense"

	"github.com/google/uuid"
)

type ExpenseResponse struct {
	ID               uuid.UUID `json:"id"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Amount           float64   `json:"amount"`
	FirstPaymentDate *string   `json:"firstPaymentDate"`
	IsRecurring      bool      `json:"isRecurring"`
	UntilCanceled    bool      `json:"untilCanceled"`
	ExpiryDate       *string   `json:"expiryDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromExpense(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:               e.ID,
		Description:      e.Description,
		Category:         e.Category,
		Amount:           e.Amount,
		FirstPaymentDate: e.FirstPaymentDate,
		IsRecurring:      e.IsRecurring,
		UntilCanceled:    e.UntilCanceled,
		ExpiryDate:       e.ExpiryDate,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromExpenses(es []expense.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(es))
	for i := range es {
		out = append(out, FromExpense(&es[i]))
	}
	return out
}
