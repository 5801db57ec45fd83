package request

import (
	"budget-api/internal/pkg/patch"
	"budget-api/internal/usecase"
)

type CreateExpenseRequest struct {
	Description      string  `json:"description" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	Amount           float64 `json:"amount"`
	FirstPaymentDate *string `json:"firstPaymentDate"`
	IsRecurring      bool    `json:"isRecurring"`
	UntilCanceled    bool    `json:"untilCanceled"`
	ExpiryDate       *string `json:"expiryDate"`
}

func (r *CreateExpenseRequest) ToInput() usecase.CreateExpenseInput {
	return usecase.CreateExpenseInput{
		Description:      r.Description,
		Category:         r.Category,
		Amount:           r.Amount,
		FirstPaymentDate: r.FirstPaymentDate,
		IsRecurring:      r.IsRecurring,
		UntilCanceled:    r.UntilCanceled,
		ExpiryDate:       r.ExpiryDate,
	}
}

type UpdateExpenseRequest struct {
	Description      *string             `json:"description"`
	Category         *string             `json:"category"`
	Amount           *float64            `json:"amount"`
	FirstPaymentDate patch.Field[string] `json:"firstPaymentDate"`
	IsRecurring      *bool               `json:"isRecurring"`
	UntilCanceled    *bool               `json:"untilCanceled"`
	ExpiryDate       patch.Field[string] `json:"expiryDate"`
}

func (r *UpdateExpenseRequest) ToInput() usecase.UpdateExpenseInput {
	return usecase.UpdateExpenseInput{
		Description:      r.Description,
		Category:         r.Category,
		Amount:           r.Amount,
		FirstPaymentDate: r.FirstPaymentDate,
		IsRecurring:      r.IsRecurring,
		UntilCanceled:    r.UntilCanceled,
		ExpiryDate:       r.ExpiryDate,
	}
}
