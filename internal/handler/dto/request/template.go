package request

import (
	"budget-api/internal/pkg/patch"
	"budget-api/internal/usecase"
)

type CreateTemplateRequest struct {
	Description      string  `json:"description" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	Amount           float64 `json:"amount"`
	FirstPaymentDate string  `json:"firstPaymentDate" binding:"required"`
	IsRecurring      bool    `json:"isRecurring"`
	UntilCanceled    bool    `json:"untilCanceled"`
	ExpiryDate       *string `json:"expiryDate"`
}

func (r *CreateTemplateRequest) ToInput() usecase.CreateTemplateInput {
	return usecase.CreateTemplateInput{
		Description:      r.Description,
		Category:         r.Category,
		Amount:           r.Amount,
		FirstPaymentDate: r.FirstPaymentDate,
		IsRecurring:      r.IsRecurring,
		UntilCanceled:    r.UntilCanceled,
		ExpiryDate:       r.ExpiryDate,
	}
}

type UpdateTemplateRequest struct {
	Description      *string             `json:"description"`
	Category         *string             `json:"category"`
	Amount           *float64            `json:"amount"`
	FirstPaymentDate *string             `json:"firstPaymentDate"`
	IsRecurring      *bool               `json:"isRecurring"`
	UntilCanceled    *bool               `json:"untilCanceled"`
	ExpiryDate       patch.Field[string] `json:"expiryDate"`
}

func (r *UpdateTemplateRequest) ToInput() usecase.UpdateTemplateInput {
	return usecase.UpdateTemplateInput{
		Description:      r.Description,
		Category:         r.Category,
		Amount:           r.Amount,
		FirstPaymentDate: r.FirstPaymentDate,
		IsRecurring:      r.IsRecurring,
		UntilCanceled:    r.UntilCanceled,
		ExpiryDate:       r.ExpiryDate,
	}
}
