package request

import (
	"time"

	"budget-api/internal/usecase"
)

type CreateIncomeRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	Category  string    `json:"category" binding:"required"`
	Amount    float64   `json:"amount"`
	Company   string    `json:"company" binding:"required"`
	Frequency string    `json:"frequency" binding:"required"`
}

func (r *CreateIncomeRequest) ToInput() usecase.CreateIncomeInput {
	return usecase.CreateIncomeInput{
		Date:      r.Date,
		Category:  r.Category,
		Amount:    r.Amount,
		Company:   r.Company,
		Frequency: r.Frequency,
	}
}

type UpdateIncomeRequest struct {
	Date      *time.Time `json:"date"`
	Category  *string    `json:"category"`
	Amount    *float64   `json:"amount"`
	Company   *string    `json:"company"`
	Frequency *string    `json:"frequency"`
}

func (r *UpdateIncomeRequest) ToInput() usecase.UpdateIncomeInput {
	return usecase.UpdateIncomeInput{
		Date:      r.Date,
		Category:  r.Category,
		Amount:    r.Amount,
		Company:   r.Company,
		Frequency: r.Frequency,
	}
}
