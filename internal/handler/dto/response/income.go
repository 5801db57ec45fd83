package response

import (
	"time"

	"budget-api/internal/domain/income"

	"github.com/google/uuid"
)

type IncomeResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Company   string    `json:"company"`
	Frequency string    `json:"frequency"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromIncome(inc *income.Income) IncomeResponse {
	return IncomeResponse{
		ID:        inc.ID,
		Date:      inc.Date,
		Category:  inc.Category,
		Amount:    inc.Amount,
		Company:   inc.Company,
		Frequency: inc.Frequency,
		CreatedAt: inc.CreatedAt,
		UpdatedAt: inc.UpdatedAt,
	}
}

func FromIncomes(incs []income.Income) []IncomeResponse {
	out := make([]IncomeResponse, 0, len(incs))
	for i := range incs {
		out = append(out, FromIncome(&incs[i]))
	}
	return out
}
