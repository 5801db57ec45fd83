package response

import (
	"budget-api/internal/domain/snapshot"
	"budget-api/internal/usecase/readmodel"
)

// MonthResponse returns the resolved item list together with the derived
// totals; items marshal through their snapshot json tags.
type MonthResponse struct {
	Items  []snapshot.Item `json:"items"`
	Totals snapshot.Totals `json:"totals"`
}

func FromMonthView(rm *readmodel.MonthView) MonthResponse {
	items := rm.Items
	if items == nil {
		items = []snapshot.Item{}
	}
	return MonthResponse{
		Items:  items,
		Totals: rm.Totals,
	}
}

type CopyMonthResponse struct {
	Success bool            `json:"success"`
	ToMonth string          `json:"toMonth"`
	Items   []snapshot.Item `json:"items"`
}
