package readmodel

import (
	"budget-api/internal/domain/snapshot"
)

// MonthView is the combined result of a month request: the resolved item list
// and the totals derived from it.
type MonthView struct {
	Items  []snapshot.Item
	Totals snapshot.Totals
}
