package snapshot

// Totals is derived from an item list on every read, never stored.
type Totals struct {
	Total     float64 `json:"total"`
	Recurring float64 `json:"recurring"`
	OnceOff   float64 `json:"onceOff"`
}

// ComputeTotals sums the effective amount of included items, partitioned by
// the frozen recurrence flag. Excluded items contribute nothing.
func ComputeTotals(items []Item) Totals {
	var totals Totals
	for _, item := range items {
		if !item.Included {
			continue
		}
		amount := item.EffectiveAmount()
		totals.Total += amount
		if item.IsRecurring {
			totals.Recurring += amount
		} else {
			totals.OnceOff += amount
		}
	}
	return totals
}
