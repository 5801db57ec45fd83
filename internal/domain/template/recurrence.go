package template

import (
	"budget-api/internal/pkg/monthkey"
)

// AppliesTo reports whether the template produces an expense line in the target
// month. It is total: malformed dates never fault the caller.
//
//   - one-off: applies only to the month of the first payment
//   - recurring until canceled: applies from the first month onward
//   - recurring with expiry: applies from the first month through the expiry
//     month, both inclusive
//
// A one-off or recurring template whose first payment date fails to parse never
// applies. A bounded recurring template with a missing or unparseable expiry
// date degrades to until-canceled behavior instead of dropping the expense; the
// caller may flag such rows separately.
func (t Template) AppliesTo(target monthkey.Month) bool {
	firstMonth, ok := monthkey.FromDateString(t.FirstPaymentDate)
	if !ok {
		return false
	}

	if !t.IsRecurring {
		return firstMonth.Equal(target)
	}

	if firstMonth.After(target) {
		return false
	}

	if t.UntilCanceled {
		return true
	}

	if t.ExpiryDate != nil {
		if expiryMonth, ok := monthkey.FromDateString(*t.ExpiryDate); ok {
			return !target.After(expiryMonth)
		}
	}
	return true
}

// HasDegradedExpiry reports whether a bounded recurring template is being
// treated as open-ended because its expiry date is missing or unparseable.
// Such rows indicate a data-entry defect worth logging.
func (t Template) HasDegradedExpiry() bool {
	if !t.IsRecurring || t.UntilCanceled {
		return false
	}
	if t.ExpiryDate == nil {
		return true
	}
	_, ok := monthkey.FromDateString(*t.ExpiryDate)
	return !ok
}
