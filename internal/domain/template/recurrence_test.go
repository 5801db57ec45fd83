package template_test

import (
	"testing"

	"budget-api/internal/domain/template"
	"budget-api/internal/pkg/monthkey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func month(t *testing.T, s string) monthkey.Month {
	t.Helper()
	m, err := monthkey.Parse(s)
	require.NoError(t, err)
	return m
}

func strPtr(s string) *string { return &s }

func TestAppliesTo_OneOff(t *testing.T) {
	tpl := template.Template{
		Description:      "car service",
		Category:         "vehicle",
		Amount:           250,
		FirstPaymentDate: "2025-02-10",
	}

	assert.True(t, tpl.AppliesTo(month(t, "2025-02")))
	assert.False(t, tpl.AppliesTo(month(t, "2025-01")))
	assert.False(t, tpl.AppliesTo(month(t, "2025-03")))
}

func TestAppliesTo_UntilCanceled(t *testing.T) {
	tpl := template.Template{
		Description:      "rent",
		Category:         "housing",
		Amount:           1200,
		FirstPaymentDate: "2025-01-01",
		IsRecurring:      true,
		UntilCanceled:    true,
	}

	assert.False(t, tpl.AppliesTo(month(t, "2024-12")))
	assert.True(t, tpl.AppliesTo(month(t, "2025-01")))
	assert.True(t, tpl.AppliesTo(month(t, "2025-06")))
	assert.True(t, tpl.AppliesTo(month(t, "2031-01")))
}

func TestAppliesTo_BoundedWindow(t *testing.T) {
	// scenario: first 2025-01-15, expiry 2025-03-20 -> applies Jan..Mar inclusive
	tpl := template.Template{
		Description:      "loan repayment",
		Category:         "debt",
		Amount:           100,
		FirstPaymentDate: "2025-01-15",
		IsRecurring:      true,
		UntilCanceled:    false,
		ExpiryDate:       strPtr("2025-03-20"),
	}

	assert.False(t, tpl.AppliesTo(month(t, "2024-12")))
	assert.True(t, tpl.AppliesTo(month(t, "2025-01")))
	assert.True(t, tpl.AppliesTo(month(t, "2025-02")))
	assert.True(t, tpl.AppliesTo(month(t, "2025-03")))
	assert.False(t, tpl.AppliesTo(month(t, "2025-04")))
}

func TestAppliesTo_CrossYearWindow(t *testing.T) {
	tpl := template.Template{
		FirstPaymentDate: "2025-11-01",
		IsRecurring:      true,
		ExpiryDate:       strPtr("2026-02-28"),
	}

	assert.True(t, tpl.AppliesTo(month(t, "2025-12")))
	assert.True(t, tpl.AppliesTo(month(t, "2026-01")))
	assert.True(t, tpl.AppliesTo(month(t, "2026-02")))
	assert.False(t, tpl.AppliesTo(month(t, "2026-03")))
}

func TestAppliesTo_MalformedDates(t *testing.T) {
	t.Run("unparseable first payment never applies", func(t *testing.T) {
		tpl := template.Template{FirstPaymentDate: "whenever", IsRecurring: true, UntilCanceled: true}
		assert.False(t, tpl.AppliesTo(month(t, "2025-01")))
	})

	t.Run("bounded template with missing expiry degrades to open-ended", func(t *testing.T) {
		tpl := template.Template{
			FirstPaymentDate: "2025-01-01",
			IsRecurring:      true,
			UntilCanceled:    false,
			ExpiryDate:       nil,
		}
		assert.True(t, tpl.AppliesTo(month(t, "2027-06")))
		assert.False(t, tpl.AppliesTo(month(t, "2024-12")))
		assert.True(t, tpl.HasDegradedExpiry())
	})

	t.Run("bounded template with garbage expiry degrades to open-ended", func(t *testing.T) {
		tpl := template.Template{
			FirstPaymentDate: "2025-01-01",
			IsRecurring:      true,
			ExpiryDate:       strPtr("someday"),
		}
		assert.True(t, tpl.AppliesTo(month(t, "2026-01")))
		assert.True(t, tpl.HasDegradedExpiry())
	})

	t.Run("well-formed templates are not flagged", func(t *testing.T) {
		bounded := template.Template{
			FirstPaymentDate: "2025-01-01",
			IsRecurring:      true,
			ExpiryDate:       strPtr("2025-03-01"),
		}
		assert.False(t, bounded.HasDegradedExpiry())

		oneOff := template.Template{FirstPaymentDate: "2025-01-01"}
		assert.False(t, oneOff.HasDegradedExpiry())
	})
}
