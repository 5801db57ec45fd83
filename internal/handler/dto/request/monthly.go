package request

import (
	"budget-api/internal/pkg/patch"
	"budget-api/internal/usecase"

	"github.com/google/uuid"
)

// PatchItemData carries the allow-listed mutable fields. amountOverride keeps
// the absent / explicit-null distinction: null clears a stored override.
type PatchItemData struct {
	Included       *bool                `json:"included"`
	AmountOverride patch.Field[float64] `json:"amountOverride"`
}

type PatchItemRequest struct {
	TemplateID uuid.UUID     `json:"templateId" binding:"required"`
	Data       PatchItemData `json:"data"`
}

func (r *PatchItemRequest) ToPatch() usecase.ItemPatch {
	return usecase.ItemPatch{
		Included:       r.Data.Included,
		AmountOverride: r.Data.AmountOverride,
	}
}

type CopyMonthRequest struct {
	FromMonth string `json:"fromMonth" binding:"required"`
	ToMonth   string `json:"toMonth" binding:"required"`
}
