package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"budget-api/internal/domain/snapshot"
	"budget-api/internal/domain/template"
	"budget-api/internal/infra"
	"budget-api/internal/pkg/clock"
	"budget-api/internal/pkg/errs"
	"budget-api/internal/pkg/monthkey"
	"budget-api/internal/pkg/patch"
	"budget-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrInvalidMonth        = errors.New("invalid month format, expected YYYY-MM")
	ErrMonthNotFound       = errors.New("month not found")
	ErrItemNotFound        = errors.New("monthly expense item not found")
	ErrSourceMonthNotFound = errors.New("source month not found")

	// Error marker for storage-layer failures surfaced as generic server errors
	ErrStorageFailure = errors.New("storage operation failed")
)

type TemplateReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]template.Template, error)
}

type SnapshotRepository interface {
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month monthkey.Month) (*snapshot.Snapshot, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*snapshot.Snapshot, error)
	// Create persists a new snapshot, returning the stored row even when a
	// concurrent request created it first.
	Create(ctx context.Context, s *snapshot.Snapshot) (*snapshot.Snapshot, error)
	ReplaceItems(ctx context.Context, userID, id uuid.UUID, items []snapshot.Item, now time.Time) error
}

// ItemPatch carries the allow-listed mutable fields of a snapshot item.
// AmountOverride distinguishes explicit null (clear the override) from absent
// (leave it alone); anything else in the request body is ignored.
type ItemPatch struct {
	Included       *bool
	AmountOverride patch.Field[float64]
}

type MonthlyExpenseUseCase interface {
	GetOrCreateMonth(ctx context.Context, userID uuid.UUID, monthKey string) (*readmodel.MonthView, error)
	GetExistingMonth(ctx context.Context, userID uuid.UUID, monthKey string) (*readmodel.MonthView, error)
	PatchItem(ctx context.Context, userID, snapshotID, templateID uuid.UUID, p ItemPatch) (*snapshot.Item, error)
	CopyMonth(ctx context.Context, userID uuid.UUID, fromMonth, toMonth string) ([]snapshot.Item, error)
}

type monthlyExpenseUseCaseImpl struct {
	templates TemplateReader
	snapshots SnapshotRepository
	clock     clock.Clock
}

func NewMonthlyExpenseUseCase(templates TemplateReader, snapshots SnapshotRepository, clk clock.Clock) MonthlyExpenseUseCase {
	return &monthlyExpenseUseCaseImpl{
		templates: templates,
		snapshots: snapshots,
		clock:     clk,
	}
}

// GetOrCreateMonth materializes the month on first access and reconciles an
// existing snapshot against the current template set. Reconciliation only
// appends: items already decided — excluded, overridden or simply present —
// are never touched, even when their template no longer applies.
func (uc *monthlyExpenseUseCaseImpl) GetOrCreateMonth(ctx context.Context, userID uuid.UUID, monthKey string) (*readmodel.MonthView, error) {
	month, err := monthkey.Parse(monthKey)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	snap, err := uc.materialize(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	return &readmodel.MonthView{
		Items:  snap.Items,
		Totals: snapshot.ComputeTotals(snap.Items),
	}, nil
}

func (uc *monthlyExpenseUseCaseImpl) materialize(ctx context.Context, userID uuid.UUID, month monthkey.Month) (*snapshot.Snapshot, error) {
	templates, err := uc.templates.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	snap, err := uc.snapshots.FindByUserAndMonth(ctx, userID, month)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStorageFailure)
		}

		now := uc.clock.Now()
		fresh := &snapshot.Snapshot{
			ID:        uuid.New(),
			UserID:    userID,
			Month:     month,
			Items:     []snapshot.Item{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		for _, t := range uc.applicable(templates, month) {
			fresh.Append(snapshot.NewItemFromTemplate(t))
		}

		stored, err := uc.snapshots.Create(ctx, fresh)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		if stored.ID == fresh.ID {
			return stored, nil
		}
		// Lost the creation race; reconcile the winner's snapshot instead.
		snap = stored
	}

	appended := false
	for _, t := range uc.applicable(templates, month) {
		if snap.HasTemplate(t.ID) {
			continue
		}
		snap.Append(snapshot.NewItemFromTemplate(t))
		appended = true
	}
	if appended {
		now := uc.clock.Now()
		if err := uc.snapshots.ReplaceItems(ctx, userID, snap.ID, snap.Items, now); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		snap.UpdatedAt = now
	}
	return snap, nil
}

func (uc *monthlyExpenseUseCaseImpl) applicable(templates []template.Template, month monthkey.Month) []template.Template {
	var result []template.Template
	for _, t := range templates {
		if !t.AppliesTo(month) {
			continue
		}
		if t.HasDegradedExpiry() {
			// likely a data-entry defect; the template is kept applicable
			slog.Warn("bounded recurring template treated as open-ended",
				"template_id", t.ID, "expiry_date", t.ExpiryDate)
		}
		result = append(result, t)
	}
	return result
}

// GetExistingMonth returns the stored snapshot without materializing one.
func (uc *monthlyExpenseUseCaseImpl) GetExistingMonth(ctx context.Context, userID uuid.UUID, monthKey string) (*readmodel.MonthView, error) {
	month, err := monthkey.Parse(monthKey)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	snap, err := uc.snapshots.FindByUserAndMonth(ctx, userID, month)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMonthNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	return &readmodel.MonthView{
		Items:  snap.Items,
		Totals: snapshot.ComputeTotals(snap.Items),
	}, nil
}

// PatchItem applies the provided fields to one snapshot item. Queries are
// scoped by owner, so another user's snapshot resolves as not found.
func (uc *monthlyExpenseUseCaseImpl) PatchItem(ctx context.Context, userID, snapshotID, templateID uuid.UUID, p ItemPatch) (*snapshot.Item, error) {
	snap, err := uc.snapshots.FindByID(ctx, userID, snapshotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	item, ok := snap.ItemByTemplate(templateID)
	if !ok {
		return nil, ErrItemNotFound
	}

	if p.Included != nil {
		item.Included = *p.Included
	}
	if p.AmountOverride.Set {
		item.AmountOverride = p.AmountOverride.Value
	}

	if err := uc.snapshots.ReplaceItems(ctx, userID, snap.ID, snap.Items, uc.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	updated := *item
	return &updated, nil
}

// CopyMonth duplicates the source month's resolved state into the destination
// as an additive merge: source items whose template is already represented in
// the destination are skipped, the rest are appended with fresh item ids.
// Templates and the recurrence rules are deliberately not consulted — the copy
// propagates what the user decided, not a re-derivation.
func (uc *monthlyExpenseUseCaseImpl) CopyMonth(ctx context.Context, userID uuid.UUID, fromMonth, toMonth string) ([]snapshot.Item, error) {
	from, err := monthkey.Parse(fromMonth)
	if err != nil {
		return nil, ErrInvalidMonth
	}
	to, err := monthkey.Parse(toMonth)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	src, err := uc.snapshots.FindByUserAndMonth(ctx, userID, from)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSourceMonthNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	dst, err := uc.snapshots.FindByUserAndMonth(ctx, userID, to)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		now := uc.clock.Now()
		dst, err = uc.snapshots.Create(ctx, &snapshot.Snapshot{
			ID:        uuid.New(),
			UserID:    userID,
			Month:     to,
			Items:     []snapshot.Item{},
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
	}

	appended := false
	for _, srcItem := range src.Items {
		if dst.HasTemplate(srcItem.TemplateID) {
			continue
		}
		var cloned snapshot.Item
		// deep copy so a later override edit in one month cannot leak into the other
		if err := copier.CopyWithOption(&cloned, &srcItem, copier.Option{DeepCopy: true}); err != nil {
			return nil, errs.Wrap(err, "failed to clone snapshot item")
		}
		cloned.ID = uuid.New()
		dst.Append(cloned)
		appended = true
	}

	if appended {
		if err := uc.snapshots.ReplaceItems(ctx, userID, dst.ID, dst.Items, uc.clock.Now()); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
	}

	return dst.Items, nil
}
