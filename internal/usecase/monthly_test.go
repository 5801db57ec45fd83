package usecase

import (
	"context"
	"testing"
	"time"

	"budget-api/internal/domain/snapshot"
	"budget-api/internal/domain/template"
	"budget-api/internal/infra"
	"budget-api/internal/pkg/clock"
	"budget-api/internal/pkg/monthkey"
	"budget-api/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeTemplateReader struct {
	templates []template.Template
}

func (f *fakeTemplateReader) ListByUser(_ context.Context, userID uuid.UUID) ([]template.Template, error) {
	var out []template.Template
	for _, t := range f.templates {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeSnapshotRepo stores snapshots in memory and hands out copies, so only
// Create and ReplaceItems can change what later reads observe.
type fakeSnapshotRepo struct {
	snapshots    map[uuid.UUID]*snapshot.Snapshot
	createCalls  int
	replaceCalls int
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snapshots: make(map[uuid.UUID]*snapshot.Snapshot)}
}

func cloneSnapshot(s *snapshot.Snapshot) *snapshot.Snapshot {
	c := *s
	c.Items = make([]snapshot.Item, len(s.Items))
	copy(c.Items, s.Items)
	return &c
}

func (f *fakeSnapshotRepo) FindByUserAndMonth(_ context.Context, userID uuid.UUID, month monthkey.Month) (*snapshot.Snapshot, error) {
	for _, s := range f.snapshots {
		if s.UserID == userID && s.Month.Equal(month) {
			return cloneSnapshot(s), nil
		}
	}
	return nil, infra.WrapRepoErr("snapshot not found", nil, infra.KindNotFound)
}

func (f *fakeSnapshotRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*snapshot.Snapshot, error) {
	s, ok := f.snapshots[id]
	if !ok || s.UserID != userID {
		return nil, infra.WrapRepoErr("snapshot not found", nil, infra.KindNotFound)
	}
	return cloneSnapshot(s), nil
}

func (f *fakeSnapshotRepo) Create(_ context.Context, s *snapshot.Snapshot) (*snapshot.Snapshot, error) {
	f.createCalls++
	for _, existing := range f.snapshots {
		if existing.UserID == s.UserID && existing.Month.Equal(s.Month) {
			return cloneSnapshot(existing), nil
		}
	}
	f.snapshots[s.ID] = cloneSnapshot(s)
	return cloneSnapshot(s), nil
}

func (f *fakeSnapshotRepo) ReplaceItems(_ context.Context, userID, id uuid.UUID, items []snapshot.Item, now time.Time) error {
	f.replaceCalls++
	s, ok := f.snapshots[id]
	if !ok || s.UserID != userID {
		return infra.WrapRepoErr("snapshot not found", nil, infra.KindNotFound)
	}
	s.Items = make([]snapshot.Item, len(items))
	copy(s.Items, items)
	s.UpdatedAt = now
	return nil
}

func mustTemplate(t *testing.T, userID uuid.UUID, desc string, amount float64, firstPayment string, isRecurring, untilCanceled bool, expiry *string) template.Template {
	t.Helper()
	tmpl, err := template.New(userID, desc, "bills", amount, firstPayment, isRecurring, untilCanceled, expiry, testNow)
	require.NoError(t, err)
	return *tmpl
}

func newMonthlyFixture(templates ...template.Template) (MonthlyExpenseUseCase, *fakeSnapshotRepo, *clock.MockClock) {
	repo := newFakeSnapshotRepo()
	clk := clock.NewMockClock(testNow)
	uc := NewMonthlyExpenseUseCase(&fakeTemplateReader{templates: templates}, repo, clk)
	return uc, repo, clk
}

func TestGetOrCreateMonth_MaterializesApplicableTemplates(t *testing.T) {
	userID := uuid.New()
	rent := mustTemplate(t, userID, "rent", 1200, "2024-01-01", true, true, nil)
	oneOff := mustTemplate(t, userID, "deposit", 300, "2025-03-15", false, false, nil)
	future := mustTemplate(t, userID, "gym", 40, "2025-06-01", true, true, nil)

	uc, repo, _ := newMonthlyFixture(rent, oneOff, future)

	view, err := uc.GetOrCreateMonth(context.Background(), userID, "2025-03")
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, rent.ID, view.Items[0].TemplateID)
	assert.Equal(t, oneOff.ID, view.Items[1].TemplateID)
	for _, item := range view.Items {
		assert.True(t, item.Included)
		assert.Nil(t, item.AmountOverride)
	}
	assert.Equal(t, 1500.0, view.Totals.Total)
	assert.Equal(t, 1200.0, view.Totals.Recurring)
	assert.Equal(t, 300.0, view.Totals.OnceOff)
	assert.Equal(t, 1, repo.createCalls)
}

func TestGetOrCreateMonth_IsIdempotent(t *testing.T) {
	userID := uuid.New()
	rent := mustTemplate(t, userID, "rent", 1200, "2024-01-01", true, true, nil)

	uc, repo, _ := newMonthlyFixture(rent)

	first, err := uc.GetOrCreateMonth(context.Background(), userID, "2025-03")
	require.NoError(t, err)
	second, err := uc.GetOrCreateMonth(context.Background(), userID, "2025-03")
	require.NoError(t, err)

	require.Len(t, second.Items, 1)
	assert.Equal(t, first.Items[0].ID, second.Items[0].ID)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, 0, repo.replaceCalls)
}

func TestGetOrCreateMonth_ReconciliationOnlyAppends(t *testing.T) {
	userID := uuid.New()
	rent := mustTemplate(t, userID, "rent", 1200, "2024-01-01", true, true, nil)

	uc, repo, _ := newMonthlyFixture(rent)
	ctx := context.Background()

	view, err := uc.GetOrCreateMonth(ctx, userID, "2025-03")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	// The user excludes rent and overrides its amount.
	var snapID uuid.UUID
	for id := range repo.snapshots {
		snapID = id
	}
	excluded := false
	_, err = uc.PatchItem(ctx, userID, snapID, rent.ID, ItemPatch{Included: &excluded})
	require.NoError(t, err)

	// A new template shows up after the month was materialized.
	internet := mustTemplate(t, userID, "internet", 60, "2024-06-01", true, true, nil)
	uc = NewMonthlyExpenseUseCase(&fakeTemplateReader{templates: []template.Template{rent, internet}}, repo, clock.NewMockClock(testNow))

	view, err = uc.GetOrCreateMonth(ctx, userID, "2025-03")
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, rent.ID, view.Items[0].TemplateID)
	assert.False(t, view.Items[0].Included, "the excluded item keeps its decision")
	assert.Equal(t, internet.ID, view.Items[1].TemplateID)
	assert.True(t, view.Items[1].Included)
	assert.Equal(t, 60.0, view.Totals.Total)
}

func TestGetOrCreateMonth_KeepsItemsWhoseTemplateNoLongerApplies(t *testing.T) {
	userID := uuid.New()
	rent := mustTemplate(t, userID, "rent", 1200, "2024-01-01", true, true, nil)

	uc, repo, _ := newMonthlyFixture(rent)
	ctx := context.Background()

	_, err := uc.GetOrCreateMonth(ctx, userID, "2025-03")
	require.NoError(t, err)

	// The template disappears entirely; the materialized item survives.
	uc = NewMonthlyExpenseUseCase(&fakeTemplateReader{}, repo, clock.NewMockClock(testNow))
	view, err := uc.GetOrCreateMonth(ctx, userID, "2025-03")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, rent.ID, view.Items[0].TemplateID)
}

func TestGetOrCreateMonth_LostCreationRaceReconcilesWinner(t *testing.T) {
	userID := uuid.New()
	rent := mustTemplate(t, userID, "rent", 1200, "2024-01-01", true, true, nil)

	repo := newFakeSnapshotRepo()
	// Another request already created the snapshot, without rent.
	winner := &snapshot.Snapshot{
		ID:        uuid.New(),
		UserID:    userID,
		Month:     monthkey.New(2025, time.March),
		Items:     []snapshot.Item{},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	repo.snapshots[winner.ID] = winner

	uc := NewMonthlyExpenseUseCase(&fakeTemplateReader{templates: []template.Template{rent}}, &racingSnapshotRepo{fakeSnapshotRepo: repo}, clock.NewMockClock(testNow))

	view, err := uc.GetOrCreateMonth(context.Background(), userID, "2025-03")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, rent.ID, view.Items[0].TemplateID)
	assert.Len(t, repo.snapshots, 1, "no second snapshot row for the month")
}

// racingSnapshotRepo simulates losing the insert race: the first lookup misses
// even though a row exists, so Create falls through to the stored winner.
type racingSnapshotRepo struct {
	*fakeSnapshotRepo
	lookups int
}

func (r *racingSnapshotRepo) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month monthkey.Month) (*snapshot.Snapshot, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, infra.WrapRepoErr("snapshot not found", nil, infra.KindNotFound)
	}
	return r.fakeSnapshotRepo.FindByUserAndMonth(ctx, userID, month)
}

func TestGetOrCreateMonth_InvalidMonthKey(t *testing.T) {
	uc, _, _ := newMonthlyFixture()

	tests := []string{"2025-3", "202503", "2025-13", "2025-00", "march-2025", ""}
	for _, key := range tests {
		_, err := uc.GetOrCreateMonth(context.Background(), uuid.New(), key)
		assert.ErrorIs(t, err, ErrInvalidMonth, "key %q", key)
	}
}

func TestGetExistingMonth_DoesNotMaterialize(t *testing.T) {
	userID := uuid.New()
	rent := mustTemplate(t, userID, "rent", 1200, "2024-01-01", true, true, nil)

	uc, repo, _ := newMonthlyFixture(rent)

	_, err := uc.GetExistingMonth(context.Background(), userID, "2025-03")
	assert.ErrorIs(t, err, ErrMonthNotFound)
	assert.Equal(t, 0, repo.createCalls)

	_, err = uc.GetOrCreateMonth(context.Background(), userID, "2025-03")
	require.NoError(t, err)

	view, err := uc.GetExistingMonth(context.Background(), userID, "2025-03")
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestPatchItem(t *testing.T) {
	userID := uuid.New()
	rent := mustTemplate(t, userID, "rent", 1200, "2024-01-01", true, true, nil)

	setup := func(t *testing.T) (MonthlyExpenseUseCase, uuid.UUID) {
		uc, repo, _ := newMonthlyFixture(rent)
		_, err := uc.GetOrCreateMonth(context.Background(), userID, "2025-03")
		require.NoError(t, err)
		var snapID uuid.UUID
		for id := range repo.snapshots {
			snapID = id
		}
		return uc, snapID
	}

	t.Run("sets amount override", func(t *testing.T) {
		uc, snapID := setup(t)
		override := 950.0
		item, err := uc.PatchItem(context.Background(), userID, snapID, rent.ID, ItemPatch{
			AmountOverride: patch.Field[float64]{Set: true, Value: &override},
		})
		require.NoError(t, err)
		require.NotNil(t, item.AmountOverride)
		assert.Equal(t, 950.0, *item.AmountOverride)
		assert.Equal(t, 1200.0, item.Amount, "base amount stays frozen")

		view, err := uc.GetExistingMonth(context.Background(), userID, "2025-03")
		require.NoError(t, err)
		assert.Equal(t, 950.0, view.Totals.Total)
	})

	t.Run("explicit null clears the override", func(t *testing.T) {
		uc, snapID := setup(t)
		override := 950.0
		_, err := uc.PatchItem(context.Background(), userID, snapID, rent.ID, ItemPatch{
			AmountOverride: patch.Field[float64]{Set: true, Value: &override},
		})
		require.NoError(t, err)

		item, err := uc.PatchItem(context.Background(), userID, snapID, rent.ID, ItemPatch{
			AmountOverride: patch.Field[float64]{Set: true, Value: nil},
		})
		require.NoError(t, err)
		assert.Nil(t, item.AmountOverride)

		view, err := uc.GetExistingMonth(context.Background(), userID, "2025-03")
		require.NoError(t, err)
		assert.Equal(t, 1200.0, view.Totals.Total)
	})

	t.Run("absent override field leaves it alone", func(t *testing.T) {
		uc, snapID := setup(t)
		override := 950.0
		_, err := uc.PatchItem(context.Background(), userID, snapID, rent.ID, ItemPatch{
			AmountOverride: patch.Field[float64]{Set: true, Value: &override},
		})
		require.NoError(t, err)

		excluded := false
		item, err := uc.PatchItem(context.Background(), userID, snapID, rent.ID, ItemPatch{Included: &excluded})
		require.NoError(t, err)
		assert.False(t, item.Included)
		require.NotNil(t, item.AmountOverride)
		assert.Equal(t, 950.0, *item.AmountOverride)
	})

	t.Run("unknown template id", func(t *testing.T) {
		uc, snapID := setup(t)
		_, err := uc.PatchItem(context.Background(), userID, snapID, uuid.New(), ItemPatch{})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("another user's snapshot resolves as not found", func(t *testing.T) {
		uc, snapID := setup(t)
		_, err := uc.PatchItem(context.Background(), uuid.New(), snapID, rent.ID, ItemPatch{})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestCopyMonth(t *testing.T) {
	userID := uuid.New()
	rent := mustTemplate(t, userID, "rent", 1200, "2024-01-01", true, true, nil)
	internet := mustTemplate(t, userID, "internet", 60, "2024-06-01", true, true, nil)

	t.Run("source missing", func(t *testing.T) {
		uc, _, _ := newMonthlyFixture(rent)
		_, err := uc.CopyMonth(context.Background(), userID, "2025-03", "2025-04")
		assert.ErrorIs(t, err, ErrSourceMonthNotFound)
	})

	t.Run("invalid month keys", func(t *testing.T) {
		uc, _, _ := newMonthlyFixture(rent)
		_, err := uc.CopyMonth(context.Background(), userID, "bad", "2025-04")
		assert.ErrorIs(t, err, ErrInvalidMonth)
		_, err = uc.CopyMonth(context.Background(), userID, "2025-03", "bad")
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("copies resolved state with fresh item ids", func(t *testing.T) {
		uc, _, _ := newMonthlyFixture(rent)
		ctx := context.Background()

		src, err := uc.GetOrCreateMonth(ctx, userID, "2025-03")
		require.NoError(t, err)

		items, err := uc.CopyMonth(ctx, userID, "2025-03", "2025-04")
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, rent.ID, items[0].TemplateID)
		assert.NotEqual(t, src.Items[0].ID, items[0].ID)
		assert.Equal(t, src.Items[0].Amount, items[0].Amount)
	})

	t.Run("additive merge skips templates already in destination", func(t *testing.T) {
		uc, repo, _ := newMonthlyFixture(rent, internet)
		ctx := context.Background()

		_, err := uc.GetOrCreateMonth(ctx, userID, "2025-03")
		require.NoError(t, err)
		dst, err := uc.GetOrCreateMonth(ctx, userID, "2025-04")
		require.NoError(t, err)
		require.Len(t, dst.Items, 2)

		// Exclude internet in the destination before copying over it.
		var dstID uuid.UUID
		for id, s := range repo.snapshots {
			if s.Month.String() == "2025-04" {
				dstID = id
			}
		}
		excluded := false
		_, err = uc.PatchItem(ctx, userID, dstID, internet.ID, ItemPatch{Included: &excluded})
		require.NoError(t, err)

		items, err := uc.CopyMonth(ctx, userID, "2025-03", "2025-04")
		require.NoError(t, err)

		require.Len(t, items, 2, "no duplicates for templates already present")
		dstItem, ok := (&snapshot.Snapshot{Items: items}).ItemByTemplate(internet.ID)
		require.True(t, ok)
		assert.False(t, dstItem.Included, "the destination's decision wins")
	})

	t.Run("override edits do not leak between months", func(t *testing.T) {
		uc, repo, _ := newMonthlyFixture(rent)
		ctx := context.Background()

		_, err := uc.GetOrCreateMonth(ctx, userID, "2025-03")
		require.NoError(t, err)
		var srcID uuid.UUID
		for id := range repo.snapshots {
			srcID = id
		}
		override := 950.0
		_, err = uc.PatchItem(ctx, userID, srcID, rent.ID, ItemPatch{
			AmountOverride: patch.Field[float64]{Set: true, Value: &override},
		})
		require.NoError(t, err)

		items, err := uc.CopyMonth(ctx, userID, "2025-03", "2025-04")
		require.NoError(t, err)
		require.NotNil(t, items[0].AmountOverride)
		*items[0].AmountOverride = 111.0

		src, err := uc.GetExistingMonth(ctx, userID, "2025-03")
		require.NoError(t, err)
		assert.Equal(t, 950.0, *src.Items[0].AmountOverride)
	})

	t.Run("copy never consults recurrence rules", func(t *testing.T) {
		oneOff := mustTemplate(t, userID, "deposit", 300, "2025-03-15", false, false, nil)
		uc, _, _ := newMonthlyFixture(oneOff)
		ctx := context.Background()

		_, err := uc.GetOrCreateMonth(ctx, userID, "2025-03")
		require.NoError(t, err)

		// A one-off for March still copies into April verbatim.
		items, err := uc.CopyMonth(ctx, userID, "2025-03", "2025-04")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, oneOff.ID, items[0].TemplateID)
	})
}
