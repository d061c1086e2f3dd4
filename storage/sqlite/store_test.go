package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillermop2002/Patch-Boe/core"
	"github.com/guillermop2002/Patch-Boe/storage"
)

func record(id, date string, tipo core.ImpactType, relevance int) core.PatchRecord {
	return core.PatchRecord{
		ID:        id,
		Date:      date,
		Title:     "Título " + id,
		Type:      tipo,
		Category:  "NormasYDisposiciones",
		Subtype:   core.SectionFromID(id),
		Summary:   "Resumen de " + id,
		Relevance: relevance,
		Content:   "Contenido de " + id,
	}
}

func TestUpsertAndGetByDate(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	records := []core.PatchRecord{
		record("BOE-A-2025-1", "20250115", core.ImpactPositive, 40),
		record("BOE-A-2025-2", "20250115", core.ImpactNegative, 80),
	}
	require.NoError(t, store.UpsertMany(ctx, records))

	got, err := store.GetByDate(ctx, "20250115")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by relevance descending
	assert.Equal(t, "BOE-A-2025-2", got[0].ID)
	assert.Equal(t, core.ImpactNegative, got[0].Type)
	assert.Equal(t, "A", got[0].Subtype)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestUpsertReplacesOnSameKey(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	first := record("BOE-A-2025-1", "20250115", core.ImpactPositive, 40)
	require.NoError(t, store.UpsertMany(ctx, []core.PatchRecord{first}))

	updated := first
	updated.Relevance = 90
	updated.Summary = "Resumen corregido"
	require.NoError(t, store.UpsertMany(ctx, []core.PatchRecord{updated}))

	got, err := store.GetByDate(ctx, "20250115")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 90, got[0].Relevance)
	assert.Equal(t, "Resumen corregido", got[0].Summary)
}

func TestUpsertRejectsInvalidRecordAtomically(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	bad := record("BOE-A-2025-2", "20250115", core.ImpactNeutral, 40)
	err := store.UpsertMany(ctx, []core.PatchRecord{
		record("BOE-A-2025-1", "20250115", core.ImpactPositive, 40),
		bad,
	})
	require.ErrorIs(t, err, core.ErrNotImpactful)

	// The valid record must not have been committed either.
	has, err := store.HasDataForDate(ctx, "20250115")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSameIDOnDifferentDates(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertMany(ctx, []core.PatchRecord{
		record("BOE-A-2025-1", "20250115", core.ImpactPositive, 40),
		record("BOE-A-2025-1", "20250116", core.ImpactPositive, 50),
	}))

	dates, err := store.AvailableDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"20250116", "20250115"}, dates)
}

func TestStatsForDate(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertMany(ctx, []core.PatchRecord{
		record("BOE-A-2025-1", "20250115", core.ImpactPositive, 40),
		record("BOE-A-2025-2", "20250115", core.ImpactPositive, 60),
		record("BOE-A-2025-3", "20250115", core.ImpactNegative, 80),
	}))

	stats, err := store.StatsForDate(ctx, "20250115")
	require.NoError(t, err)
	assert.Equal(t, core.Stats{Buffs: 2, Nerfs: 1, Total: 3}, stats)

	empty, err := store.StatsForDate(ctx, "20990101")
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
}

func TestAvailableDimensions(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	a := record("BOE-A-2025-1", "20250115", core.ImpactPositive, 40)
	b := record("BOE-B-2025-2", "20250116", core.ImpactNegative, 50)
	b.Category = "FiscalidadPresupuestos"
	require.NoError(t, store.UpsertMany(ctx, []core.PatchRecord{a, b}))

	categories, err := store.AvailableCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"FiscalidadPresupuestos", "NormasYDisposiciones"}, categories)

	subtypes, err := store.AvailableSubtypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, subtypes)
}

func TestDeleteDate(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertMany(ctx, []core.PatchRecord{
		record("BOE-A-2025-1", "20250115", core.ImpactPositive, 40),
		record("BOE-A-2025-2", "20250116", core.ImpactPositive, 50),
	}))

	require.NoError(t, store.DeleteDate(ctx, "20250115"))

	has, err := store.HasDataForDate(ctx, "20250115")
	require.NoError(t, err)
	assert.False(t, has)

	has, err = store.HasDataForDate(ctx, "20250116")
	require.NoError(t, err)
	assert.True(t, has)
}

func seedSearchData(t *testing.T, store *Store) {
	t.Helper()
	records := []core.PatchRecord{
		record("BOE-A-2025-1", "20250115", core.ImpactPositive, 78),
		record("BOE-A-2025-2", "20250116", core.ImpactNegative, 62),
		record("BOE-B-2025-3", "20250220", core.ImpactPositive, 55),
		record("BOE-A-2024-4", "20240310", core.ImpactNegative, 90),
	}
	require.NoError(t, store.UpsertMany(context.Background(), records))
}

func TestSearchNoCriteriaReturnsAllOrdered(t *testing.T) {
	store := NewTestStore(t)
	seedSearchData(t, store)

	got, err := store.Search(context.Background(), storage.SearchCriteria{})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 90, got[0].Relevance)
	assert.Equal(t, 78, got[1].Relevance)
	assert.Equal(t, 62, got[2].Relevance)
	assert.Equal(t, 55, got[3].Relevance)
}

func TestSearchDateDimensionsAreORCombined(t *testing.T) {
	store := NewTestStore(t)
	seedSearchData(t, store)

	got, err := store.Search(context.Background(), storage.SearchCriteria{
		Dates:  []string{"20250115"},
		Months: []string{"202502"},
		Years:  []string{"2024"},
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	var ids []string
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{"BOE-A-2025-1", "BOE-B-2025-3", "BOE-A-2024-4"}, ids)
}

func TestSearchTypeFilterANDsWithDates(t *testing.T) {
	store := NewTestStore(t)
	seedSearchData(t, store)

	got, err := store.Search(context.Background(), storage.SearchCriteria{
		Years: []string{"2025"},
		Types: []core.ImpactType{core.ImpactNegative},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BOE-A-2025-2", got[0].ID)
}

func TestSearchSubtypeFilter(t *testing.T) {
	store := NewTestStore(t)
	seedSearchData(t, store)

	got, err := store.Search(context.Background(), storage.SearchCriteria{
		Subtypes: []string{"B"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BOE-B-2025-3", got[0].ID)
}

func TestSearchLimit(t *testing.T) {
	store := NewTestStore(t)
	seedSearchData(t, store)

	got, err := store.Search(context.Background(), storage.SearchCriteria{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 90, got[0].Relevance)
}

func TestSearchRejectsNonImpactfulType(t *testing.T) {
	store := NewTestStore(t)
	seedSearchData(t, store)

	_, err := store.Search(context.Background(), storage.SearchCriteria{
		Types: []core.ImpactType{core.ImpactNeutral},
	})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestSearchNoMatchesReturnsEmpty(t *testing.T) {
	store := NewTestStore(t)
	seedSearchData(t, store)

	got, err := store.Search(context.Background(), storage.SearchCriteria{
		Dates: []string{"19990101"},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}
