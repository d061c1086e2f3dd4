package storage

import (
	"context"

	"github.com/guillermop2002/Patch-Boe/core"
)

// SearchCriteria holds validated, normalized filters for a patch
// search. The three date dimensions are OR-combined; a record matches
// when it falls in any listed date, month, or year. Type, category,
// and subtype filters are then ANDed on top. Empty slices mean
// "no restriction" for that dimension.
type SearchCriteria struct {
	// Dates are exact publication dates, YYYYMMDD.
	Dates []string

	// Months are YYYYMM buckets.
	Months []string

	// Years are YYYY buckets.
	Years []string

	// Types restricts the impact type. Empty means both.
	Types []core.ImpactType

	// Categories restricts to the listed taxonomy values.
	Categories []string

	// Subtypes restricts to the listed gazette section letters.
	Subtypes []string

	// Limit caps the result count when positive. Zero or negative
	// means unlimited.
	Limit int
}

// PatchStore provides operations for persisting and querying patch
// records. Implementations must be safe for concurrent use.
type PatchStore interface {
	// UpsertMany writes records inside a single transaction with
	// insert-or-replace semantics on (id, fecha). All or nothing.
	UpsertMany(ctx context.Context, records []core.PatchRecord) error

	// GetByDate retrieves a date's records ordered by relevance
	// descending, then type ascending.
	GetByDate(ctx context.Context, date string) ([]core.PatchRecord, error)

	// HasDataForDate reports whether any record exists for the date.
	HasDataForDate(ctx context.Context, date string) (bool, error)

	// StatsForDate counts a date's buffs and nerfs.
	StatsForDate(ctx context.Context, date string) (core.Stats, error)

	// AvailableDates lists distinct dates with records, newest first.
	AvailableDates(ctx context.Context) ([]string, error)

	// AvailableCategories lists distinct stored categories.
	AvailableCategories(ctx context.Context) ([]string, error)

	// AvailableSubtypes lists distinct stored subtypes.
	AvailableSubtypes(ctx context.Context) ([]string, error)

	// Search retrieves records matching the criteria, ordered by
	// relevance descending, then date descending.
	Search(ctx context.Context, criteria SearchCriteria) ([]core.PatchRecord, error)

	// DeleteDate removes every record of a date.
	DeleteDate(ctx context.Context, date string) error

	// Close closes the storage backend and releases resources.
	Close() error
}
