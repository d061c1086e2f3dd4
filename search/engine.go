// Copyright 2025 The Patch-BOE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/guillermop2002/Patch-Boe/core"
	"github.com/guillermop2002/Patch-Boe/storage"
)

// defaultLimit caps a search when the caller gives no limit.
const defaultLimit = 10

// unlimitedThreshold: a requested limit at or above this means "all".
const unlimitedThreshold = 999999

// Query carries raw, unvalidated search parameters as they arrive from
// the CLI or the HTTP surface. Malformed tokens are dropped during
// normalization, never errors.
type Query struct {
	// Dates holds exact dates, YYYYMMDD or DD/MM/YYYY.
	Dates []string

	// Months holds YYYYMM buckets.
	Months []string

	// Years holds YYYY buckets.
	Years []string

	// TypeFilter is buff/nerf/ambos (or the legacy
	// positive/negative/both spellings). Empty means both.
	TypeFilter string

	// Categories holds taxonomy values.
	Categories []string

	// Subtypes holds gazette section letters.
	Subtypes []string

	// Limit caps the results. Zero means the default of 10; a negative
	// value or one at/above 999999 means no cap.
	Limit int
}

// Engine resolves queries against the patch store.
type Engine struct {
	store  storage.PatchStore
	logger *slog.Logger
}

// NewEngine creates a search engine over the store.
func NewEngine(store storage.PatchStore) *Engine {
	return &Engine{
		store:  store,
		logger: slog.Default().With("component", "search"),
	}
}

// Search normalizes the query and runs it. An unrecognized type filter
// is the only query shape that errors; everything else degrades to
// fewer filters.
func (e *Engine) Search(ctx context.Context, query Query) ([]core.PatchRecord, error) {
	criteria, err := e.normalize(query)
	if err != nil {
		return nil, err
	}

	records, err := e.store.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []core.PatchRecord{}
	}
	return records, nil
}

// Latest returns the newest available date and its records. An empty
// store yields an empty date and no records.
func (e *Engine) Latest(ctx context.Context) (string, []core.PatchRecord, error) {
	dates, err := e.store.AvailableDates(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(dates) == 0 {
		return "", []core.PatchRecord{}, nil
	}

	records, err := e.store.GetByDate(ctx, dates[0])
	if err != nil {
		return "", nil, err
	}
	return dates[0], records, nil
}

// ByDate returns a date's records and stats.
func (e *Engine) ByDate(ctx context.Context, date string) ([]core.PatchRecord, core.Stats, error) {
	normalized, ok := normalizeDate(date)
	if !ok {
		return nil, core.Stats{}, fmt.Errorf("%w: %q", core.ErrInvalidDate, date)
	}

	records, err := e.store.GetByDate(ctx, normalized)
	if err != nil {
		return nil, core.Stats{}, err
	}
	stats, err := e.store.StatsForDate(ctx, normalized)
	if err != nil {
		return nil, core.Stats{}, err
	}
	if records == nil {
		records = []core.PatchRecord{}
	}
	return records, stats, nil
}

// AvailableDates lists dates with records, newest first.
func (e *Engine) AvailableDates(ctx context.Context) ([]string, error) {
	return e.store.AvailableDates(ctx)
}

// AvailableCategories lists distinct stored categories.
func (e *Engine) AvailableCategories(ctx context.Context) ([]string, error) {
	return e.store.AvailableCategories(ctx)
}

// AvailableSubtypes lists distinct stored subtypes.
func (e *Engine) AvailableSubtypes(ctx context.Context) ([]string, error) {
	return e.store.AvailableSubtypes(ctx)
}

// normalize converts a raw query into validated store criteria.
func (e *Engine) normalize(query Query) (storage.SearchCriteria, error) {
	types, err := ParseTypeFilter(query.TypeFilter)
	if err != nil {
		return storage.SearchCriteria{}, err
	}

	criteria := storage.SearchCriteria{
		Types: types,
		Limit: resolveLimit(query.Limit),
	}

	for _, raw := range query.Dates {
		date, ok := normalizeDate(raw)
		if !ok {
			e.logger.Warn("dropping invalid date token", "value", raw)
			continue
		}
		criteria.Dates = append(criteria.Dates, date)
	}
	for _, raw := range query.Months {
		month := strings.TrimSpace(raw)
		if !core.ValidMonthKey(month) {
			e.logger.Warn("dropping invalid month token", "value", raw)
			continue
		}
		criteria.Months = append(criteria.Months, month)
	}
	for _, raw := range query.Years {
		year := strings.TrimSpace(raw)
		if !core.ValidYearKey(year) {
			e.logger.Warn("dropping invalid year token", "value", raw)
			continue
		}
		criteria.Years = append(criteria.Years, year)
	}
	for _, raw := range query.Categories {
		category := strings.TrimSpace(raw)
		if !core.ValidCategory(category) {
			e.logger.Warn("dropping unknown category token", "value", raw)
			continue
		}
		criteria.Categories = append(criteria.Categories, category)
	}
	for _, raw := range query.Subtypes {
		subtype := strings.ToUpper(strings.TrimSpace(raw))
		if len(subtype) != 1 || subtype[0] < 'A' || subtype[0] > 'Z' {
			e.logger.Warn("dropping invalid subtype token", "value", raw)
			continue
		}
		criteria.Subtypes = append(criteria.Subtypes, subtype)
	}

	return criteria, nil
}

// ParseTypeFilter resolves the impact-type filter. Empty, "ambos",
// "both", and "all" mean no restriction.
func ParseTypeFilter(raw string) ([]core.ImpactType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "ambos", "both", "all":
		return nil, nil
	case "buff", "positive":
		return []core.ImpactType{core.ImpactPositive}, nil
	case "nerf", "negative":
		return []core.ImpactType{core.ImpactNegative}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTypeFilter, raw)
	}
}

// normalizeDate accepts YYYYMMDD or the DD/MM/YYYY display format.
func normalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if core.ValidDate(raw) {
		return raw, true
	}
	if date := core.ParseDisplayDate(raw); core.ValidDate(date) {
		return date, true
	}
	return "", false
}

func resolveLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultLimit
	case limit < 0 || limit >= unlimitedThreshold:
		return 0
	default:
		return limit
	}
}
