package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/guillermop2002/Patch-Boe/core"
	"github.com/guillermop2002/Patch-Boe/storage"
)

// Search retrieves records matching the criteria. The three date
// dimensions are OR-combined, then ANDed with the type, category, and
// subtype filters. Results come back ordered by relevance descending,
// then date descending; a positive limit trims the final slice. Only
// buff and nerf rows exist, so any other type filter is rejected with
// storage.ErrInvalidQuery.
func (s *Store) Search(ctx context.Context, criteria storage.SearchCriteria) ([]core.PatchRecord, error) {
	for _, t := range criteria.Types {
		if !t.Impactful() {
			return nil, fmt.Errorf("%w: tipo %q", storage.ErrInvalidQuery, t)
		}
	}

	builder := sq.Select(patchColumns).
		From("patches").
		OrderBy("relevance DESC", "fecha DESC")

	if dateCond := dateConditions(criteria); len(dateCond) > 0 {
		builder = builder.Where(dateCond)
	}
	if len(criteria.Types) > 0 {
		tipos := make([]string, 0, len(criteria.Types))
		for _, t := range criteria.Types {
			tipos = append(tipos, string(t))
		}
		builder = builder.Where(sq.Eq{"tipo": tipos})
	}
	if len(criteria.Categories) > 0 {
		builder = builder.Where(sq.Eq{"categoria": criteria.Categories})
	}
	if len(criteria.Subtypes) > 0 {
		builder = builder.Where(sq.Eq{"subtipo": criteria.Subtypes})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	if criteria.Limit > 0 && len(records) > criteria.Limit {
		records = records[:criteria.Limit]
	}
	return records, nil
}

// dateConditions builds the OR of the three date dimensions: exact
// dates via IN, months and years via prefix LIKE.
func dateConditions(criteria storage.SearchCriteria) sq.Or {
	var or sq.Or
	if len(criteria.Dates) > 0 {
		or = append(or, sq.Eq{"fecha": criteria.Dates})
	}
	for _, month := range criteria.Months {
		or = append(or, sq.Like{"fecha": month + "%"})
	}
	for _, year := range criteria.Years {
		or = append(or, sq.Like{"fecha": year + "%"})
	}
	return or
}
