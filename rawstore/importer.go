package rawstore

import (
	"context"

	"github.com/guillermop2002/Patch-Boe/core"
)

// ImportDir loads a date's documents from the scraper output rooted at
// root and archives them. Returns the counts from PutDocuments.
func (a *Archive) ImportDir(ctx context.Context, root, date string) (stored, skipped int, err error) {
	docs, err := NewDirSource(root).Documents(ctx, date)
	if err != nil {
		return 0, 0, err
	}
	return a.PutDocuments(ctx, date, docs)
}

// Documents makes the archive usable as a document source for a
// classification run.
func (a *Archive) Documents(ctx context.Context, date string) ([]core.RawDocument, error) {
	return a.DocumentsForDate(ctx, date)
}
