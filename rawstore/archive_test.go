package rawstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillermop2002/Patch-Boe/core"
)

func testDocs() []core.RawDocument {
	return []core.RawDocument{
		{ID: "BOE-A-2025-100", Title: "Uno", Content: "contenido uno"},
		{ID: "BOE-A-2025-101", Title: "Dos", Content: "contenido dos"},
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	archive, err := NewMemoryArchive()
	require.NoError(t, err)
	defer archive.Close()

	ctx := context.Background()
	stored, skipped, err := archive.PutDocuments(ctx, "20250115", testDocs())
	require.NoError(t, err)
	assert.Equal(t, 2, stored)
	assert.Zero(t, skipped)

	docs, err := archive.DocumentsForDate(ctx, "20250115")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "BOE-A-2025-100", docs[0].ID)
	assert.Equal(t, "contenido dos", docs[1].Content)
}

func TestArchiveSkipsUnchangedContent(t *testing.T) {
	archive, err := NewMemoryArchive()
	require.NoError(t, err)
	defer archive.Close()

	ctx := context.Background()
	_, _, err = archive.PutDocuments(ctx, "20250115", testDocs())
	require.NoError(t, err)

	changed := testDocs()
	changed[1].Content = "contenido dos corregido"

	stored, skipped, err := archive.PutDocuments(ctx, "20250115", changed)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	assert.Equal(t, 1, skipped)
}

func TestArchivePutManyDocuments(t *testing.T) {
	archive, err := NewMemoryArchive()
	require.NoError(t, err)
	defer archive.Close()

	docs := make([]core.RawDocument, 250)
	for i := range docs {
		docs[i] = core.RawDocument{
			ID:      fmt.Sprintf("BOE-A-2025-%04d", i+1),
			Title:   fmt.Sprintf("Documento %d", i+1),
			Content: fmt.Sprintf("contenido %d", i+1),
		}
	}

	ctx := context.Background()
	stored, skipped, err := archive.PutDocuments(ctx, "20250115", docs)
	require.NoError(t, err)
	assert.Equal(t, 250, stored)
	assert.Zero(t, skipped)

	got, err := archive.DocumentsForDate(ctx, "20250115")
	require.NoError(t, err)
	require.Len(t, got, 250)
	assert.Equal(t, "BOE-A-2025-0001", got[0].ID)
	assert.Equal(t, "BOE-A-2025-0250", got[249].ID)

	stored, skipped, err = archive.PutDocuments(ctx, "20250115", docs)
	require.NoError(t, err)
	assert.Zero(t, stored)
	assert.Equal(t, 250, skipped)
}

func TestArchiveRejectsInvalidDate(t *testing.T) {
	archive, err := NewMemoryArchive()
	require.NoError(t, err)
	defer archive.Close()

	_, _, err = archive.PutDocuments(context.Background(), "2025-01-15", testDocs())
	assert.ErrorIs(t, err, core.ErrInvalidDate)
}

func TestArchiveUnknownDate(t *testing.T) {
	archive, err := NewMemoryArchive()
	require.NoError(t, err)
	defer archive.Close()

	_, err = archive.DocumentsForDate(context.Background(), "20250116")
	assert.ErrorIs(t, err, ErrNotFound)

	has, err := archive.HasDate(context.Background(), "20250116")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestArchiveDatesSorted(t *testing.T) {
	archive, err := NewMemoryArchive()
	require.NoError(t, err)
	defer archive.Close()

	ctx := context.Background()
	for _, date := range []string{"20250203", "20250115", "20250120"} {
		_, _, err := archive.PutDocuments(ctx, date, testDocs())
		require.NoError(t, err)
	}

	dates, err := archive.Dates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"20250115", "20250120", "20250203"}, dates)
}

func TestArchiveDeleteDate(t *testing.T) {
	archive, err := NewMemoryArchive()
	require.NoError(t, err)
	defer archive.Close()

	ctx := context.Background()
	_, _, err = archive.PutDocuments(ctx, "20250115", testDocs())
	require.NoError(t, err)

	require.NoError(t, archive.DeleteDate(ctx, "20250115"))

	has, err := archive.HasDate(ctx, "20250115")
	require.NoError(t, err)
	assert.False(t, has)

	_, err = archive.DocumentsForDate(ctx, "20250115")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArchivedDocumentSerializationRoundTrip(t *testing.T) {
	archived := ArchivedDocument{
		Doc: core.RawDocument{
			ID:      "BOE-A-2025-100",
			Title:   "Título con acentos",
			Content: "contenido íntegro",
		},
		Checksum: core.ContentChecksum("contenido íntegro"),
	}

	data := MarshalArchivedDocument(&archived)
	got, err := UnmarshalArchivedDocument(data)
	require.NoError(t, err)
	assert.Equal(t, archived.Doc, got.Doc)
	assert.Equal(t, archived.Checksum, got.Checksum)
}
