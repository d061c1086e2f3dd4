package rawstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/guillermop2002/Patch-Boe/core"
)

// Archive stores raw gazette documents keyed by publication date.
type Archive struct {
	backend *backend
	logger  *slog.Logger
}

// Open opens (or creates) the archive at path.
func Open(path string) (*Archive, error) {
	b, err := openBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &Archive{
		backend: b,
		logger:  slog.Default().With("component", "rawstore"),
	}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.backend.close()
}

// putBatchSize bounds how many documents one transaction writes. A
// full BOE day of uncapped content can exceed Badger's transaction
// size limit, so writes are committed in groups.
const putBatchSize = 100

// PutDocuments archives documents under date. A document whose content
// checksum matches the already archived copy is left untouched.
// Returns the number of documents written and the number skipped. The
// date marker is written last, so a date only lists once all of its
// documents are committed.
func (a *Archive) PutDocuments(ctx context.Context, date string, docs []core.RawDocument) (stored, skipped int, err error) {
	if !core.ValidDate(date) {
		return 0, 0, fmt.Errorf("%w: %q", core.ErrInvalidDate, date)
	}
	if len(docs) == 0 {
		return 0, 0, ErrNoDocuments
	}

	now := time.Now().UTC()
	for start := 0; start < len(docs); start += putBatchSize {
		batch := docs[start:min(start+putBatchSize, len(docs))]

		err = a.backend.withTx(func(tx *badger.Txn) error {
			for _, doc := range batch {
				if err := ctx.Err(); err != nil {
					return err
				}

				checksum := core.ContentChecksum(doc.Content)
				key := makeDocKey(date, doc.ID)

				existing, err := readArchivedDocument(tx, key)
				if err != nil {
					return err
				}
				if existing != nil && existing.Checksum == checksum {
					skipped++
					continue
				}

				value := MarshalArchivedDocument(&ArchivedDocument{
					Doc:        doc,
					Checksum:   checksum,
					ArchivedAt: now,
				})
				if err := tx.Set(key, value); err != nil {
					return err
				}
				stored++
			}
			return tx.Commit()
		}, true)
		if err != nil {
			return stored, skipped, err
		}
	}

	err = a.backend.withTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeDateKey(date), []byte{1}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return stored, skipped, err
	}

	a.logger.Debug("archived documents", "date", date, "stored", stored, "skipped", skipped)
	return stored, skipped, nil
}

// DocumentsForDate returns every archived document of a date in key
// order. Returns ErrNotFound when the date was never archived.
func (a *Archive) DocumentsForDate(ctx context.Context, date string) ([]core.RawDocument, error) {
	var docs []core.RawDocument

	err := a.backend.withTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeDateKey(date)); err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrNotFound
			}
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeDocDateScanKey(date)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var archived *ArchivedDocument
			err := iter.Item().Value(func(val []byte) error {
				var err error
				archived, err = UnmarshalArchivedDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			if archived != nil {
				docs = append(docs, archived.Doc)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// HasDate reports whether any document is archived under date.
func (a *Archive) HasDate(ctx context.Context, date string) (bool, error) {
	found := false
	err := a.backend.withTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeDateKey(date))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	}, false)
	return found, err
}

// Dates lists every archived date in ascending order.
func (a *Archive) Dates(ctx context.Context) ([]string, error) {
	var dates []string

	err := a.backend.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = dateScanPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefixLen := len(dateScanPrefix())
		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			dates = append(dates, string(key[prefixLen:]))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return dates, nil
}

// DeleteDate removes a date's documents and its marker.
func (a *Archive) DeleteDate(ctx context.Context, date string) error {
	return a.backend.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeDocDateScanKey(date)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		if err := tx.Delete(makeDateKey(date)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readArchivedDocument reads one archived document from the transaction.
func readArchivedDocument(tx *badger.Txn, key []byte) (*ArchivedDocument, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var archived *ArchivedDocument
	err = item.Value(func(val []byte) error {
		var err error
		archived, err = UnmarshalArchivedDocument(val)
		return err
	})
	return archived, err
}
