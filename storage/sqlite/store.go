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


package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/guillermop2002/Patch-Boe/core"
	"github.com/guillermop2002/Patch-Boe/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS patches (
	id         TEXT NOT NULL,
	fecha      TEXT NOT NULL,
	titulo     TEXT NOT NULL,
	tipo       TEXT NOT NULL CHECK (tipo IN ('buff', 'nerf')),
	categoria  TEXT NOT NULL DEFAULT '',
	subtipo    TEXT NOT NULL DEFAULT '',
	summary    TEXT NOT NULL,
	relevance  INTEGER NOT NULL CHECK (relevance BETWEEN 1 AND 100),
	contenido  TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	PRIMARY KEY (id, fecha)
);
CREATE INDEX IF NOT EXISTS idx_patches_fecha ON patches (fecha);
CREATE INDEX IF NOT EXISTS idx_patches_tipo ON patches (tipo);
CREATE INDEX IF NOT EXISTS idx_patches_relevance ON patches (relevance);
CREATE INDEX IF NOT EXISTS idx_patches_fecha_tipo ON patches (fecha, tipo);
`

const patchColumns = "id, fecha, titulo, tipo, categoria, subtipo, summary, relevance, contenido, created_at"

// Store implements storage.PatchStore on SQLite.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ storage.PatchStore = (*Store)(nil)

// Open opens (or creates) the patch database at path and applies the
// schema. The parent directory is created when missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Single writer; SQLite serializes writes anyway and the modernc
	// driver returns SQLITE_BUSY under writer contention.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("component", "patchstore"),
	}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertMany writes records in one transaction with insert-or-replace
// semantics on (id, fecha). Any failure rolls back the whole batch.
func (s *Store) UpsertMany(ctx context.Context, records []core.PatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO patches (`+patchColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	defer stmt.Close()

	for _, record := range records {
		if err := core.ValidatePatchRecord(&record); err != nil {
			return err
		}

		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		_, err := stmt.ExecContext(ctx,
			record.ID, record.Date, record.Title, string(record.Type),
			record.Category, record.Subtype, record.Summary,
			record.Relevance, record.Content, createdAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}

	s.logger.Debug("upserted patch records", "count", len(records))
	return nil
}

// GetByDate retrieves a date's records ordered by relevance descending,
// then type ascending.
func (s *Store) GetByDate(ctx context.Context, date string) ([]core.PatchRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+patchColumns+` FROM patches WHERE fecha = ? ORDER BY relevance DESC, tipo ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// HasDataForDate reports whether any record exists for the date.
func (s *Store) HasDataForDate(ctx context.Context, date string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM patches WHERE fecha = ?`, date).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// StatsForDate counts a date's buffs and nerfs.
func (s *Store) StatsForDate(ctx context.Context, date string) (core.Stats, error) {
	var stats core.Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT
			COUNT(CASE WHEN tipo = 'buff' THEN 1 END),
			COUNT(CASE WHEN tipo = 'nerf' THEN 1 END),
			COUNT(*)
		FROM patches WHERE fecha = ?`, date).
		Scan(&stats.Buffs, &stats.Nerfs, &stats.Total)
	if err != nil {
		return core.Stats{}, err
	}
	return stats, nil
}

// AvailableDates lists distinct dates with records, newest first.
func (s *Store) AvailableDates(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, `SELECT DISTINCT fecha FROM patches ORDER BY fecha DESC`)
}

// AvailableCategories lists distinct stored categories.
func (s *Store) AvailableCategories(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, `SELECT DISTINCT categoria FROM patches WHERE categoria != '' ORDER BY categoria ASC`)
}

// AvailableSubtypes lists distinct stored subtypes.
func (s *Store) AvailableSubtypes(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, `SELECT DISTINCT subtipo FROM patches WHERE subtipo != '' ORDER BY subtipo ASC`)
}

// DeleteDate removes every record of a date.
func (s *Store) DeleteDate(ctx context.Context, date string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM patches WHERE fecha = ?`, date)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil {
		s.logger.Debug("deleted patch records", "date", date, "count", n)
	}
	return nil
}

func (s *Store) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}

func scanRecords(rows *sql.Rows) ([]core.PatchRecord, error) {
	var records []core.PatchRecord
	for rows.Next() {
		var record core.PatchRecord
		var tipo, createdAt string
		err := rows.Scan(&record.ID, &record.Date, &record.Title, &tipo,
			&record.Category, &record.Subtype, &record.Summary,
			&record.Relevance, &record.Content, &createdAt)
		if err != nil {
			return nil, err
		}
		record.Type = core.ImpactType(tipo)
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			record.CreatedAt = ts
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
