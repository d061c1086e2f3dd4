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


package rawstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/guillermop2002/Patch-Boe/core"
)

// importPoolSize bounds the number of files parsed concurrently.
const importPoolSize = 8

// docFile mirrors the scraper's JSON output for one document. Field
// matching is case-insensitive, so ID/TITULO/CONTENIDO decode too.
type docFile struct {
	ID      string `json:"id"`
	Title   string `json:"titulo"`
	Content string `json:"contenido"`
}

// DirSource reads raw documents from per-date directories of JSON
// files, the layout the scraper writes under <root>/<date>/.
type DirSource struct {
	Root   string
	logger *slog.Logger
}

// NewDirSource creates a source rooted at the scraper output directory.
func NewDirSource(root string) *DirSource {
	return &DirSource{
		Root:   root,
		logger: slog.Default().With("component", "dirsource"),
	}
}

// Documents loads every document published on date. Files are parsed
// concurrently; the result is sorted by document ID. A file that
// cannot be read or decoded is logged and skipped so one corrupt
// scraper file does not lose the rest of the day.
func (s *DirSource) Documents(ctx context.Context, date string) ([]core.RawDocument, error) {
	if !core.ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidDate, date)
	}

	dir := filepath.Join(s.Root, date)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoDocuments, dir)
		}
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, dir)
	}

	pool, err := ants.NewPool(importPoolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		docs    []core.RawDocument
		skipped int
	)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		wg.Add(1)
		task := func() {
			defer wg.Done()
			parsed, err := parseDocFile(path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Warn("skipping unreadable document file", "file", path, "err", err)
				skipped++
				return
			}
			docs = append(docs, parsed...)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			return nil, err
		}
	}

	wg.Wait()
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, dir)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	s.logger.Debug("loaded documents from directory",
		"date", date, "files", len(paths), "skipped", skipped, "documents", len(docs))
	return docs, nil
}

// parseDocFile decodes one scraper file, which holds either a single
// document object or an array of them.
func parseDocFile(path string) ([]core.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var files []docFile
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &files); err != nil {
			return nil, err
		}
	} else {
		var single docFile
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, err
		}
		files = append(files, single)
	}

	docs := make([]core.RawDocument, 0, len(files))
	for _, f := range files {
		if f.ID == "" {
			continue
		}
		docs = append(docs, core.RawDocument{
			ID:      f.ID,
			Title:   f.Title,
			Content: f.Content,
		})
	}
	return docs, nil
}
