package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/guillermop2002/Patch-Boe/classify"
	"github.com/guillermop2002/Patch-Boe/core"
	"github.com/guillermop2002/Patch-Boe/storage"
)

// Source provides the raw documents published on a date.
type Source interface {
	Documents(ctx context.Context, date string) ([]core.RawDocument, error)
}

// Report summarizes one classification run. Its counters make chunk
// and item loss visible instead of silent: Documents documents were
// split into Chunks chunks, FailedChunks of which produced nothing,
// the rest yielded Outcomes validated outcomes with Rejected items
// dropped, and Persisted impactful records reached the store.
type Report struct {
	Date         string
	Skipped      bool
	Documents    int
	Chunks       int
	FailedChunks int
	Outcomes     int
	Rejected     int
	Persisted    int
}

// Pipeline drives one date through classification and persistence.
type Pipeline struct {
	source     Source
	classifier classify.Classifier
	pool       *classify.KeyPool
	store      storage.PatchStore
	batcher    *classify.Batcher
	validator  *classify.Validator
	chunkSize  int
	pause      time.Duration
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithBatcher overrides the default batcher.
func WithBatcher(batcher *classify.Batcher) Option {
	return func(p *Pipeline) error {
		if batcher != nil {
			p.batcher = batcher
		}
		return nil
	}
}

// WithChunkSize sets the number of documents per prompt.
// Default is 3, with a minimum of 1.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.chunkSize = size
		return nil
	}
}

// WithPause sets the wait between chunks and between key rotations.
// Default is 2 seconds.
func WithPause(pause time.Duration) Option {
	return func(p *Pipeline) error {
		if pause >= 0 {
			p.pause = pause
		}
		return nil
	}
}

// WithValidator overrides the default validator.
func WithValidator(validator *classify.Validator) Option {
	return func(p *Pipeline) error {
		if validator != nil {
			p.validator = validator
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// New creates a classification pipeline.
func New(
	source Source,
	classifier classify.Classifier,
	pool *classify.KeyPool,
	store storage.PatchStore,
	opts ...Option,
) (*Pipeline, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if pool == nil {
		return nil, ErrKeyPoolRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	p := &Pipeline{
		source:     source,
		classifier: classifier,
		pool:       pool,
		store:      store,
		batcher: &classify.Batcher{
			MaxContentLength: 6000,
			TokenCeiling:     10000,
		},
		validator: classify.NewValidator(true),
		chunkSize: 3,
		pause:     2 * time.Second,
		logger:    slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Run classifies one date end to end. A date that already has stored
// records is skipped without any classification call. Chunk-level
// failures are counted and tolerated; a persistence failure aborts the
// run.
func (p *Pipeline) Run(ctx context.Context, date string) (*Report, error) {
	if !core.ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidDate, date)
	}

	report := &Report{Date: date}

	populated, err := p.store.HasDataForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if populated {
		p.logger.Info("date already classified, skipping", "date", date)
		report.Skipped = true
		return report, nil
	}

	docs, err := p.source.Documents(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDocuments, err)
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	report.Documents = len(docs)

	byID := make(map[string]core.RawDocument, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}

	chunks := classify.Chunks(docs, p.chunkSize)
	report.Chunks = len(chunks)
	p.logger.Info("classification run starting",
		"date", date, "documents", len(docs), "chunks", len(chunks), "keys", p.pool.Size())

	var outcomes []core.Outcome
	for i, chunk := range chunks {
		if i > 0 {
			if err := sleep(ctx, p.pause); err != nil {
				return nil, err
			}
		}

		chunkOutcomes, rejected, err := p.processChunk(ctx, chunk)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.Warn("chunk failed", "date", date, "chunk", i+1, "size", len(chunk), "err", err)
			report.FailedChunks++
			continue
		}

		outcomes = append(outcomes, chunkOutcomes...)
		report.Rejected += rejected
	}
	report.Outcomes = len(outcomes)

	records := p.join(date, outcomes, byID)
	if len(records) > 0 {
		if err := p.store.UpsertMany(ctx, records); err != nil {
			return nil, err
		}
	}
	report.Persisted = len(records)

	p.logger.Info("classification run finished",
		"date", date,
		"documents", report.Documents,
		"failed_chunks", report.FailedChunks,
		"outcomes", report.Outcomes,
		"rejected", report.Rejected,
		"persisted", report.Persisted)
	return report, nil
}

// processChunk renders, classifies, and validates one chunk.
func (p *Pipeline) processChunk(ctx context.Context, chunk []core.RawDocument) ([]core.Outcome, int, error) {
	prompt, used, err := p.batcher.Prompt(chunk)
	if err != nil {
		return nil, 0, err
	}
	if len(used) < len(chunk) {
		p.logger.Warn("chunk reduced to fit token budget", "requested", len(chunk), "kept", len(used))
	}

	items, err := classify.WithRotatingKeys(ctx, p.pool, p.pause,
		func(cred classify.Credential) ([]classify.RawItem, error) {
			return p.classifier.Classify(ctx, prompt, cred)
		})
	if err != nil {
		return nil, 0, err
	}

	outcomes, rejected := p.validator.Validate(items)
	return outcomes, rejected, nil
}

// join turns impactful outcomes into patch records, re-attaching the
// source document's title and content. Outcomes whose id matches no
// loaded document are dropped.
func (p *Pipeline) join(date string, outcomes []core.Outcome, byID map[string]core.RawDocument) []core.PatchRecord {
	records := make([]core.PatchRecord, 0, len(outcomes))
	for _, outcome := range outcomes {
		if !outcome.Type.Impactful() {
			continue
		}
		doc, ok := byID[outcome.ID]
		if !ok {
			p.logger.Warn("outcome references unknown document", "id", outcome.ID)
			continue
		}
		records = append(records, core.PatchRecord{
			ID:        outcome.ID,
			Date:      date,
			Title:     doc.Title,
			Type:      outcome.Type,
			Category:  outcome.Category,
			Subtype:   core.SectionFromID(outcome.ID),
			Summary:   outcome.Summary,
			Relevance: outcome.Relevance,
			Content:   doc.Content,
		})
	}
	return records
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsNoDocuments reports whether err means the date had nothing to
// classify.
func IsNoDocuments(err error) bool {
	return errors.Is(err, ErrNoDocuments)
}
