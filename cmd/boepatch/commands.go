package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/guillermop2002/Patch-Boe/classify"
	"github.com/guillermop2002/Patch-Boe/config"
	"github.com/guillermop2002/Patch-Boe/core"
	"github.com/guillermop2002/Patch-Boe/pipeline"
	"github.com/guillermop2002/Patch-Boe/rawstore"
	"github.com/guillermop2002/Patch-Boe/search"
	"github.com/guillermop2002/Patch-Boe/server"
	"github.com/guillermop2002/Patch-Boe/storage/sqlite"
)

func classifyCommand(c *cli.Context) error {
	cfg := config.Load()

	date := c.String("date")
	if date == "" {
		date = core.Today()
	}

	pool, err := classify.NewKeyPool(cfg.Groq.Keys)
	if err != nil {
		return fmt.Errorf("no usable credentials: set GROQ_API_KEY_1..%d: %w", 9, err)
	}

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open patch store: %w", err)
	}
	defer store.Close()

	var source pipeline.Source
	if c.Bool("from-dir") {
		source = rawstore.NewDirSource(cfg.RawDocsRoot())
	} else {
		archive, err := rawstore.Open(cfg.Archive.Path)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer archive.Close()
		source = archive
	}

	client := classify.NewClient(cfg.Groq.Host, cfg.Groq.Model, cfg.Groq.MaxOutputTokens)
	batcher := &classify.Batcher{
		MaxContentLength: cfg.Pipeline.MaxContentLength,
		TokenCeiling:     cfg.Pipeline.TokenCeiling,
	}

	p, err := pipeline.New(source, client, pool, store,
		pipeline.WithBatcher(batcher),
		pipeline.WithChunkSize(cfg.Pipeline.ChunkSize),
		pipeline.WithPause(cfg.Pipeline.Pause),
	)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()
	report, err := p.Run(ctx, date)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if report.Skipped {
		fmt.Printf("%s already classified, nothing to do\n", core.DisplayDate(date))
		return nil
	}
	fmt.Printf("%s: %d documents, %d/%d chunks ok, %d outcomes (%d rejected), %d persisted\n",
		core.DisplayDate(date), report.Documents,
		report.Chunks-report.FailedChunks, report.Chunks,
		report.Outcomes, report.Rejected, report.Persisted)
	return nil
}

func importCommand(c *cli.Context) error {
	cfg := config.Load()

	date := c.String("date")
	root := c.String("dir")
	if root == "" {
		root = cfg.RawDocsRoot()
	}

	archive, err := rawstore.Open(cfg.Archive.Path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	ctx, stop := signalContext()
	defer stop()
	stored, skipped, err := archive.ImportDir(ctx, root, date)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("%s: %d documents archived, %d unchanged\n", core.DisplayDate(date), stored, skipped)
	return nil
}

func serveCommand(c *cli.Context) error {
	cfg := config.Load()

	addr := c.String("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open patch store: %w", err)
	}
	defer store.Close()

	ctx, stop := signalContext()
	defer stop()
	srv := server.New(search.NewEngine(store))
	return srv.ListenAndServe(ctx, addr)
}

func statsCommand(c *cli.Context) error {
	cfg := config.Load()

	date := c.String("date")
	if date == "" {
		date = core.Today()
	}

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open patch store: %w", err)
	}
	defer store.Close()

	stats, err := store.StatsForDate(context.Background(), date)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d buffs, %d nerfs, %d total\n",
		core.DisplayDate(date), stats.Buffs, stats.Nerfs, stats.Total)
	return nil
}

func datesCommand(c *cli.Context) error {
	cfg := config.Load()

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open patch store: %w", err)
	}
	defer store.Close()

	dates, err := store.AvailableDates(context.Background())
	if err != nil {
		return err
	}

	for _, date := range dates {
		fmt.Println(core.DisplayDate(date))
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	cfg := config.Load()

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open patch store: %w", err)
	}
	defer store.Close()

	engine := search.NewEngine(store)
	records, err := engine.Search(context.Background(), search.Query{
		Dates:      c.StringSlice("fecha"),
		Months:     c.StringSlice("mes"),
		Years:      c.StringSlice("ano"),
		TypeFilter: c.String("tipo"),
		Categories: c.StringSlice("categoria"),
		Subtypes:   c.StringSlice("subtipo"),
		Limit:      c.Int("limit"),
	})
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%s  %-4s  %3d  %-30s  %s\n",
			core.DisplayDate(r.Date), r.Type, r.Relevance, r.Category, r.Summary)
	}
	return nil
}

func purgeCommand(c *cli.Context) error {
	cfg := config.Load()

	date := c.String("date")

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open patch store: %w", err)
	}
	defer store.Close()

	if err := store.DeleteDate(context.Background(), date); err != nil {
		return fmt.Errorf("failed to purge records: %w", err)
	}

	if c.Bool("archive") {
		archive, err := rawstore.Open(cfg.Archive.Path)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer archive.Close()
		if err := archive.DeleteDate(context.Background(), date); err != nil {
			return fmt.Errorf("failed to purge archive: %w", err)
		}
	}

	fmt.Printf("%s purged\n", core.DisplayDate(date))
	return nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
