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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "boepatch",
		Usage: "Classify daily BOE documents into patch notes and query them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "classify",
				Usage:  "Classify one date's documents and persist the impactful ones",
				Action: classifyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "date",
						Aliases: []string{"d"},
						Usage:   "Publication date, YYYYMMDD (defaults to today)",
					},
					&cli.BoolFlag{
						Name:  "from-dir",
						Usage: "Read documents from the scraper directory instead of the archive",
					},
				},
			},
			{
				Name:   "import",
				Usage:  "Import a date's scraper output into the raw archive",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "date",
						Aliases:  []string{"d"},
						Usage:    "Publication date, YYYYMMDD",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Scraper output root (defaults to the configured data dir)",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the patch query API over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address (defaults to the configured address)",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print a date's buff/nerf counts",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "date",
						Aliases: []string{"d"},
						Usage:   "Publication date, YYYYMMDD (defaults to today)",
					},
				},
			},
			{
				Name:   "dates",
				Usage:  "List dates with classified records",
				Action: datesCommand,
			},
			{
				Name:   "search",
				Usage:  "Search patch records",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "fecha",
						Usage: "Exact date (YYYYMMDD or DD/MM/YYYY), repeatable",
					},
					&cli.StringSliceFlag{
						Name:  "mes",
						Usage: "Month bucket YYYYMM, repeatable",
					},
					&cli.StringSliceFlag{
						Name:  "ano",
						Usage: "Year bucket YYYY, repeatable",
					},
					&cli.StringFlag{
						Name:  "tipo",
						Usage: "Impact type filter: buff, nerf, or ambos",
					},
					&cli.StringSliceFlag{
						Name:  "categoria",
						Usage: "Taxonomy category, repeatable",
					},
					&cli.StringSliceFlag{
						Name:  "subtipo",
						Usage: "Gazette section letter, repeatable",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Result cap (-1 for all)",
						Value: 10,
					},
				},
			},
			{
				Name:   "purge",
				Usage:  "Delete a date's classified records (and archived documents)",
				Action: purgeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "date",
						Aliases:  []string{"d"},
						Usage:    "Publication date, YYYYMMDD",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "archive",
						Usage: "Also remove the date from the raw archive",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if path := c.String("config"); path != "" {
		if err := os.Setenv("BOEPATCH_CONFIG", path); err != nil {
			return err
		}
	}

	return nil
}
