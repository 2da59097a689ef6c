package main

import (
	"fmt"
	"os"

	"github.com/mdstats/mdstats/internal/analyze"
	"github.com/mdstats/mdstats/internal/history"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "mdstats",
		Usage: "word, bigram, and trigram frequency analysis over a directory of blog posts",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "analyze a corpus directory and print ranked frequency sections",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "corpus directory containing markup files",
					},
					&cli.StringFlag{
						Name:  "ext",
						Usage: "file extension to match (.md or .html)",
						Value: ".md",
					},
					&cli.StringFlag{
						Name:  "exclude",
						Usage: "comma-separated custom words to exclude",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "number of entries in most-common sections",
						Value: 25,
					},
					&cli.IntFlag{
						Name:  "bottom",
						Usage: "number of entries in the least-common trigrams section",
						Value: 5,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file; CLI flags override its values",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "ISO 639-1 code; skip documents detected as another language",
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "persist this run to the history database",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "path to the run-history database",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "list saved analysis runs",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "path to the run-history database",
					},
				},
			},
			{
				Name:   "show",
				Usage:  "print the ranked sections of a saved run",
				Action: history.ShowAction,
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:  "run",
						Usage: "run ID from 'history'",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "path to the run-history database",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
