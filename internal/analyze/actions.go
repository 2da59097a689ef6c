// Package analyze wires the corpus loader, tokenizer, and n-gram ranker into
// the analyze CLI command.
package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mdstats/mdstats/models"
	"github.com/mdstats/mdstats/pkg/corpus"
	"github.com/mdstats/mdstats/pkg/db"
	"github.com/mdstats/mdstats/pkg/ngram"
	"github.com/mdstats/mdstats/pkg/tokenizer"
	"github.com/urfave/cli/v2"
)

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := resolveConfig(c)
	if err != nil {
		return err
	}

	report, err := Run(config, logger)
	if err != nil {
		// Corpus-level failures are fatal: no partial output.
		return err
	}

	PrintSections(report.Sections)

	if c.Bool("save") {
		database, err := db.Open(config.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open run-history database: %w", err)
		}
		defer database.Close()

		runID, err := database.SaveRun(report)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		logger.Info("run saved", "run_id", runID, "database", database.Path())
	}

	return nil
}

// resolveConfig merges the optional YAML config file with CLI flags.
// Flags win over file values.
func resolveConfig(c *cli.Context) (*models.AnalyzeConfig, error) {
	config := &models.AnalyzeConfig{}
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if c.IsSet("dir") || config.CorpusDir == "" {
		config.CorpusDir = c.String("dir")
	}
	if c.IsSet("ext") {
		config.Extension = c.String("ext")
	}
	if c.IsSet("exclude") {
		for _, word := range strings.Split(c.String("exclude"), ",") {
			if word = strings.TrimSpace(word); word != "" {
				config.CustomWords = append(config.CustomWords, word)
			}
		}
	}
	if c.IsSet("top") {
		config.TopK = c.Int("top")
	}
	if c.IsSet("bottom") {
		config.BottomK = c.Int("bottom")
	}
	if c.IsSet("language") {
		config.Language = c.String("language")
	}
	if c.IsSet("db") {
		config.DatabasePath = c.String("db")
	}
	config.ApplyDefaults()

	if config.CorpusDir == "" {
		return nil, fmt.Errorf("no corpus directory provided: set --dir or corpus_dir in the config file")
	}
	return config, nil
}

// Run executes the full pipeline: load the corpus, tokenize and filter, then
// rank unigrams, bigrams, and trigrams. The only fatal condition is a
// missing or empty corpus directory; an all-excluded corpus yields a report
// with empty sections.
func Run(config *models.AnalyzeConfig, logger *slog.Logger) (*models.Report, error) {
	loader := corpus.NewLoader(logger, config.Language)
	text, fileCount, err := loader.Load(config.CorpusDir, config.Extension)
	if err != nil {
		return nil, err
	}
	logger.Info("corpus loaded", "dir", config.CorpusDir, "files", fileCount)

	tok := tokenizer.New(config.CustomWords)
	tokens := tok.TokenizeAndFilter(text)
	if len(tokens) == 0 {
		// Degenerate but valid: every token was excluded or numeric.
		logger.Warn("corpus is empty after filtering", "dir", config.CorpusDir)
	}

	unigrams := ngram.Count(tokens, 1)
	bigrams := ngram.Count(tokens, 2)
	trigrams := ngram.Count(tokens, 3)

	report := &models.Report{
		CorpusDir:  config.CorpusDir,
		Extension:  config.Extension,
		FileCount:  fileCount,
		TokenCount: len(tokens),
		Sections: []models.Section{
			buildSection(models.SectionLeastCommonTrigrams,
				fmt.Sprintf("Least Common Trigrams (Bottom %d)", config.BottomK),
				trigrams.Bottom(config.BottomK)),
			buildSection(models.SectionMostCommonTrigrams,
				fmt.Sprintf("Most Common Trigrams (Top %d)", config.TopK),
				trigrams.Top(config.TopK)),
			buildSection(models.SectionMostCommonWords,
				fmt.Sprintf("Most Common Words (Top %d)", config.TopK),
				unigrams.Top(config.TopK)),
			buildSection(models.SectionMostCommonPhrases,
				fmt.Sprintf("Most Common Phrases (Top %d)", config.TopK),
				bigrams.Top(config.TopK)),
		},
	}
	return report, nil
}

func buildSection(name, label string, entries []ngram.Entry) models.Section {
	section := models.Section{
		Name:    name,
		Label:   label,
		Entries: make([]models.Entry, len(entries)),
	}
	for i, e := range entries {
		section.Entries[i] = models.Entry{Gram: e.Gram, Count: e.Count}
	}
	return section
}

// PrintSections writes the labeled ranking sections to stdout in their fixed
// order, one "<gram>: <count>" line per entry.
func PrintSections(sections []models.Section) {
	for i, section := range sections {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("--- %s ---\n", section.Label)
		for _, entry := range section.Entries {
			fmt.Printf("%s: %d\n", entry.Gram, entry.Count)
		}
	}
}
