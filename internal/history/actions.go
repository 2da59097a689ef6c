// Package history exposes the persisted run history through CLI commands.
package history

import (
	"fmt"

	"github.com/mdstats/mdstats/models"
	"github.com/mdstats/mdstats/pkg/db"
	"github.com/urfave/cli/v2"
)

// sectionLabels maps stored section names back to display labels.
var sectionLabels = map[string]string{
	models.SectionLeastCommonTrigrams: "Least Common Trigrams",
	models.SectionMostCommonTrigrams:  "Most Common Trigrams",
	models.SectionMostCommonWords:     "Most Common Words",
	models.SectionMostCommonPhrases:   "Most Common Phrases",
}

func HistoryAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open run-history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No saved runs. Use 'analyze --save' to record one.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%d\t%s\t%s\t%d files\t%d tokens\t%s\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.CorpusDir,
			run.FileCount,
			run.TokenCount,
			run.Extension,
		)
	}
	return nil
}

func ShowAction(c *cli.Context) error {
	runID := c.Int64("run")
	if runID == 0 {
		return fmt.Errorf("run ID is required: use --run")
	}

	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open run-history database: %w", err)
	}
	defer database.Close()

	sections, err := database.GetRun(runID)
	if err != nil {
		return err
	}

	for i, section := range sections {
		if i > 0 {
			fmt.Println()
		}
		label := sectionLabels[section.Name]
		if label == "" {
			label = section.Name
		}
		fmt.Printf("--- %s ---\n", label)
		for _, entry := range section.Entries {
			fmt.Printf("%s: %d\n", entry.Gram, entry.Count)
		}
	}
	return nil
}
