package db

import (
	"fmt"
	"time"

	"github.com/mdstats/mdstats/models"
)

// RunInfo summarizes one persisted analysis run.
type RunInfo struct {
	ID         int64
	CorpusDir  string
	Extension  string
	FileCount  int
	TokenCount int
	CreatedAt  time.Time
}

// SaveRun persists a report and returns the new run ID. The run row and all
// section entries are written in one transaction.
func (db *DB) SaveRun(report *models.Report) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"INSERT INTO runs (corpus_dir, extension, file_count, token_count) VALUES (?, ?, ?, ?)",
		report.CorpusDir, report.Extension, report.FileCount, report.TokenCount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO run_entries (run_id, section, rank, ngram, count) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for _, section := range report.Sections {
		for rank, entry := range section.Entries {
			if _, err := stmt.Exec(runID, section.Name, rank+1, entry.Gram, entry.Count); err != nil {
				return 0, fmt.Errorf("failed to insert entry for section %s: %w", section.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns all persisted runs, newest first.
func (db *DB) ListRuns() ([]RunInfo, error) {
	rows, err := db.Query(
		"SELECT run_id, corpus_dir, extension, file_count, token_count, created_at FROM runs ORDER BY run_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var run RunInfo
		if err := rows.Scan(&run.ID, &run.CorpusDir, &run.Extension, &run.FileCount, &run.TokenCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns the stored sections of one run, entries in rank order.
// Section order follows the fixed printing order.
func (db *DB) GetRun(runID int64) ([]models.Section, error) {
	var exists int
	if err := db.QueryRow("SELECT COUNT(*) FROM runs WHERE run_id = ?", runID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check run %d: %w", runID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %d not found", runID)
	}

	rows, err := db.Query(
		"SELECT section, ngram, count FROM run_entries WHERE run_id = ? ORDER BY section, rank",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for run %d: %w", runID, err)
	}
	defer rows.Close()

	bySection := make(map[string][]models.Entry)
	for rows.Next() {
		var section string
		var entry models.Entry
		if err := rows.Scan(&section, &entry.Gram, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		bySection[section] = append(bySection[section], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	order := []string{
		models.SectionLeastCommonTrigrams,
		models.SectionMostCommonTrigrams,
		models.SectionMostCommonWords,
		models.SectionMostCommonPhrases,
	}
	var sections []models.Section
	for _, name := range order {
		if entries, ok := bySection[name]; ok {
			sections = append(sections, models.Section{Name: name, Entries: entries})
		}
	}
	return sections, nil
}
