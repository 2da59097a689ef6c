package db

const schema = `
-- Runs table: one row per analysis invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    corpus_dir TEXT NOT NULL,
    extension TEXT NOT NULL,
    file_count INTEGER NOT NULL DEFAULT 0,
    token_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Run entries: the ranked n-grams of each printed section
CREATE TABLE IF NOT EXISTS run_entries (
    entry_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    section TEXT NOT NULL,
    rank INTEGER NOT NULL,
    ngram TEXT NOT NULL,
    count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_entries_run ON run_entries(run_id);
CREATE INDEX IF NOT EXISTS idx_run_entries_section ON run_entries(run_id, section);
`
