package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs table: one row per render/embed invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    mode TEXT NOT NULL,                    -- render, embed
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    charts_written INTEGER NOT NULL DEFAULT 0,
    reports_total INTEGER NOT NULL DEFAULT 0,

    -- Workflow rows whose reported total disagreed with the component sum
    delta_anomalies INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
`
