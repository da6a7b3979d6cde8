package db

import "fmt"

// Run is one recorded render/embed invocation.
type Run struct {
	RunID          int64
	Mode           string
	CreatedAt      string
	ChartsWritten  int
	ReportsTotal   int
	DeltaAnomalies int
}

// InsertRun records a completed run and returns its ID.
func (db *DB) InsertRun(mode string, chartsWritten, reportsTotal, deltaAnomalies int) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO runs (mode, charts_written, reports_total, delta_anomalies)
		VALUES (?, ?, ?, ?)
	`, mode, chartsWritten, reportsTotal, deltaAnomalies)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, mode, created_at, charts_written, reports_total, delta_anomalies
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.Mode, &r.CreatedAt, &r.ChartsWritten, &r.ReportsTotal, &r.DeltaAnomalies); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
