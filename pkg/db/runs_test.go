package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tests := []struct {
		name           string
		mode           string
		charts         int
		reports        int
		deltaAnomalies int
	}{
		{"render run", "render", 5, 4, 0},
		{"embed run with anomalies", "embed", 5, 4, 2},
	}

	var lastID int64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runID, err := db.InsertRun(tt.mode, tt.charts, tt.reports, tt.deltaAnomalies)
			if err != nil {
				t.Fatalf("InsertRun() failed: %v", err)
			}
			if runID <= lastID {
				t.Errorf("InsertRun() ID = %d, want > %d", runID, lastID)
			}
			lastID = runID
		})
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := db.InsertRun("render", 5, 4, i); err != nil {
			t.Fatalf("InsertRun() failed: %v", err)
		}
	}

	runs, err := db.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}

	// Newest first
	if runs[0].RunID < runs[1].RunID || runs[1].RunID < runs[2].RunID {
		t.Errorf("runs not ordered newest first: %v %v %v", runs[0].RunID, runs[1].RunID, runs[2].RunID)
	}
	if runs[0].DeltaAnomalies != 4 {
		t.Errorf("newest run delta_anomalies = %d, want 4", runs[0].DeltaAnomalies)
	}
	if runs[0].Mode != "render" || runs[0].ChartsWritten != 5 || runs[0].ReportsTotal != 4 {
		t.Errorf("unexpected run fields: %+v", runs[0])
	}
}

func TestListRunsEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}
