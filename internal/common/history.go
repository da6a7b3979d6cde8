package common

import (
	"log/slog"

	"github.com/dtnitsch/benchviz/pkg/db"
)

// RecordRun logs the run to the local history database. History is
// supplementary; failures are warnings, never fatal.
func RecordRun(logger *slog.Logger, mode string, result *RunResult) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("failed to open run history", "error", err)
		return
	}
	defer database.Close()

	if _, err := database.InsertRun(mode, result.ChartsWritten, result.ReportsTotal, result.DeltaAnomalies); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
