// Package history lists previous render runs from the local run log.
package history

import (
	"fmt"
	"os"

	"github.com/dtnitsch/benchviz/internal/common"
	"github.com/dtnitsch/benchviz/pkg/db"
	"github.com/urfave/cli/v2"
)

func HistoryAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open run history", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		os.Exit(2)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("#%d  %s  %-6s  charts=%d reports=%d delta_anomalies=%d\n",
			r.RunID, r.CreatedAt, r.Mode, r.ChartsWritten, r.ReportsTotal, r.DeltaAnomalies)
	}
	return nil
}
