// Package clean strips every injected chart block from the reports.
package clean

import (
	"fmt"
	"os"

	"github.com/dtnitsch/benchviz/internal/common"
	"github.com/urfave/cli/v2"
)

func CleanAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	cleaned, err := common.CleanReports(cfg)
	if err != nil {
		logger.Error("failed to clean reports", "error", err)
		os.Exit(2)
	}

	if !c.Bool("quiet") {
		fmt.Printf("Cleaned %d reports in: %s\n", cleaned, cfg.ResultsDir)
	}
	return nil
}
