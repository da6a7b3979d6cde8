// Package render implements the standalone-image variant: charts are saved
// to the plots directory and the reports themselves are left chart-free.
package render

import (
	"fmt"
	"os"

	"github.com/dtnitsch/benchviz/internal/common"
	"github.com/urfave/cli/v2"
)

type output struct {
	Status   string            `json:"status" yaml:"status"`
	PlotsDir string            `json:"plots_dir" yaml:"plots_dir"`
	Run      *common.RunResult `json:"run" yaml:"run"`
}

func RenderAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	// All reports must exist before anything is written.
	if missing := common.MissingReports(cfg); len(missing) > 0 {
		fmt.Fprintln(os.Stderr, "Missing required reports:")
		for _, m := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", m)
		}
		os.Exit(1)
	}

	// Stale injected blocks would reference plots we are about to replace.
	if _, err := common.CleanReports(cfg); err != nil {
		logger.Error("failed to clean reports", "error", err)
		os.Exit(2)
	}

	result, err := common.GenerateCharts(logger, cfg, cfg.PlotsDir)
	if err != nil {
		logger.Error("failed to generate charts", "error", err)
		os.Exit(2)
	}

	common.RecordRun(logger, "render", result)

	if err := common.PrintSummary(c, output{
		Status:   "success",
		PlotsDir: cfg.PlotsDir,
		Run:      result,
	}); err != nil {
		logger.Error("failed to print summary", "error", err)
		os.Exit(2)
	}

	if !c.Bool("quiet") {
		fmt.Printf("Saved plots to: %s\n", cfg.PlotsDir)
	}
	return nil
}
