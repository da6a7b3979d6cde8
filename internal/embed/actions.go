// Package embed implements the report-splicing variant: charts are written
// next to the reports and each one is upserted into its report inside a
// marker-delimited block.
package embed

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/benchviz/internal/common"
	"github.com/dtnitsch/benchviz/pkg/htmlblock"
	"github.com/dtnitsch/benchviz/pkg/storage"
	"github.com/urfave/cli/v2"
)

type output struct {
	Status   string            `json:"status" yaml:"status"`
	Embedded int               `json:"blocks_embedded" yaml:"blocks_embedded"`
	Run      *common.RunResult `json:"run" yaml:"run"`
}

func EmbedAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	if missing := common.MissingReports(cfg); len(missing) > 0 {
		fmt.Fprintln(os.Stderr, "Missing required reports:")
		for _, m := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", m)
		}
		os.Exit(1)
	}

	// Hand-injected image divs from before the marker scheme would
	// duplicate the upserted blocks.
	if err := common.CleanLegacyImages(cfg); err != nil {
		logger.Error("failed to clean legacy image blocks", "error", err)
		os.Exit(2)
	}

	// Images live next to the reports so relative src attributes resolve.
	result, err := common.GenerateCharts(logger, cfg, cfg.ResultsDir)
	if err != nil {
		logger.Error("failed to generate charts", "error", err)
		os.Exit(2)
	}

	embedded := 0
	for _, lr := range common.LatencyReports(cfg) {
		alt := fmt.Sprintf("%s service latency chart", lr.Service)
		n, err := upsertBlock(logger, lr.Path, lr.BlockID, lr.Image, alt)
		if err != nil {
			logger.Error("failed to embed chart", "report", lr.Path, "error", err)
			os.Exit(2)
		}
		embedded += n
	}

	wfPath := common.WorkflowReportPath(cfg)
	for _, b := range []struct{ id, image, alt string }{
		{common.BreakdownBlockID, common.BreakdownImage, "workflow time breakdown chart"},
		{common.ValidationBlock, common.ValidationImage, "workflow total validation chart"},
	} {
		n, err := upsertBlock(logger, wfPath, b.id, b.image, b.alt)
		if err != nil {
			logger.Error("failed to embed chart", "report", wfPath, "error", err)
			os.Exit(2)
		}
		embedded += n
	}

	common.RecordRun(logger, "embed", result)

	if err := common.PrintSummary(c, output{
		Status:   "success",
		Embedded: embedded,
		Run:      result,
	}); err != nil {
		logger.Error("failed to print summary", "error", err)
		os.Exit(2)
	}

	if !c.Bool("quiet") {
		fmt.Printf("Embedded %d chart blocks into reports in: %s\n", embedded, cfg.ResultsDir)
	}
	return nil
}

// upsertBlock splices one image block into a report in place. Returns 1
// when the report was changed, 0 when it has no table to anchor on.
func upsertBlock(logger *slog.Logger, reportPath, id, image, alt string) (int, error) {
	s := &storage.Storage{}
	doc, err := s.ReadFile(reportPath)
	if err != nil {
		return 0, err
	}

	updated, changed := htmlblock.Upsert(doc, id, htmlblock.ImageBlock(image, alt))
	if !changed {
		logger.Warn("report has no table, block not inserted", "report", reportPath, "block", id)
		return 0, nil
	}

	if err := s.SaveFile(reportPath, updated); err != nil {
		return 0, err
	}
	return 1, nil
}
