// Package common resolves configuration and the required report set shared
// by the render, embed and clean actions.
package common

import (
	"path/filepath"

	"github.com/dtnitsch/benchviz/models"
	"github.com/dtnitsch/benchviz/pkg/storage"
	"github.com/urfave/cli/v2"
)

// LatencyReport binds one per-service report to its chart identity.
type LatencyReport struct {
	Service string // display name used in chart titles
	Path    string
	Image   string // output PNG filename
	BlockID string // injected block identifier
}

// ResolveConfig loads the YAML config and applies flag overrides.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("results-dir") {
		cfg.ResultsDir = c.String("results-dir")
	}
	if c.IsSet("plots-dir") {
		cfg.PlotsDir = c.String("plots-dir")
	}
	return cfg, nil
}

// LatencyReports lists the three per-service reports in harness order.
func LatencyReports(cfg *models.Config) []LatencyReport {
	return []LatencyReport{
		{
			Service: "Ingestion",
			Path:    filepath.Join(cfg.ResultsDir, cfg.Reports.Ingestion),
			Image:   "ingestion-service_latency.png",
			BlockID: "ingestion-latency",
		},
		{
			Service: "Indexing",
			Path:    filepath.Join(cfg.ResultsDir, cfg.Reports.Indexing),
			Image:   "indexing-service_latency.png",
			BlockID: "indexing-latency",
		},
		{
			Service: "Search",
			Path:    filepath.Join(cfg.ResultsDir, cfg.Reports.Search),
			Image:   "search-service_latency.png",
			BlockID: "search-latency",
		},
	}
}

// WorkflowReportPath is the whole-system workflow report.
func WorkflowReportPath(cfg *models.Config) string {
	return filepath.Join(cfg.ResultsDir, cfg.Reports.Workflow)
}

// Workflow chart identities.
const (
	BreakdownImage   = "workflow_breakdown_stacked.png"
	BreakdownBlockID = "workflow-breakdown"
	ValidationImage  = "workflow_total_vs_components.png"
	ValidationBlock  = "workflow-total-vs-components"
)

// ReportPaths lists every required report, workflow last.
func ReportPaths(cfg *models.Config) []string {
	var paths []string
	for _, lr := range LatencyReports(cfg) {
		paths = append(paths, lr.Path)
	}
	return append(paths, WorkflowReportPath(cfg))
}

// InjectedImages lists every image filename this tool has ever injected,
// for legacy-block cleanup.
func InjectedImages(cfg *models.Config) []string {
	var names []string
	for _, lr := range LatencyReports(cfg) {
		names = append(names, lr.Image)
	}
	return append(names, BreakdownImage, ValidationImage)
}

// MissingReports enumerates required reports that do not exist. The caller
// must refuse to render anything when the list is non-empty.
func MissingReports(cfg *models.Config) []string {
	s := &storage.Storage{}
	var missing []string
	for _, p := range ReportPaths(cfg) {
		if !s.HasFile(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
