package common

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/dtnitsch/benchviz/models"
	"github.com/dtnitsch/benchviz/pkg/chart"
	"github.com/dtnitsch/benchviz/pkg/htmlblock"
	"github.com/dtnitsch/benchviz/pkg/report"
	"github.com/dtnitsch/benchviz/pkg/storage"
)

// RunResult summarizes one chart-generation pass.
type RunResult struct {
	ChartsWritten  int      `json:"charts_written" yaml:"charts_written"`
	ReportsTotal   int      `json:"reports_total" yaml:"reports_total"`
	DeltaAnomalies int      `json:"delta_anomalies" yaml:"delta_anomalies"`
	Images         []string `json:"images" yaml:"images"`
}

func chartOptions(cfg *models.Config) chart.Options {
	return chart.Options{WidthIn: cfg.ChartWidthIn, HeightIn: cfg.ChartHeightIn}
}

// GenerateCharts renders all five charts into outDir and reports how many
// workflow rows carried a total that disagrees with its component sum.
func GenerateCharts(logger *slog.Logger, cfg *models.Config, outDir string) (*RunResult, error) {
	s := &storage.Storage{}
	if err := s.EnsureDir(outDir); err != nil {
		return nil, err
	}

	opts := chartOptions(cfg)
	result := &RunResult{ReportsTotal: len(ReportPaths(cfg))}

	for _, lr := range LatencyReports(cfg) {
		table, err := report.ReadFirstTable(lr.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s report: %w", lr.Service, err)
		}
		records := report.LatencyDataset(table)
		logger.Info("parsed latency report", "service", lr.Service, "endpoints", len(records))

		out := filepath.Join(outDir, lr.Image)
		title := fmt.Sprintf("%s Service – Average Response Time", lr.Service)
		if err := chart.Latency(records, title, out, opts); err != nil {
			return nil, err
		}
		result.ChartsWritten++
		result.Images = append(result.Images, out)
	}

	table, err := report.ReadFirstTable(WorkflowReportPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow report: %w", err)
	}
	records := report.WorkflowDataset(table)
	logger.Info("parsed workflow report", "books", len(records))

	breakdownOut := filepath.Join(outDir, BreakdownImage)
	if err := chart.WorkflowBreakdown(records, breakdownOut, opts); err != nil {
		return nil, err
	}
	result.ChartsWritten++
	result.Images = append(result.Images, breakdownOut)

	validationOut := filepath.Join(outDir, ValidationImage)
	if err := chart.TotalVsComponents(records, validationOut, opts); err != nil {
		return nil, err
	}
	result.ChartsWritten++
	result.Images = append(result.Images, validationOut)

	for _, d := range chart.Deltas(records) {
		if !math.IsNaN(d) && d != 0 {
			result.DeltaAnomalies++
		}
	}

	return result, nil
}

// CleanLegacyImages strips only the pre-marker-era hand-injected image
// containers, leaving marker blocks for Upsert to replace in place.
func CleanLegacyImages(cfg *models.Config) error {
	s := &storage.Storage{}
	legacy := InjectedImages(cfg)
	for _, p := range ReportPaths(cfg) {
		if !s.HasFile(p) {
			continue
		}
		doc, err := s.ReadFile(p)
		if err != nil {
			return err
		}
		doc = htmlblock.StripLegacyImages(doc, legacy)
		if err := s.SaveFile(p, doc); err != nil {
			return err
		}
	}
	return nil
}

// CleanReports strips injected blocks and legacy image containers from every
// report that exists. Missing reports are skipped, not errors.
func CleanReports(cfg *models.Config) (int, error) {
	s := &storage.Storage{}
	legacy := InjectedImages(cfg)

	cleaned := 0
	for _, p := range ReportPaths(cfg) {
		if !s.HasFile(p) {
			continue
		}
		doc, err := s.ReadFile(p)
		if err != nil {
			return cleaned, err
		}
		doc = htmlblock.StripBlocks(doc)
		doc = htmlblock.StripLegacyImages(doc, legacy)
		if err := s.SaveFile(p, doc); err != nil {
			return cleaned, err
		}
		cleaned++
	}
	return cleaned, nil
}
