package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/benchviz/models"
	"github.com/dtnitsch/benchviz/pkg/htmlblock"
)

// setupResultsDir writes the named reports into a temp results dir and
// returns a config pointing at it.
func setupResultsDir(t *testing.T, reports map[string]string) *models.Config {
	t.Helper()

	cfg := models.DefaultConfig()
	cfg.ResultsDir = t.TempDir()
	cfg.PlotsDir = t.TempDir()

	for name, content := range reports {
		path := filepath.Join(cfg.ResultsDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write report %s: %v", name, err)
		}
	}
	return cfg
}

const tableHTML = `<html><body><table><tr><th>A</th></tr><tr><td>1</td></tr></table></body></html>`

func TestMissingReports(t *testing.T) {
	cfg := setupResultsDir(t, map[string]string{
		"ingestion-service_container_performance.html": tableHTML,
		"indexing-service_container_performance.html":  tableHTML,
		"search-service_container_performance.html":    tableHTML,
	})

	missing := MissingReports(cfg)
	if len(missing) != 1 {
		t.Fatalf("got %d missing reports, want 1: %v", len(missing), missing)
	}
	if !strings.HasSuffix(missing[0], "system_workflow_performance.html") {
		t.Errorf("missing[0] = %q, want the workflow report", missing[0])
	}
}

func TestMissingReportsAllPresent(t *testing.T) {
	cfg := setupResultsDir(t, map[string]string{
		"ingestion-service_container_performance.html": tableHTML,
		"indexing-service_container_performance.html":  tableHTML,
		"search-service_container_performance.html":    tableHTML,
		"system_workflow_performance.html":             tableHTML,
	})

	if missing := MissingReports(cfg); len(missing) != 0 {
		t.Errorf("got missing reports %v, want none", missing)
	}
}

func TestCleanReportsStripsInjectedBlocks(t *testing.T) {
	injected, _ := htmlblock.Upsert([]byte(tableHTML), "ingestion-latency",
		htmlblock.ImageBlock("ingestion-service_latency.png", "chart"))

	cfg := setupResultsDir(t, map[string]string{
		"ingestion-service_container_performance.html": string(injected),
		"system_workflow_performance.html":             tableHTML,
	})

	cleaned, err := CleanReports(cfg)
	if err != nil {
		t.Fatalf("CleanReports() failed: %v", err)
	}
	// Only the two reports that exist get cleaned.
	if cleaned != 2 {
		t.Errorf("cleaned = %d, want 2", cleaned)
	}

	data, err := os.ReadFile(filepath.Join(cfg.ResultsDir, "ingestion-service_container_performance.html"))
	if err != nil {
		t.Fatalf("failed to re-read report: %v", err)
	}
	if strings.Contains(string(data), "PLOT_BLOCK") {
		t.Error("injected block survived CleanReports()")
	}
	if !strings.Contains(string(data), "</table>") {
		t.Error("report table was removed by CleanReports()")
	}
}

func TestInjectedImagesCoverAllCharts(t *testing.T) {
	cfg := models.DefaultConfig()
	images := InjectedImages(cfg)
	if len(images) != 5 {
		t.Fatalf("got %d injected images, want 5", len(images))
	}

	seen := make(map[string]bool)
	for _, img := range images {
		if seen[img] {
			t.Errorf("duplicate injected image %q", img)
		}
		seen[img] = true
	}
}
