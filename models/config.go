package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReportSet names the HTML report files under the results directory.
type ReportSet struct {
	Ingestion string `yaml:"ingestion"`
	Indexing  string `yaml:"indexing"`
	Search    string `yaml:"search"`
	Workflow  string `yaml:"workflow"`
}

// Config holds runtime configuration. Values come from an optional
// benchviz.yaml and can be overridden by CLI flags.
type Config struct {
	ResultsDir string    `yaml:"results_dir"`
	PlotsDir   string    `yaml:"plots_dir"`
	Reports    ReportSet `yaml:"reports"`

	// Chart canvas size in inches.
	ChartWidthIn  float64 `yaml:"chart_width_in"`
	ChartHeightIn float64 `yaml:"chart_height_in"`
}

// DefaultConfig matches the layout the benchmark harness writes.
func DefaultConfig() *Config {
	return &Config{
		ResultsDir: "benchmark_results/html_reports",
		PlotsDir:   "benchmark_results/plots",
		Reports: ReportSet{
			Ingestion: "ingestion-service_container_performance.html",
			Indexing:  "indexing-service_container_performance.html",
			Search:    "search-service_container_performance.html",
			Workflow:  "system_workflow_performance.html",
		},
		ChartWidthIn:  8,
		ChartHeightIn: 5,
	}
}

// LoadConfig reads a YAML config over the defaults. An empty path or a
// missing file yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
