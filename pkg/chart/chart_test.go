package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/benchviz/models"
)

func TestDeltas(t *testing.T) {
	tests := []struct {
		name   string
		record models.WorkflowRecord
		want   float64
	}{
		{
			name:   "total matches components",
			record: models.WorkflowRecord{BookID: 1, IngestMs: 100, IndexMs: 50, SearchMs: 30, TotalMs: 180},
			want:   0,
		},
		{
			name:   "total overshoots components",
			record: models.WorkflowRecord{BookID: 2, IngestMs: 100, IndexMs: 50, SearchMs: 30, TotalMs: 200},
			want:   20,
		},
		{
			name:   "total undershoots components",
			record: models.WorkflowRecord{BookID: 3, IngestMs: 100, IndexMs: 50, SearchMs: 30, TotalMs: 170},
			want:   -10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deltas([]models.WorkflowRecord{tt.record})
			if len(got) != 1 {
				t.Fatalf("got %d deltas, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("Deltas() = %v, want %v", got[0], tt.want)
			}
		})
	}
}

func TestDeltasNaNPropagates(t *testing.T) {
	records := []models.WorkflowRecord{
		{BookID: 1, IngestMs: math.NaN(), IndexMs: 50, SearchMs: 30, TotalMs: 180},
	}
	if got := Deltas(records); !math.IsNaN(got[0]) {
		t.Errorf("Deltas() = %v, want NaN", got[0])
	}
}

func TestAxisMax(t *testing.T) {
	tests := []struct {
		name string
		max  float64
		want float64
	}{
		{"zero gets unit axis", 0, 1},
		{"negative gets unit axis", -5, 1},
		{"NaN gets unit axis", math.NaN(), 1},
		{"positive gets headroom", 100, 115},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := axisMax(tt.max)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("axisMax(%v) = %v, want %v", tt.max, got, tt.want)
			}
		})
	}
}

// assertPNGWritten fails unless path is a non-empty file.
func assertPNGWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestLatencyRendersPNG(t *testing.T) {
	records := []models.LatencyRecord{
		{Endpoint: "/ingest/book", AvgResponseMs: 120.5},
		{Endpoint: "/ingest/status", AvgResponseMs: math.NaN()},
		{Endpoint: "/healthz", AvgResponseMs: 3},
	}

	out := filepath.Join(t.TempDir(), "latency.png")
	if err := Latency(records, "Ingestion Service – Average Response Time", out, Options{}); err != nil {
		t.Fatalf("Latency() failed: %v", err)
	}
	assertPNGWritten(t, out)
}

func TestLatencyEmptyDataset(t *testing.T) {
	out := filepath.Join(t.TempDir(), "latency.png")
	if err := Latency(nil, "empty", out, Options{}); err == nil {
		t.Error("Latency() succeeded on an empty dataset, want error")
	}
}

func TestWorkflowChartsRenderPNG(t *testing.T) {
	records := []models.WorkflowRecord{
		{BookID: 1, IngestMs: 100, IndexMs: 50, SearchMs: 30, TotalMs: 180},
		{BookID: 2, IngestMs: 100, IndexMs: 50, SearchMs: 30, TotalMs: 200},
	}

	dir := t.TempDir()

	breakdown := filepath.Join(dir, "breakdown.png")
	if err := WorkflowBreakdown(records, breakdown, Options{}); err != nil {
		t.Fatalf("WorkflowBreakdown() failed: %v", err)
	}
	assertPNGWritten(t, breakdown)

	validation := filepath.Join(dir, "validation.png")
	if err := TotalVsComponents(records, validation, Options{}); err != nil {
		t.Fatalf("TotalVsComponents() failed: %v", err)
	}
	assertPNGWritten(t, validation)
}
