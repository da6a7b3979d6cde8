// Package chart renders benchmark datasets to PNG files with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/dtnitsch/benchviz/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options controls the chart canvas. Zero values fall back to 8x5 inches.
type Options struct {
	WidthIn  float64
	HeightIn float64
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.WidthIn, o.HeightIn
	if w <= 0 {
		w = 8
	}
	if h <= 0 {
		h = 5
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

var barOutline = draw.LineStyle{
	Color: color.Black,
	Width: vg.Points(0.6),
}

// axisMax leaves headroom above the tallest bar so value labels fit.
// All-zero or all-missing data gets a unit axis instead of a degenerate one.
func axisMax(max float64) float64 {
	if math.IsNaN(max) || max <= 0 {
		return 1
	}
	return max * 1.15
}

// drawable maps a missing value to zero height, matching how the source
// reports render blank cells.
func drawable(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

// rotateXTicks angles category labels so long endpoint paths stay readable.
func rotateXTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

// valueLabels builds centered numeric labels. Callers position the label
// points slightly above the bar tops in data space.
func valueLabels(xys plotter.XYs, texts []string) (*plotter.Labels, error) {
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to create value labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	return labels, nil
}

// Latency renders one bar per endpoint with its rounded average response
// time labeled above the bar.
func Latency(records []models.LatencyRecord, title, outPath string, opts Options) error {
	if len(records) == 0 {
		return fmt.Errorf("no latency records to plot")
	}

	p := newPlot(title, "Endpoint", "Time (ms)")

	names := make([]string, len(records))
	maxVal := 0.0
	for i, r := range records {
		names[i] = r.Endpoint
		if v := r.AvgResponseMs; !math.IsNaN(v) && v > maxVal {
			maxVal = v
		}
	}
	yMax := axisMax(maxVal)

	var labelXYs plotter.XYs
	var labelTexts []string
	for i, r := range records {
		v := r.AvgResponseMs
		if !math.IsNaN(v) {
			labelXYs = append(labelXYs, plotter.XY{X: float64(i), Y: v + yMax*0.02})
			labelTexts = append(labelTexts, fmt.Sprintf("%.0f", v))
		}

		bar, err := plotter.NewBarChart(plotter.Values{drawable(v)}, vg.Points(28))
		if err != nil {
			return fmt.Errorf("failed to create bar for %s: %w", r.Endpoint, err)
		}
		bar.XMin = float64(i)
		bar.Color = plotutil.Color(i)
		bar.LineStyle = barOutline
		p.Add(bar)
	}

	labels, err := valueLabels(labelXYs, labelTexts)
	if err != nil {
		return err
	}
	p.Add(labels)

	p.NominalX(names...)
	rotateXTicks(p)
	// Pin the x range so edge bars are not clipped at the axis bounds.
	p.X.Min = -0.5
	p.X.Max = float64(len(records)) - 0.5
	p.Y.Min = 0
	p.Y.Max = yMax

	w, h := opts.size()
	if err := p.Save(w, h, outPath); err != nil {
		return fmt.Errorf("failed to save latency chart: %w", err)
	}
	return nil
}
