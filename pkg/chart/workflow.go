package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/dtnitsch/benchviz/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func bookIDNames(records []models.WorkflowRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = strconv.Itoa(r.BookID)
	}
	return names
}

func finishWorkflowPlot(p *plot.Plot, records []models.WorkflowRecord, yMax float64, outPath string, opts Options) error {
	p.NominalX(bookIDNames(records)...)
	p.X.Min = -0.5
	p.X.Max = float64(len(records)) - 0.5
	p.Y.Min = 0
	p.Y.Max = axisMax(yMax)
	p.Legend.Top = true

	w, h := opts.size()
	if err := p.Save(w, h, outPath); err != nil {
		return fmt.Errorf("failed to save workflow chart: %w", err)
	}
	return nil
}

// WorkflowBreakdown renders a stacked bar per book: ingest, index and
// search segments stacked in that order, one bar per Book ID ascending.
func WorkflowBreakdown(records []models.WorkflowRecord, outPath string, opts Options) error {
	if len(records) == 0 {
		return fmt.Errorf("no workflow records to plot")
	}

	p := newPlot("System Workflow Breakdown per Book", "Book ID", "Time (ms)")

	segments := []struct {
		label string
		value func(models.WorkflowRecord) float64
	}{
		{"Ingest", func(r models.WorkflowRecord) float64 { return r.IngestMs }},
		{"Index", func(r models.WorkflowRecord) float64 { return r.IndexMs }},
		{"Search", func(r models.WorkflowRecord) float64 { return r.SearchMs }},
	}

	var prev *plotter.BarChart
	for si, seg := range segments {
		values := make(plotter.Values, len(records))
		for i, r := range records {
			values[i] = drawable(seg.value(r))
		}
		bar, err := plotter.NewBarChart(values, vg.Points(28))
		if err != nil {
			return fmt.Errorf("failed to create %s bars: %w", seg.label, err)
		}
		bar.Color = plotutil.Color(si)
		bar.LineStyle = barOutline
		if prev != nil {
			bar.StackOn(prev)
		}
		p.Add(bar)
		p.Legend.Add(seg.label, bar)
		prev = bar
	}

	maxStack := 0.0
	for _, r := range records {
		s := drawable(r.IngestMs) + drawable(r.IndexMs) + drawable(r.SearchMs)
		if s > maxStack {
			maxStack = s
		}
	}

	return finishWorkflowPlot(p, records, maxStack, outPath, opts)
}

// Deltas returns Total - (Ingest+Index+Search) per record, in record order.
// NaN components propagate into the delta.
func Deltas(records []models.WorkflowRecord) []float64 {
	deltas := make([]float64, len(records))
	for i, r := range records {
		deltas[i] = r.TotalMs - r.ComponentsMs()
	}
	return deltas
}

// TotalVsComponents renders the validation chart: a bar of the summed
// components per book overlaid with a dashed line of the reported total.
// Every bar carries its rounded sum; wherever the reported total disagrees
// with the sum, the delta is annotated above the taller of the two.
func TotalVsComponents(records []models.WorkflowRecord, outPath string, opts Options) error {
	if len(records) == 0 {
		return fmt.Errorf("no workflow records to plot")
	}

	p := newPlot("Total vs Components Sum (Validation)", "Book ID", "Time (ms)")

	sums := make(plotter.Values, len(records))
	yMax := 0.0
	for i, r := range records {
		sums[i] = drawable(r.ComponentsMs())
		if sums[i] > yMax {
			yMax = sums[i]
		}
		if t := drawable(r.TotalMs); t > yMax {
			yMax = t
		}
	}

	bars, err := plotter.NewBarChart(sums, vg.Points(28))
	if err != nil {
		return fmt.Errorf("failed to create component sum bars: %w", err)
	}
	bars.Color = plotutil.Color(3)
	bars.LineStyle = barOutline
	p.Add(bars)
	p.Legend.Add("Sum(Ingest+Index+Search)", bars)

	totals := make(plotter.XYs, 0, len(records))
	for i, r := range records {
		if math.IsNaN(r.TotalMs) {
			continue
		}
		totals = append(totals, plotter.XY{X: float64(i), Y: r.TotalMs})
	}
	line, points, err := plotter.NewLinePoints(totals)
	if err != nil {
		return fmt.Errorf("failed to create total line: %w", err)
	}
	line.Color = color.Black
	line.Width = vg.Points(1.2)
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	p.Legend.Add("Total Time (ms)", line, points)

	headroom := axisMax(yMax)
	var labelXYs plotter.XYs
	var labelTexts []string
	for i, r := range records {
		sum := r.ComponentsMs()
		if !math.IsNaN(sum) {
			labelXYs = append(labelXYs, plotter.XY{X: float64(i), Y: sum + headroom*0.02})
			labelTexts = append(labelTexts, fmt.Sprintf("%.0f", sum))
		}
	}
	for i, d := range Deltas(records) {
		if math.IsNaN(d) || d == 0 {
			continue
		}
		top := math.Max(drawable(records[i].ComponentsMs()), drawable(records[i].TotalMs))
		labelXYs = append(labelXYs, plotter.XY{X: float64(i), Y: top * 1.03})
		labelTexts = append(labelTexts, fmt.Sprintf("Δ=%.0f", d))
	}

	labels, err := valueLabels(labelXYs, labelTexts)
	if err != nil {
		return err
	}
	p.Add(labels)

	return finishWorkflowPlot(p, records, yMax, outPath, opts)
}
