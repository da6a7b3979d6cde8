// Package report extracts benchmark result tables from HTML reports and
// coerces them into typed datasets.
package report

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/benchviz/models"
	"github.com/dtnitsch/benchviz/pkg/storage"
)

// Column headers as written by the benchmark harness.
const (
	ColEndpoint = "Endpoint"
	ColAvgMs    = "Avg Response Time (ms)"
	ColBookID   = "Book ID"
	ColIngestMs = "Ingest Time (ms)"
	ColIndexMs  = "Index Time (ms)"
	ColSearchMs = "Search Time (ms)"
	ColTotalMs  = "Total Time (ms)"
)

// ReadFirstTable parses the first <table> of an HTML report file.
// A missing file or a report without a table is an error.
func ReadFirstTable(path string) (*models.Table, error) {
	s := &storage.Storage{}
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML in %s: %w", path, err)
	}

	sel := doc.Find("table").First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no table found in %s", path)
	}

	table := extractTable(sel)
	if table == nil {
		return nil, fmt.Errorf("empty table in %s", path)
	}
	return table, nil
}

func extractTable(s *goquery.Selection) *models.Table {
	var headers []string
	var rows [][]string

	// Try explicit headers
	s.Find("thead tr th").Each(func(i int, th *goquery.Selection) {
		headers = append(headers, normalizeText(th.Text()))
	})

	// Fallback: first row
	if len(headers) == 0 {
		s.Find("tr").First().Find("th,td").Each(func(i int, cell *goquery.Selection) {
			headers = append(headers, normalizeText(cell.Text()))
		})
	}

	// Body rows
	s.Find("tbody tr").Each(func(i int, tr *goquery.Selection) {
		var row []string
		tr.Find("td").Each(func(j int, td *goquery.Selection) {
			row = append(row, normalizeText(td.Text()))
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})

	if len(headers) == 0 && len(rows) == 0 {
		return nil
	}

	return &models.Table{
		Headers: headers,
		Rows:    rows,
	}
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// coerce parses a cell as a float. Anything non-numeric becomes NaN so a
// malformed report row never aborts a run.
func coerce(cell string, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// LatencyDataset converts a per-service report table into latency records.
// Rows without an endpoint cell are dropped.
func LatencyDataset(t *models.Table) []models.LatencyRecord {
	var records []models.LatencyRecord
	for i := range t.Rows {
		endpoint, ok := t.Cell(i, ColEndpoint)
		if !ok || endpoint == "" {
			continue
		}
		records = append(records, models.LatencyRecord{
			Endpoint:      endpoint,
			AvgResponseMs: coerce(t.Cell(i, ColAvgMs)),
		})
	}
	return records
}

// WorkflowDataset converts the system workflow table into records ordered
// by Book ID ascending. Rows whose Book ID does not parse are dropped.
func WorkflowDataset(t *models.Table) []models.WorkflowRecord {
	var records []models.WorkflowRecord
	for i := range t.Rows {
		idCell, ok := t.Cell(i, ColBookID)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(idCell))
		if err != nil {
			continue
		}
		records = append(records, models.WorkflowRecord{
			BookID:   id,
			IngestMs: coerce(t.Cell(i, ColIngestMs)),
			IndexMs:  coerce(t.Cell(i, ColIndexMs)),
			SearchMs: coerce(t.Cell(i, ColSearchMs)),
			TotalMs:  coerce(t.Cell(i, ColTotalMs)),
		})
	}

	sort.Slice(records, func(a, b int) bool {
		return records[a].BookID < records[b].BookID
	})
	return records
}
