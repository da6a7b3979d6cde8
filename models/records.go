package models

// LatencyRecord is one row of a per-service container performance report.
// AvgResponseMs is NaN when the report cell was not numeric.
type LatencyRecord struct {
	Endpoint      string
	AvgResponseMs float64
}

// WorkflowRecord is one row of the system workflow report. Timing fields
// are NaN when the report cell was not numeric.
type WorkflowRecord struct {
	BookID   int
	IngestMs float64
	IndexMs  float64
	SearchMs float64
	TotalMs  float64
}

// ComponentsMs is the summed ingest+index+search time. NaN components
// propagate into the sum.
func (r WorkflowRecord) ComponentsMs() float64 {
	return r.IngestMs + r.IndexMs + r.SearchMs
}
