// Package models defines data structures for report tables and configuration.
package models

// Table is the first <table> of an HTML report as raw text cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of a header, or -1 if the table
// does not carry that column.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the text of row r under the named column. The second
// return is false when the column is absent or the row is short.
func (t *Table) Cell(r int, name string) (string, bool) {
	c := t.ColumnIndex(name)
	if c < 0 || r < 0 || r >= len(t.Rows) || c >= len(t.Rows[r]) {
		return "", false
	}
	return t.Rows[r][c], true
}
