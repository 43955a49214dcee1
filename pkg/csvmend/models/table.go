// Package models defines data structures for table repair.
package models

// Row is an ordered list of cell values. Rows in a table may differ in length.
type Row []string

// Cell returns the value at index i, or "" when the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Table represents a delimited table held in memory.
type Table struct {
	// Rows contains all rows in file order, header first.
	Rows []Row `json:"rows"`
	// Encoding is the name of the encoding the table was decoded with.
	Encoding string `json:"encoding,omitempty"`
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Header returns the first row, or nil for an empty table.
func (t *Table) Header() Row {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Records returns the rows as plain string slices for CSV writers.
func (t *Table) Records() [][]string {
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		records[i] = row
	}
	return records
}

// NewTable builds a Table from raw records.
func NewTable(records [][]string) *Table {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = rec
	}
	return &Table{Rows: rows}
}
