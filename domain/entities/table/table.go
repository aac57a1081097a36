package table

import (
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
)

// Table in-memory trip records of one city. Rows keep the order of the source file.
// A Table is never modified once built: filters derive a new one.
type Table struct {
	metadata entities.Metadata
	header   []string
	columns  ColumnSet
	rows     []trip.TripData
}

// New creates a table. The schema is taken from the header.
func New(metadata entities.Metadata, header []string, rows []trip.TripData) *Table {
	return &Table{
		metadata: metadata,
		header:   header,
		columns:  NewColumnSet(header...),
		rows:     rows,
	}
}

// Derive returns a table with the same schema and header holding only the given rows
func (t *Table) Derive(metadata entities.Metadata, rows []trip.TripData) *Table {
	return &Table{
		metadata: metadata,
		header:   t.header,
		columns:  t.columns,
		rows:     rows,
	}
}

func (t *Table) GetMetadata() entities.Metadata {
	return t.metadata
}

// Header returns a copy of the column names as they appear in the file
func (t *Table) Header() []string {
	header := make([]string, len(t.header))
	copy(header, t.header)
	return header
}

// HasColumn returns true if the column belongs to the table schema
func (t *Table) HasColumn(column string) bool {
	return t.columns.Contains(column)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Row(idx int) trip.TripData {
	return t.rows[idx]
}

// Rows returns a copy of the rows slice so callers cannot reorder the table
func (t *Table) Rows() []trip.TripData {
	rows := make([]trip.TripData, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Slice returns the rows in [from, to) clipped to the table bounds
func (t *Table) Slice(from int, to int) []trip.TripData {
	if from < 0 {
		from = 0
	}
	if to > len(t.rows) {
		to = len(t.rows)
	}
	if from >= to {
		return nil
	}
	return t.rows[from:to:to]
}

// ForEach calls fn for every row in order
func (t *Table) ForEach(fn func(idx int, row trip.TripData)) {
	for idx := range t.rows {
		fn(idx, t.rows[idx])
	}
}
