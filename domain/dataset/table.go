package dataset

import (
	"fmt"

	"goeda/domain/core"
)

// Table is the in-memory record table: an ordered set of equal-length
// columns addressed by name.
type Table struct {
	columns []*Column
	rows    int
}

// NewTable assembles columns into a table. All columns must have the same
// length and distinct names.
func NewTable(columns ...*Column) (*Table, error) {
	t := &Table{}
	seen := make(map[string]bool, len(columns))
	for i, c := range columns {
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, c.Len(), t.rows)
		}
	}
	t.columns = columns
	return t, nil
}

// Rows returns the row count
func (t *Table) Rows() int {
	return t.rows
}

// Cols returns the column count
func (t *Table) Cols() int {
	return len(t.columns)
}

// Names returns the column names in table order
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in table order. The slice is shared.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column looks up a column by name
func (t *Table) Column(name string) (*Column, error) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, core.NewColumnNotFoundError(name)
}

// NumericColumn looks up a column and requires it to be numeric
func (t *Table) NumericColumn(name string) (*Column, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !c.Kind.IsNumeric() {
		return nil, core.NewColumnTypeError(name, "numeric", string(c.Kind))
	}
	return c, nil
}

// Has reports whether the table carries a column with this name
func (t *Table) Has(name string) bool {
	_, err := t.Column(name)
	return err == nil
}

// Drop removes a column; rows are untouched.
func (t *Table) Drop(name string) error {
	for i, c := range t.columns {
		if c.Name == name {
			t.columns = append(t.columns[:i:i], t.columns[i+1:]...)
			return nil
		}
	}
	return core.NewColumnNotFoundError(name)
}

// NumericColumns returns every numeric column in table order
func (t *Table) NumericColumns() []*Column {
	var out []*Column
	for _, c := range t.columns {
		if c.Kind.IsNumeric() {
			out = append(out, c)
		}
	}
	return out
}

// MissingCount pairs a column name with its absent-cell count
type MissingCount struct {
	Column string
	Count  int
}

// MissingCounts returns absent counts per column, in table order
func (t *Table) MissingCounts() []MissingCount {
	out := make([]MissingCount, len(t.columns))
	for i, c := range t.columns {
		out[i] = MissingCount{Column: c.Name, Count: c.MissingCount()}
	}
	return out
}

// PresenceMatrix returns absent[row][col] for every cell
func (t *Table) PresenceMatrix() [][]bool {
	m := make([][]bool, t.rows)
	for r := range m {
		m[r] = make([]bool, len(t.columns))
		for c, col := range t.columns {
			m[r][c] = col.Absent[r]
		}
	}
	return m
}
