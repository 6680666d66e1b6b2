package dataset

import (
	"math"
	"strconv"
)

// Kind is the inferred storage type of a column. The values double as the
// dtype names shown in the info summary.
type Kind string

const (
	KindInt    Kind = "int64"
	KindFloat  Kind = "float64"
	KindString Kind = "object"
)

// IsNumeric reports whether values of this kind live in Column.Num.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// Column is one named, typed column of a Table. Numeric kinds store their
// values in Num with NaN at absent positions; KindString stores them in Str
// with "" at absent positions. Absent is authoritative in both cases.
type Column struct {
	Name   string
	Kind   Kind
	Num    []float64
	Str    []string
	Absent []bool
}

// NewNumericColumn builds a numeric column; NaN entries are marked absent.
func NewNumericColumn(name string, kind Kind, values []float64) *Column {
	absent := make([]bool, len(values))
	for i, v := range values {
		absent[i] = math.IsNaN(v)
	}
	return &Column{Name: name, Kind: kind, Num: values, Absent: absent}
}

// NewStringColumn builds an object column; absent[i] marks missing cells.
func NewStringColumn(name string, values []string, absent []bool) *Column {
	if absent == nil {
		absent = make([]bool, len(values))
	}
	return &Column{Name: name, Kind: KindString, Str: values, Absent: absent}
}

// Len returns the number of rows in the column
func (c *Column) Len() int {
	return len(c.Absent)
}

// IsAbsent reports whether row i holds no value
func (c *Column) IsAbsent(i int) bool {
	return c.Absent[i]
}

// MissingCount returns the number of absent cells
func (c *Column) MissingCount() int {
	n := 0
	for _, a := range c.Absent {
		if a {
			n++
		}
	}
	return n
}

// NonNullCount returns the number of present cells
func (c *Column) NonNullCount() int {
	return c.Len() - c.MissingCount()
}

// PresentFloats returns the numeric values of present cells, in row order.
func (c *Column) PresentFloats() []float64 {
	out := make([]float64, 0, c.Len())
	for i, v := range c.Num {
		if !c.Absent[i] {
			out = append(out, v)
		}
	}
	return out
}

// PresentStrings returns the values of present cells, in row order.
func (c *Column) PresentStrings() []string {
	out := make([]string, 0, c.Len())
	for i, v := range c.Str {
		if !c.Absent[i] {
			out = append(out, v)
		}
	}
	return out
}

// SetFloat stores a present numeric value at row i.
func (c *Column) SetFloat(i int, v float64) {
	c.Num[i] = v
	c.Absent[i] = math.IsNaN(v)
}

// SetString stores a present string value at row i.
func (c *Column) SetString(i int, v string) {
	c.Str[i] = v
	c.Absent[i] = false
}

// Text renders row i the way it appears in printed output.
func (c *Column) Text(i int) string {
	if c.Absent[i] {
		return "NaN"
	}
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(int64(c.Num[i]), 10)
	case KindFloat:
		return FormatFloat(c.Num[i])
	default:
		return c.Str[i]
	}
}

// Label renders row i as a category label; used for grouping.
func (c *Column) Label(i int) string {
	return c.Text(i)
}

// FormatFloat prints a float with at least one decimal, like 22.0 or 7.25.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}
