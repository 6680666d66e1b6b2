package app

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/tabwriter"

	"goeda/domain/dataset"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// HeadRows is the number of rows shown by the head preview
const HeadRows = 5

// Reporter writes the textual overview of a table: a head preview, a
// structural summary and per-column missing counts.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Head prints the first n rows of the table, every column shown, with a
// leading row index.
func (r *Reporter) Head(t *dataset.Table, n int) error {
	df, err := headFrame(t, n)
	if err != nil {
		return err
	}

	records := df.Records()
	types := df.Types()
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, rec := range records {
		if i == 0 {
			fmt.Fprint(tw, "\t")
		} else {
			fmt.Fprintf(tw, "%d\t", i-1)
		}
		for j, cell := range rec {
			if i > 0 && types[j] == series.Float {
				cell = floatCell(cell)
			}
			fmt.Fprint(tw, cell, "\t")
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// floatCell reprints a frame float with the shortest exact decimals
func floatCell(cell string) string {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) {
		return "NaN"
	}
	return dataset.FormatFloat(v)
}

func headFrame(t *dataset.Table, n int) (dataframe.DataFrame, error) {
	if n > t.Rows() {
		n = t.Rows()
	}

	cols := make([]series.Series, 0, t.Cols())
	for _, c := range t.Columns() {
		switch c.Kind {
		case dataset.KindInt:
			vals := make([]int, n)
			for i := range vals {
				vals[i] = int(c.Num[i])
			}
			cols = append(cols, series.New(vals, series.Int, c.Name))
		case dataset.KindFloat:
			cols = append(cols, series.New(append([]float64(nil), c.Num[:n]...), series.Float, c.Name))
		default:
			vals := make([]string, n)
			for i := range vals {
				vals[i] = c.Text(i)
			}
			cols = append(cols, series.New(vals, series.String, c.Name))
		}
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return df, fmt.Errorf("build head frame: %w", df.Err)
	}
	return df, nil
}

// Info prints the row range, each column's non-null count and dtype, and a
// tally of columns per dtype.
func (r *Reporter) Info(t *dataset.Table) error {
	nameWidth := len("Column")
	for _, name := range t.Names() {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}
	countWidth := len("Non-Null Count")

	fmt.Fprintf(r.out, "<class '%T'>\n", t)
	if t.Rows() == 0 {
		fmt.Fprintf(r.out, "RangeIndex: 0 entries\n")
	} else {
		fmt.Fprintf(r.out, "RangeIndex: %d entries, 0 to %d\n", t.Rows(), t.Rows()-1)
	}
	fmt.Fprintf(r.out, "Data columns (total %d columns):\n", t.Cols())
	fmt.Fprintf(r.out, " #   %-*s  %-*s  %s\n", nameWidth, "Column", countWidth, "Non-Null Count", "Dtype")
	fmt.Fprintf(r.out, "---  %-*s  %-*s  %s\n", nameWidth, "------", countWidth, "--------------", "-----")

	tally := make(map[dataset.Kind]int)
	for i, c := range t.Columns() {
		tally[c.Kind]++
		count := strconv.Itoa(c.NonNullCount()) + " non-null"
		fmt.Fprintf(r.out, " %-3d %-*s  %-*s  %s\n", i, nameWidth, c.Name, countWidth, count, c.Kind)
	}

	kinds := make([]string, 0, len(tally))
	for k := range tally {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	line := "dtypes: "
	for i, k := range kinds {
		if i > 0 {
			line += ", "
		}
		line += fmt.Sprintf("%s(%d)", k, tally[dataset.Kind(k)])
	}
	fmt.Fprintln(r.out, line)
	_, err := fmt.Fprintf(r.out, "memory usage: %s\n", memoryUsage(t, tally[dataset.KindString] > 0))
	return err
}

// rangeIndexBytes is the fixed footprint of the implicit row index
const rangeIndexBytes = 128

// memoryUsage estimates the shallow footprint of the table: eight bytes per
// cell plus the row index. Object cells only count their reference, which
// the trailing "+" marks.
func memoryUsage(t *dataset.Table, hasObjects bool) string {
	size := float64(t.Rows()*t.Cols()*8 + rangeIndexBytes)
	qualifier := ""
	if hasObjects {
		qualifier = "+"
	}
	for _, unit := range []string{"bytes", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f%s %s", size, qualifier, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f%s TB", size, qualifier)
}

// Missing prints the absent-cell count of every column in table order
func (r *Reporter) Missing(t *dataset.Table) error {
	counts := t.MissingCounts()

	nameWidth, countWidth := 0, 1
	for _, mc := range counts {
		if len(mc.Column) > nameWidth {
			nameWidth = len(mc.Column)
		}
		if w := len(strconv.Itoa(mc.Count)); w > countWidth {
			countWidth = w
		}
	}

	for _, mc := range counts {
		fmt.Fprintf(r.out, "%-*s    %*d\n", nameWidth, mc.Column, countWidth, mc.Count)
	}
	_, err := fmt.Fprintln(r.out, "dtype: int64")
	return err
}
