package app

import (
	"fmt"

	"goeda/adapters/stats/descriptive"
	"goeda/domain/core"
	"goeda/domain/dataset"
	"goeda/internal"
)

// CleanSummary records what a cleaning pass changed
type CleanSummary struct {
	AgeMedian   float64
	AgesFilled  int
	PortMode    string
	PortsFilled int
	Dropped     []string
}

// Cleaner imputes missing values and removes unusable columns in place
type Cleaner struct {
	logger *internal.Logger
}

// NewCleaner creates a cleaner
func NewCleaner(logger *internal.Logger) *Cleaner {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Cleaner{logger: logger}
}

// FillMedian replaces absent cells of a numeric column with the median of
// its present cells. It returns the fill value and how many cells changed.
func (c *Cleaner) FillMedian(t *dataset.Table, name string) (float64, int, error) {
	col, err := t.NumericColumn(name)
	if err != nil {
		return 0, 0, err
	}

	median, err := descriptive.Median(col.PresentFloats())
	if err != nil {
		return 0, 0, fmt.Errorf("fill %s with median: %w", name, err)
	}

	filled := 0
	for i := 0; i < col.Len(); i++ {
		if col.IsAbsent(i) {
			col.SetFloat(i, median)
			filled++
		}
	}
	c.logger.Debug("filled %d %s cells with median %v", filled, name, median)
	return median, filled, nil
}

// FillMode replaces absent cells of an object column with its most frequent
// present value. Ties go to the lexicographically smallest value.
func (c *Cleaner) FillMode(t *dataset.Table, name string) (string, int, error) {
	col, err := t.Column(name)
	if err != nil {
		return "", 0, err
	}
	if col.Kind != dataset.KindString {
		return "", 0, core.NewColumnTypeError(name, string(dataset.KindString), string(col.Kind))
	}

	mode, _, err := descriptive.Mode(col.PresentStrings())
	if err != nil {
		return "", 0, fmt.Errorf("fill %s with mode: %w", name, err)
	}

	filled := 0
	for i := 0; i < col.Len(); i++ {
		if col.IsAbsent(i) {
			col.SetString(i, mode)
			filled++
		}
	}
	c.logger.Debug("filled %d %s cells with mode %q", filled, name, mode)
	return mode, filled, nil
}

// Drop removes a column from the table
func (c *Cleaner) Drop(t *dataset.Table, name string) error {
	if err := t.Drop(name); err != nil {
		return err
	}
	c.logger.Debug("dropped column %s", name)
	return nil
}

// Clean applies the passenger cleaning rules: Age gets its median, Embarked
// gets its mode and Cabin is removed.
func (c *Cleaner) Clean(t *dataset.Table) (CleanSummary, error) {
	var summary CleanSummary
	var err error

	summary.AgeMedian, summary.AgesFilled, err = c.FillMedian(t, dataset.ColAge)
	if err != nil {
		return summary, err
	}

	summary.PortMode, summary.PortsFilled, err = c.FillMode(t, dataset.ColEmbarked)
	if err != nil {
		return summary, err
	}

	if err := c.Drop(t, dataset.ColCabin); err != nil {
		return summary, err
	}
	summary.Dropped = append(summary.Dropped, dataset.ColCabin)

	c.logger.Info("cleaned table: %d ages filled with %v, %d ports filled with %s, dropped %v",
		summary.AgesFilled, summary.AgeMedian, summary.PortsFilled, summary.PortMode, summary.Dropped)
	return summary, nil
}
