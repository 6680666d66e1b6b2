package app

import (
	"goeda/adapters/stats/descriptive"
	"goeda/domain/dataset"
	"goeda/internal"
)

// ColumnProfile summarises one numeric column
type ColumnProfile struct {
	Name    string
	Kind    dataset.Kind
	Summary descriptive.Summary
	Shape   descriptive.Shape
}

// Profiler builds per-column profiles of the numeric columns of a table
type Profiler struct {
	logger *internal.Logger
}

// NewProfiler creates a profiler
func NewProfiler(logger *internal.Logger) *Profiler {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Profiler{logger: logger}
}

// Profile returns one profile per numeric column with at least one present
// value, in table order.
func (p *Profiler) Profile(t *dataset.Table) []ColumnProfile {
	var out []ColumnProfile
	for _, c := range t.NumericColumns() {
		values := c.PresentFloats()
		summary, err := descriptive.Summarize(values)
		if err != nil {
			p.logger.Warn("skipping profile of %s: %v", c.Name, err)
			continue
		}
		shape, err := descriptive.DescribeShape(values)
		if err != nil {
			p.logger.Warn("skipping shape of %s: %v", c.Name, err)
			continue
		}
		out = append(out, ColumnProfile{Name: c.Name, Kind: c.Kind, Summary: summary, Shape: shape})
	}
	return out
}

// LogProfiles writes one debug line per profiled column
func (p *Profiler) LogProfiles(profiles []ColumnProfile) {
	for _, cp := range profiles {
		p.logger.Debug("profile %s (%s): n=%d mean=%.3f sd=%.3f min=%v q1=%v median=%v q3=%v max=%v skew=%.3f kurt=%.3f outliers=%d",
			cp.Name, cp.Kind, cp.Summary.Count, cp.Summary.Mean, cp.Summary.StdDev,
			cp.Summary.Min, cp.Summary.Q1, cp.Summary.Median, cp.Summary.Q3, cp.Summary.Max,
			cp.Shape.Skewness, cp.Shape.ExcessKurtosis, cp.Shape.Outliers)
	}
}
