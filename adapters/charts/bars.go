package charts

import (
	"fmt"

	"goeda/adapters/stats/descriptive"
	"goeda/domain/core"
	"goeda/domain/dataset"
	"goeda/domain/report"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ciPoints pairs bar heights with their confidence half-widths
type ciPoints struct {
	plotter.XYs
	plotter.YErrors
}

// SurvivalCounts draws the number of passengers per Survived value
func (g *Generator) SurvivalCounts(t *dataset.Table) error {
	col, err := t.Column(dataset.ColSurvived)
	if err != nil {
		return err
	}

	counts := descriptive.Counts(col)
	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		labels[i] = c.Label
	}

	p := newPlot("Survival Counts", dataset.ColSurvived, "Count")
	bars, err := plotter.NewBarChart(values, barWidth(smallFigure, len(values)))
	if err != nil {
		return fmt.Errorf("survival counts: %w", err)
	}
	bars.Color = categoryColor(0)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0

	return g.savePlot(p, smallFigure, report.ChartSurvivalCounts)
}

// GenderSurvival draws the survival rate per Sex with 95% intervals
func (g *Generator) GenderSurvival(t *dataset.Table) error {
	return g.rateBars(t, dataset.ColSex, "Survival Rate by Gender", report.ChartGenderSurvival)
}

// ClassSurvival draws the survival rate per Pclass with 95% intervals
func (g *Generator) ClassSurvival(t *dataset.Table) error {
	return g.rateBars(t, dataset.ColPclass, "Survival Rate by Passenger Class", report.ChartClassSurvival)
}

// rateBars draws the mean of Survived per level of by, with error bars
func (g *Generator) rateBars(t *dataset.Table, by, title string, chart report.ChartName) error {
	keys, err := t.Column(by)
	if err != nil {
		return err
	}
	survived, err := t.NumericColumn(dataset.ColSurvived)
	if err != nil {
		return err
	}

	groups := descriptive.GroupBy(keys, survived)
	if len(groups) == 0 {
		return fmt.Errorf("%s: %w", chart, core.ErrInsufficientData)
	}

	values := make(plotter.Values, len(groups))
	labels := make([]string, len(groups))
	points := ciPoints{
		XYs:     make(plotter.XYs, len(groups)),
		YErrors: make(plotter.YErrors, len(groups)),
	}
	for i, grp := range groups {
		labels[i] = grp.Label
		if len(grp.Values) == 0 {
			continue
		}
		mean, lo, hi := descriptive.MeanCI(grp.Values)
		values[i] = mean
		points.XYs[i] = plotter.XY{X: float64(i), Y: mean}
		points.YErrors[i].Low = mean - lo
		points.YErrors[i].High = hi - mean
	}

	p := newPlot(title, by, dataset.ColSurvived)
	bars, err := plotter.NewBarChart(values, barWidth(smallFigure, len(values)))
	if err != nil {
		return fmt.Errorf("%s: %w", chart, err)
	}
	bars.Color = categoryColor(0)
	bars.LineStyle.Width = 0

	errBars, err := plotter.NewYErrorBars(points)
	if err != nil {
		return fmt.Errorf("%s: %w", chart, err)
	}
	errBars.LineStyle.Width = vg.Points(1.5)
	errBars.CapWidth = 0

	p.Add(bars, errBars)
	p.NominalX(labels...)
	p.Y.Min = 0

	return g.savePlot(p, smallFigure, chart)
}
