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

// AgeDistribution draws a 30-bin histogram of Age
func (g *Generator) AgeDistribution(t *dataset.Table) error {
	age, err := t.NumericColumn(dataset.ColAge)
	if err != nil {
		return err
	}
	values := age.PresentFloats()
	if len(values) == 0 {
		return fmt.Errorf("age distribution: %w", core.ErrInsufficientData)
	}

	p := newPlot("Age Distribution", "Age", "Count")
	hist, err := plotter.NewHist(plotter.Values(values), 30)
	if err != nil {
		return fmt.Errorf("age distribution: %w", err)
	}
	hist.FillColor = categoryColor(0)
	hist.LineStyle.Width = vg.Points(0.5)
	p.Add(plotter.NewGrid(), hist)

	return g.savePlot(p, wideFigure, report.ChartAgeDistribution)
}

// AgeSurvivalBoxplot draws one box of Age per Survived value
func (g *Generator) AgeSurvivalBoxplot(t *dataset.Table) error {
	survived, err := t.Column(dataset.ColSurvived)
	if err != nil {
		return err
	}
	age, err := t.NumericColumn(dataset.ColAge)
	if err != nil {
		return err
	}

	p := newPlot("Age Distribution by Survival", dataset.ColSurvived, dataset.ColAge)
	groups := descriptive.GroupBy(survived, age)
	labels := make([]string, len(groups))
	width := barWidth(smallFigure, len(groups))
	for i, grp := range groups {
		labels[i] = grp.Label
		if len(grp.Values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(grp.Values))
		if err != nil {
			return fmt.Errorf("age boxplot %s: %w", grp.Label, err)
		}
		box.FillColor = categoryColor(i)
		p.Add(box)
	}
	p.NominalX(labels...)

	return g.savePlot(p, smallFigure, report.ChartAgeSurvivalBoxplot)
}

// FareViolinplot draws the Fare density per Survived value
func (g *Generator) FareViolinplot(t *dataset.Table) error {
	survived, err := t.Column(dataset.ColSurvived)
	if err != nil {
		return err
	}
	fare, err := t.NumericColumn(dataset.ColFare)
	if err != nil {
		return err
	}

	p := newPlot("Fare Distribution by Survival", dataset.ColSurvived, dataset.ColFare)
	groups := descriptive.GroupBy(survived, fare)
	labels := make([]string, len(groups))
	for i, grp := range groups {
		labels[i] = grp.Label
		if len(grp.Values) == 0 {
			continue
		}
		v, err := newViolin(float64(i), grp.Values, categoryColor(i))
		if err != nil {
			return fmt.Errorf("fare violin %s: %w", grp.Label, err)
		}
		p.Add(v)
	}
	p.NominalX(labels...)

	return g.savePlot(p, smallFigure, report.ChartFareViolinplot)
}
