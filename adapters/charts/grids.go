package charts

import (
	"errors"
	"fmt"

	"goeda/adapters/stats/descriptive"
	"goeda/domain/core"
	"goeda/domain/dataset"
	"goeda/domain/report"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	facetBins   = 20
	pairKDEGrid = 100
)

// pairVariables are the pair plot axes, in grid order
var pairVariables = []string{dataset.ColAge, dataset.ColFare, dataset.ColPclass, dataset.ColSurvived}

// AgeFacetGrid draws one Age histogram per (Sex, Survived) combination,
// with Sex on the rows and Survived on the columns.
func (g *Generator) AgeFacetGrid(t *dataset.Table) error {
	sex, err := t.Column(dataset.ColSex)
	if err != nil {
		return err
	}
	survived, err := t.Column(dataset.ColSurvived)
	if err != nil {
		return err
	}
	age, err := t.NumericColumn(dataset.ColAge)
	if err != nil {
		return err
	}

	rowLevels := descriptive.Levels(sex)
	colLevels := descriptive.Levels(survived)
	if len(rowLevels) == 0 || len(colLevels) == 0 {
		return fmt.Errorf("age facet grid: %w", core.ErrInsufficientData)
	}
	rowPos := indexLevels(rowLevels)
	colPos := indexLevels(colLevels)

	cells := make([][][]float64, len(rowLevels))
	for r := range cells {
		cells[r] = make([][]float64, len(colLevels))
	}
	for i := 0; i < t.Rows(); i++ {
		if sex.IsAbsent(i) || survived.IsAbsent(i) || age.IsAbsent(i) {
			continue
		}
		r, c := rowPos[sex.Label(i)], colPos[survived.Label(i)]
		cells[r][c] = append(cells[r][c], age.Num[i])
	}

	ages := age.PresentFloats()
	if len(ages) == 0 {
		return fmt.Errorf("age facet grid: %w", core.ErrInsufficientData)
	}
	plots := make([][]*plot.Plot, len(rowLevels))
	for r, sexLevel := range rowLevels {
		plots[r] = make([]*plot.Plot, len(colLevels))
		for c, survivedLevel := range colLevels {
			p := newPlot(fmt.Sprintf("%s = %s | %s = %s", dataset.ColSex, sexLevel, dataset.ColSurvived, survivedLevel), "", "")
			if r == len(rowLevels)-1 {
				p.X.Label.Text = dataset.ColAge
			}
			if len(cells[r][c]) > 0 {
				hist, err := plotter.NewHist(plotter.Values(cells[r][c]), facetBins)
				if err != nil {
					return fmt.Errorf("age facet %s/%s: %w", sexLevel, survivedLevel, err)
				}
				hist.FillColor = categoryColor(0)
				hist.LineStyle.Width = vg.Points(0.5)
				p.Add(hist)
			}
			p.X.Min, p.X.Max = floats.Min(ages), floats.Max(ages)
			p.Y.Min = 0
			ensureRange(p)
			plots[r][c] = p
		}
	}

	sz := size{w: facetPanel * vg.Length(len(colLevels)), h: facetPanel * vg.Length(len(rowLevels))}
	return g.saveGrid(plots, sz, report.ChartAgeFacetGrid)
}

// Pairplot draws every pair of Age, Fare, Pclass and Survived as a scatter
// coloured by Survived. The diagonal shows per-class density curves.
func (g *Generator) Pairplot(t *dataset.Table) error {
	cols := make([]*dataset.Column, len(pairVariables))
	for i, name := range pairVariables {
		c, err := t.NumericColumn(name)
		if err != nil {
			return err
		}
		cols[i] = c
	}
	hue := cols[len(cols)-1]

	hueLevels := descriptive.Levels(hue)
	huePos := indexLevels(hueLevels)

	// complete rows only, split by hue level
	data := make([][][]float64, len(hueLevels))
	for h := range data {
		data[h] = make([][]float64, len(cols))
	}
	for i := 0; i < t.Rows(); i++ {
		complete := true
		for _, c := range cols {
			if c.IsAbsent(i) {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		h := huePos[hue.Label(i)]
		for v, c := range cols {
			data[h][v] = append(data[h][v], c.Num[i])
		}
	}

	n := len(cols)
	plots := make([][]*plot.Plot, n)
	for r := 0; r < n; r++ {
		plots[r] = make([]*plot.Plot, n)
		for c := 0; c < n; c++ {
			p := plot.New()
			if c == 0 {
				p.Y.Label.Text = pairVariables[r]
			}
			if r == n-1 {
				p.X.Label.Text = pairVariables[c]
			}

			legend := r == 0 && c == n-1
			if legend {
				p.Legend.Top = true
				p.Legend.Add(dataset.ColSurvived)
			}
			for h, level := range hueLevels {
				var thumb plot.Thumbnailer
				var err error
				if r == c {
					thumb, err = diagonalPlotter(p, data[h][c], h)
				} else {
					thumb, err = scatterPlotter(p, data[h][c], data[h][r], h)
				}
				if err != nil {
					return fmt.Errorf("pairplot %s/%s: %w", pairVariables[r], pairVariables[c], err)
				}
				if legend && thumb != nil {
					p.Legend.Add(level, thumb)
				}
			}
			ensureRange(p)
			plots[r][c] = p
		}
	}

	return g.saveGrid(plots, pairFigure, report.ChartPairplot)
}

func scatterPlotter(p *plot.Plot, xs, ys []float64, hue int) (plot.Thumbnailer, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = fade(categoryColor(hue), 0xb0)
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s)
	return s, nil
}

// diagonalPlotter adds the density curve of one hue subset, falling back to
// a count bar when the subset holds a single distinct value.
func diagonalPlotter(p *plot.Plot, values []float64, hue int) (plot.Thumbnailer, error) {
	if len(values) == 0 {
		return nil, nil
	}

	kde, err := descriptive.NewKDE(values)
	if err == nil {
		lo, hi := floats.Min(values), floats.Max(values)
		pad := 3 * kde.Bandwidth()
		xs, ys := kde.Grid(lo-pad, hi+pad, pairKDEGrid)
		pts := make(plotter.XYs, len(xs))
		for i := range xs {
			pts[i].X = xs[i]
			pts[i].Y = ys[i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = categoryColor(hue)
		line.LineStyle.Width = vg.Points(1.5)
		line.FillColor = fade(categoryColor(hue), 0x40)
		p.Add(line)
		return line, nil
	}
	if !errors.Is(err, core.ErrZeroVariance) && !errors.Is(err, core.ErrInsufficientData) {
		return nil, err
	}

	// one distinct value: a single bar centred on it
	bar, err := plotter.NewBarChart(plotter.Values{float64(len(values))}, vg.Points(10))
	if err != nil {
		return nil, err
	}
	bar.XMin = values[0]
	bar.Color = fade(categoryColor(hue), 0x80)
	bar.LineStyle.Width = 0
	p.Add(bar)
	return bar, nil
}

// ensureRange gives axes of a panel without data a unit range
func ensureRange(p *plot.Plot) {
	if p.X.Min > p.X.Max {
		p.X.Min, p.X.Max = 0, 1
	}
	if p.Y.Min > p.Y.Max {
		p.Y.Min, p.Y.Max = 0, 1
	}
}

func indexLevels(levels []string) map[string]int {
	pos := make(map[string]int, len(levels))
	for i, l := range levels {
		pos[l] = i
	}
	return pos
}
