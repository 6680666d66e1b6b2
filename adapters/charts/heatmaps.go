package charts

import (
	"fmt"
	"math"

	"goeda/adapters/stats/descriptive"
	"goeda/domain/core"
	"goeda/domain/dataset"
	"goeda/domain/report"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// matrixGrid adapts a square matrix to plotter.GridXYZ with row 0 drawn at
// the top.
type matrixGrid struct {
	values [][]float64
}

func (m matrixGrid) Dims() (c, r int) { return len(m.values[0]), len(m.values) }
func (m matrixGrid) Z(c, r int) float64 {
	return m.values[len(m.values)-1-r][c]
}
func (m matrixGrid) X(c int) float64 { return float64(c) }
func (m matrixGrid) Y(r int) float64 { return float64(r) }

// presenceGrid maps absent cells to 1 and present cells to 0, first table
// row at the top.
type presenceGrid struct {
	absent [][]bool
}

func (g presenceGrid) Dims() (c, r int) { return len(g.absent[0]), len(g.absent) }
func (g presenceGrid) Z(c, r int) float64 {
	if g.absent[len(g.absent)-1-r][c] {
		return 1
	}
	return 0
}
func (g presenceGrid) X(c int) float64 { return float64(c) }
func (g presenceGrid) Y(r int) float64 { return float64(r) }

// CorrelationHeatmap draws pairwise Pearson correlations of every numeric
// column, annotated with two decimals.
func (g *Generator) CorrelationHeatmap(t *dataset.Table) error {
	cols := t.NumericColumns()
	if len(cols) == 0 {
		return fmt.Errorf("correlation heatmap: %w", core.ErrInsufficientData)
	}
	corr := descriptive.Correlate(cols)
	n := len(corr.Names)

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)

	heat := plotter.NewHeatMap(matrixGrid{values: corr.Values}, cmap.Palette(255))
	heat.Min, heat.Max = -1, 1

	var points plotter.XYs
	var labels []string
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := corr.Values[r][c]
			if math.IsNaN(v) {
				continue
			}
			points = append(points, plotter.XY{X: float64(c), Y: float64(n - 1 - r)})
			labels = append(labels, fmt.Sprintf("%.2f", v))
		}
	}
	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return fmt.Errorf("correlation heatmap: %w", err)
	}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].XAlign = draw.XCenter
		annotations.TextStyle[i].YAlign = draw.YCenter
	}

	p := newPlot("Correlation Heatmap", "", "")
	p.Add(heat, annotations)
	p.NominalX(corr.Names...)
	reversed := make([]string, n)
	for i, name := range corr.Names {
		reversed[n-1-i] = name
	}
	p.NominalY(reversed...)

	return g.savePlot(p, squareFigure, report.ChartCorrelationHeatmap)
}

// MissingDataHeatmap draws one cell per table cell, highlighting absent
// values. Row labels are not drawn.
func (g *Generator) MissingDataHeatmap(t *dataset.Table) error {
	if t.Rows() == 0 || t.Cols() == 0 {
		return fmt.Errorf("missing data heatmap: %w", core.ErrInsufficientData)
	}

	heat := plotter.NewHeatMap(presenceGrid{absent: t.PresenceMatrix()}, fixedPalette{presentColor, absentColor})
	heat.Min, heat.Max = 0, 1

	p := newPlot("Missing Data Heatmap", "", "")
	p.Add(heat)
	p.NominalX(t.Names()...)
	p.Y.Tick.Marker = plot.ConstantTicks(nil)

	return g.savePlot(p, squareFigure, report.ChartMissingDataHeatmap)
}
