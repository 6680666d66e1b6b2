package charts

import (
	"errors"
	"image/color"
	"math"

	"goeda/adapters/stats/descriptive"
	"goeda/domain/core"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	violinHalfWidth = 0.4
	violinGridSize  = 100
)

// violin is a plot.Plotter drawing a mirrored kernel density of one group
// with an inner quartile box. The density is clipped at the data range.
type violin struct {
	loc     float64
	values  []float64
	density []float64
	summary descriptive.Summary

	Color     color.Color
	LineStyle draw.LineStyle
}

var _ plot.Plotter = (*violin)(nil)
var _ plot.DataRanger = (*violin)(nil)

func newViolin(loc float64, values []float64, c color.Color) (*violin, error) {
	summary, err := descriptive.Summarize(values)
	if err != nil {
		return nil, err
	}
	v := &violin{loc: loc, summary: summary, Color: c, LineStyle: plotter.DefaultLineStyle}

	kde, err := descriptive.NewKDE(values)
	switch {
	case err == nil:
		v.values, v.density = kde.Grid(summary.Min, summary.Max, violinGridSize)
	case errors.Is(err, core.ErrZeroVariance), errors.Is(err, core.ErrInsufficientData):
		// single-valued groups draw only the inner box
	default:
		return nil, err
	}
	return v, nil
}

// Plot implements plot.Plotter
func (v *violin) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	if len(v.density) > 0 {
		peak := floats.Max(v.density)
		if peak > 0 {
			outline := make([]vg.Point, 0, 2*len(v.values)+1)
			for i, y := range v.values {
				dx := violinHalfWidth * v.density[i] / peak
				outline = append(outline, vg.Point{X: trX(v.loc + dx), Y: trY(y)})
			}
			for i := len(v.values) - 1; i >= 0; i-- {
				dx := violinHalfWidth * v.density[i] / peak
				outline = append(outline, vg.Point{X: trX(v.loc - dx), Y: trY(v.values[i])})
			}
			c.FillPolygon(v.Color, c.ClipPolygonXY(outline))
			outline = append(outline, outline[0])
			c.StrokeLines(v.LineStyle, c.ClipLinesXY(outline)...)
		}
	}

	s := v.summary
	iqr := s.Q3 - s.Q1
	lo := math.Max(s.Min, s.Q1-1.5*iqr)
	hi := math.Min(s.Max, s.Q3+1.5*iqr)
	x := trX(v.loc)

	whisker := v.LineStyle
	whisker.Color = color.Gray{Y: 0x40}
	c.StrokeLine2(whisker, x, trY(lo), x, trY(hi))

	box := whisker
	box.Width = vg.Points(5)
	c.StrokeLine2(box, x, trY(s.Q1), x, trY(s.Q3))

	c.DrawGlyph(draw.GlyphStyle{
		Color:  color.White,
		Radius: vg.Points(1.5),
		Shape:  draw.CircleGlyph{},
	}, vg.Point{X: x, Y: trY(s.Median)})
}

// DataRange implements plot.DataRanger
func (v *violin) DataRange() (xmin, xmax, ymin, ymax float64) {
	return v.loc - violinHalfWidth, v.loc + violinHalfWidth, v.summary.Min, v.summary.Max
}
