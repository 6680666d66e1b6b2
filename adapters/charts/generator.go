package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"goeda/domain/dataset"
	"goeda/domain/report"
	"goeda/internal"
	"goeda/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Config holds chart output settings
type Config struct {
	OutputDir string
	DPI       int
}

// Generator renders the passenger charts as PNG files
type Generator struct {
	outputDir string
	dpi       int
	logger    *internal.Logger
}

// NewGenerator creates a chart generator
func NewGenerator(cfg Config, logger *internal.Logger) *Generator {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = 100
	}
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	return &Generator{outputDir: dir, dpi: dpi, logger: logger}
}

// Render draws one named chart from the table and returns the written path
func (g *Generator) Render(ctx context.Context, t *dataset.Table, chart report.ChartName) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var err error
	switch chart {
	case report.ChartSurvivalCounts:
		err = g.SurvivalCounts(t)
	case report.ChartGenderSurvival:
		err = g.GenderSurvival(t)
	case report.ChartClassSurvival:
		err = g.ClassSurvival(t)
	case report.ChartAgeDistribution:
		err = g.AgeDistribution(t)
	case report.ChartAgeSurvivalBoxplot:
		err = g.AgeSurvivalBoxplot(t)
	case report.ChartCorrelationHeatmap:
		err = g.CorrelationHeatmap(t)
	case report.ChartAgeFacetGrid:
		err = g.AgeFacetGrid(t)
	case report.ChartPairplot:
		err = g.Pairplot(t)
	case report.ChartFareViolinplot:
		err = g.FareViolinplot(t)
	case report.ChartMissingDataHeatmap:
		err = g.MissingDataHeatmap(t)
	default:
		return "", errors.NotFound(fmt.Sprintf("chart %q", chart))
	}
	if err != nil {
		return "", err
	}

	path := g.path(chart)
	g.logger.Info("wrote chart %s", path)
	return path, nil
}

func (g *Generator) path(chart report.ChartName) string {
	return filepath.Join(g.outputDir, string(chart))
}

// facetPanel is the side of one facet grid panel
const facetPanel = 4 * vg.Inch

// figure sizes in inches
type size struct{ w, h vg.Length }

var (
	smallFigure  = size{6 * vg.Inch, 4 * vg.Inch}
	wideFigure   = size{8 * vg.Inch, 5 * vg.Inch}
	squareFigure = size{8 * vg.Inch, 6 * vg.Inch}
	pairFigure   = size{10 * vg.Inch, 10 * vg.Inch}
)

// savePlot writes a single plot as a PNG at the configured resolution
func (g *Generator) savePlot(p *plot.Plot, sz size, chart report.ChartName) error {
	return g.writePNG(sz, chart, func(dc draw.Canvas) {
		p.Draw(dc)
	})
}

// saveGrid writes a rows x cols grid of plots into one PNG. Nil cells are
// left blank.
func (g *Generator) saveGrid(plots [][]*plot.Plot, sz size, chart report.ChartName) error {
	rows := len(plots)
	cols := 0
	if rows > 0 {
		cols = len(plots[0])
	}
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	return g.writePNG(sz, chart, func(dc draw.Canvas) {
		canvases := plot.Align(plots, tiles, dc)
		for j := range plots {
			for i := range plots[j] {
				if plots[j][i] != nil {
					plots[j][i].Draw(canvases[j][i])
				}
			}
		}
	})
}

func (g *Generator) writePNG(sz size, chart report.ChartName, render func(draw.Canvas)) error {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return errors.IOError("create chart directory", err)
	}

	img := vgimg.NewWith(vgimg.UseWH(sz.w, sz.h), vgimg.UseDPI(g.dpi))
	render(draw.New(img))

	path := g.path(chart)
	f, err := os.Create(path)
	if err != nil {
		return errors.IOError(fmt.Sprintf("create %s", path), err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return errors.IOError(fmt.Sprintf("write %s", path), err)
	}
	if err := f.Close(); err != nil {
		return errors.IOError(fmt.Sprintf("close %s", path), err)
	}
	return nil
}
