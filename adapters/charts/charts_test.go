package charts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goeda/adapters/tabular"
	"goeda/domain/core"
	"goeda/domain/dataset"
	"goeda/domain/report"
	"goeda/internal"
	"goeda/internal/errors"
	"goeda/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func quietLogger() *internal.Logger {
	return internal.NewLoggerTo(&strings.Builder{}, internal.LogLevelError)
}

func loadGenerated(t *testing.T) *dataset.Table {
	t.Helper()
	path := testkit.WriteGeneratedPassengers(t, testkit.DefaultPassengerConfig())
	table, err := tabular.NewReader(path, quietLogger()).Read(context.Background())
	require.NoError(t, err)
	return table
}

func TestRender_AllChartsWritePNGs(t *testing.T) {
	table := loadGenerated(t)
	dir := t.TempDir()
	gen := NewGenerator(Config{OutputDir: dir, DPI: 40}, quietLogger())

	for _, chart := range report.AllCharts() {
		t.Run(string(chart), func(t *testing.T) {
			path, err := gen.Render(context.Background(), table, chart)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, string(chart)), path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Greater(t, len(data), len(pngMagic))
			assert.True(t, bytes.HasPrefix(data, pngMagic), "not a PNG file")
		})
	}
}

func TestRender_SampleRowsWithSmallGroups(t *testing.T) {
	path := testkit.WriteSamplePassengers(t)
	table, err := tabular.NewReader(path, quietLogger()).Read(context.Background())
	require.NoError(t, err)

	gen := NewGenerator(Config{OutputDir: t.TempDir(), DPI: 40}, quietLogger())
	for _, chart := range report.AllCharts() {
		_, err := gen.Render(context.Background(), table, chart)
		assert.NoError(t, err, chart)
	}
}

func TestRender_MissingColumn(t *testing.T) {
	table := loadGenerated(t)
	require.NoError(t, table.Drop(dataset.ColFare))

	gen := NewGenerator(Config{OutputDir: t.TempDir(), DPI: 40}, quietLogger())
	_, err := gen.Render(context.Background(), table, report.ChartFareViolinplot)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrColumnNotFound)

	_, err = gen.Render(context.Background(), table, report.ChartPairplot)
	assert.ErrorIs(t, err, core.ErrColumnNotFound)
}

func TestRender_UnknownChart(t *testing.T) {
	gen := NewGenerator(Config{OutputDir: t.TempDir()}, quietLogger())
	_, err := gen.Render(context.Background(), loadGenerated(t), report.ChartName("radar.png"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	gen := NewGenerator(Config{OutputDir: dir}, quietLogger())
	_, err := gen.Render(ctx, loadGenerated(t), report.ChartSurvivalCounts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, string(report.ChartSurvivalCounts)))
}

func TestMatrixGrid_FirstRowDrawnAtTop(t *testing.T) {
	grid := matrixGrid{values: [][]float64{{1, 2}, {3, 4}}}
	c, r := grid.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 1.0, grid.Z(0, 1))
	assert.Equal(t, 4.0, grid.Z(1, 0))
}

func TestPresenceGrid_AbsentIsOne(t *testing.T) {
	grid := presenceGrid{absent: [][]bool{{false, true}, {false, false}, {true, false}}}
	c, r := grid.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 3, r)
	assert.Equal(t, 1.0, grid.Z(1, 2))
	assert.Equal(t, 1.0, grid.Z(0, 0))
	assert.Equal(t, 0.0, grid.Z(0, 2))
}

func TestNewViolin_SingleValueHasNoDensity(t *testing.T) {
	v, err := newViolin(0, []float64{7.25, 7.25, 7.25}, categoryColor(0))
	require.NoError(t, err)
	assert.Empty(t, v.density)

	xmin, xmax, ymin, ymax := v.DataRange()
	assert.Equal(t, -violinHalfWidth, xmin)
	assert.Equal(t, violinHalfWidth, xmax)
	assert.Equal(t, 7.25, ymin)
	assert.Equal(t, 7.25, ymax)
}

func TestNewViolin_DensityClippedToDataRange(t *testing.T) {
	v, err := newViolin(1, []float64{5, 8, 13, 21, 34}, categoryColor(1))
	require.NoError(t, err)
	require.Len(t, v.values, violinGridSize)
	assert.Equal(t, 5.0, v.values[0])
	assert.InDelta(t, 34.0, v.values[len(v.values)-1], 1e-9)
}

func TestRender_RepeatedRunsMatchInSize(t *testing.T) {
	table := loadGenerated(t)
	first := NewGenerator(Config{OutputDir: t.TempDir(), DPI: 40}, quietLogger())
	second := NewGenerator(Config{OutputDir: t.TempDir(), DPI: 40}, quietLogger())

	for _, chart := range report.AllCharts() {
		a, err := first.Render(context.Background(), table, chart)
		require.NoError(t, err)
		b, err := second.Render(context.Background(), table, chart)
		require.NoError(t, err)

		infoA, err := os.Stat(a)
		require.NoError(t, err)
		infoB, err := os.Stat(b)
		require.NoError(t, err)
		assert.Positive(t, infoA.Size(), chart)
		assert.Equal(t, infoA.Size(), infoB.Size(), chart)
	}
}

func TestDiagonalPlotter_SingleValueBarCentredOnValue(t *testing.T) {
	p := plot.New()
	thumb, err := diagonalPlotter(p, []float64{1, 1, 1}, 1)
	require.NoError(t, err)

	bar, ok := thumb.(*plotter.BarChart)
	require.True(t, ok, "want a bar, got %T", thumb)
	xmin, xmax, ymin, ymax := bar.DataRange()
	assert.Equal(t, 1.0, xmin)
	assert.Equal(t, 1.0, xmax)
	assert.Equal(t, 0.0, ymin)
	assert.Equal(t, 3.0, ymax)
}

func TestDiagonalPlotter_SpreadUsesDensity(t *testing.T) {
	thumb, err := diagonalPlotter(plot.New(), []float64{1, 2, 3, 5}, 0)
	require.NoError(t, err)
	_, ok := thumb.(*plotter.Line)
	assert.True(t, ok)
}
