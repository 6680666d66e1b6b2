package app

import (
	"math"
	"strings"
	"testing"

	"goeda/domain/core"
	"goeda/domain/dataset"
	"goeda/internal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *internal.Logger {
	return internal.NewLoggerTo(&strings.Builder{}, internal.LogLevelError)
}

func smallTable(t *testing.T) *dataset.Table {
	t.Helper()
	nan := math.NaN()
	table, err := dataset.NewTable(
		dataset.NewNumericColumn(dataset.ColAge, dataset.KindFloat, []float64{22, 38, 26, nan, 35}),
		dataset.NewStringColumn(dataset.ColEmbarked, []string{"S", "C", "", "S", "Q"}, []bool{false, false, true, false, false}),
		dataset.NewStringColumn(dataset.ColCabin, []string{"", "C85", "", "C123", ""}, []bool{true, false, true, false, true}),
	)
	require.NoError(t, err)
	return table
}

func TestFillMedian_EvenCountAverages(t *testing.T) {
	table := smallTable(t)
	median, filled, err := NewCleaner(quietLogger()).FillMedian(table, dataset.ColAge)
	require.NoError(t, err)
	assert.Equal(t, 30.5, median)
	assert.Equal(t, 1, filled)

	age, err := table.Column(dataset.ColAge)
	require.NoError(t, err)
	assert.Equal(t, 0, age.MissingCount())
	assert.Equal(t, 30.5, age.Num[3])
	assert.Equal(t, 22.0, age.Num[0])
}

func TestFillMode_FillsMostFrequent(t *testing.T) {
	table := smallTable(t)
	mode, filled, err := NewCleaner(quietLogger()).FillMode(table, dataset.ColEmbarked)
	require.NoError(t, err)
	assert.Equal(t, "S", mode)
	assert.Equal(t, 1, filled)

	port, err := table.Column(dataset.ColEmbarked)
	require.NoError(t, err)
	assert.Equal(t, "S", port.Str[2])
	assert.False(t, port.IsAbsent(2))
}

func TestFillMode_TieGoesToSmallestValue(t *testing.T) {
	table, err := dataset.NewTable(
		dataset.NewStringColumn(dataset.ColEmbarked, []string{"S", "C", "", "C", "S"}, []bool{false, false, true, false, false}),
	)
	require.NoError(t, err)

	mode, _, err := NewCleaner(quietLogger()).FillMode(table, dataset.ColEmbarked)
	require.NoError(t, err)
	assert.Equal(t, "C", mode)
}

func TestFillMedian_AllAbsent(t *testing.T) {
	nan := math.NaN()
	table, err := dataset.NewTable(dataset.NewNumericColumn(dataset.ColAge, dataset.KindFloat, []float64{nan, nan}))
	require.NoError(t, err)

	_, _, err = NewCleaner(quietLogger()).FillMedian(table, dataset.ColAge)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}

func TestFillMode_RejectsNumericColumn(t *testing.T) {
	table := smallTable(t)
	_, _, err := NewCleaner(quietLogger()).FillMode(table, dataset.ColAge)
	assert.ErrorIs(t, err, core.ErrColumnType)
}

func TestClean_DropsOnlyCabin(t *testing.T) {
	table := smallTable(t)
	before := table.Names()

	summary, err := NewCleaner(quietLogger()).Clean(table)
	require.NoError(t, err)

	assert.Equal(t, []string{dataset.ColCabin}, summary.Dropped)
	assert.Equal(t, 30.5, summary.AgeMedian)
	assert.Equal(t, "S", summary.PortMode)
	assert.Equal(t, 5, table.Rows())

	var removed []string
	for _, name := range before {
		if !table.Has(name) {
			removed = append(removed, name)
		}
	}
	assert.Equal(t, []string{dataset.ColCabin}, removed)

	for _, mc := range table.MissingCounts() {
		assert.Zero(t, mc.Count, mc.Column)
	}
}

func TestClean_MissingColumn(t *testing.T) {
	table, err := dataset.NewTable(dataset.NewNumericColumn(dataset.ColAge, dataset.KindFloat, []float64{1, 2}))
	require.NoError(t, err)

	_, err = NewCleaner(quietLogger()).Clean(table)
	assert.ErrorIs(t, err, core.ErrColumnNotFound)
}
