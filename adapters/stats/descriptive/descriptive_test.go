package descriptive

import (
	"math"
	"testing"

	"goeda/domain/core"
	"goeda/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian_EvenCountAveragesMiddle(t *testing.T) {
	m, err := Median([]float64{22, 38, 26, 35})
	require.NoError(t, err)
	assert.Equal(t, 30.5, m)
}

func TestMedian_Empty(t *testing.T) {
	_, err := Median(nil)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}

func TestMode(t *testing.T) {
	v, n, err := Mode([]string{"S", "C", "Q", "S"})
	require.NoError(t, err)
	assert.Equal(t, "S", v)
	assert.Equal(t, 2, n)
}

func TestMode_TieBreaksLexicographically(t *testing.T) {
	v, n, err := Mode([]string{"S", "Q", "C", "S", "C", "Q"})
	require.NoError(t, err)
	assert.Equal(t, "C", v)
	assert.Equal(t, 2, n)
}

func TestSummarize_SkipsNaN(t *testing.T) {
	s, err := Summarize([]float64{1, 2, math.NaN(), 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.Less(t, s.Q1, s.Median)
	assert.Greater(t, s.Q3, s.Median)
}

func TestMeanCI(t *testing.T) {
	mean, lo, hi := MeanCI([]float64{0, 1, 0, 1})
	assert.Equal(t, 0.5, mean)
	assert.Less(t, lo, mean)
	assert.Greater(t, hi, mean)
	assert.InDelta(t, mean-lo, hi-mean, 1e-12)

	mean, lo, hi = MeanCI([]float64{1})
	assert.Equal(t, 1.0, mean)
	assert.Equal(t, lo, hi)
}

func TestCorrelate(t *testing.T) {
	a := dataset.NewNumericColumn("a", dataset.KindFloat, []float64{1, 2, 3, 4, math.NaN()})
	b := dataset.NewNumericColumn("b", dataset.KindFloat, []float64{2, 4, 6, 8, 100})
	c := dataset.NewNumericColumn("c", dataset.KindFloat, []float64{4, 3, 2, 1, 0})
	k := dataset.NewNumericColumn("k", dataset.KindInt, []float64{7, 7, 7, 7, 7})

	m := Correlate([]*dataset.Column{a, b, c, k})
	assert.Equal(t, []string{"a", "b", "c", "k"}, m.Names)
	assert.InDelta(t, 1.0, m.Values[0][0], 1e-12)
	assert.InDelta(t, 1.0, m.Values[0][1], 1e-12, "row 4 is excluded pairwise")
	assert.InDelta(t, -1.0, m.Values[0][2], 1e-12)
	assert.Equal(t, m.Values[1][2], m.Values[2][1])
	assert.True(t, math.IsNaN(m.Values[0][3]), "constant column has no correlation")
}

func TestKDE_IntegratesToOne(t *testing.T) {
	k, err := NewKDE([]float64{1, 2, 2, 3, 7, 8})
	require.NoError(t, err)
	assert.Greater(t, k.Bandwidth(), 0.0)

	xs, ys := k.Grid(-20, 30, 2001)
	area := 0.0
	for i := 1; i < len(xs); i++ {
		area += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	assert.InDelta(t, 1.0, area, 1e-3)
}

func TestKDE_ZeroVariance(t *testing.T) {
	_, err := NewKDE([]float64{3, 3, 3})
	assert.ErrorIs(t, err, core.ErrZeroVariance)
}

func TestLevelsAndGroupBy(t *testing.T) {
	sex := dataset.NewStringColumn("Sex", []string{"male", "female", "male", ""}, []bool{false, false, false, true})
	survived := dataset.NewNumericColumn("Survived", dataset.KindInt, []float64{1, 0, 1, 0})
	age := dataset.NewNumericColumn("Age", dataset.KindFloat, []float64{20, 30, math.NaN(), 40})

	assert.Equal(t, []string{"male", "female"}, Levels(sex), "object levels keep first appearance")
	assert.Equal(t, []string{"0", "1"}, Levels(survived), "numeric levels are sorted")

	groups := GroupBy(survived, age)
	require.Len(t, groups, 2)
	assert.Equal(t, "0", groups[0].Label)
	assert.Equal(t, []float64{30, 40}, groups[0].Values)
	assert.Equal(t, []float64{20}, groups[1].Values)

	counts := Counts(sex)
	assert.Equal(t, []LevelCount{{"male", 2}, {"female", 1}}, counts)
}

func TestDescribeShape_RightTail(t *testing.T) {
	shape, err := DescribeShape([]float64{1, 2, 3, 4, 5, 6, 7, 8, 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, shape.Outliers)
	assert.Greater(t, shape.Skewness, 0.0)
	assert.Greater(t, shape.ExcessKurtosis, 0.0)
}

func TestDescribeShape_ConstantSample(t *testing.T) {
	shape, err := DescribeShape([]float64{3, 3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{}, shape)
}

func TestDescribeShape_Empty(t *testing.T) {
	_, err := DescribeShape([]float64{math.NaN()})
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}
