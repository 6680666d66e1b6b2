package descriptive

import (
	"math"

	"goeda/domain/dataset"

	gstat "gonum.org/v1/gonum/stat"
)

// CorrelationMatrix is a symmetric matrix of Pearson coefficients
type CorrelationMatrix struct {
	Names  []string
	Values [][]float64
}

// Correlate computes Pearson correlations between every pair of numeric
// columns, using only rows where both cells are present. Pairs with fewer
// than two complete rows or zero variance are NaN.
func Correlate(columns []*dataset.Column) CorrelationMatrix {
	n := len(columns)
	m := CorrelationMatrix{
		Names:  make([]string, n),
		Values: make([][]float64, n),
	}
	for i, c := range columns {
		m.Names[i] = c.Name
		m.Values[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := pairwisePearson(columns[i], columns[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pairwisePearson(a, b *dataset.Column) float64 {
	xs := make([]float64, 0, a.Len())
	ys := make([]float64, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		if a.IsAbsent(i) || b.IsAbsent(i) {
			continue
		}
		xs = append(xs, a.Num[i])
		ys = append(ys, b.Num[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if gstat.Variance(xs, nil) == 0 || gstat.Variance(ys, nil) == 0 {
		return math.NaN()
	}
	return gstat.Correlation(xs, ys, nil)
}
