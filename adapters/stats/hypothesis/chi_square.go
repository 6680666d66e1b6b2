package hypothesis

import (
	"fmt"
	"math"

	"goeda/domain/core"
	"goeda/internal/errors"
)

// ChiSquareResult is the outcome of a test of independence
type ChiSquareResult struct {
	Statistic        float64
	PValue           float64
	DegreesOfFreedom int
	Expected         [][]float64
	CramersV         float64
}

// ChiSquareTest tests independence of the two variables of a contingency
// table. With YatesCorrection set, a 2x2 table (one degree of freedom) has
// each observed count moved up to 0.5 toward its expected count first.
type ChiSquareTest struct {
	YatesCorrection bool
}

// NewChiSquareTest returns a test with the continuity correction enabled
func NewChiSquareTest() *ChiSquareTest {
	return &ChiSquareTest{YatesCorrection: true}
}

// Name returns the test name
func (s *ChiSquareTest) Name() string {
	return "chi_square"
}

// Test runs the test. Tables with fewer than two rows or columns, or with a
// zero expected count, are rejected.
func (s *ChiSquareTest) Test(ct ContingencyTable) (ChiSquareResult, error) {
	rows := len(ct.Counts)
	if rows < 2 || len(ct.Counts[0]) < 2 {
		return ChiSquareResult{}, errors.StatisticalDomain(
			fmt.Sprintf("contingency table is %dx%d, need at least 2x2", rows, colCount(ct)),
			core.ErrDegenerateTable)
	}
	cols := len(ct.Counts[0])

	// Calculate marginal totals
	rowTotals := make([]float64, rows)
	colTotals := make([]float64, cols)
	total := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := float64(ct.Counts[i][j])
			rowTotals[i] += v
			colTotals[j] += v
			total += v
		}
	}

	expected := make([][]float64, rows)
	for i := range expected {
		expected[i] = make([]float64, cols)
		for j := range expected[i] {
			expected[i][j] = rowTotals[i] * colTotals[j] / total
			if expected[i][j] == 0 {
				return ChiSquareResult{}, errors.StatisticalDomain(
					fmt.Sprintf("expected count is zero at (%s, %s)", ct.RowLabels[i], ct.ColLabels[j]),
					core.ErrDegenerateTable)
			}
		}
	}

	dof := (rows - 1) * (cols - 1)

	chiSq := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			observed := float64(ct.Counts[i][j])
			if s.YatesCorrection && dof == 1 {
				diff := expected[i][j] - observed
				observed += math.Copysign(math.Min(0.5, math.Abs(diff)), diff)
			}
			d := observed - expected[i][j]
			chiSq += d * d / expected[i][j]
		}
	}

	minDim := math.Min(float64(rows-1), float64(cols-1))

	return ChiSquareResult{
		Statistic:        chiSq,
		PValue:           ChiSquarePValue(chiSq, dof),
		DegreesOfFreedom: dof,
		Expected:         expected,
		CramersV:         math.Sqrt(chiSq / (total * minDim)),
	}, nil
}

func colCount(ct ContingencyTable) int {
	if len(ct.Counts) == 0 {
		return 0
	}
	return len(ct.Counts[0])
}
