package hypothesis

import (
	"fmt"
	"math"

	"goeda/adapters/stats/descriptive"
	"goeda/domain/core"
	"goeda/internal/errors"

	gstat "gonum.org/v1/gonum/stat"
)

// TTestResult is the outcome of a two-sample t-test. A positive statistic
// means group A has the higher mean.
type TTestResult struct {
	Statistic        float64
	PValue           float64
	DegreesOfFreedom float64
	MeanA, MeanB     float64
	NA, NB           int
	CohensD          float64
}

// TTest compares the means of two independent samples. With EqualVariance
// it is Student's pooled test; otherwise Welch's test with
// Welch-Satterthwaite degrees of freedom. NaN observations are omitted.
type TTest struct {
	EqualVariance bool
}

// NewTTest returns the pooled-variance test
func NewTTest() *TTest {
	return &TTest{EqualVariance: true}
}

// NewWelchTTest returns the unequal-variance test
func NewWelchTTest() *TTest {
	return &TTest{EqualVariance: false}
}

// Name returns the test name
func (s *TTest) Name() string {
	if s.EqualVariance {
		return "student_ttest"
	}
	return "welch_ttest"
}

// Test runs the test on samples a and b
func (s *TTest) Test(a, b []float64) (TTestResult, error) {
	group1 := descriptive.DropNaN(a)
	group2 := descriptive.DropNaN(b)

	n1 := float64(len(group1))
	n2 := float64(len(group2))
	if n1 < 2 || n2 < 2 {
		return TTestResult{}, errors.StatisticalDomain(
			fmt.Sprintf("t-test needs at least 2 observations per group, got %d and %d", len(group1), len(group2)),
			core.ErrInsufficientData)
	}

	mean1, var1 := gstat.MeanVariance(group1, nil)
	mean2, var2 := gstat.MeanVariance(group2, nil)

	pooledVar := ((n1-1)*var1 + (n2-1)*var2) / (n1 + n2 - 2)
	if pooledVar == 0 {
		return TTestResult{}, errors.StatisticalDomain("t-test groups have zero variance", core.ErrZeroVariance)
	}

	var tStat, df float64
	if s.EqualVariance {
		se := math.Sqrt(pooledVar * (1/n1 + 1/n2))
		tStat = (mean1 - mean2) / se
		df = n1 + n2 - 2
	} else {
		v1, v2 := var1/n1, var2/n2
		se := math.Sqrt(v1 + v2)
		tStat = (mean1 - mean2) / se
		// Welch-Satterthwaite
		df = math.Pow(v1+v2, 2) / (v1*v1/(n1-1) + v2*v2/(n2-1))
	}

	return TTestResult{
		Statistic:        tStat,
		PValue:           TTestPValue(tStat, df),
		DegreesOfFreedom: df,
		MeanA:            mean1,
		MeanB:            mean2,
		NA:               len(group1),
		NB:               len(group2),
		CohensD:          (mean1 - mean2) / math.Sqrt(pooledVar),
	}, nil
}
