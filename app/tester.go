package app

import (
	"fmt"
	"io"

	"goeda/adapters/stats/hypothesis"
	"goeda/domain/dataset"
	"goeda/internal"
	"goeda/internal/errors"
)

// TestReport collects the outcome of both hypothesis tests
type TestReport struct {
	Contingency hypothesis.ContingencyTable
	ChiSquare   hypothesis.ChiSquareResult
	AgeTTest    hypothesis.TTestResult
}

// StatisticalTester runs the Sex/Survived association test and the age
// difference test and prints one line per result.
type StatisticalTester struct {
	chiSquare *hypothesis.ChiSquareTest
	tTest     *hypothesis.TTest
	out       io.Writer
	logger    *internal.Logger
}

// NewStatisticalTester creates a tester using the Yates-corrected
// chi-square test and the pooled-variance t-test.
func NewStatisticalTester(out io.Writer, logger *internal.Logger) *StatisticalTester {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &StatisticalTester{
		chiSquare: hypothesis.NewChiSquareTest(),
		tTest:     hypothesis.NewTTest(),
		out:       out,
		logger:    logger,
	}
}

// WithTTest swaps the difference-in-means test, e.g. for Welch's variant
func (s *StatisticalTester) WithTTest(tt *hypothesis.TTest) *StatisticalTester {
	s.tTest = tt
	return s
}

// Association cross-tabulates Sex against Survived and runs the chi-square
// test of independence. Rows with either cell absent are skipped.
func (s *StatisticalTester) Association(t *dataset.Table) (hypothesis.ContingencyTable, hypothesis.ChiSquareResult, error) {
	sex, err := t.Column(dataset.ColSex)
	if err != nil {
		return hypothesis.ContingencyTable{}, hypothesis.ChiSquareResult{}, err
	}
	survived, err := t.Column(dataset.ColSurvived)
	if err != nil {
		return hypothesis.ContingencyTable{}, hypothesis.ChiSquareResult{}, err
	}

	var rows, cols []string
	for i := 0; i < t.Rows(); i++ {
		if sex.IsAbsent(i) || survived.IsAbsent(i) {
			continue
		}
		rows = append(rows, sex.Label(i))
		cols = append(cols, survived.Label(i))
	}

	ct, err := hypothesis.Crosstab(rows, cols)
	if err != nil {
		return ct, hypothesis.ChiSquareResult{}, err
	}
	res, err := s.chiSquare.Test(ct)
	if err != nil {
		return ct, res, err
	}
	s.logger.Debug("%s on %dx%d table: chi2=%v dof=%d cramers_v=%.3f",
		s.chiSquare.Name(), len(ct.RowLabels), len(ct.ColLabels), res.Statistic, res.DegreesOfFreedom, res.CramersV)
	return ct, res, nil
}

// AgeDifference compares the ages of survivors (Survived = 1) against
// non-survivors (Survived = 0).
func (s *StatisticalTester) AgeDifference(t *dataset.Table) (hypothesis.TTestResult, error) {
	age, err := t.NumericColumn(dataset.ColAge)
	if err != nil {
		return hypothesis.TTestResult{}, err
	}
	survived, err := t.NumericColumn(dataset.ColSurvived)
	if err != nil {
		return hypothesis.TTestResult{}, err
	}

	var survivors, others []float64
	for i := 0; i < t.Rows(); i++ {
		if age.IsAbsent(i) || survived.IsAbsent(i) {
			continue
		}
		switch survived.Num[i] {
		case 1:
			survivors = append(survivors, age.Num[i])
		case 0:
			others = append(others, age.Num[i])
		}
	}

	res, err := s.tTest.Test(survivors, others)
	if err != nil {
		return res, err
	}
	s.logger.Debug("%s: n=%d/%d mean=%.2f/%.2f df=%.1f cohens_d=%.3f",
		s.tTest.Name(), res.NA, res.NB, res.MeanA, res.MeanB, res.DegreesOfFreedom, res.CohensD)
	return res, nil
}

// Run executes both tests and prints their result lines
func (s *StatisticalTester) Run(t *dataset.Table) (TestReport, error) {
	var report TestReport
	var err error

	report.Contingency, report.ChiSquare, err = s.Association(t)
	if err != nil {
		return report, errors.Wrap(err, "chi-square test between Sex and Survived")
	}
	if _, err := fmt.Fprintln(s.out, hypothesis.FormatChiSquare(dataset.ColSex, dataset.ColSurvived, report.ChiSquare)); err != nil {
		return report, errors.IOError("write test result", err)
	}

	report.AgeTTest, err = s.AgeDifference(t)
	if err != nil {
		return report, errors.Wrap(err, "t-test for Age by Survived")
	}
	if _, err := fmt.Fprintln(s.out, hypothesis.FormatTTest(dataset.ColAge, report.AgeTTest)); err != nil {
		return report, errors.IOError("write test result", err)
	}
	return report, nil
}
