package hypothesis

import "fmt"

// FormatChiSquare renders the association test line of the report
func FormatChiSquare(rowVar, colVar string, r ChiSquareResult) string {
	return fmt.Sprintf("Chi-Square Test between %s and %s: chi2=%.2f, p-value=%.4f", rowVar, colVar, r.Statistic, r.PValue)
}

// FormatTTest renders the difference-in-means test line of the report
func FormatTTest(variable string, r TTestResult) string {
	return fmt.Sprintf("T-Test for %s difference: t-statistic=%.2f, p-value=%.4f", variable, r.Statistic, r.PValue)
}
