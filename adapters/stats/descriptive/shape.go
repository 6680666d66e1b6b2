package descriptive

import (
	"fmt"

	"goeda/domain/core"

	gstat "gonum.org/v1/gonum/stat"
)

// Shape describes the asymmetry and tails of a sample
type Shape struct {
	Skewness       float64
	ExcessKurtosis float64
	Outliers       int
}

// DescribeShape computes skewness, excess kurtosis and the number of
// values outside 1.5 IQR of the quartiles. Moments need at least three
// values and are zero below that or when the sample has no spread.
func DescribeShape(data []float64) (Shape, error) {
	clean := DropNaN(data)
	if len(clean) == 0 {
		return Shape{}, fmt.Errorf("shape: %w", core.ErrInsufficientData)
	}

	summary, err := Summarize(clean)
	if err != nil {
		return Shape{}, err
	}

	var shape Shape
	if len(clean) >= 3 && summary.StdDev > 0 {
		shape.Skewness = gstat.Skew(clean, nil)
		shape.ExcessKurtosis = gstat.ExKurtosis(clean, nil)
	}
	shape.Outliers = countOutliers(clean, summary.Q1, summary.Q3)
	return shape, nil
}

// countOutliers counts values beyond the 1.5 IQR fences
func countOutliers(data []float64, q1, q3 float64) int {
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	n := 0
	for _, x := range data {
		if x < lower || x > upper {
			n++
		}
	}
	return n
}
