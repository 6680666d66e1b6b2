package descriptive

import (
	"fmt"
	"math"
	"sort"

	"goeda/domain/core"

	"github.com/montanaflynn/stats"
	gstat "gonum.org/v1/gonum/stat"
)

// Median returns the median of the values; an even count averages the two
// middle values.
func Median(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("median: %w", core.ErrInsufficientData)
	}
	return stats.Median(data)
}

// Mode returns the most frequent value and its count. Ties resolve to the
// lexicographically smallest value, so the result does not depend on row
// order.
func Mode(values []string) (string, int, error) {
	if len(values) == 0 {
		return "", 0, fmt.Errorf("mode: %w", core.ErrInsufficientData)
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, bestCount := keys[0], counts[keys[0]]
	for _, k := range keys[1:] {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best, bestCount, nil
}

// Summary holds the five-number summary plus mean and spread of a sample
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarize computes a Summary, skipping NaN values
func Summarize(data []float64) (Summary, error) {
	clean := DropNaN(data)
	if len(clean) == 0 {
		return Summary{}, fmt.Errorf("summary: %w", core.ErrInsufficientData)
	}

	min, err := stats.Min(clean)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(clean)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(clean)
	if err != nil {
		return Summary{}, err
	}

	q1, q3 := median, median
	if len(clean) > 1 {
		q, err := stats.Quartile(clean)
		if err != nil {
			return Summary{}, err
		}
		q1, q3 = q.Q1, q.Q3
	}

	mean, std := gstat.MeanStdDev(clean, nil)
	if len(clean) < 2 {
		std = 0
	}

	return Summary{
		Count:  len(clean),
		Mean:   mean,
		StdDev: std,
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
	}, nil
}

// MeanCI returns the sample mean and a 95% normal-approximation confidence
// interval. A single observation has a zero-width interval.
func MeanCI(data []float64) (mean, lo, hi float64) {
	clean := DropNaN(data)
	if len(clean) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	mean, std := gstat.MeanStdDev(clean, nil)
	if len(clean) < 2 {
		return mean, mean, mean
	}
	half := 1.96 * std / math.Sqrt(float64(len(clean)))
	return mean, mean - half, mean + half
}

// DropNaN returns the values that are not NaN, in order
func DropNaN(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
