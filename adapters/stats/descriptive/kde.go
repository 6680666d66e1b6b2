package descriptive

import (
	"fmt"
	"math"

	"goeda/domain/core"

	gstat "gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// KDE is a one-dimensional Gaussian kernel density estimate with Scott's
// bandwidth, h = sd * n^(-1/5).
type KDE struct {
	data      []float64
	bandwidth float64
}

// NewKDE builds an estimate over the non-NaN values. It needs at least two
// distinct values.
func NewKDE(data []float64) (*KDE, error) {
	clean := DropNaN(data)
	if len(clean) < 2 {
		return nil, fmt.Errorf("kde: %w", core.ErrInsufficientData)
	}
	sd := gstat.StdDev(clean, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil, fmt.Errorf("kde: %w", core.ErrZeroVariance)
	}
	return &KDE{
		data:      clean,
		bandwidth: sd * math.Pow(float64(len(clean)), -0.2),
	}, nil
}

// Bandwidth returns the kernel standard deviation
func (k *KDE) Bandwidth() float64 {
	return k.bandwidth
}

// Density evaluates the estimate at x
func (k *KDE) Density(x float64) float64 {
	kernel := distuv.Normal{Mu: 0, Sigma: k.bandwidth}
	sum := 0.0
	for _, v := range k.data {
		sum += kernel.Prob(x - v)
	}
	return sum / float64(len(k.data))
}

// Grid evaluates the estimate at n evenly spaced points over [lo, hi]
func (k *KDE) Grid(lo, hi float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
		ys[i] = k.Density(xs[i])
	}
	return xs, ys
}
