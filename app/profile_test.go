package app

import (
	"testing"

	"goeda/domain/dataset"
	"goeda/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_NumericColumnsOnly(t *testing.T) {
	profiles := NewProfiler(quietLogger()).Profile(loadSample(t))

	var names []string
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	assert.Equal(t, dataset.NumericColumns, names)

	for _, p := range profiles {
		if p.Name == dataset.ColAge {
			assert.Equal(t, testkit.SampleRows-testkit.SampleMissingAge, p.Summary.Count)
			assert.Equal(t, testkit.SampleMedianAge, p.Summary.Median)
		}
	}
}

func TestProfile_FareHasRightSkew(t *testing.T) {
	profiles := NewProfiler(quietLogger()).Profile(loadSample(t))
	require.NotEmpty(t, profiles)

	var found bool
	for _, p := range profiles {
		if p.Name == dataset.ColFare {
			found = true
			assert.Greater(t, p.Shape.Skewness, 0.0)
		}
	}
	assert.True(t, found)
}
