package coercer

import (
	"math"
	"strconv"
	"strings"

	"goeda/domain/dataset"
)

// TypeCoercer infers column kinds from raw text cells and converts them into
// typed dataset columns.
type TypeCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines which tokens count as absent values
type CoercionConfig struct {
	MissingTokens []string `json:"missing_tokens"`
	TrimSpace     bool     `json:"trim_space"`
}

// DefaultCoercionConfig mirrors the usual CSV conventions: empty cells and
// the literal NA/NaN/null tokens are absent.
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		MissingTokens: []string{"", "NA", "NaN", "null"},
		TrimSpace:     true,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	return &TypeCoercer{config: config}
}

// IsMissing reports whether a raw cell is an absent value
func (c *TypeCoercer) IsMissing(raw string) bool {
	if c.config.TrimSpace {
		raw = strings.TrimSpace(raw)
	}
	for _, tok := range c.config.MissingTokens {
		if raw == tok {
			return true
		}
	}
	return false
}

// TypeAnalysis contains the results of type distribution analysis
type TypeAnalysis struct {
	TotalCount   int          `json:"total_count"`
	MissingCount int          `json:"missing_count"`
	IntCount     int          `json:"int_count"`
	FloatCount   int          `json:"float_count"`
	Recommended  dataset.Kind `json:"recommended"`
}

// AnalyzeTypeDistribution decides the kind of a column. A column is int64
// only when every cell is a present integer; a numeric column with absent
// cells is float64. Any unparseable present cell makes it object. A column
// with no present cells is float64.
func (c *TypeCoercer) AnalyzeTypeDistribution(raw []string) TypeAnalysis {
	analysis := TypeAnalysis{TotalCount: len(raw)}

	for _, cell := range raw {
		if c.IsMissing(cell) {
			analysis.MissingCount++
			continue
		}
		cell = c.clean(cell)
		if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
			analysis.IntCount++
			continue
		}
		if _, ok := c.tryParseFloat(cell); ok {
			analysis.FloatCount++
		}
	}

	present := analysis.TotalCount - analysis.MissingCount
	switch {
	case present == 0:
		analysis.Recommended = dataset.KindFloat
	case analysis.IntCount == present && analysis.MissingCount == 0:
		analysis.Recommended = dataset.KindInt
	case analysis.IntCount+analysis.FloatCount == present:
		analysis.Recommended = dataset.KindFloat
	default:
		analysis.Recommended = dataset.KindString
	}
	return analysis
}

// CoerceColumn converts raw cells into a typed column of the inferred kind
func (c *TypeCoercer) CoerceColumn(name string, raw []string) *dataset.Column {
	kind := c.AnalyzeTypeDistribution(raw).Recommended

	if kind.IsNumeric() {
		values := make([]float64, len(raw))
		for i, cell := range raw {
			if c.IsMissing(cell) {
				values[i] = math.NaN()
				continue
			}
			v, _ := c.tryParseFloat(c.clean(cell))
			values[i] = v
		}
		return dataset.NewNumericColumn(name, kind, values)
	}

	values := make([]string, len(raw))
	absent := make([]bool, len(raw))
	for i, cell := range raw {
		if c.IsMissing(cell) {
			absent[i] = true
			continue
		}
		values[i] = c.clean(cell)
	}
	return dataset.NewStringColumn(name, values, absent)
}

func (c *TypeCoercer) clean(s string) string {
	if c.config.TrimSpace {
		return strings.TrimSpace(s)
	}
	return s
}

// tryParseFloat parses a finite float
func (c *TypeCoercer) tryParseFloat(s string) (float64, bool) {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}
