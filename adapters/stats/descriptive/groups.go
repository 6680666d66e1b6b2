package descriptive

import (
	"sort"

	"goeda/domain/dataset"
)

// Group is the set of numeric values sharing one category label
type Group struct {
	Label  string
	Values []float64
}

// Levels returns the distinct labels of a column in plotting order: sorted
// by value for numeric columns, first appearance for object columns. Absent
// cells are skipped.
func Levels(c *dataset.Column) []string {
	seen := make(map[string]bool)
	var labels []string
	var nums []float64
	for i := 0; i < c.Len(); i++ {
		if c.IsAbsent(i) {
			continue
		}
		l := c.Label(i)
		if seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
		if c.Kind.IsNumeric() {
			nums = append(nums, c.Num[i])
		}
	}

	if c.Kind.IsNumeric() {
		idx := make([]int, len(labels))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return nums[idx[a]] < nums[idx[b]] })
		sorted := make([]string, len(labels))
		for i, j := range idx {
			sorted[i] = labels[j]
		}
		return sorted
	}
	return labels
}

// GroupBy splits the present values of vals by the labels of keys. Rows
// where either cell is absent are skipped; every level of keys appears, even
// when its group ends up empty.
func GroupBy(keys, vals *dataset.Column) []Group {
	levels := Levels(keys)
	pos := make(map[string]int, len(levels))
	groups := make([]Group, len(levels))
	for i, l := range levels {
		pos[l] = i
		groups[i].Label = l
	}

	for i := 0; i < keys.Len(); i++ {
		if keys.IsAbsent(i) || vals.IsAbsent(i) {
			continue
		}
		g := pos[keys.Label(i)]
		groups[g].Values = append(groups[g].Values, vals.Num[i])
	}
	return groups
}

// LevelCount is the number of present cells carrying one label
type LevelCount struct {
	Label string
	Count int
}

// Counts returns how many present cells carry each level, in Levels order
func Counts(c *dataset.Column) []LevelCount {
	levels := Levels(c)
	pos := make(map[string]int, len(levels))
	out := make([]LevelCount, len(levels))
	for i, l := range levels {
		pos[l] = i
		out[i].Label = l
	}
	for i := 0; i < c.Len(); i++ {
		if c.IsAbsent(i) {
			continue
		}
		out[pos[c.Label(i)]].Count++
	}
	return out
}
