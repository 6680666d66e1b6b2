package hypothesis

import (
	"fmt"
	"sort"
	"strconv"
)

// ContingencyTable cross-tabulates two categorical variables. Counts is
// indexed [row][col] following RowLabels and ColLabels.
type ContingencyTable struct {
	RowLabels []string
	ColLabels []string
	Counts    [][]int
}

// Crosstab counts co-occurrences of rows[i] and cols[i]. Labels are sorted,
// numerically when every label is a number, lexicographically otherwise.
func Crosstab(rows, cols []string) (ContingencyTable, error) {
	if len(rows) != len(cols) {
		return ContingencyTable{}, fmt.Errorf("crosstab: %d row labels vs %d column labels", len(rows), len(cols))
	}

	rowLabels := sortedLevels(rows)
	colLabels := sortedLevels(cols)
	rowPos := indexOf(rowLabels)
	colPos := indexOf(colLabels)

	counts := make([][]int, len(rowLabels))
	for i := range counts {
		counts[i] = make([]int, len(colLabels))
	}
	for i := range rows {
		counts[rowPos[rows[i]]][colPos[cols[i]]]++
	}

	return ContingencyTable{RowLabels: rowLabels, ColLabels: colLabels, Counts: counts}, nil
}

// Total returns the sum of all cells
func (ct ContingencyTable) Total() int {
	total := 0
	for _, row := range ct.Counts {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func sortedLevels(values []string) []string {
	seen := make(map[string]bool)
	var levels []string
	numeric := true
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		levels = append(levels, v)
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
		}
	}

	if numeric {
		sort.Slice(levels, func(i, j int) bool {
			a, _ := strconv.ParseFloat(levels[i], 64)
			b, _ := strconv.ParseFloat(levels[j], 64)
			return a < b
		})
	} else {
		sort.Strings(levels)
	}
	return levels
}

func indexOf(labels []string) map[string]int {
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		pos[l] = i
	}
	return pos
}
