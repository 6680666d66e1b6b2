package ports

import (
	"context"

	"goeda/domain/dataset"
	"goeda/domain/report"
)

// ChartRenderer writes one named chart of a table to disk and returns the
// path of the written file.
type ChartRenderer interface {
	Render(ctx context.Context, t *dataset.Table, chart report.ChartName) (string, error)
}
