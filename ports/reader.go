package ports

import (
	"context"

	"goeda/domain/dataset"
)

// TableReader loads the record table from its source
type TableReader interface {
	Read(ctx context.Context) (*dataset.Table, error)
}
