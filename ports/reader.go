package ports

import (
	"context"

	"irspec/domain/spectrum"
)

// TableReader loads a tabular file into a headerless grid of cell text
type TableReader interface {
	ReadTable(ctx context.Context, path string) (spectrum.RawTable, error)
}
