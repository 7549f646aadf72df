package parquetfile

import (
	"context"

	"outcomesaux/internal/table"
)

// Adapter loads one input table into memory.
type Adapter interface {
	Configure(Config) error
	Load(context.Context) (*table.Table, error)
	Close() error
}
