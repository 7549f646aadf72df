package parquetfile

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"outcomesaux/internal/logging"
	"outcomesaux/internal/table"
)

// ErrUnsupportedSchema is returned for files whose columns are not all flat
// top-level leaves.
var ErrUnsupportedSchema = errors.New("parquetfile: nested or repeated columns not supported")

const readBatch = 1024

type Driver struct {
	cfg Config
}

func (d *Driver) Configure(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	d.cfg = cfg
	return nil
}

// Load reads every row group of the file. Cells are cloned so the table
// does not alias reader buffers.
func (d *Driver) Load(ctx context.Context) (*table.Table, error) {
	fh, err := d.cfg.Fs.Open(d.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("parquetfile: %w", err)
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("parquetfile: stat %s: %w", d.cfg.Path, err)
	}
	f, err := parquet.OpenFile(fh, st.Size())
	if err != nil {
		return nil, fmt.Errorf("parquetfile: open %s: %w", d.cfg.Path, err)
	}

	cols, err := columnsOf(f.Schema())
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, d.cfg.Path)
	}
	for i := range cols {
		cols[i].Values = make([]parquet.Value, 0, f.NumRows())
	}

	for gi, rg := range f.RowGroups() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := readGroup(rg, cols); err != nil {
			return nil, fmt.Errorf("parquetfile: %s row group %d: %w", d.cfg.Path, gi, err)
		}
	}

	logging.L().Debug("parquet loaded", "path", d.cfg.Path,
		"row_groups", len(f.RowGroups()), "rows", f.NumRows())
	return table.New(cols...)
}

func (d *Driver) Close() error { return nil }

func columnsOf(s *parquet.Schema) ([]table.Column, error) {
	paths := s.Columns()
	cols := make([]table.Column, len(paths))
	for i, p := range paths {
		if len(p) != 1 {
			return nil, ErrUnsupportedSchema
		}
		leaf, ok := s.Lookup(p...)
		if !ok || leaf.MaxRepetitionLevel > 0 {
			return nil, ErrUnsupportedSchema
		}
		cols[i].Name = p[0]
	}
	return cols, nil
}

func readGroup(rg parquet.RowGroup, cols []table.Column) error {
	rows := rg.Rows()
	defer rows.Close()

	buf := make([]parquet.Row, readBatch)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			if len(row) != len(cols) {
				return fmt.Errorf("row has %d values, want %d", len(row), len(cols))
			}
			for _, v := range row {
				c := v.Column()
				cols[c].Values = append(cols[c].Values, v.Clone())
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func init() {
	Register("parquet", func() Adapter { return &Driver{} })
}
