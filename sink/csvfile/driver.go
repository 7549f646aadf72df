package csvfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"outcomesaux/internal/table"
	"outcomesaux/sink"
)

/* ────────── config ────────── */
type Config struct {
	Dir string   // created on first write when missing
	Fs  afero.Fs // nil → OS filesystem
}

/* ────────── driver ────────── */
type driver struct {
	cfg Config
	ack sink.EmitFn
}

/* ────────── sink.Adapter ────────── */
func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("csv-sink: expected Config, got %T", raw)
	}
	if c.Dir == "" {
		return fmt.Errorf("csv-sink: empty output directory")
	}
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
	d.cfg = c
	return nil
}

// Write creates the output directory if needed and replaces <Dir>/<name>
// with a header row followed by the frame rows.
func (d *driver) Write(name string, f *table.Frame) error {
	if err := d.cfg.Fs.MkdirAll(d.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("csv-sink: mkdir %s: %w", d.cfg.Dir, err)
	}
	path := filepath.Join(d.cfg.Dir, name)
	out, err := d.cfg.Fs.Create(path)
	if err != nil {
		return fmt.Errorf("csv-sink: create %s: %w", path, err)
	}

	if err := encode(out, f); err != nil {
		_ = out.Close()
		return fmt.Errorf("csv-sink: write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("csv-sink: close %s: %w", path, err)
	}

	if d.ack != nil {
		d.ack(sink.Written{Name: name, Path: path, Rows: f.Len()})
	}
	return nil
}

func (d *driver) Close() error { return nil }

/* ────────── sink.AckAware ────────── */
func (d *driver) BindAck(fn sink.EmitFn) { d.ack = fn }

/* ────────── internals ────────── */

func encode(out io.Writer, f *table.Frame) error {
	bw := bufio.NewWriter(out)
	w := csv.NewWriter(bw)
	if err := w.Write(f.Columns()); err != nil {
		return err
	}
	for i := 0; i < f.Len(); i++ {
		if err := w.Write(f.Row(i)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

/* ────────── auto-register ────────── */
func init() {
	sink.Register("csv", func() sink.Adapter { return &driver{} })
}
