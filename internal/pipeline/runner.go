package pipeline

import (
	"context"
	"errors"
	"fmt"

	"outcomesaux/internal/logging"
	"outcomesaux/internal/spec"
	"outcomesaux/internal/table"
	"outcomesaux/internal/telemetry"
	"outcomesaux/sink"
	"outcomesaux/source/parquetfile"
)

type Runner struct {
	input   string
	source  parquetfile.Adapter
	sinks   []sink.Adapter
	outputs []spec.Output
	metrics *telemetry.Metrics
	written map[string][]string // output file → paths acked by sinks
}

func NewRunner(m *telemetry.Metrics) *Runner {
	if m == nil {
		m = telemetry.NewMetrics()
	}
	return &Runner{metrics: m, written: map[string][]string{}}
}

func (r *Runner) SetSource(input string, s parquetfile.Adapter) { r.input, r.source = input, s }
func (r *Runner) AddSink(s sink.Adapter)                        { r.sinks = append(r.sinks, s) }
func (r *Runner) AddOutput(o spec.Output)                       { r.outputs = append(r.outputs, o) }

// Ack is bound to every AckAware sink.
func (r *Runner) Ack(w sink.Written) {
	r.written[w.Name] = append(r.written[w.Name], w.Path)
	r.metrics.RowsWritten.WithLabelValues(w.Name).Add(float64(w.Rows))
}

// Run loads the input, derives every output and hands each one to the
// sinks. All outputs are derived before the first write, so a missing input
// or missing column leaves the output directory untouched.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.source == nil {
		return Summary{}, errors.New("runner: no source configured")
	}
	log := logging.L()

	log.Info("reading input", "path", r.input)
	tbl, err := r.source.Load(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load input: %w", err)
	}
	r.metrics.RowsRead.Add(float64(tbl.Len()))
	log.Info("input loaded", "rows", tbl.Len(), "columns", tbl.Columns())
	sum := Summary{Input: r.input, Rows: tbl.Len(), Columns: tbl.Columns()}

	frames := make([]*table.Frame, len(r.outputs))
	for i, o := range r.outputs {
		if frames[i], err = tbl.Select(o.Columns...); err != nil {
			return sum, fmt.Errorf("derive %s: %w", o.File, err)
		}
	}

	for i, o := range r.outputs {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		out, err := r.write(o, frames[i])
		if err != nil {
			return sum, err
		}
		sum.Outputs = append(sum.Outputs, out)
	}

	log.Info("done", "outputs", len(sum.Outputs))
	return sum, nil
}

func (r *Runner) write(o spec.Output, f *table.Frame) (OutputSummary, error) {
	log := logging.L()
	log.Info("creating output", "file", o.File, "columns", o.Names())
	for _, s := range r.sinks {
		if err := s.Write(o.File, f); err != nil {
			return OutputSummary{}, fmt.Errorf("write %s: %w", o.File, err)
		}
	}

	paths := append([]string(nil), r.written[o.File]...)

	out := OutputSummary{File: o.File, Paths: paths, Rows: f.Len(), Columns: f.Columns()}
	log.Info("output saved", "paths", paths, "columns", out.Columns)
	if o.Tally == "" {
		return out, nil
	}

	counts, err := f.ValueCounts(o.Tally)
	if err != nil {
		return out, fmt.Errorf("tally %s: %w", o.File, err)
	}
	out.Tally = &Tally{Column: o.Tally, Counts: counts}
	args := make([]any, 0, 2*len(counts)+2)
	args = append(args, "column", o.Tally)
	for _, c := range counts {
		args = append(args, c.Value, c.Count)
	}
	log.Info("distribution", args...)
	return out, nil
}

// Close releases the source and every sink, returning the first error.
func (r *Runner) Close() error {
	var errs []error
	if r.source != nil {
		errs = append(errs, r.source.Close())
	}
	for _, s := range r.sinks {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
