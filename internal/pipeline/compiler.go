package pipeline

import (
	"fmt"

	"github.com/spf13/afero"

	"outcomesaux/internal/spec"
	"outcomesaux/internal/telemetry"
	"outcomesaux/sink"
	"outcomesaux/sink/csvfile"
	"outcomesaux/source/parquetfile"
)

// Compile binds the job's source, sinks and outputs into a Runner. fs may be
// nil for the OS filesystem.
func Compile(job spec.Job, fs afero.Fs, m *telemetry.Metrics) (*Runner, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	r := NewRunner(m)

	src, err := parquetfile.NewAdapter(job.Source)
	if err != nil {
		return nil, err
	}
	if err := src.Configure(parquetfile.Config{Path: job.Input, Fs: fs}); err != nil {
		return nil, err
	}
	r.SetSource(job.Input, src)

	sDrv, err := sink.NewAdapter(job.Sink)
	if err != nil {
		return nil, err
	}
	switch job.Sink {
	case spec.SinkKind:
		err = sDrv.Configure(csvfile.Config{Dir: job.OutputDir, Fs: fs})
	default:
		err = fmt.Errorf("no config block for sink %q", job.Sink)
	}
	if err != nil {
		return nil, err
	}
	if ackAware, ok := sDrv.(sink.AckAware); ok {
		ackAware.BindAck(r.Ack)
	}
	r.AddSink(sDrv)

	for _, o := range job.Outputs {
		r.AddOutput(o)
	}
	return r, nil
}
