package engine

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"outcomesaux/internal/pipeline"
	"outcomesaux/internal/spec"
	"outcomesaux/internal/telemetry"
)

type Config struct {
	BasePath    string
	MetricsFile string   // optional prometheus textfile
	Fs          afero.Fs // nil → OS filesystem
}

func Bootstrap(_ context.Context, cfg Config) (*Engine, error) {
	// 1. metrics
	m := telemetry.NewMetrics()

	// 2. pipeline runner
	runner, err := pipeline.Compile(spec.Outcomes(cfg.BasePath), cfg.Fs, m)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return &Engine{
		runner:      runner,
		metrics:     m,
		metricsFile: cfg.MetricsFile,
	}, nil
}
