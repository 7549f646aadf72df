package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outcomesaux/internal/logging"
	"outcomesaux/internal/pipeline"
	"outcomesaux/internal/telemetry"
)

type Engine struct {
	runner      *pipeline.Runner
	metrics     *telemetry.Metrics
	metricsFile string
}

// Run executes the job once. Metrics are written only after a successful
// run.
func (e *Engine) Run(ctx context.Context) (sum pipeline.Summary, err error) {
	defer func() {
		if cerr := e.runner.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	start := time.Now()
	sum, err = e.runner.Run(ctx)
	if err != nil {
		return sum, err
	}
	e.metrics.Finish(start, time.Now())

	if e.metricsFile != "" {
		if err := e.metrics.WriteTextfile(e.metricsFile); err != nil {
			return sum, fmt.Errorf("metrics: %w", err)
		}
		logging.L().Debug("metrics written", "path", e.metricsFile)
	}
	return sum, nil
}
