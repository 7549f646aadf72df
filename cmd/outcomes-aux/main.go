// Command outcomes-aux derives the auxiliary task tables from
// Data/outcomes_clean.parquet under BASE_PATH:
//
//	Data/analysis_data/table_data.csv
//	Data/analysis_data/mortality_summary.csv
//
// Progress goes to stderr; the run summary is printed to stdout as YAML.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"outcomesaux/internal/config"
	"outcomesaux/internal/engine"
	"outcomesaux/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.L().Error("outcomes-aux failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "outcomes-aux",
		Short:         "Convert outcomes_clean.parquet to the auxiliary task CSV files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	logging.Configure(logging.Options{
		Level:  cfg.LogLevel,
		JSON:   cfg.LogJSON,
		Output: cmd.ErrOrStderr(),
	})

	e, err := engine.Bootstrap(cmd.Context(), engine.Config{
		BasePath:    cfg.BasePath,
		MetricsFile: cfg.MetricsFile,
	})
	if err != nil {
		return err
	}
	sum, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}

	out, err := sum.YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
