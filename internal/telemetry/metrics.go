package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a private registry for one run of the job. A batch run has no
// scrape window, so the registry is written out as a textfile at the end.
type Metrics struct {
	Registry    *prometheus.Registry
	RowsRead    prometheus.Counter
	RowsWritten *prometheus.CounterVec
	Duration    prometheus.Gauge
	LastSuccess prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "outcomes_rows_read_total",
			Help: "Rows loaded from the outcomes input table.",
		}),
		RowsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "outcomes_rows_written_total",
			Help: "Rows written per derived table.",
		}, []string{"table"}),
		Duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "outcomes_run_duration_seconds",
			Help: "Wall time of the last run.",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "outcomes_last_success_timestamp_seconds",
			Help: "Unix time the last successful run finished.",
		}),
	}
	m.Registry.MustRegister(m.RowsRead, m.RowsWritten, m.Duration, m.LastSuccess)
	return m
}

// Finish records the run duration and completion time.
func (m *Metrics) Finish(start, end time.Time) {
	m.Duration.Set(end.Sub(start).Seconds())
	m.LastSuccess.Set(float64(end.Unix()))
}

// WriteTextfile stores the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
