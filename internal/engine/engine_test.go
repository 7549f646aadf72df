package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outcomesaux/internal/fixture"
	"outcomesaux/internal/spec"
)

func TestEngine_Run(t *testing.T) {
	base := t.TempDir()
	job := spec.Outcomes(base)
	require.NoError(t, fixture.WriteParquet(afero.NewOsFs(), job.Input, []fixture.Outcome{
		{DeidenStudyID: 42, CombinedEndpoint: 1, RapidResponse: 1, InHospMortality: fixture.Int(0), IcuMortality: fixture.Int(1)},
	}))
	prom := filepath.Join(t.TempDir(), "outcomes.prom")

	e, err := Bootstrap(context.Background(), Config{BasePath: base, MetricsFile: prom})
	require.NoError(t, err)
	sum, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Rows)

	raw, err := os.ReadFile(filepath.Join(base, "Data", "analysis_data", "table_data.csv"))
	require.NoError(t, err)
	assert.Equal(t, "encounter_deiden_id,combined_endpoint,ICU,rapid_response\n42,Y,N,Y\n", string(raw))

	raw, err = os.ReadFile(filepath.Join(base, "Data", "analysis_data", "mortality_summary.csv"))
	require.NoError(t, err)
	assert.Equal(t, "encounter_deiden_id,mort_status_30d,icu_mortality\n42,N,Y\n", string(raw))

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "outcomes_rows_read_total 1")
}

func TestEngine_MissingInput(t *testing.T) {
	base := t.TempDir()
	prom := filepath.Join(t.TempDir(), "outcomes.prom")

	e, err := Bootstrap(context.Background(), Config{BasePath: base, MetricsFile: prom})
	require.NoError(t, err)
	_, err = e.Run(context.Background())
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = os.Stat(filepath.Join(base, "Data", "analysis_data"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = os.Stat(prom)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
