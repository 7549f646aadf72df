// Package spec fixes the layout of the outcomes job: where the input lives
// under the base path and which derived tables are written from it.
package spec

import (
	"path/filepath"

	"outcomesaux/internal/table"
)

const (
	DataDir    = "Data"
	InputFile  = "outcomes_clean.parquet"
	OutputDir  = "analysis_data"
	IDColumn   = "deiden_study_id"
	IDAlias    = "encounter_deiden_id"
	SourceKind = "parquet"
	SinkKind   = "csv"
)

// Output describes one derived table.
type Output struct {
	File    string
	Columns []table.Expr
	// Tally names a column whose value counts are reported after writing.
	Tally string
}

// Names returns the output column names in order.
func (o Output) Names() []string {
	names := make([]string, len(o.Columns))
	for i, c := range o.Columns {
		names[i] = c.Name
	}
	return names
}

type Job struct {
	Input     string
	OutputDir string
	Source    string
	Sink      string
	Outputs   []Output
}

// Outcomes returns the job rooted at basePath.
func Outcomes(basePath string) Job {
	data := filepath.Join(basePath, DataDir)
	return Job{
		Input:     filepath.Join(data, InputFile),
		OutputDir: filepath.Join(data, OutputDir),
		Source:    SourceKind,
		Sink:      SinkKind,
		Outputs:   []Output{TableData(), MortalitySummary()},
	}
}

func TableData() Output {
	return Output{
		File: "table_data.csv",
		Columns: []table.Expr{
			table.Col(IDColumn).Alias(IDAlias),
			table.YesNo("combined_endpoint"),
			table.YesNo("Icu_Admission").Alias("ICU"),
			table.YesNo("rapid_response"),
		},
		Tally: "combined_endpoint",
	}
}

func MortalitySummary() Output {
	return Output{
		File: "mortality_summary.csv",
		Columns: []table.Expr{
			table.Col(IDColumn).Alias(IDAlias),
			table.YesNo("in_hosp_mortality").Alias("mort_status_30d"),
			table.YesNo("icu_mortality"),
		},
	}
}
