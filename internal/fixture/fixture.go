// Package fixture writes outcomes parquet files for tests.
package fixture

import (
	"bytes"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/spf13/afero"
)

// Outcome mirrors the columns of outcomes_clean.parquet. Optional columns
// are pointers so tests can write nulls.
type Outcome struct {
	DeidenStudyID    int64  `parquet:"deiden_study_id"`
	CombinedEndpoint int64  `parquet:"combined_endpoint"`
	IcuAdmission     int64  `parquet:"Icu_Admission"`
	RapidResponse    int64  `parquet:"rapid_response"`
	InHospMortality  *int64 `parquet:"in_hosp_mortality,optional"`
	IcuMortality     *int64 `parquet:"icu_mortality,optional"`
}

func Int(v int64) *int64 { return &v }

// WriteParquet encodes rows with the schema of T and stores the file at path,
// creating parent directories.
func WriteParquet[T any](fs afero.Fs, path string, rows []T) error {
	var buf bytes.Buffer
	w := parquet.NewGenericWriter[T](&buf)
	if _, err := w.Write(rows); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, buf.Bytes(), 0o644)
}

// Outcomes returns n rows with ids 1..n and a fixed flag pattern.
func Outcomes(n int) []Outcome {
	rows := make([]Outcome, n)
	for i := range rows {
		rows[i] = Outcome{
			DeidenStudyID:    int64(i + 1),
			CombinedEndpoint: int64(i % 2),
			IcuAdmission:     int64(i % 3 % 2),
			RapidResponse:    int64((i + 1) % 2),
			InHospMortality:  Int(int64(i % 5 / 4)),
			IcuMortality:     Int(int64(i % 7 / 6)),
		}
	}
	return rows
}
