package pipeline

import (
	"gopkg.in/yaml.v3"

	"outcomesaux/internal/table"
)

// Summary reports what a run read and wrote.
type Summary struct {
	Input   string          `yaml:"input"`
	Rows    int             `yaml:"rows"`
	Columns []string        `yaml:"columns"`
	Outputs []OutputSummary `yaml:"outputs"`
}

type OutputSummary struct {
	File    string   `yaml:"file"`
	Paths   []string `yaml:"paths"`
	Rows    int      `yaml:"rows"`
	Columns []string `yaml:"columns,flow"`
	Tally   *Tally   `yaml:"tally,omitempty"`
}

type Tally struct {
	Column string        `yaml:"column"`
	Counts []table.Count `yaml:"counts"`
}

func (s Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
