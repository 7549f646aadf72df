package table

import (
	"fmt"
	"slices"
	"strings"
)

// Frame is a derived table of string cells, stored row by row.
type Frame struct {
	columns []string
	rows    [][]string
}

func (f *Frame) Columns() []string  { return slices.Clone(f.columns) }
func (f *Frame) Len() int           { return len(f.rows) }
func (f *Frame) Row(i int) []string { return f.rows[i] }

// Count is one entry of a value-frequency tally.
type Count struct {
	Value string `yaml:"value"`
	Count int    `yaml:"count"`
}

// ValueCounts tallies the values of one column, ordered by value.
func (f *Frame) ValueCounts(col string) ([]Count, error) {
	idx := slices.Index(f.columns, col)
	if idx < 0 {
		return nil, fmt.Errorf("table: %w: %q", ErrColumnNotFound, col)
	}
	seen := map[string]int{}
	for _, r := range f.rows {
		seen[r[idx]]++
	}
	out := make([]Count, 0, len(seen))
	for v, n := range seen {
		out = append(out, Count{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b Count) int { return strings.Compare(a.Value, b.Value) })
	return out, nil
}
