// Package table holds an input table fully in memory, column by column,
// and derives string frames from it through column expressions.
package table

import (
	"errors"
	"fmt"

	"github.com/parquet-go/parquet-go"
)

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrRaggedColumns   = errors.New("columns differ in length")
)

// Column is one named column of typed, nullable cells.
type Column struct {
	Name   string
	Values []parquet.Value
}

type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New builds a table from columns of equal length. Column order is kept.
func New(cols ...Column) (*Table, error) {
	t := &Table{cols: cols, index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("table: %w: %q", ErrDuplicateColumn, c.Name)
		}
		t.index[c.Name] = i
		if i == 0 {
			t.rows = len(c.Values)
			continue
		}
		if len(c.Values) != t.rows {
			return nil, fmt.Errorf("table: %w: %q has %d rows, want %d",
				ErrRaggedColumns, c.Name, len(c.Values), t.rows)
		}
	}
	return t, nil
}

func (t *Table) Len() int { return t.rows }

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, fmt.Errorf("table: %w: %q", ErrColumnNotFound, name)
	}
	return t.cols[i], nil
}

// Select evaluates exprs against every row and returns the derived frame.
// All source columns are resolved before any row is produced.
func (t *Table) Select(exprs ...Expr) (*Frame, error) {
	src := make([]Column, len(exprs))
	names := make([]string, len(exprs))
	for i, e := range exprs {
		c, err := t.Column(e.Source)
		if err != nil {
			return nil, err
		}
		src[i], names[i] = c, e.Name
	}

	rows := make([][]string, t.rows)
	for r := range rows {
		row := make([]string, len(exprs))
		for i, e := range exprs {
			row[i] = e.Map(src[i].Values[r])
		}
		rows[r] = row
	}
	return &Frame{columns: names, rows: rows}, nil
}
