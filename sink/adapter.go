package sink

import (
	"fmt"

	"outcomesaux/internal/table"
)

// Written describes one table that a sink has fully persisted.
type Written struct {
	Name string
	Path string
	Rows int
}

// EmitFn is what a sink calls once a table has been durably written.
type EmitFn func(Written)

// Adapter is the common behaviour every sink exposes.
type Adapter interface {
	Configure(any) error                     // driver-specific config struct
	Write(name string, f *table.Frame) error // persist one derived table
	Close() error                            // idempotent
}

// AckAware is optional; sinks that report written tables implement it and
// the compiler wires the callback if present.
type AckAware interface {
	BindAck(EmitFn)
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
