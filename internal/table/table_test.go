package table

import (
	"math"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vs ...int64) []parquet.Value {
	out := make([]parquet.Value, len(vs))
	for i, v := range vs {
		out[i] = parquet.Int64Value(v)
	}
	return out
}

func TestYesNoOf(t *testing.T) {
	cases := []struct {
		name string
		in   parquet.Value
		want string
	}{
		{"int64 one", parquet.Int64Value(1), Yes},
		{"int64 zero", parquet.Int64Value(0), No},
		{"int64 minus one", parquet.Int64Value(-1), No},
		{"int64 two", parquet.Int64Value(2), No},
		{"int32 one", parquet.Int32Value(1), Yes},
		{"int32 zero", parquet.Int32Value(0), No},
		{"double one", parquet.DoubleValue(1), Yes},
		{"double near one", parquet.DoubleValue(0.999), No},
		{"float one", parquet.FloatValue(1), Yes},
		{"bool true", parquet.BooleanValue(true), Yes},
		{"bool false", parquet.BooleanValue(false), No},
		{"null", parquet.NullValue(), No},
		{"string one", parquet.ByteArrayValue([]byte("1")), No},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, YesNoOf(tc.in))
		})
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   parquet.Value
		want string
	}{
		{parquet.Int64Value(42), "42"},
		{parquet.Int32Value(-7), "-7"},
		{parquet.DoubleValue(42), "42.0"},
		{parquet.DoubleValue(1.5), "1.5"},
		{parquet.DoubleValue(2.5), "2.5"},
		{parquet.DoubleValue(0), "0.0"},
		{parquet.DoubleValue(-3), "-3.0"},
		{parquet.DoubleValue(1e15), "1000000000000000.0"},
		{parquet.DoubleValue(1e16), "1e16"},
		{parquet.DoubleValue(1.5e20), "1.5e20"},
		{parquet.DoubleValue(0.0001), "0.0001"},
		{parquet.DoubleValue(1e-7), "1e-7"},
		{parquet.DoubleValue(math.Inf(1)), "inf"},
		{parquet.DoubleValue(math.Inf(-1)), "-inf"},
		{parquet.DoubleValue(math.NaN()), "NaN"},
		{parquet.FloatValue(0.5), "0.5"},
		{parquet.BooleanValue(true), "true"},
		{parquet.ByteArrayValue([]byte("enc-9")), "enc-9"},
		{parquet.NullValue(), ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, String(tc.in))
	}
}

func TestNew(t *testing.T) {
	t.Run("Should reject ragged columns", func(t *testing.T) {
		_, err := New(
			Column{Name: "a", Values: ints(1, 2)},
			Column{Name: "b", Values: ints(1)},
		)
		require.ErrorIs(t, err, ErrRaggedColumns)
	})

	t.Run("Should reject duplicate names", func(t *testing.T) {
		_, err := New(
			Column{Name: "a", Values: ints(1)},
			Column{Name: "a", Values: ints(1)},
		)
		require.ErrorIs(t, err, ErrDuplicateColumn)
	})

	t.Run("Should keep column order", func(t *testing.T) {
		tbl, err := New(
			Column{Name: "z", Values: ints(1)},
			Column{Name: "a", Values: ints(0)},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a"}, tbl.Columns())
		assert.Equal(t, 1, tbl.Len())
	})
}

func TestSelect(t *testing.T) {
	tbl, err := New(
		Column{Name: "id", Values: ints(42, 7, 9)},
		Column{Name: "flag", Values: []parquet.Value{
			parquet.Int64Value(1), parquet.NullValue(), parquet.Int64Value(0),
		}},
	)
	require.NoError(t, err)

	t.Run("Should preserve row count and order", func(t *testing.T) {
		f, err := tbl.Select(Col("id").Alias("key"), YesNo("flag").Alias("FLAG"))
		require.NoError(t, err)
		assert.Equal(t, []string{"key", "FLAG"}, f.Columns())
		require.Equal(t, tbl.Len(), f.Len())
		assert.Equal(t, []string{"42", "Y"}, f.Row(0))
		assert.Equal(t, []string{"7", "N"}, f.Row(1))
		assert.Equal(t, []string{"9", "N"}, f.Row(2))
	})

	t.Run("Should fail on a missing source column", func(t *testing.T) {
		f, err := tbl.Select(Col("id"), YesNo("nope"))
		require.ErrorIs(t, err, ErrColumnNotFound)
		assert.Nil(t, f)
	})

	t.Run("Should tally values in sorted order", func(t *testing.T) {
		f, err := tbl.Select(YesNo("flag"))
		require.NoError(t, err)
		counts, err := f.ValueCounts("flag")
		require.NoError(t, err)
		assert.Equal(t, []Count{{Value: "N", Count: 2}, {Value: "Y", Count: 1}}, counts)

		_, err = f.ValueCounts("other")
		require.ErrorIs(t, err, ErrColumnNotFound)
	})
}
