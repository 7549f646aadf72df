package table

import (
	"math"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

const (
	Yes = "Y"
	No  = "N"
)

// Expr derives one output column from one source column.
type Expr struct {
	Name   string
	Source string
	Map    func(parquet.Value) string
}

// Alias renames the output column.
func (e Expr) Alias(name string) Expr {
	e.Name = name
	return e
}

// Col casts the source column to its string form.
func Col(src string) Expr {
	return Expr{Name: src, Source: src, Map: String}
}

// YesNo maps the source column with YesNoOf.
func YesNo(src string) Expr {
	return Expr{Name: src, Source: src, Map: YesNoOf}
}

// YesNoOf returns Yes when v equals 1 and No for everything else, nulls
// included.
func YesNoOf(v parquet.Value) string {
	if IsOne(v) {
		return Yes
	}
	return No
}

// IsOne reports whether a cell holds the numeric value 1. Booleans count as
// 1 when true; byte arrays never do.
func IsOne(v parquet.Value) bool {
	if v.IsNull() {
		return false
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return v.Int32() == 1
	case parquet.Int64:
		return v.Int64() == 1
	case parquet.Float:
		return v.Float() == 1
	case parquet.Double:
		return v.Double() == 1
	default:
		return false
	}
}

// String renders a cell the way the CSV outputs expect it. Nulls render as
// the empty string; integral floats keep a trailing ".0".
func String(v parquet.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return formatFloat(float64(v.Float()), 32)
	case parquet.Double:
		return formatFloat(v.Double(), 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}

// formatFloat renders shortest round-trip digits as plain decimals while the
// decimal point sits within 16 places of the first digit (integral values
// keep ".0"), and in exponent form ("1e16", "1.5e-7") outside that window.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'e', -1, bits)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	digits := strings.Replace(mant, ".", "", 1)
	n := len(digits)
	point := e + 1 // digits before the decimal point

	switch {
	case point > 0 && point <= 16 && n <= point:
		return sign + digits + strings.Repeat("0", point-n) + ".0"
	case point > 0 && point <= 16:
		return sign + digits[:point] + "." + digits[point:]
	case point > -5 && point <= 0:
		return sign + "0." + strings.Repeat("0", -point) + digits
	case n == 1:
		return sign + digits + "e" + strconv.Itoa(e)
	default:
		return sign + digits[:1] + "." + digits[1:] + "e" + strconv.Itoa(e)
	}
}
