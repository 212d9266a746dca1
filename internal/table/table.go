// Package table turns raw fetched rows into the uniform tabular shape the
// rest of the system consumes.
package table

import (
	"math"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Row map[string]any

// Table is an ordered result set: Columns in projection order, Rows in
// fetch order. It is the only structure that crosses the core boundary.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func Empty() Table {
	return Table{Columns: []string{}, Rows: []Row{}}
}

func (t Table) Len() int { return len(t.Rows) }

// Normalize maps fetched rows onto their column names, one output row per
// input row, preserving both row and column order. Nothing is filtered,
// deduplicated, or reordered here.
func Normalize(rows [][]any, cols []string) Table {
	t := Table{Columns: cols, Rows: make([]Row, 0, len(rows))}
	if t.Columns == nil {
		t.Columns = []string{}
	}
	for _, raw := range rows {
		r := make(Row, len(cols))
		for i, col := range cols {
			if i < len(raw) {
				r[col] = normalizeValue(raw[i])
			} else {
				r[col] = nil
			}
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

// normalizeValue coerces driver-level values into the small set of types
// downstream code handles: text, bool, int64, float64, time.Time, nil.
// The integer-vs-decimal decision is value driven: a numeric with no
// fractional part is a count and becomes int64, one with a genuine fraction
// is a rate and keeps it. Column names never enter into it.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case pgtype.Numeric:
		return coerceNumeric(x)
	case float64:
		return coerceFloat(x)
	case float32:
		return coerceFloat(float64(x))
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64, int, bool, string, time.Time:
		return x
	case pgtype.Time:
		if !x.Valid {
			return nil
		}
		return formatMicroseconds(x.Microseconds)
	default:
		return v
	}
}

func coerceNumeric(n pgtype.Numeric) any {
	if !n.Valid || n.Int == nil {
		return nil
	}
	if n.NaN {
		return math.NaN()
	}
	if n.Exp >= 0 {
		i := new(big.Int).Set(n.Int)
		if n.Exp > 0 {
			i.Mul(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil))
		}
		return i.Int64()
	}
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n.Exp)), nil)
	quo, rem := new(big.Int).QuoRem(n.Int, div, new(big.Int))
	if rem.Sign() == 0 {
		return quo.Int64()
	}
	f, err := n.Float64Value()
	if err != nil {
		return nil
	}
	return f.Float64
}

func coerceFloat(f float64) any {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return int64(f)
	}
	return f
}

func formatMicroseconds(us int64) string {
	t := time.UnixMicro(us).UTC()
	return t.Format("15:04:05")
}
