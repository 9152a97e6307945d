package format

import (
	"io"
	"math"

	json "github.com/goccy/go-json"

	"hexaDB/internal/sql"
)

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// RowsNative converts rows to plain Go values (int64, string, float64) so
// they encode as JSON numbers and strings. NaN and infinite reals have no
// JSON number form and become the strings "NaN", "+Inf" and "-Inf".
func RowsNative(rows []sql.Row) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		vals := make([]any, len(r))
		for j, v := range r {
			if v.Type == sql.TypeReal && (math.IsNaN(v.F64) || math.IsInf(v.F64, 0)) {
				vals[j] = v.String()
				continue
			}
			vals[j] = v.Native()
		}
		out[i] = vals
	}
	return out
}
