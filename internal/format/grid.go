package format

import (
	"io"
	"strings"

	"hexaDB/internal/sql"
)

// Grid draws a plain ASCII grid with the given headers, used for projected
// SELECT results, followed by the row count footer.
func Grid(w io.Writer, headers []string, rows []sql.Row) error {
	widths := columnWidths(headers, rows)
	rule := gridRule.line(widths) + "\n"

	var sb strings.Builder
	sb.WriteString(rule)
	sb.WriteString(cells("|", widths, headers) + "\n")
	sb.WriteString(rule)
	for _, r := range rows {
		sb.WriteString(cells("|", widths, rowStrings(r, len(widths))) + "\n")
	}
	sb.WriteString(rule)
	sb.WriteString(RowCount(len(rows)) + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
