// Package format renders query results for a terminal or as JSON.
package format

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"hexaDB/internal/sql"
)

// HeaderLabel is the box column header: name followed by the kind.
func HeaderLabel(c sql.Column) string {
	return c.Name + "(" + c.Type.String() + ")"
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(s string, w int) string {
	if n := width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// columnWidths returns, per column, the widest of the header and every cell.
func columnWidths(headers []string, rows []sql.Row) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = width(h)
	}
	for _, r := range rows {
		for i := range widths {
			if i < len(r) {
				widths[i] = max(widths[i], width(r[i].String()))
			}
		}
	}
	return widths
}

type border struct {
	left, mid, right, fill string
}

var (
	boxTop    = border{"┌", "┬", "┐", "─"}
	boxSep    = border{"├", "┼", "┤", "─"}
	boxBottom = border{"└", "┴", "┘", "─"}
	gridRule  = border{"+", "+", "+", "-"}
)

func (b border) line(widths []int) string {
	var sb strings.Builder
	sb.WriteString(b.left)
	for i, w := range widths {
		sb.WriteString(strings.Repeat(b.fill, w+2))
		if i < len(widths)-1 {
			sb.WriteString(b.mid)
		}
	}
	sb.WriteString(b.right)
	return sb.String()
}

func cells(bar string, widths []int, values []string) string {
	var sb strings.Builder
	sb.WriteString(bar)
	for i, w := range widths {
		sb.WriteByte(' ')
		sb.WriteString(pad(values[i], w))
		sb.WriteByte(' ')
		sb.WriteString(bar)
	}
	return sb.String()
}

func rowStrings(r sql.Row, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(r) {
			out[i] = r[i].String()
		}
	}
	return out
}

// Box draws a titled, box-drawn table of every column with its kind,
// followed by the row count footer.
func Box(w io.Writer, title string, cols []sql.Column, rows []sql.Row) error {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = HeaderLabel(c)
	}
	widths := columnWidths(headers, rows)

	var sb strings.Builder
	fmt.Fprintf(&sb, "┌─ Table: %s\n", title)
	sb.WriteString(boxTop.line(widths) + "\n")
	sb.WriteString(cells("│", widths, headers) + "\n")
	sb.WriteString(boxSep.line(widths) + "\n")
	for _, r := range rows {
		sb.WriteString(cells("│", widths, rowStrings(r, len(widths))) + "\n")
	}
	sb.WriteString(boxBottom.line(widths) + "\n")
	sb.WriteString(RowCount(len(rows)) + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// RowCount is the footer printed under every non-empty result.
func RowCount(n int) string {
	return fmt.Sprintf("► %d row(s) in set", n)
}
