package filestore

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"hexaDB/internal/sql"
	"hexaDB/internal/storage"
)

// Text layout, one record per line, fields separated by whitespace:
//
//	DATABASE_NAME <name>
//	TABLE_COUNT <n>
//	then n times:
//	  TABLE_NAME <name>
//	  COLUMN_COUNT <c>
//	  COLUMN <name> <kind>          c times; kind 0=INT 1=TEXT 2=REAL
//	  ROW_COUNT <r>
//	  ROW <tag> <value> ...         r times; tag I, T or R
//
// TEXT values are double-quoted. Text holding a quote, a backslash, a
// control character or invalid UTF-8 is written as a Go quoted string.
const (
	kwDatabaseName = "DATABASE_NAME"
	kwTableCount   = "TABLE_COUNT"
	kwTableName    = "TABLE_NAME"
	kwColumnCount  = "COLUMN_COUNT"
	kwColumn       = "COLUMN"
	kwRowCount     = "ROW_COUNT"
	kwRow          = "ROW"
)

func valueTag(t sql.DataType) (string, bool) {
	switch t {
	case sql.TypeInt:
		return "I", true
	case sql.TypeText:
		return "T", true
	case sql.TypeReal:
		return "R", true
	default:
		return "", false
	}
}

func tagType(tag string) (sql.DataType, bool) {
	switch tag {
	case "I":
		return sql.TypeInt, true
	case "T":
		return sql.TypeText, true
	case "R":
		return sql.TypeReal, true
	default:
		return 0, false
	}
}

func needsEscape(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' || c < 0x20 || c == 0x7f {
			return true
		}
	}
	return false
}

func quoteText(s string) string {
	if needsEscape(s) {
		return strconv.Quote(s)
	}
	return `"` + s + `"`
}

func unquoteText(tok string) string {
	if s, err := strconv.Unquote(tok); err == nil {
		return s
	}
	return tok[1 : len(tok)-1]
}

// Encode writes snap in the text layout.
func Encode(w io.Writer, snap *storage.Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", kwDatabaseName, snap.Name)
	fmt.Fprintf(bw, "%s %d\n", kwTableCount, len(snap.Tables))

	for _, t := range snap.Tables {
		fmt.Fprintf(bw, "%s %s\n", kwTableName, t.Name)
		fmt.Fprintf(bw, "%s %d\n", kwColumnCount, len(t.Columns))
		for _, c := range t.Columns {
			fmt.Fprintf(bw, "%s %s %d\n", kwColumn, c.Name, int(c.Type))
		}

		fmt.Fprintf(bw, "%s %d\n", kwRowCount, len(t.Rows))
		for i, r := range t.Rows {
			bw.WriteString(kwRow)
			for _, v := range r {
				tag, ok := valueTag(v.Type)
				if !ok {
					return fmt.Errorf("table '%s' row %d: unsupported value kind %d", t.Name, i, v.Type)
				}
				bw.WriteByte(' ')
				bw.WriteString(tag)
				bw.WriteByte(' ')
				if v.Type == sql.TypeText {
					bw.WriteString(quoteText(v.S))
				} else {
					bw.WriteString(v.String())
				}
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// lineReader hands out the non-blank lines of a file with their numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	return &lineReader{sc: sc}
}

// next returns the next non-blank line, trimmed.
func (lr *lineReader) next(what string) (string, error) {
	for lr.sc.Scan() {
		lr.line++
		if s := strings.TrimSpace(lr.sc.Text()); s != "" {
			return s, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", sql.ErrFileIO, err)
	}
	return "", fmt.Errorf("%w: unexpected end of file, expected %s", sql.ErrMalformedPersistedFile, what)
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", sql.ErrMalformedPersistedFile, lr.line, fmt.Sprintf(format, args...))
}

// record reads a line that must start with kw and returns the rest of it.
func (lr *lineReader) record(kw string) (string, error) {
	s, err := lr.next(kw)
	if err != nil {
		return "", err
	}
	head, rest := s, ""
	if i := strings.IndexAny(s, " \t"); i != -1 {
		head, rest = s[:i], s[i+1:]
	}
	if head != kw {
		return "", lr.errorf("expected %s, got %q", kw, head)
	}
	return strings.TrimSpace(rest), nil
}

// count reads "kw <n>" with n >= 0.
func (lr *lineReader) count(kw string) (int, error) {
	rest, err := lr.record(kw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, lr.errorf("%s needs a non-negative count, got %q", kw, rest)
	}
	return n, nil
}

// name reads "kw <name>" where name is a single token.
func (lr *lineReader) name(kw string) (string, error) {
	rest, err := lr.record(kw)
	if err != nil {
		return "", err
	}
	if rest == "" || strings.ContainsAny(rest, " \t") {
		return "", lr.errorf("%s needs one name, got %q", kw, rest)
	}
	return rest, nil
}

// splitFields splits a ROW line on whitespace, keeping a double-quoted
// substring (backslash escapes included) as one field with its quotes.
func splitFields(s string) ([]string, error) {
	var out []string
	i := 0
	for i < len(s) {
		switch {
		case s[i] == ' ' || s[i] == '\t':
			i++
		case s[i] == '"':
			j := i + 1
			for ; j < len(s) && s[j] != '"'; j++ {
				if s[j] == '\\' {
					j++
				}
			}
			if j >= len(s) {
				return nil, fmt.Errorf("unterminated quoted value")
			}
			out = append(out, s[i:j+1])
			i = j + 1
		default:
			j := i
			for j < len(s) && s[j] != ' ' && s[j] != '\t' {
				j++
			}
			out = append(out, s[i:j])
			i = j
		}
	}
	return out, nil
}

func (lr *lineReader) row(cols []sql.Column) (sql.Row, error) {
	rest, err := lr.record(kwRow)
	if err != nil {
		return nil, err
	}
	fields, err := splitFields(rest)
	if err != nil {
		return nil, lr.errorf("%v", err)
	}
	if len(fields) != 2*len(cols) {
		return nil, lr.errorf("expected %d tag/value pairs, got %d fields", len(cols), len(fields))
	}

	row := make(sql.Row, len(cols))
	for i, c := range cols {
		tag, tok := fields[2*i], fields[2*i+1]
		t, ok := tagType(tag)
		if !ok {
			return nil, lr.errorf("unknown value tag %q", tag)
		}
		if t != c.Type {
			return nil, lr.errorf("tag %s does not match column '%s' of kind %s", tag, c.Name, c.Type)
		}

		if t == sql.TypeText {
			if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
				return nil, lr.errorf("text value for column '%s' must be double-quoted, got %s", c.Name, tok)
			}
			row[i] = sql.Text(unquoteText(tok))
			continue
		}
		v, err := sql.ParseValue(t, tok)
		if err != nil {
			return nil, lr.errorf("column '%s': %v", c.Name, err)
		}
		row[i] = v
	}
	return row, nil
}

// Decode parses a whole file. It returns a complete snapshot or an error
// wrapping sql.ErrMalformedPersistedFile (or sql.ErrFileIO on read failure)
// that names the offending line.
func Decode(r io.Reader) (*storage.Snapshot, error) {
	lr := newLineReader(r)

	name, err := lr.record(kwDatabaseName)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, lr.errorf("%s needs a name", kwDatabaseName)
	}
	snap := &storage.Snapshot{Name: name}

	tableCount, err := lr.count(kwTableCount)
	if err != nil {
		return nil, err
	}

	seenTables := make(map[string]bool, tableCount)
	for range tableCount {
		ts, err := lr.table()
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(ts.Name)
		if seenTables[key] {
			return nil, lr.errorf("table '%s' appears twice", ts.Name)
		}
		seenTables[key] = true
		snap.Tables = append(snap.Tables, ts)
	}

	for lr.sc.Scan() {
		lr.line++
		if strings.TrimSpace(lr.sc.Text()) != "" {
			return nil, lr.errorf("unexpected content after %d tables", tableCount)
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", sql.ErrFileIO, err)
	}
	return snap, nil
}

func (lr *lineReader) table() (storage.TableSnapshot, error) {
	var ts storage.TableSnapshot

	name, err := lr.name(kwTableName)
	if err != nil {
		return ts, err
	}
	ts.Name = name

	colCount, err := lr.count(kwColumnCount)
	if err != nil {
		return ts, err
	}
	ts.Columns = make([]sql.Column, 0, colCount)
	for range colCount {
		rest, err := lr.record(kwColumn)
		if err != nil {
			return ts, err
		}
		f := strings.Fields(rest)
		if len(f) != 2 {
			return ts, lr.errorf("COLUMN needs a name and a kind, got %q", rest)
		}
		k, err := strconv.Atoi(f[1])
		if err != nil || !sql.DataType(k).Valid() {
			return ts, lr.errorf("invalid kind %q for column '%s'", f[1], f[0])
		}
		for _, c := range ts.Columns {
			if c.SameName(f[0]) {
				return ts, lr.errorf("column '%s' declared twice in table '%s'", f[0], name)
			}
		}
		ts.Columns = append(ts.Columns, sql.Column{Name: f[0], Type: sql.DataType(k)})
	}

	rowCount, err := lr.count(kwRowCount)
	if err != nil {
		return ts, err
	}
	ts.Rows = make([]sql.Row, 0, rowCount)
	for range rowCount {
		r, err := lr.row(ts.Columns)
		if err != nil {
			return ts, err
		}
		ts.Rows = append(ts.Rows, r)
	}
	return ts, nil
}
