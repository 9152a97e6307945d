package memstore

import (
	"errors"
	"slices"
	"testing"

	"hexaDB/internal/sql"
)

// newUsers returns a table (id INT, name TEXT, age INT) with three rows.
func newUsers(t *testing.T) *Table {
	t.Helper()

	tbl := NewTable("users")
	tbl.AddColumn(sql.Column{Name: "id", Type: sql.TypeInt})
	tbl.AddColumn(sql.Column{Name: "name", Type: sql.TypeText})
	tbl.AddColumn(sql.Column{Name: "age", Type: sql.TypeInt})

	rows := []sql.Row{
		{sql.Int(1), sql.Text("Alice"), sql.Int(30)},
		{sql.Int(2), sql.Text("Bob"), sql.Int(25)},
		{sql.Int(3), sql.Text("Carol"), sql.Int(30)},
	}
	for _, r := range rows {
		if err := tbl.InsertRow(r); err != nil {
			t.Fatalf("InsertRow failed: %v", err)
		}
	}
	return tbl
}

// checkIndexes asserts that every index holds exactly the positions whose
// row carries the bucket value, in ascending order.
func checkIndexes(t *testing.T, tbl *Table) {
	t.Helper()

	rows := tbl.Rows()
	for _, col := range tbl.IndexedColumns() {
		pos := tbl.ColumnIndex(col)
		buckets, _ := tbl.IndexBuckets(col)

		want := make(map[sql.Value][]int)
		for i, r := range rows {
			want[r[pos]] = append(want[r[pos]], i)
		}
		if len(buckets) != len(want) {
			t.Fatalf("index %s: expected %d buckets, got %d", col, len(want), len(buckets))
		}
		for v, w := range want {
			if !slices.Equal(buckets[v], w) {
				t.Fatalf("index %s bucket %v: expected %v, got %v", col, v, w, buckets[v])
			}
		}
	}
}

func names(rows []sql.Row, col int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[col].String()
	}
	return out
}

func TestInsertRowChecks(t *testing.T) {
	tbl := newUsers(t)

	err := tbl.InsertRow(sql.Row{sql.Int(4), sql.Text("Dan")})
	if !errors.Is(err, sql.ErrArityMismatch) {
		t.Fatalf("expected ErrArityMismatch, got %v", err)
	}

	err = tbl.InsertRow(sql.Row{sql.Int(4), sql.Int(5), sql.Int(6)})
	if !errors.Is(err, sql.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}

	if tbl.RowCount() != 3 {
		t.Fatalf("rejected inserts must not add rows, got %d", tbl.RowCount())
	}
}

func TestCreateIndexBackfillsAndIsIdempotent(t *testing.T) {
	tbl := newUsers(t)

	created, err := tbl.CreateIndex("AGE")
	if err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}
	if !created {
		t.Fatalf("expected new index")
	}
	buckets, ok := tbl.IndexBuckets("age")
	if !ok {
		t.Fatalf("index on age not found")
	}
	if !slices.Equal(buckets[sql.Int(30)], []int{0, 2}) {
		t.Fatalf("expected bucket 30 -> [0 2], got %v", buckets[sql.Int(30)])
	}

	created, err = tbl.CreateIndex("age")
	if err != nil {
		t.Fatalf("second CreateIndex failed: %v", err)
	}
	if created {
		t.Fatalf("second CreateIndex must not create a new index")
	}
	if got := tbl.IndexedColumns(); len(got) != 1 {
		t.Fatalf("expected one index, got %v", got)
	}

	if _, err := tbl.CreateIndex("nope"); !errors.Is(err, sql.ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestIndexFollowsInsert(t *testing.T) {
	tbl := newUsers(t)
	if _, err := tbl.CreateIndex("name"); err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}
	if err := tbl.InsertRow(sql.Row{sql.Int(4), sql.Text("Bob"), sql.Int(40)}); err != nil {
		t.Fatalf("InsertRow failed: %v", err)
	}
	checkIndexes(t, tbl)
}

func TestSelectRows(t *testing.T) {
	tbl := newUsers(t)
	all := []string{"id", "name", "age"}

	tests := []struct {
		name  string
		where *sql.WhereExpr
		want  []string
	}{
		{"no where", nil, []string{"Alice", "Bob", "Carol"}},
		{"eq", &sql.WhereExpr{Column: "age", Op: "=", Literal: "30"}, []string{"Alice", "Carol"}},
		{"double eq", &sql.WhereExpr{Column: "age", Op: "==", Literal: "30"}, []string{"Alice", "Carol"}},
		{"ne", &sql.WhereExpr{Column: "age", Op: "!=", Literal: "30"}, []string{"Bob"}},
		{"lt", &sql.WhereExpr{Column: "age", Op: "<", Literal: "30"}, []string{"Bob"}},
		{"gt", &sql.WhereExpr{Column: "AGE", Op: ">", Literal: "25"}, []string{"Alice", "Carol"}},
		{"text eq raw", &sql.WhereExpr{Column: "name", Op: "=", Literal: "Bob"}, []string{"Bob"}},
		{"text quoted literal is raw", &sql.WhereExpr{Column: "name", Op: "=", Literal: "'Bob'"}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := tbl.SelectRows(all, tc.where)
			if err != nil {
				t.Fatalf("SelectRows failed: %v", err)
			}
			if got := names(rows, 1); !slices.Equal(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSelectRowsProjection(t *testing.T) {
	tbl := newUsers(t)

	rows, err := tbl.SelectRows([]string{"NAME", "id"}, nil)
	if err != nil {
		t.Fatalf("SelectRows failed: %v", err)
	}
	if len(rows) != 3 || len(rows[0]) != 2 {
		t.Fatalf("unexpected shape: %v", rows)
	}
	if rows[2][0].S != "Carol" || rows[2][1].I64 != 3 {
		t.Fatalf("unexpected projected row: %v", rows[2])
	}

	if _, err := tbl.SelectRows([]string{"email"}, nil); !errors.Is(err, sql.ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}

// TestSelectIndexMatchesScan checks that an equality lookup through the
// index returns the same rows, in the same order, as a linear scan.
func TestSelectIndexMatchesScan(t *testing.T) {
	scan := newUsers(t)
	indexed := newUsers(t)
	if _, err := indexed.CreateIndex("age"); err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}

	for _, lit := range []string{"30", "25", "99"} {
		where := &sql.WhereExpr{Column: "age", Op: "=", Literal: lit}
		want, err := scan.SelectRows([]string{"id"}, where)
		if err != nil {
			t.Fatalf("scan select failed: %v", err)
		}
		got, err := indexed.SelectRows([]string{"id"}, where)
		if err != nil {
			t.Fatalf("indexed select failed: %v", err)
		}
		if !slices.Equal(names(got, 0), names(want, 0)) {
			t.Fatalf("age=%s: index gave %v, scan gave %v", lit, names(got, 0), names(want, 0))
		}
	}
}

func TestPredicateErrors(t *testing.T) {
	tbl := NewTable("empty")
	tbl.AddColumn(sql.Column{Name: "n", Type: sql.TypeText})
	tbl.AddColumn(sql.Column{Name: "x", Type: sql.TypeReal})

	tests := []struct {
		name  string
		where *sql.WhereExpr
		want  error
	}{
		{"unknown column", &sql.WhereExpr{Column: "zz", Op: "=", Literal: "1"}, sql.ErrColumnNotFound},
		{"lt on text", &sql.WhereExpr{Column: "n", Op: "<", Literal: "a"}, sql.ErrUnsupportedOperator},
		{"gt on real", &sql.WhereExpr{Column: "x", Op: ">", Literal: "1.5"}, sql.ErrUnsupportedOperator},
		{"le", &sql.WhereExpr{Column: "x", Op: "<=", Literal: "1"}, sql.ErrUnsupportedOperator},
		{"bad real", &sql.WhereExpr{Column: "x", Op: "=", Literal: "abc"}, sql.ErrTypeConversion},
	}

	// Validation happens even though the table has no rows.
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tbl.SelectRows(nil, tc.where)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUpdateRows(t *testing.T) {
	tbl := newUsers(t)
	if _, err := tbl.CreateIndex("age"); err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}

	n, err := tbl.UpdateRows([]sql.Assignment{{Column: "age", Literal: "31"}}, &sql.WhereExpr{Column: "name", Op: "=", Literal: "Alice"})
	if err != nil {
		t.Fatalf("UpdateRows failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row updated, got %d", n)
	}
	if got := tbl.Rows()[0][2].I64; got != 31 {
		t.Fatalf("expected age 31, got %d", got)
	}
	checkIndexes(t, tbl)

	rows, err := tbl.SelectRows([]string{"name"}, &sql.WhereExpr{Column: "age", Op: "=", Literal: "30"})
	if err != nil {
		t.Fatalf("SelectRows failed: %v", err)
	}
	if got := names(rows, 0); !slices.Equal(got, []string{"Carol"}) {
		t.Fatalf("expected [Carol], got %v", got)
	}
}

func TestUpdateRowsUnquotesText(t *testing.T) {
	tbl := newUsers(t)

	n, err := tbl.UpdateRows([]sql.Assignment{{Column: "name", Literal: "'Bobby'"}}, &sql.WhereExpr{Column: "id", Op: "=", Literal: "2"})
	if err != nil {
		t.Fatalf("UpdateRows failed: %v", err)
	}
	if n != 1 || tbl.Rows()[1][1].S != "Bobby" {
		t.Fatalf("expected Bobby, got %v (n=%d)", tbl.Rows()[1][1], n)
	}
}

// TestUpdateRowsSequentialPasses covers an assignment that changes the
// predicate column: the later assignment sees the earlier one's writes.
func TestUpdateRowsSequentialPasses(t *testing.T) {
	tbl := newUsers(t)

	n, err := tbl.UpdateRows([]sql.Assignment{
		{Column: "age", Literal: "50"},
		{Column: "name", Literal: "X"},
	}, &sql.WhereExpr{Column: "age", Op: "=", Literal: "25"})
	if err != nil {
		t.Fatalf("UpdateRows failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 distinct row, got %d", n)
	}
	if got := tbl.Rows()[1]; got[1].S != "Bob" || got[2].I64 != 50 {
		t.Fatalf("second pass must not match the rewritten row: %v", got)
	}
}

func TestUpdateRowsValidatesFirst(t *testing.T) {
	tbl := newUsers(t)

	_, err := tbl.UpdateRows([]sql.Assignment{
		{Column: "age", Literal: "1"},
		{Column: "age", Literal: "old"},
	}, nil)
	if !errors.Is(err, sql.ErrTypeConversion) {
		t.Fatalf("expected ErrTypeConversion, got %v", err)
	}
	if got := tbl.Rows()[0][2].I64; got != 30 {
		t.Fatalf("failed update must not change rows, got age %d", got)
	}

	_, err = tbl.UpdateRows([]sql.Assignment{{Column: "email", Literal: "x"}}, nil)
	if !errors.Is(err, sql.ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestDeleteRows(t *testing.T) {
	tbl := newUsers(t)
	if _, err := tbl.CreateIndex("age"); err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}
	if _, err := tbl.CreateIndex("name"); err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}

	n, err := tbl.DeleteRows(&sql.WhereExpr{Column: "age", Op: "=", Literal: "30"})
	if err != nil {
		t.Fatalf("DeleteRows failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows deleted, got %d", n)
	}
	if got := names(tbl.Rows(), 1); !slices.Equal(got, []string{"Bob"}) {
		t.Fatalf("expected [Bob], got %v", got)
	}
	checkIndexes(t, tbl)

	n, err = tbl.DeleteRows(nil)
	if err != nil {
		t.Fatalf("DeleteRows(nil) failed: %v", err)
	}
	if n != 1 || tbl.RowCount() != 0 {
		t.Fatalf("expected table emptied, n=%d rows=%d", n, tbl.RowCount())
	}
	checkIndexes(t, tbl)
}

func TestDescribe(t *testing.T) {
	tbl := newUsers(t)
	want := "Table: users\nColumns:\n- id (INT)\n- name (TEXT)\n- age (INT)\n"
	if got := tbl.Describe(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
