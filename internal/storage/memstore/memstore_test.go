package memstore

import (
	"errors"
	"testing"

	"hexaDB/internal/sql"
	"hexaDB/internal/storage"
)

func usersColumns() []sql.Column {
	return []sql.Column{
		{Name: "id", Type: sql.TypeInt},
		{Name: "name", Type: sql.TypeText},
		{Name: "score", Type: sql.TypeReal},
	}
}

// TestStoreCreateAndLookup verifies that tables are found regardless of case
// and keep the declared name.
func TestStoreCreateAndLookup(t *testing.T) {
	store := New("test")

	if _, err := store.CreateTable("Users", usersColumns()); err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	tbl, err := store.Table("USERS")
	if err != nil {
		t.Fatalf("Table lookup failed: %v", err)
	}
	if tbl.Name() != "Users" {
		t.Fatalf("expected declared name %q, got %q", "Users", tbl.Name())
	}
	if got := len(tbl.Columns()); got != 3 {
		t.Fatalf("expected 3 columns, got %d", got)
	}

	if _, err := store.Table("missing"); !errors.Is(err, sql.ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}

func TestStoreCreateTableErrors(t *testing.T) {
	store := New("test")
	if _, err := store.CreateTable("users", usersColumns()); err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	if _, err := store.CreateTable("USERS", usersColumns()); !errors.Is(err, sql.ErrTableAlreadyExists) {
		t.Fatalf("expected ErrTableAlreadyExists, got %v", err)
	}

	dup := []sql.Column{{Name: "a", Type: sql.TypeInt}, {Name: "A", Type: sql.TypeText}}
	if _, err := store.CreateTable("t", dup); !errors.Is(err, sql.ErrDuplicateColumn) {
		t.Fatalf("expected ErrDuplicateColumn, got %v", err)
	}
	if _, err := store.Table("t"); err == nil {
		t.Fatalf("table with duplicate columns must not be created")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 table, got %d", store.Len())
	}
}

func TestStoreTablesSorted(t *testing.T) {
	store := New("test")
	for _, name := range []string{"zeta", "Alpha", "beta"} {
		if _, err := store.CreateTable(name, nil); err != nil {
			t.Fatalf("CreateTable(%s) failed: %v", name, err)
		}
	}

	want := []string{"Alpha", "beta", "zeta"}
	got := store.Tables()
	if len(got) != len(want) {
		t.Fatalf("expected %d tables, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Name() != w {
			t.Fatalf("table %d: expected %q, got %q", i, w, got[i].Name())
		}
	}
}

// TestSnapshotRoundTrip checks that FromSnapshot(Snapshot()) reproduces the
// schema and rows, and that the snapshot does not alias live rows.
func TestSnapshotRoundTrip(t *testing.T) {
	store := New("db1")
	tbl, err := store.CreateTable("users", usersColumns())
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}
	rows := []sql.Row{
		{sql.Int(1), sql.Text("Alice"), sql.Real(9.5)},
		{sql.Int(2), sql.Text("Bob"), sql.Real(-1)},
	}
	for _, r := range rows {
		if err := tbl.InsertRow(r); err != nil {
			t.Fatalf("InsertRow failed: %v", err)
		}
	}

	snap := store.Snapshot()
	snap.Tables[0].Rows[0][1] = sql.Text("mutated")
	if got := tbl.Rows()[0][1].S; got != "Alice" {
		t.Fatalf("snapshot aliases live rows: got %q", got)
	}
	snap.Tables[0].Rows[0][1] = sql.Text("Alice")

	restored, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot failed: %v", err)
	}
	if restored.Name() != "db1" {
		t.Fatalf("expected name db1, got %q", restored.Name())
	}
	rt, err := restored.Table("users")
	if err != nil {
		t.Fatalf("restored table missing: %v", err)
	}
	got := rt.Rows()
	if len(got) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(got))
	}
	for i := range rows {
		for j := range rows[i] {
			if !got[i][j].Equal(rows[i][j]) {
				t.Fatalf("row %d col %d: expected %v, got %v", i, j, rows[i][j], got[i][j])
			}
		}
	}
}

func TestFromSnapshotRejectsBadRow(t *testing.T) {
	snap := &storage.Snapshot{
		Name: "db",
		Tables: []storage.TableSnapshot{{
			Name:    "t",
			Columns: []sql.Column{{Name: "a", Type: sql.TypeInt}},
			Rows:    []sql.Row{{sql.Text("x")}},
		}},
	}
	if _, err := FromSnapshot(snap); !errors.Is(err, sql.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}
