package memstore

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlr/internal/sql"
	"sqlr/internal/storage"
)

func usersSchema() []sql.Column {
	return []sql.Column{
		{Name: "id", Type: sql.TypeInt},
		{Name: "name", Type: sql.TypeVarchar(20)},
		{Name: "active", Type: sql.TypeBoolean},
	}
}

// TestMemstoreCreateInsertScan verifies that we can create a table,
// insert rows, and read them back with Scan.
func TestMemstoreCreateInsertScan(t *testing.T) {
	store := New()

	require.NoError(t, store.CreateTable("users", usersSchema()))

	require.NoError(t, store.Insert("users", []string{"1", "Alice", "true"}))
	require.NoError(t, store.Insert("users", []string{"2", "Bob", "0"}))

	rows, err := store.Scan("users")
	require.NoError(t, err)

	assert.Equal(t, []sql.Row{
		{sql.IntValue(1), sql.VarcharValue("Alice"), sql.BoolValue(true)},
		{sql.IntValue(2), sql.VarcharValue("Bob"), sql.BoolValue(false)},
	}, rows)
}

func TestMemstoreScanReturnsCopy(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("users", usersSchema()))
	require.NoError(t, store.Insert("users", []string{"1", "Alice", "true"}))

	rows, err := store.Scan("users")
	require.NoError(t, err)
	rows[0][1] = sql.VarcharValue("Mallory")

	again, err := store.Scan("users")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0][1].S)
}

func TestMemstoreCrossPageScan(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("nums", []sql.Column{{Name: "n", Type: sql.TypeInt}}))

	const total = PageCapacity + 1
	for i := 0; i < total; i++ {
		require.NoError(t, store.Insert("nums", []string{strconv.Itoa(i)}))
	}

	tbl, err := store.Table("nums")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.PageCount())
	assert.Equal(t, total, tbl.RowCount())

	rows, err := store.Scan("nums")
	require.NoError(t, err)
	require.Len(t, rows, total)
	for i, r := range rows {
		assert.Equal(t, int32(i), r[0].I32, "row %d out of order", i)
	}
}

func TestMemstorePageAllocationIsLazy(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("nums", []sql.Column{{Name: "n", Type: sql.TypeInt}}))

	tbl, err := store.Table("nums")
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.PageCount())

	for i := 0; i < PageCapacity; i++ {
		require.NoError(t, tbl.Insert([]string{strconv.Itoa(i)}))
	}
	assert.Equal(t, 1, tbl.PageCount(), "a full page must not trigger allocation by itself")

	require.NoError(t, tbl.Insert([]string{"-1"}))
	assert.Equal(t, 2, tbl.PageCount())
}

func TestMemstoreInsertArityMismatch(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("pairs", []sql.Column{
		{Name: "a", Type: sql.TypeInt},
		{Name: "b", Type: sql.TypeInt},
	}))

	err := store.Insert("pairs", []string{"1"})
	require.Error(t, err)
	assert.EqualError(t, err, "Column count doesn't match value count. Expected 2, got 1.")
	assert.True(t, errors.Is(err, storage.ErrColumnCount))

	tbl, _ := store.Table("pairs")
	assert.Equal(t, 0, tbl.RowCount())
}

func TestMemstoreInsertCoercionFailureIsAtomic(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("users", usersSchema()))
	require.NoError(t, store.Insert("users", []string{"1", "Alice", "true"}))

	err := store.Insert("users", []string{"2", "Bob", "maybe"})
	require.Error(t, err)
	assert.EqualError(t, err, "Error converting value for column 'active': Expected boolean, got 'maybe'.")

	var colErr *storage.ColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "active", colErr.Column)

	var ce *sql.CoercionError
	assert.ErrorAs(t, err, &ce)

	rows, err := store.Scan("users")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMemstoreVarcharBoundary(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("t", []sql.Column{{Name: "s", Type: sql.TypeVarchar(5)}}))

	require.NoError(t, store.Insert("t", []string{"abcde"}))
	err := store.Insert("t", []string{"abcdef"})
	assert.EqualError(t, err, "Error converting value for column 's': Value exceeds maximum length of 5.")
}

func TestMemstoreUnknownTable(t *testing.T) {
	store := New()

	err := store.Insert("ghost", []string{"1"})
	assert.EqualError(t, err, "Table 'ghost' does not exist.")
	assert.True(t, errors.Is(err, storage.ErrTableNotFound))

	_, err = store.Scan("ghost")
	assert.True(t, errors.Is(err, storage.ErrTableNotFound))

	_, err = store.TableSchema("ghost")
	assert.True(t, errors.Is(err, storage.ErrTableNotFound))

	assert.Empty(t, store.ListTables())
}

func TestMemstoreDuplicateCreateKeepsData(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("users", usersSchema()))
	require.NoError(t, store.Insert("users", []string{"1", "Alice", "true"}))

	err := store.CreateTable("users", []sql.Column{{Name: "x", Type: sql.TypeInt}})
	assert.EqualError(t, err, "Table 'users' already exists.")
	assert.True(t, errors.Is(err, storage.ErrTableExists))

	cols, err := store.TableSchema("users")
	require.NoError(t, err)
	assert.Equal(t, usersSchema(), cols)

	rows, err := store.Scan("users")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMemstoreSchemaIsCopied(t *testing.T) {
	store := New()
	cols := usersSchema()
	require.NoError(t, store.CreateTable("users", cols))

	cols[0].Name = "changed"
	got, err := store.TableSchema("users")
	require.NoError(t, err)
	assert.Equal(t, "id", got[0].Name)

	got[1].Name = "changed too"
	again, _ := store.TableSchema("users")
	assert.Equal(t, "name", again[1].Name)
}

func TestMemstoreListTables(t *testing.T) {
	store := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, store.CreateTable(name, []sql.Column{{Name: "id", Type: sql.TypeInt}}))
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, store.ListTables())
}

func TestMemstoreLogsPageAllocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := New(WithLogger(logger))
	require.NoError(t, store.CreateTable("t", []sql.Column{{Name: "id", Type: sql.TypeInt}}))
	require.NoError(t, store.Insert("t", []string{"1"}))

	out := buf.String()
	assert.Contains(t, out, "created table")
	assert.Contains(t, out, "allocated page")
	assert.Contains(t, out, fmt.Sprintf("page=%d", 0))
}
