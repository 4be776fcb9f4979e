package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlr/internal/sql"
)

func TestCount(t *testing.T) {
	assert.Equal(t, "0 rows", Count("row", 0))
	assert.Equal(t, "1 row", Count("row", 1))
	assert.Equal(t, "3 rows", Count("row", 3))
	assert.Equal(t, "2 tables", Count("table", 2))
}

func TestPrinterResult(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, WithColor(false))

	p.Result([]string{"id", "name", "joined"}, []sql.Row{
		{sql.IntValue(1), sql.VarcharValue("Alice"), sql.DateValue(mustDate(t, "2024-01-15"))},
		{sql.IntValue(2), sql.VarcharValue("Bob"), sql.DateValue(mustDate(t, "2023-12-01"))},
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 4)

	assert.Contains(t, out, "id")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "2024-01-15")
	assert.Contains(t, out, "│")
	assert.Equal(t, "(2 rows)", lines[len(lines)-1])

	header := strings.Index(out, "name")
	alice := strings.Index(out, "Alice")
	bob := strings.Index(out, "Bob")
	assert.Less(t, header, alice)
	assert.Less(t, alice, bob)
}

func TestPrinterResultEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, WithColor(false)).Result([]string{"id"}, nil)

	out := buf.String()
	assert.Contains(t, out, "id")
	assert.True(t, strings.HasSuffix(out, "(0 rows)\n"))
}

func TestPrinterEcho(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, WithColor(false))

	p.Echo(&sql.SelectStmt{Columns: []string{"a", "b"}, TableName: "t"})
	p.Echo(&sql.InsertStmt{TableName: "t", Values: []string{"1", "x"}})
	p.Echo(&sql.CreateTableStmt{TableName: "t", Columns: []sql.Column{{Name: "a", Type: sql.TypeInt}}})

	assert.Equal(t,
		"Select: SELECT a, b FROM t\n"+
			"Insert: INSERT INTO t ('1', 'x')\n"+
			"Create table: CREATE TABLE t (a INT)\n",
		buf.String())
}

func TestPrinterError(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, WithColor(false)).Error(errors.New("Unknown statement"))
	assert.Equal(t, "Error: Unknown statement\n", buf.String())
}

func TestPrinterTables(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, WithColor(false)).Tables([]string{"alpha", "beta"})
	assert.Equal(t, "alpha\nbeta\n(2 tables)\n", buf.String())
}

func TestPrinterColorDroppedForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Error(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse(sql.DateLayout, s)
	require.NoError(t, err)
	return d
}
