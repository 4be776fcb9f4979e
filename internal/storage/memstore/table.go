package memstore

import (
	"log/slog"

	"sqlr/internal/sql"
	"sqlr/internal/storage"
)

// Table holds a fixed schema and its rows, grouped into pages.
// Pages are only ever appended; a new one is allocated when every existing
// page is full.
type Table struct {
	name   string
	cols   []sql.Column
	pages  []*page
	logger *slog.Logger
}

func newTable(name string, cols []sql.Column, logger *slog.Logger) *Table {
	schema := make([]sql.Column, len(cols))
	copy(schema, cols)

	return &Table{
		name:   name,
		cols:   schema,
		logger: logger,
	}
}

// Columns returns a copy of the schema.
func (t *Table) Columns() []sql.Column {
	out := make([]sql.Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Insert converts raw against the schema position by position and stores
// the row. Any conversion failure aborts the insert before a page is touched.
func (t *Table) Insert(raw []string) error {
	row, err := t.convertValues(raw)
	if err != nil {
		return err
	}

	p := t.findOrCreatePage()
	_, err = p.insertRow(row)
	return err
}

func (t *Table) convertValues(raw []string) (sql.Row, error) {
	if len(raw) != len(t.cols) {
		return nil, &storage.CountError{Expected: len(t.cols), Got: len(raw)}
	}

	row := make(sql.Row, len(t.cols))
	for i, col := range t.cols {
		v, err := sql.Coerce(col.Type, raw[i])
		if err != nil {
			return nil, &storage.ColumnError{Column: col.Name, Err: err}
		}
		row[i] = v
	}
	return row, nil
}

// findOrCreatePage returns the first page, in allocation order, with a free
// slot. It allocates a new page when all are full.
func (t *Table) findOrCreatePage() *page {
	for _, p := range t.pages {
		if !p.isFull() {
			return p
		}
	}

	p := newPage(len(t.pages))
	t.pages = append(t.pages, p)
	t.logger.Debug("allocated page",
		slog.String("table", t.name),
		slog.Int("page", p.id),
		slog.Int("pages", len(t.pages)))
	return p
}

// Select returns a copy of every row: pages in allocation order, slots in
// index order.
func (t *Table) Select() []sql.Row {
	rows := make([]sql.Row, 0, t.RowCount())
	for _, p := range t.pages {
		p.iterateRows(func(_ int, r sql.Row) {
			rows = append(rows, r.Clone())
		})
	}
	return rows
}

// RowCount returns the number of stored rows.
func (t *Table) RowCount() int {
	n := 0
	for _, p := range t.pages {
		n += p.numRows()
	}
	return n
}

// PageCount returns the number of allocated pages.
func (t *Table) PageCount() int {
	return len(t.pages)
}
