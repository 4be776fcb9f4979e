package memstore

import (
	"testing"

	"sqlr/internal/sql"
)

func TestPage_InsertAndIterateRows(t *testing.T) {
	p := newPage(1)

	row1 := sql.Row{sql.IntValue(1), sql.VarcharValue("Alice")}
	row2 := sql.Row{sql.IntValue(2), sql.VarcharValue("Bob")}

	slot0, err := p.insertRow(row1)
	if err != nil {
		t.Fatalf("insertRow(row1) failed: %v", err)
	}
	if slot0 != 0 {
		t.Fatalf("expected first slot index 0, got %d", slot0)
	}

	slot1, err := p.insertRow(row2)
	if err != nil {
		t.Fatalf("insertRow(row2) failed: %v", err)
	}
	if slot1 != 1 {
		t.Fatalf("expected second slot index 1, got %d", slot1)
	}

	if p.numRows() != 2 {
		t.Fatalf("expected numRows=2, got %d", p.numRows())
	}
	if p.free != PageCapacity-2 {
		t.Fatalf("expected free=%d, got %d", PageCapacity-2, p.free)
	}

	var got []sql.Row
	p.iterateRows(func(slot int, r sql.Row) {
		got = append(got, r)
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 rows from iterateRows, got %d", len(got))
	}
	if got[0][1].S != "Alice" || got[1][1].S != "Bob" {
		t.Fatalf("rows out of order: %v", got)
	}
}

func TestPage_Full(t *testing.T) {
	p := newPage(0)

	for i := 0; i < PageCapacity; i++ {
		if p.isFull() {
			t.Fatalf("page reported full after %d rows", i)
		}
		if _, err := p.insertRow(sql.Row{sql.IntValue(int32(i))}); err != nil {
			t.Fatalf("insertRow %d failed: %v", i, err)
		}
	}

	if !p.isFull() {
		t.Fatalf("expected page to be full")
	}
	if p.free != 0 {
		t.Fatalf("expected free=0, got %d", p.free)
	}

	if _, err := p.insertRow(sql.Row{sql.IntValue(-1)}); err == nil {
		t.Fatalf("expected error inserting into a full page")
	}
	if p.numRows() != PageCapacity {
		t.Fatalf("full page changed size: %d", p.numRows())
	}
}
