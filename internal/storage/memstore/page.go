package memstore

import (
	"fmt"

	"sqlr/internal/sql"
)

// PageCapacity is the number of row slots in a page.
const PageCapacity = 128

// page is a fixed-size array of row slots.
//
// Invariants:
//
//	0 <= free <= PageCapacity
//	slots[0 : PageCapacity-free] are occupied, the rest are empty
//
// Rows are never removed, so the first empty slot is always the one right
// after the last occupied slot.
type page struct {
	id    int
	slots [PageCapacity]sql.Row
	free  int
}

func newPage(id int) *page {
	return &page{id: id, free: PageCapacity}
}

func (p *page) isFull() bool {
	return p.free == 0
}

func (p *page) numRows() int {
	return PageCapacity - p.free
}

// insertRow places row in the first empty slot and returns the slot index.
func (p *page) insertRow(row sql.Row) (int, error) {
	if p.isFull() {
		return 0, fmt.Errorf("page %d: page is full", p.id)
	}

	slot := p.numRows()
	p.slots[slot] = row
	p.free--
	return slot, nil
}

// iterateRows calls fn for each occupied slot in slot order.
func (p *page) iterateRows(fn func(slot int, row sql.Row)) {
	for i := 0; i < p.numRows(); i++ {
		fn(i, p.slots[i])
	}
}
