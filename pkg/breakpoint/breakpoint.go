// Package breakpoint implements the debugger's address→hit-count table.
package breakpoint

import "github.com/andre-morales/protoemu/pkg/word"

// Hits encodes a breakpoint's remaining trigger count.
//
//   - 0: disabled — present in the table but never triggers.
//   - >0: triggers on the next matching fetch, then decrements.
//   - <0 (conventionally -1): unlimited, never decrements.
type Hits int

// Unlimited is the conventional "never decrements" hit count.
const Unlimited Hits = -1

// Table is an address→hit-count map with at most one entry per address.
type Table struct {
	byAddr map[word.Word]Hits
}

// NewTable returns an empty breakpoint table.
func NewTable() *Table {
	return &Table{byAddr: make(map[word.Word]Hits)}
}

// Set installs a breakpoint at addr with the given hit count, replacing
// any breakpoint already at that address.
func (t *Table) Set(addr word.Word, hits Hits) {
	t.byAddr[addr] = hits
}

// Remove deletes any breakpoint at addr.
func (t *Table) Remove(addr word.Word) {
	delete(t.byAddr, addr)
}

// Get reports the hit count at addr and whether a breakpoint exists
// there at all (including a disabled one with Hits==0).
func (t *Table) Get(addr word.Word) (Hits, bool) {
	h, ok := t.byAddr[addr]
	return h, ok
}

// Hit consults the table at addr. If a breakpoint is present and its
// hit count is nonzero, Hit reports triggered=true and, for a
// positive (finite) count, decrements it in place.
func (t *Table) Hit(addr word.Word) (triggered bool) {
	h, ok := t.byAddr[addr]
	if !ok || h == 0 {
		return false
	}
	if h > 0 {
		t.byAddr[addr] = h - 1
	}
	return true
}

// Len reports how many addresses carry a breakpoint entry, including
// inert (Hits==0) ones.
func (t *Table) Len() int {
	return len(t.byAddr)
}
