// Package memory implements Proto's flat memory plane: a fixed-size
// array of Words addressed directly by 12-bit addresses, plus the
// immutable snapshot used to implement the debugger's reset command.
package memory

import (
	"errors"
	"fmt"

	"github.com/andre-morales/protoemu/pkg/word"
)

// MaxSize is the largest legal memory size: addresses are 12 bits wide.
const MaxSize = 0x1000

// ErrSizeTooLarge is returned by New when memSize exceeds MaxSize.
var ErrSizeTooLarge = errors.New("memory: size exceeds 12-bit address space")

// OutOfBoundsError is raised by Read/Write when addr >= memSize. It
// carries the offending address and the PC at the time of the access so
// the debugger's fault reporter can print a precise diagnostic.
type OutOfBoundsError struct {
	Addr word.Word
	PC   word.Word
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory access at %s is out of bounds (PC=%s)", e.Addr, e.PC)
}

// Memory is a flat array of memSize Words, owned externally by whoever
// constructs it (the loading harness) and mutated by the CPU core and by
// Reset.
type Memory struct {
	cells []word.Word
}

// New wraps an externally owned slice of cells as Proto memory. The
// slice is used in place, not copied: writes through Memory mutate it.
func New(cells []word.Word) (*Memory, error) {
	if len(cells) > MaxSize {
		return nil, ErrSizeTooLarge
	}
	return &Memory{cells: cells}, nil
}

// Size returns memSize, the number of addressable Words.
func (m *Memory) Size() int {
	return len(m.cells)
}

// Guard bounds-checks addr against Size() without reading or writing
// through it, for instructions (JMP/JNZ/RET) that consume an address
// as a jump target rather than a data operand.
func (m *Memory) Guard(addr word.Word, pc word.Word) error {
	if int(addr) >= len(m.cells) {
		return &OutOfBoundsError{Addr: addr, PC: pc}
	}
	return nil
}

// Read returns the Word at addr, bounds-checked against Size(). pc is
// recorded in the resulting error for diagnostics; it does not affect
// the read itself.
func (m *Memory) Read(addr word.Word, pc word.Word) (word.Word, error) {
	if int(addr) >= len(m.cells) {
		return 0, &OutOfBoundsError{Addr: addr, PC: pc}
	}
	return m.cells[addr], nil
}

// Write stores val at addr, bounds-checked against Size(). On an
// out-of-bounds address the write does not happen.
func (m *Memory) Write(addr word.Word, val word.Word, pc word.Word) error {
	if int(addr) >= len(m.cells) {
		return &OutOfBoundsError{Addr: addr, PC: pc}
	}
	m.cells[addr] = val
	return nil
}

// Snapshot returns an immutable copy of the current contents, suitable
// for restoring memory later via RestoreFrom.
func (m *Memory) Snapshot() []word.Word {
	cp := make([]word.Word, len(m.cells))
	copy(cp, m.cells)
	return cp
}

// RestoreFrom overwrites memory with the contents of a snapshot
// previously obtained from Snapshot. The snapshot must have the same
// length as this Memory.
func (m *Memory) RestoreFrom(snapshot []word.Word) {
	copy(m.cells, snapshot)
}
