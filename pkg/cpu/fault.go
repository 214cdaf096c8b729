package cpu

import (
	"fmt"

	"github.com/andre-morales/protoemu/pkg/word"
)

// BadInstructionError is raised when Execute decodes an opcode nibble
// that names no instruction.
type BadInstructionError struct {
	Word word.Word
	PC   word.Word
}

func (e *BadInstructionError) Error() string {
	return fmt.Sprintf("bad instruction %s at PC=%s", e.Word, e.PC)
}

// InvalidRegisterError is raised when ARIT's DST or OP1 subfield names a
// nonexistent register (codes 0b100/0b101). OP2 never raises it: its
// remapped code is always one of A..D.
type InvalidRegisterError struct {
	Field string // "DST" or "OP1"
	Code  uint8
	PC    word.Word
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("ARIT %s names no register (code=%03b) at PC=%s", e.Field, e.Code, e.PC)
}

// LoopAroundError is raised by Advance when PC rolls past the end of
// memory. The caller decides whether this is a fault or a warning
// (FAULT_ON_LOOP_AROUND); PC has already been wrapped to 0 by the time
// this error is returned.
type LoopAroundError struct {
	MemSize int
}

func (e *LoopAroundError) Error() string {
	return fmt.Sprintf("PC advanced past memSize=%#x and wrapped to 0", e.MemSize)
}
