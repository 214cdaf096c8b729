// Package word defines the Proto machine's basic storage unit and its
// register file.
//
// Proto is a 16-bit accumulator machine with eight named registers, only
// six of which are reachable through the 3-bit register code used by the
// ARIT instruction.
package word

import "fmt"

// Word is the Proto machine's unit of storage: memory cells and
// registers are both Words.
type Word uint16

// String renders a Word as a zero-padded, four-digit hex literal.
func (w Word) String() string {
	return fmt.Sprintf("%04X", uint16(w))
}

// Code identifies a register by its 3-bit ARIT encoding.
type Code uint8

// The register codes reachable by ARIT's 3-bit fields. Codes 0b100 and
// 0b101 have no corresponding register.
const (
	CodeA   Code = 0b000
	CodeB   Code = 0b001
	CodeC   Code = 0b010
	CodeD   Code = 0b011
	CodeR   Code = 0b110
	CodePSW Code = 0b111
)

// Registers is the Proto machine's register file: eight named 16-bit
// registers, all zeroed at reset.
//
//   - A is the accumulator.
//   - B, C, D are general purpose.
//   - R holds the return address left behind by JMP/JNZ/RET.
//   - PSW is the processor status word (see the Flag constants in package cpu).
//   - PC is the program counter.
//   - RI holds the last word fetched from memory.
type Registers struct {
	A, B, C, D Word
	R          Word
	PSW        Word
	PC         Word
	RI         Word
}

// Reset zeroes every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

// ByCode returns a handle into the register selected by a 3-bit ARIT
// code, or ok=false if the code names no register (0b100 or 0b101). The
// returned pointer aliases the single field inside r and nothing else;
// writing through it mutates only that register.
func (r *Registers) ByCode(code Code) (reg *Word, ok bool) {
	switch code {
	case CodeA:
		return &r.A, true
	case CodeB:
		return &r.B, true
	case CodeC:
		return &r.C, true
	case CodeD:
		return &r.D, true
	case CodeR:
		return &r.R, true
	case CodePSW:
		return &r.PSW, true
	default:
		return nil, false
	}
}
