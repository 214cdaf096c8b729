package cpu

import "github.com/andre-morales/protoemu/pkg/word"

// Opcode is the 4-bit high nibble of an instruction word, reframed as a
// tagged enumeration rather than a raw integer switched on directly —
// invalid opcodes are a distinct, uniformly handled member of the set.
type Opcode uint8

const (
	OpNOP     Opcode = 0x0
	OpLDA     Opcode = 0x1
	OpSTA     Opcode = 0x2
	OpJMP     Opcode = 0x3
	OpJNZ     Opcode = 0x4
	OpRET     Opcode = 0x5
	OpARIT    Opcode = 0x6
	OpHLT     Opcode = 0xF
	OpInvalid Opcode = 0xFF // never a real nibble; the decode fallback
)

// Mnemonic returns the canonical three/four-letter mnemonic for an
// opcode, or "???" for OpInvalid.
func (op Opcode) Mnemonic() string {
	switch op {
	case OpNOP:
		return "NOP"
	case OpLDA:
		return "LDA"
	case OpSTA:
		return "STA"
	case OpJMP:
		return "JMP"
	case OpJNZ:
		return "JNZ"
	case OpRET:
		return "RET"
	case OpARIT:
		return "ARIT"
	case OpHLT:
		return "HLT"
	default:
		return "???"
	}
}

// Decode splits a 16-bit instruction word into its opcode and 12-bit
// argument. Any nibble not named above decodes to OpInvalid; arg is
// still returned so the caller can report it in a fault message.
func Decode(w word.Word) (op Opcode, arg uint16) {
	nibble := Opcode(w >> 12)
	arg = uint16(w) & 0x0FFF
	switch nibble {
	case OpNOP, OpLDA, OpSTA, OpJMP, OpJNZ, OpRET, OpARIT, OpHLT:
		return nibble, arg
	default:
		return OpInvalid, arg
	}
}

// AritFields is the further decode of an ARIT instruction's 12-bit
// argument into its four 3-bit subfields.
type AritFields struct {
	OPR uint8
	DST uint8
	OP1 uint8
	OP2 uint8
}

// DecodeArit splits an ARIT instruction's 12-bit argument into OPR, DST,
// OP1 and OP2, each 3 bits wide, high to low.
func DecodeArit(arg uint16) AritFields {
	return AritFields{
		OPR: uint8(arg>>9) & 0b111,
		DST: uint8(arg>>6) & 0b111,
		OP1: uint8(arg>>3) & 0b111,
		OP2: uint8(arg) & 0b111,
	}
}
