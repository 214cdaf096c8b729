package cpu

import "github.com/andre-morales/protoemu/pkg/word"

// The ARIT sub-operations, selected by the 3-bit OPR field.
const (
	AritSET0 uint8 = 0b000
	AritSETF uint8 = 0b001
	AritNOT  uint8 = 0b010
	AritAND  uint8 = 0b011
	AritOR   uint8 = 0b100
	AritXOR  uint8 = 0b101
	AritADD  uint8 = 0b110
	AritSUB  uint8 = 0b111
)

// op2Register maps OP2's low two bits to one of {A,B,C,D} when OP2's
// high bit is set. OP2 is only 3 bits wide and this path is gated on
// its high bit already being set, so the low two bits are always one
// of CodeA..CodeD — ByCode here can never fail.
func op2Register(regs *word.Registers, op2 uint8) *word.Word {
	reg, _ := regs.ByCode(word.Code(op2 & 0b011))
	return reg
}

// executeArit runs one ARIT instruction: it sources DST/OP1/OP2 by
// register code, performs the sub-operation named by OPR, and always
// refreshes the LE/EQ/GR comparison flags from the two source operands.
// It returns an InvalidRegisterError if DST or OP1 names no register.
func executeArit(regs *word.Registers, fields AritFields, pc word.Word) error {
	dst, ok := regs.ByCode(word.Code(fields.DST))
	if !ok {
		return &InvalidRegisterError{Field: "DST", Code: fields.DST, PC: pc}
	}
	op1r, ok := regs.ByCode(word.Code(fields.OP1))
	if !ok {
		return &InvalidRegisterError{Field: "OP1", Code: fields.OP1, PC: pc}
	}
	op1 := *op1r

	var op2 word.Word
	if fields.OP2&0b100 != 0 {
		op2 = *op2Register(regs, fields.OP2)
	}

	switch fields.OPR {
	case AritSET0:
		*dst = 0x0000
	case AritSETF:
		*dst = 0xFFFF
	case AritNOT:
		*dst = ^op1
	case AritAND:
		*dst = op1 & op2
	case AritOR:
		*dst = op1 | op2
	case AritXOR:
		*dst = op1 ^ op2
	case AritADD:
		sum := uint32(op1) + uint32(op2)
		*dst = word.Word(sum)
		setFlag(&regs.PSW, FlagOV, sum > 0xFFFF)
	case AritSUB:
		*dst = op1 - op2
		setFlag(&regs.PSW, FlagUN, op2 > op1)
	}

	setComparisonFlags(&regs.PSW, op1, op2)
	return nil
}
