// Package disasm renders Proto instruction words as human-readable
// assembly, in either the standard ARIT notation ("ARIT OP, DST, OP1,
// OP2") or the extended infix notation ("DST = OP1 & OP2").
package disasm

import (
	"fmt"

	"github.com/andre-morales/protoemu/pkg/cpu"
	"github.com/andre-morales/protoemu/pkg/word"
)

// regNames maps the 3-bit ARIT register code to its mnemonic, mirroring
// the table in word.Registers.ByCode. Codes 0b100 and 0b101 have no
// entry and are rendered as "?<code>".
var regNames = map[uint8]string{
	uint8(word.CodeA):   "A",
	uint8(word.CodeB):   "B",
	uint8(word.CodeC):   "C",
	uint8(word.CodeD):   "D",
	uint8(word.CodeR):   "R",
	uint8(word.CodePSW): "PSW",
}

func regName(code uint8) string {
	if name, ok := regNames[code]; ok {
		return name
	}
	return fmt.Sprintf("?%03b", code)
}

// op2Name renders an ARIT OP2 field: "zero" when its high bit is clear,
// otherwise the register named by its low two bits.
func op2Name(op2 uint8) string {
	if op2&0b100 == 0 {
		return "zero"
	}
	return regName(op2 & 0b011)
}

var aritNames = map[uint8]string{
	cpu.AritSET0: "SET0",
	cpu.AritSETF: "SETF",
	cpu.AritNOT:  "NOT",
	cpu.AritAND:  "AND",
	cpu.AritOR:   "OR",
	cpu.AritXOR:  "XOR",
	cpu.AritADD:  "ADD",
	cpu.AritSUB:  "SUB",
}

// Standard renders an instruction word in standard notation: for ARIT,
// "ARIT <OP>, <DST>, <OP1>, <OP2-or-zero>"; LDA/STA as "OP [Xh]"; JMP/JNZ
// as "OP Xh"; everything else by mnemonic alone or a warning marker for
// an unrecognized opcode.
func Standard(w word.Word) string {
	op, arg := cpu.Decode(w)
	switch op {
	case cpu.OpLDA, cpu.OpSTA:
		return fmt.Sprintf("%s [%Xh]", op.Mnemonic(), arg)
	case cpu.OpJMP, cpu.OpJNZ:
		return fmt.Sprintf("%s %Xh", op.Mnemonic(), arg)
	case cpu.OpARIT:
		f := cpu.DecodeArit(arg)
		return fmt.Sprintf("ARIT %s, %s, %s, %s",
			aritNames[f.OPR], regName(f.DST), regName(f.OP1), op2Name(f.OP2))
	case cpu.OpNOP, cpu.OpRET, cpu.OpHLT:
		return op.Mnemonic()
	default:
		return fmt.Sprintf("§9[WARN unknown opcode]§R %04X", uint16(w))
	}
}

// Extended renders an instruction word using infix ARIT notation
// ("DST = OP1 & OP2" and similar); all other opcodes render exactly as
// in Standard.
func Extended(w word.Word) string {
	op, arg := cpu.Decode(w)
	if op != cpu.OpARIT {
		return Standard(w)
	}
	f := cpu.DecodeArit(arg)
	dst := regName(f.DST)
	op1 := regName(f.OP1)
	op2 := op2Name(f.OP2)
	switch f.OPR {
	case cpu.AritSET0:
		return fmt.Sprintf("%s = 0", dst)
	case cpu.AritSETF:
		return fmt.Sprintf("%s = FFFF", dst)
	case cpu.AritNOT:
		return fmt.Sprintf("%s = ~%s", dst, op1)
	case cpu.AritAND:
		return fmt.Sprintf("%s = %s & %s", dst, op1, op2)
	case cpu.AritOR:
		return fmt.Sprintf("%s = %s | %s", dst, op1, op2)
	case cpu.AritXOR:
		return fmt.Sprintf("%s = %s ^ %s", dst, op1, op2)
	case cpu.AritADD:
		return fmt.Sprintf("%s = %s + %s", dst, op1, op2)
	case cpu.AritSUB:
		return fmt.Sprintf("%s = %s - %s", dst, op1, op2)
	default:
		return Standard(w)
	}
}

// Line renders w in either standard or extended notation, picking the
// mode per the DEFAULT_EXTENDED_NOTATION convention, and prefixes it
// with the address it was fetched from.
func Line(addr word.Word, w word.Word, extended bool) string {
	var body string
	if extended {
		body = Extended(w)
	} else {
		body = Standard(w)
	}
	return fmt.Sprintf("%s: %s", addr, body)
}
