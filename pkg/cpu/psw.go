package cpu

import "github.com/andre-morales/protoemu/pkg/word"

// PSW flag bits, numbered from the LSB. OV and UN are sticky: only ADD
// and SUB respectively may set or clear them. LE/EQ/GR are recomputed
// by every ARIT operation from its two source operands.
const (
	FlagGR word.Word = 1 << 11
	FlagEQ word.Word = 1 << 12
	FlagLE word.Word = 1 << 13
	FlagUN word.Word = 1 << 14
	FlagOV word.Word = 1 << 15
)

func setFlag(psw *word.Word, flag word.Word, on bool) {
	if on {
		*psw |= flag
	} else {
		*psw &^= flag
	}
}

// setComparisonFlags updates LE/EQ/GR from the two ARIT source
// operands, leaving OV/UN untouched. Exactly one of LE, EQ, GR holds
// after the call.
func setComparisonFlags(psw *word.Word, op1, op2 word.Word) {
	setFlag(psw, FlagLE, op1 < op2)
	setFlag(psw, FlagEQ, op1 == op2)
	setFlag(psw, FlagGR, op1 > op2)
}
