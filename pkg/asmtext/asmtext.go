// Package asmtext is a small two-pass assembler for the Proto
// instruction set, turning human-written mnemonics into the hex memory
// image cmd/protoemu loads. It is a supplemental front end — the
// original hand-assembled its test programs as literal hex arrays —
// built in the same channel-pipeline idiom the teacher assembler used
// for RiSC-32: a line is parsed into an Instruction, errors and
// successes both flow out over a channel, and label resolution happens
// in a second pass once every line's address is known.
package asmtext

import (
	"fmt"
	"io"
)

// InstructionOrError carries either a successfully parsed instruction
// or the error encountered parsing its source line.
type InstructionOrError struct {
	Instruction Instruction
	Error       error
	Lineno      int
}

// StartAssembler starts assembling r in a background goroutine and
// returns a channel of per-line results in source order. The label
// table is built before any result is emitted, and each instruction's
// references are resolved just before it is sent, so every
// InstructionOrError.Instruction (when Error is nil) is ready to Encode.
func StartAssembler(r io.Reader) <-chan InstructionOrError {
	out := make(chan InstructionOrError)
	go assembleAsync(r, out)
	return out
}

func assembleAsync(r io.Reader, out chan<- InstructionOrError) {
	defer close(out)

	lines, err := parseLines(r)
	if err != nil {
		out <- InstructionOrError{Error: err}
		return
	}

	labels := make(map[string]uint16)
	var pc uint16
	for _, ln := range lines {
		if ln.label != "" {
			if _, dup := labels[ln.label]; dup {
				out <- InstructionOrError{Error: fmt.Errorf("line %d: duplicate label %q", ln.lineno, ln.label), Lineno: ln.lineno}
				return
			}
			labels[ln.label] = pc
		}
		if ln.instr != nil {
			pc++
		}
	}

	pc = 0
	for _, ln := range lines {
		if ln.instr == nil {
			continue
		}
		if err := ln.instr.Resolve(labels, pc); err != nil {
			out <- InstructionOrError{Error: err, Lineno: ln.lineno}
			return
		}
		out <- InstructionOrError{Instruction: ln.instr, Lineno: ln.lineno}
		pc++
	}
}

// Assemble runs the assembler to completion and returns the resulting
// memory image (one Word per instruction, in program order) or the
// first error encountered.
func Assemble(r io.Reader) ([]uint16, error) {
	var words []uint16
	for ioe := range StartAssembler(r) {
		if ioe.Error != nil {
			return nil, ioe.Error
		}
		words = append(words, ioe.Instruction.Encode())
	}
	return words, nil
}
