// Package cpu implements the Proto processor's fetch/execute/advance
// cycle: instruction decoding, the ARIT unit, PSW flag updates, and the
// fault conditions that can interrupt (without terminating) execution.
package cpu

import (
	"github.com/andre-morales/protoemu/pkg/memory"
	"github.com/andre-morales/protoemu/pkg/word"
)

// StepResult classifies the outcome of Execute.
type StepResult int

const (
	ResultOK StepResult = iota
	ResultHalt
	ResultFault
)

// CPU holds the register file and a pointer to the memory it operates
// on. It has no notion of breakpoints, stepping, or the REPL — those
// live in pkg/debugger, which drives CPU through Fetch/Execute/Advance.
type CPU struct {
	Regs word.Registers
	Mem  *memory.Memory
}

// New returns a CPU with a zeroed register file operating on mem.
func New(mem *memory.Memory) *CPU {
	return &CPU{Mem: mem}
}

// Fetch loads the instruction at the current PC into RI. PC is left
// unchanged; this is a bounds-checked read.
func (c *CPU) Fetch() error {
	w, err := c.Mem.Read(c.Regs.PC, c.Regs.PC)
	if err != nil {
		return err
	}
	c.Regs.RI = w
	return nil
}

// Execute decodes and runs the instruction currently latched in RI. It
// never advances PC itself (see Advance), except for jump-family
// instructions, which leave PC pointing at target-1 so that the
// subsequent unconditional Advance lands exactly on target.
func (c *CPU) Execute() (StepResult, error) {
	op, arg := Decode(c.Regs.RI)
	pc := c.Regs.PC
	switch op {
	case OpNOP:
		return ResultOK, nil
	case OpLDA:
		v, err := c.Mem.Read(word.Word(arg), pc)
		if err != nil {
			return ResultFault, err
		}
		c.Regs.A = v
		return ResultOK, nil
	case OpSTA:
		if err := c.Mem.Write(word.Word(arg), c.Regs.A, pc); err != nil {
			return ResultFault, err
		}
		return ResultOK, nil
	case OpJMP:
		if err := c.Mem.Guard(word.Word(arg), pc); err != nil {
			return ResultFault, err
		}
		c.Regs.R = pc + 1
		c.Regs.PC = word.Word(arg) - 1
		return ResultOK, nil
	case OpJNZ:
		if c.Regs.A != 0 {
			if err := c.Mem.Guard(word.Word(arg), pc); err != nil {
				return ResultFault, err
			}
			c.Regs.R = pc + 1
			c.Regs.PC = word.Word(arg) - 1
		}
		return ResultOK, nil
	case OpRET:
		if err := c.Mem.Guard(c.Regs.R, pc); err != nil {
			return ResultFault, err
		}
		next := pc
		c.Regs.PC = c.Regs.R - 1
		c.Regs.R = next + 1
		return ResultOK, nil
	case OpARIT:
		fields := DecodeArit(arg)
		if err := executeArit(&c.Regs, fields, pc); err != nil {
			return ResultFault, err
		}
		return ResultOK, nil
	case OpHLT:
		return ResultHalt, nil
	default:
		return ResultFault, &BadInstructionError{Word: c.Regs.RI, PC: pc}
	}
}

// Advance increments PC. If PC rolls past the end of memory it wraps to
// 0 and returns a LoopAroundError; the caller (pkg/debugger) decides
// whether that is a fault or a warning.
func (c *CPU) Advance() error {
	c.Regs.PC++
	if int(c.Regs.PC) >= c.Mem.Size() {
		memSize := c.Mem.Size()
		c.Regs.PC = 0
		return &LoopAroundError{MemSize: memSize}
	}
	return nil
}
