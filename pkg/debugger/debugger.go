// Package debugger implements the interactive controller that sits
// between Proto's fetch/execute/advance loop and its user: breakpoints
// with hit-counts, a step/continue REPL, fault-induced and halt-induced
// breaks, a deterministic reset-to-snapshot, and the asynchronous
// Ctrl-C break request.
package debugger

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/peterh/liner"

	"github.com/andre-morales/protoemu/pkg/breakpoint"
	"github.com/andre-morales/protoemu/pkg/cpu"
	"github.com/andre-morales/protoemu/pkg/memory"
	"github.com/andre-morales/protoemu/pkg/term"
	"github.com/andre-morales/protoemu/pkg/word"
)

// Control is the REPL's (and reset's) verdict on what the main loop
// should do next.
type Control int

const (
	ControlNone Control = iota
	ControlReset
	ControlQuit
)

// Debugger holds all debugger-owned state: breakpoints, stepping,
// fault-break policy, and the fields the async signal handler is
// allowed to touch. Exactly one Debugger should drive a given CPU; it
// is passed explicitly rather than reached through a global.
type Debugger struct {
	cfg Config

	breakpoints *breakpoint.Table

	// breaking and stepsLeft are touched by both the main loop and the
	// SIGINT handler goroutine (see signal.go), so both are atomic.
	breaking  atomic.Bool
	stepsLeft atomic.Int64

	// lastSig records the UnixNano timestamp of the previous SIGINT,
	// for the double-tap-to-quit window. Atomic for the same reason.
	lastSig atomic.Int64

	breakOnFaults bool // mutated only by the REPL, single-threaded

	lastCommand string

	snapshot []word.Word
	mem      *memory.Memory

	out    io.Writer
	line   *liner.State
	format *term.Formatter
	log    *slog.Logger
}

// New builds a Debugger for mem, taking an immutable snapshot of its
// current contents for later use by the reset command, and writing
// output to out.
func New(cfg Config, mem *memory.Memory, out io.Writer, log *slog.Logger) *Debugger {
	d := &Debugger{
		cfg:           cfg,
		breakpoints:   breakpoint.NewTable(),
		breakOnFaults: cfg.BreakAtFaults,
		snapshot:      mem.Snapshot(),
		mem:           mem,
		out:           out,
		format:        term.New(cfg.EnableColors),
		log:           log,
	}
	d.breaking.Store(cfg.StartInBreakingMode)
	return d
}

// SetBreakpoint installs or replaces a breakpoint, per spec.md's
// invariant of at most one breakpoint per address.
func (d *Debugger) SetBreakpoint(addr word.Word, hits breakpoint.Hits) {
	d.breakpoints.Set(addr, hits)
}

// Run drives cpu through Fetch/PreExecute/Execute/Advance until it
// halts, the REPL quits, or a SIGINT double-tap terminates the process
// (see signal.go). It returns the process exit code: 0 on normal halt
// or REPL-requested quit.
func (d *Debugger) Run(c *cpu.CPU) int {
	if d.cfg.InstallSigintHandler {
		stop := InstallSignalHandler(d)
		defer stop()
	}
	if d.line == nil && !d.cfg.DummyMode {
		d.line = liner.NewLiner()
		defer d.line.Close()
		d.line.SetCtrlCAborts(false)
	}

	for {
		if err := c.Fetch(); err != nil {
			d.Fault("%s", err)
			if advErr := c.Advance(); advErr != nil {
				d.reportLoopAround(advErr)
			}
			continue
		}

		if !d.cfg.DummyMode {
			d.printDisassembly(c)
		}

		switch d.PreExecute(c) {
		case ControlQuit:
			return 0
		case ControlReset:
			continue
		}

		result, err := c.Execute()
		if err != nil {
			d.Fault("%s", err)
		}
		if result == cpu.ResultHalt {
			return 0
		}

		if advErr := c.Advance(); advErr != nil {
			d.reportLoopAround(advErr)
		}
	}
}

func (d *Debugger) reportLoopAround(err error) {
	if d.cfg.FaultOnLoopAround {
		d.Fault("%s", err)
	} else {
		d.Warn("%s", err)
	}
}

// PreExecute implements spec.md §4.7's protocol, in order: breakpoint
// check, break-at-halt check, step countdown, and — only if still
// breaking — the REPL.
func (d *Debugger) PreExecute(c *cpu.CPU) Control {
	pc := c.Regs.PC

	if d.breakpoints.Hit(pc) {
		d.breaking.Store(true)
		d.stepsLeft.Store(0)
		d.printf("§6[BRK]§R breakpoint hit at %s\n", pc)
	}

	if d.cfg.BreakAtHalt {
		if op, _ := cpu.Decode(c.Regs.RI); op == cpu.OpHLT {
			d.breaking.Store(true)
			d.stepsLeft.Store(0)
		}
	}

	if n := d.stepsLeft.Load(); n > 0 {
		d.stepsLeft.Store(n - 1)
		return ControlNone
	}

	if d.breaking.Load() {
		return d.repl(c)
	}
	return ControlNone
}

// Fault prints a diagnostic through the formatter, logs it at
// LevelError, and — if BreakAtFaults is in effect — arms the debugger.
// A fault never terminates the process.
func (d *Debugger) Fault(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintln(d.out, d.format.Fault(msg))
	if d.log != nil {
		d.log.Error(msg)
	}
	if d.breakOnFaults {
		d.breaking.Store(true)
		d.stepsLeft.Store(0)
	}
}

// Warn prints a diagnostic through the formatter and logs it at
// LevelWarn. It never arms the debugger.
func (d *Debugger) Warn(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintln(d.out, d.format.Warn(msg))
	if d.log != nil {
		d.log.Warn(msg)
	}
}

func (d *Debugger) printf(format string, a ...any) {
	fmt.Fprintf(d.out, d.format.Sprint(format), a...)
}

// printLine writes s (already final text, not a format string) through
// the color formatter, followed by a newline.
func (d *Debugger) printLine(s string) {
	fmt.Fprintln(d.out, d.format.Sprint(s))
}

func (d *Debugger) printDisassembly(c *cpu.CPU) {
	d.printLine(d.disassembleCurrent(c))
}

// Reset clears the register file, restores memory from the snapshot
// taken at New, leaves breakpoints untouched, and returns ControlReset
// so the main loop restarts at PC=0 without advancing.
func (d *Debugger) Reset(c *cpu.CPU) Control {
	c.Regs.Reset()
	d.mem.RestoreFrom(d.snapshot)
	return ControlReset
}
