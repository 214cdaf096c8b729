package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andre-morales/protoemu/pkg/breakpoint"
	"github.com/andre-morales/protoemu/pkg/cpu"
	"github.com/andre-morales/protoemu/pkg/disasm"
	"github.com/andre-morales/protoemu/pkg/word"
)

// repl blocks on stdin until a command returns control to the main
// loop (step, continue, reset, or quit). An empty line re-runs the
// previous non-empty command verbatim. In DummyMode (or with no line
// reader attached) repl returns ControlNone at once without reading
// stdin; PreExecute still calls it whenever the debugger is armed,
// since breakpoints, BreakAtHalt and faults arm it in DummyMode too.
func (d *Debugger) repl(c *cpu.CPU) Control {
	if d.cfg.DummyMode || d.line == nil {
		return ControlNone
	}
	for {
		raw, err := d.line.Prompt(d.format.Prompt("(protoemu) "))
		if err != nil {
			return ControlQuit
		}
		cmd := strings.TrimSpace(raw)
		if cmd == "" {
			if d.lastCommand == "" {
				continue
			}
			cmd = d.lastCommand
		} else {
			d.lastCommand = cmd
			d.line.AppendHistory(cmd)
		}

		ctrl, done := d.dispatch(c, cmd)
		if done {
			return ctrl
		}
	}
}

// dispatch runs one command line and reports whether the REPL should
// return control to the main loop.
func (d *Debugger) dispatch(c *cpu.CPU, line string) (Control, bool) {
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "step", "s":
		return d.cmdStep(args)
	case "continue", "c":
		d.breaking.Store(false)
		return ControlNone, true
	case "registers", "r", "regs":
		d.cmdRegisters(c)
		return ControlNone, false
	case "disassembly", "d":
		d.cmdDisassembly(c, args)
		return ControlNone, false
	case "memory", "m", "x":
		d.cmdMemory(args)
		return ControlNone, false
	case "break", "b":
		d.cmdBreak(c, args)
		return ControlNone, false
	case "reset":
		return d.Reset(c), true
	case "nobreak":
		d.breakOnFaults = false
		return ControlNone, false
	case "dobreak":
		d.breakOnFaults = true
		return ControlNone, false
	case "quit", "q":
		return ControlQuit, true
	case "help":
		d.cmdHelp()
		return ControlNone, false
	default:
		d.printf("unknown command %q, type 'help'\n", name)
		return ControlNone, false
	}
}

// cmdStep executes one instruction and returns; if N is given, N-1
// additional instructions execute before the REPL reopens. N is
// decimal, per spec.md §4.8.
func (d *Debugger) cmdStep(args []string) (Control, bool) {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			d.printLine(d.format.Fault(fmt.Sprintf("invalid step count %q", args[0])))
			return ControlNone, false
		}
		d.stepsLeft.Store(int64(n - 1))
	}
	return ControlNone, true
}

func (d *Debugger) cmdRegisters(c *cpu.CPU) {
	r := c.Regs
	d.printf("A=%s  B=%s  C=%s  D=%s\n", r.A, r.B, r.C, r.D)
	d.printf("R=%s  PSW=%s  PC=%s  RI=%s\n", r.R, r.PSW, r.PC, r.RI)
	d.printf("  OV=%d UN=%d LE=%d EQ=%d GR=%d\n",
		bit(r.PSW, cpu.FlagOV), bit(r.PSW, cpu.FlagUN),
		bit(r.PSW, cpu.FlagLE), bit(r.PSW, cpu.FlagEQ), bit(r.PSW, cpu.FlagGR))
}

func bit(psw, flag word.Word) int {
	if psw&flag != 0 {
		return 1
	}
	return 0
}

// cmdDisassembly prints count instructions starting at addr, defaulting
// to addr=PC and count=1.
func (d *Debugger) cmdDisassembly(c *cpu.CPU, args []string) {
	addr := c.Regs.PC
	count := uint64(1)
	if len(args) > 0 {
		a, err := parseHex(args[0])
		if err != nil {
			d.printLine(d.format.Fault(fmt.Sprintf("bad address %q", args[0])))
			return
		}
		if int(a) >= c.Mem.Size() {
			d.printLine(d.format.Fault(fmt.Sprintf("address %04X is out of bounds", a)))
			return
		}
		addr = word.Word(a)
	}
	if len(args) > 1 {
		n, err := parseHex(args[1])
		if err != nil {
			d.printLine(d.format.Fault(fmt.Sprintf("bad count %q", args[1])))
			return
		}
		count = n
	}
	for i := uint64(0); i < count; i++ {
		cur := addr + word.Word(i)
		if int(cur) >= c.Mem.Size() {
			d.printLine(d.format.Fault(fmt.Sprintf("address %s is out of bounds", cur)))
			return
		}
		w, _ := c.Mem.Read(cur, c.Regs.PC)
		d.printLine(disasm.Line(cur, w, d.cfg.DefaultExtendedNotation))
	}
}

// cmdMemory hex-dumps words, 8 per line, defaulting to 8 words.
func (d *Debugger) cmdMemory(args []string) {
	if len(args) < 1 {
		d.printf("usage: memory <addr> [words]\n")
		return
	}
	addr, err := parseHex(args[0])
	if err != nil {
		d.printLine(d.format.Fault(fmt.Sprintf("bad address %q", args[0])))
		return
	}
	count := uint64(8)
	if len(args) > 1 {
		count, err = parseHex(args[1])
		if err != nil {
			d.printLine(d.format.Fault(fmt.Sprintf("bad word count %q", args[1])))
			return
		}
	}
	if int(addr) >= d.mem.Size() {
		d.printLine(d.format.Fault(fmt.Sprintf("address %04X is out of bounds", addr)))
		return
	}
	for i := uint64(0); i < count; i++ {
		cur := word.Word(addr) + word.Word(i)
		if int(cur) >= d.mem.Size() {
			break
		}
		if i%8 == 0 {
			if i > 0 {
				d.printf("\n")
			}
			d.printf("%s:", cur)
		}
		w, _ := d.mem.Read(cur, cur)
		d.printf(" %s", w)
	}
	d.printf("\n")
}

// cmdBreak installs a breakpoint, defaulting to addr=PC, hits=-1
// (unlimited).
func (d *Debugger) cmdBreak(c *cpu.CPU, args []string) {
	addr := c.Regs.PC
	hits := breakpoint.Unlimited
	if len(args) > 0 {
		a, err := parseHex(args[0])
		if err != nil {
			d.printLine(d.format.Fault(fmt.Sprintf("bad address %q", args[0])))
			return
		}
		if int(a) >= c.Mem.Size() {
			d.printLine(d.format.Fault(fmt.Sprintf("address %04X is out of bounds", a)))
			return
		}
		addr = word.Word(a)
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			d.printLine(d.format.Fault(fmt.Sprintf("bad hit count %q", args[1])))
			return
		}
		hits = breakpoint.Hits(n)
	}
	d.SetBreakpoint(addr, hits)
	d.printf("breakpoint set at %s (hits=%d)\n", addr, hits)
}

func (d *Debugger) cmdHelp() {
	d.printf("%s", helpText)
}

const helpText = `commands:
  step, s [N]          execute one instruction (N-1 more before next pause)
  continue, c           resume free execution
  registers, r, regs    dump the register file
  disassembly, d [a] [n]  disassemble n instructions starting at a (hex)
  memory, m, x a [n]    hex-dump n words starting at a (hex)
  break, b [a] [hits]   set a breakpoint (hex addr, default PC, hits=-1)
  reset                 restore the snapshot and restart at PC=0
  nobreak / dobreak      disable/enable breaking on faults
  quit, q               leave the debugger
  help                  this text
  (empty)               repeat the previous command
`

func parseHex(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 32)
}

// disassembleCurrent renders the instruction latched in RI at the
// current PC, in the configured notation.
func (d *Debugger) disassembleCurrent(c *cpu.CPU) string {
	return disasm.Line(c.Regs.PC, c.Regs.RI, d.cfg.DefaultExtendedNotation)
}
