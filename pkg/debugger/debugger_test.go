package debugger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andre-morales/protoemu/pkg/breakpoint"
	"github.com/andre-morales/protoemu/pkg/cpu"
	"github.com/andre-morales/protoemu/pkg/memory"
	"github.com/andre-morales/protoemu/pkg/word"
)

func newDummyDebugger(t *testing.T, cells []word.Word) (*Debugger, *cpu.CPU, *bytes.Buffer) {
	t.Helper()
	mem, err := memory.New(cells)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.DummyMode = true
	cfg.StartInBreakingMode = false
	cfg.InstallSigintHandler = false
	cfg.EnableColors = false
	var out bytes.Buffer
	d := New(cfg, mem, &out, nil)
	return d, cpu.New(mem), &out
}

func TestRunHaltsOnHLT(t *testing.T) {
	d, c, _ := newDummyDebugger(t, []word.Word{0xF000})
	if code := d.Run(c); code != 0 {
		t.Errorf("Run() on an immediate HLT returned %d, want 0", code)
	}
}

func TestFaultWritesAndLatchesBreak(t *testing.T) {
	d, _, out := newDummyDebugger(t, []word.Word{0})
	d.breakOnFaults = true
	d.Fault("boom %d", 42)
	if !strings.Contains(out.String(), "boom 42") {
		t.Errorf("output = %q, want it to contain the fault message", out.String())
	}
	if !d.breaking.Load() {
		t.Error("Fault with breakOnFaults=true did not arm the debugger")
	}
}

func TestFaultDoesNotArmWhenDisabled(t *testing.T) {
	d, _, _ := newDummyDebugger(t, []word.Word{0})
	d.breakOnFaults = false
	d.Fault("minor issue")
	if d.breaking.Load() {
		t.Error("Fault armed the debugger even though breakOnFaults=false")
	}
}

func TestWarnNeverArms(t *testing.T) {
	d, _, out := newDummyDebugger(t, []word.Word{0})
	d.breakOnFaults = true
	d.Warn("just a warning")
	if d.breaking.Load() {
		t.Error("Warn armed the debugger, want faults only")
	}
	if !strings.Contains(out.String(), "just a warning") {
		t.Errorf("output = %q, want it to contain the warning message", out.String())
	}
}

func TestSetBreakpointIsVisibleToPreExecute(t *testing.T) {
	d, c, _ := newDummyDebugger(t, []word.Word{0, 0})
	d.SetBreakpoint(0, breakpoint.Unlimited)
	if ctrl := d.PreExecute(c); ctrl != ControlNone {
		t.Fatalf("PreExecute in DummyMode = %v, want ControlNone (no REPL to wait on)", ctrl)
	}
	if !d.breaking.Load() {
		t.Error("breakpoint hit at PC=0 did not arm the debugger")
	}
}

func TestResetRestoresSnapshotAndZeroesRegisters(t *testing.T) {
	d, c, _ := newDummyDebugger(t, []word.Word{0x1234, 0x5678})
	c.Regs.A = 0xDEAD
	c.Mem.Write(0, 0x0000, 0)

	if ctrl := d.Reset(c); ctrl != ControlReset {
		t.Errorf("Reset() = %v, want ControlReset", ctrl)
	}
	if c.Regs.A != 0 {
		t.Errorf("A after Reset = %v, want 0", c.Regs.A)
	}
	got, _ := c.Mem.Read(0, 0)
	if got != 0x1234 {
		t.Errorf("mem[0] after Reset = %v, want the original snapshot value 1234", got)
	}
}

func TestBreakAtHaltPausesInsteadOfExecuting(t *testing.T) {
	d, c, _ := newDummyDebugger(t, []word.Word{0xF000})
	c.Fetch()
	ctrl := d.PreExecute(c)
	if ctrl != ControlNone {
		t.Fatalf("PreExecute before HLT = %v, want ControlNone in DummyMode", ctrl)
	}
	if !d.breaking.Load() {
		t.Error("BreakAtHalt did not arm the debugger ahead of an HLT")
	}
}

// TestBreakAtHaltWinsOverPendingSteps guards against a HLT reached
// mid "step N" (N>1, stepsLeft still >0) silently running past the
// halt: BreakAtHalt must clear stepsLeft so the countdown check right
// after it doesn't short-circuit the break.
func TestBreakAtHaltWinsOverPendingSteps(t *testing.T) {
	d, c, _ := newDummyDebugger(t, []word.Word{0xF000})
	c.Fetch()
	d.stepsLeft.Store(5)

	ctrl := d.PreExecute(c)
	if ctrl != ControlNone {
		t.Fatalf("PreExecute before HLT = %v, want ControlNone in DummyMode", ctrl)
	}
	if !d.breaking.Load() {
		t.Error("BreakAtHalt did not arm the debugger when stepsLeft was still >0")
	}
	if d.stepsLeft.Load() != 0 {
		t.Errorf("stepsLeft = %d after BreakAtHalt, want 0 (cleared, like the breakpoint-hit branch)", d.stepsLeft.Load())
	}
}
