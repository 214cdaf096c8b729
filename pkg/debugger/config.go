package debugger

// Config mirrors spec.md's compile-time configuration flags as runtime
// fields, set from cmd/protoemu's command-line flags rather than at
// compile time — the same behavior, exposed the way a Go program
// naturally would.
type Config struct {
	// DummyMode disables all interactive features; the emulator runs
	// straight through with no disassembly trace and no REPL.
	DummyMode bool

	// EnableColors selects whether §-tagged output becomes terminal
	// escapes (true) or is stripped (false).
	EnableColors bool

	// StartInBreakingMode begins execution in step-through mode.
	StartInBreakingMode bool

	// InstallSigintHandler hooks the interrupt signal to arm the
	// debugger asynchronously.
	InstallSigintHandler bool

	// BreakAtFaults arms the debugger whenever a fault is reported.
	BreakAtFaults bool

	// BreakAtHalt pauses before executing HLT instead of halting
	// immediately.
	BreakAtHalt bool

	// DefaultExtendedNotation selects infix ARIT disassembly by default.
	DefaultExtendedNotation bool

	// FaultOnLoopAround makes a PC wraparound a fault; otherwise it is
	// only a warning.
	FaultOnLoopAround bool
}

// DefaultConfig returns spec.md §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		DummyMode:               false,
		EnableColors:            true,
		StartInBreakingMode:     true,
		InstallSigintHandler:    true,
		BreakAtFaults:           true,
		BreakAtHalt:             true,
		DefaultExtendedNotation: true,
		FaultOnLoopAround:       true,
	}
}
