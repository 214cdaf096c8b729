// Command protoemu runs a Proto memory image under the interactive
// debugger.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/andre-morales/protoemu/internal/applog"
	"github.com/andre-morales/protoemu/pkg/cpu"
	"github.com/andre-morales/protoemu/pkg/debugger"
	"github.com/andre-morales/protoemu/pkg/memory"
	"github.com/andre-morales/protoemu/pkg/word"
)

func main() {
	log.SetFlags(0)

	filename := flag.String("f", "", "memory image to run")
	size := flag.Int("size", 0, "pad the image up to this many words (0 = exact image size)")
	dummy := flag.Bool("dummy", false, "disable disassembly trace and the REPL")
	colors := flag.Bool("colors", true, "colorize diagnostics")
	breaking := flag.Bool("break", true, "start in step-through mode")
	sigint := flag.Bool("sigint", true, "install the Ctrl-C break handler")
	breakFaults := flag.Bool("break-faults", true, "arm the debugger on a fault")
	breakHalt := flag.Bool("break-halt", true, "pause before executing HLT")
	extended := flag.Bool("extended", true, "disassemble ARIT in infix notation")
	faultWrap := flag.Bool("fault-wrap", true, "treat PC wraparound as a fault rather than a warning")
	logPath := flag.String("log", "", "diagnostic log file (default: stderr only)")
	flag.Parse()

	if *filename == "" {
		log.Fatal("usage: protoemu -f <memory-image-file> [flags]")
	}

	fp, err := os.Open(*filename)
	if err != nil {
		log.Fatal(err)
	}
	defer fp.Close()

	mem, err := memory.LoadImage(fp)
	if err != nil {
		log.Fatal(err)
	}
	if *size > 0 {
		mem, err = padTo(mem, *size)
		if err != nil {
			log.Fatal(err)
		}
	}

	var logger *slog.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = applog.New(f)
	} else {
		logger = applog.New(nil)
	}

	cfg := debugger.Config{
		DummyMode:               *dummy,
		EnableColors:            *colors,
		StartInBreakingMode:     *breaking,
		InstallSigintHandler:    *sigint,
		BreakAtFaults:           *breakFaults,
		BreakAtHalt:             *breakHalt,
		DefaultExtendedNotation: *extended,
		FaultOnLoopAround:       *faultWrap,
	}

	c := cpu.New(mem)
	d := debugger.New(cfg, mem, os.Stdout, logger)
	os.Exit(d.Run(c))
}

// padTo rebuilds mem with n words, preserving its existing contents and
// zero-filling the rest. n must be at least mem's current size, or the
// image would be silently truncated.
func padTo(mem *memory.Memory, n int) (*memory.Memory, error) {
	if n < mem.Size() {
		return nil, fmt.Errorf("-size %d is smaller than the loaded image (%d words)", n, mem.Size())
	}
	cells := make([]word.Word, n)
	snap := mem.Snapshot()
	copy(cells, snap)
	return memory.New(cells)
}
