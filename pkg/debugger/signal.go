package debugger

import (
	"os"
	"os/signal"
	"time"
)

// doubleTapWindow is how close together two SIGINTs must land before
// the second one terminates the process outright.
const doubleTapWindow = 1500 * time.Millisecond

// InstallSignalHandler hooks os.Interrupt (Ctrl-C / SIGINT) and arms d
// for a break at the next PreExecute boundary. A second interrupt
// within doubleTapWindow of the first terminates the process
// immediately (os.Exit(130), the conventional SIGINT exit code).
//
// The handler goroutine touches only d's atomic fields — breaking,
// stepsLeft, lastSig — never the CPU, memory, or register file, so no
// additional synchronization is required between it and the main loop.
// The returned stop function removes the hook and should be deferred by
// the caller.
func InstallSignalHandler(d *Debugger) (stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-c:
				now := time.Now().UnixNano()
				prev := d.lastSig.Swap(now)
				if prev != 0 && time.Duration(now-prev) < doubleTapWindow {
					os.Exit(130)
				}
				d.breaking.Store(true)
				d.stepsLeft.Store(0)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(c)
		close(done)
	}
}
