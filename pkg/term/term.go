// Package term implements the emulator's color-tag output convention:
// tokens of the form "§X" select a foreground color (hex digits 0-7 for
// dim, 8/9/A-F for bold) and "§R" resets formatting. Disassembly and
// fault/warning output are routed through this package so that a single
// flag (Enabled) decides whether those tags become terminal escapes or
// are silently stripped.
package term

import (
	"strings"

	"github.com/fatih/color"
)

// the eight base ANSI foreground colors, indexed by the low 3 bits of
// a tag digit.
var baseColors = [8]color.Attribute{
	color.FgBlack,
	color.FgRed,
	color.FgGreen,
	color.FgYellow,
	color.FgBlue,
	color.FgMagenta,
	color.FgCyan,
	color.FgWhite,
}

// Formatter renders "§X"-tagged strings for a terminal, or strips the
// tags entirely when Enabled is false (ENABLE_COLORS=false, or any
// non-interactive output sink).
type Formatter struct {
	Enabled bool
}

// New returns a Formatter with colors on or off per enabled.
func New(enabled bool) *Formatter {
	return &Formatter{Enabled: enabled}
}

// Sprint rewrites every "§X" escape in s. "§R" resets the active color
// for the text that follows it; any other hex digit after "§" selects a
// foreground color, bold for 8-F, dim (regular) for 0-7. Every other
// character, including one that happens to be "§" without a recognized
// digit following it, passes through unchanged. Each run of text
// between tags is colored independently via fatih/color, which wraps it
// in the matching escape/reset pair.
func (f *Formatter) Sprint(s string) string {
	var b strings.Builder
	var attrs []color.Attribute
	var run strings.Builder

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if f.Enabled && len(attrs) > 0 {
			b.WriteString(color.New(attrs...).Sprint(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '§' || i+1 >= len(runes) {
			run.WriteRune(r)
			continue
		}
		tag := runes[i+1]
		if tag == 'R' || tag == 'r' {
			flush()
			attrs = nil
			i++
			continue
		}
		digit, ok := hexDigit(tag)
		if !ok {
			run.WriteRune(r)
			continue
		}
		flush()
		attrs = []color.Attribute{baseColors[digit&0x7]}
		if digit >= 8 {
			attrs = append(attrs, color.Bold)
		}
		i++
	}
	flush()
	return b.String()
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// Fault renders a fault-severity diagnostic line: a bold-red "[ERR!]"
// tag followed by the formatted message.
func (f *Formatter) Fault(msg string) string {
	return f.Sprint("§9[ERR!]§R " + msg)
}

// Warn renders a warning-severity diagnostic line: a yellow "[WRN!]"
// tag followed by the formatted message.
func (f *Formatter) Warn(msg string) string {
	return f.Sprint("§3[WRN!]§R " + msg)
}

// Prompt renders the REPL's cyan prompt marker.
func (f *Formatter) Prompt(msg string) string {
	return f.Sprint("§6" + msg + "§R")
}
