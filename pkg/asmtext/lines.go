package asmtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lineRecord is one source line after comment-stripping and
// label-splitting, before label resolution. Blank and comment-only
// lines produce no record at all; a label-only line has a nil instr.
type lineRecord struct {
	lineno int
	label  string
	instr  Instruction
}

// parseLines reads every line of r into a lineRecord. Labels are
// recorded but not yet resolved to addresses — that happens once every
// line has been seen, in assembleAsync's first pass.
func parseLines(r io.Reader) ([]lineRecord, error) {
	var lines []lineRecord
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		text := stripComment(sc.Text())
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		rec := lineRecord{lineno: lineno}
		if i := strings.Index(text, ":"); i >= 0 && !strings.ContainsAny(text[:i], " \t") {
			rec.label = text[:i]
			text = strings.TrimSpace(text[i+1:])
		}
		if text != "" {
			instr, err := parseMnemonic(lineno, text)
			if err != nil {
				return nil, err
			}
			rec.instr = instr
		}
		lines = append(lines, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func stripComment(s string) string {
	if i := strings.IndexAny(s, ";#"); i >= 0 {
		return s[:i]
	}
	return s
}

// parseMnemonic builds the Instruction named by one non-label line.
func parseMnemonic(lineno int, text string) (Instruction, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	mnemonic := strings.ToUpper(fields[0])
	args := fields[1:]

	switch mnemonic {
	case "NOP":
		return &niladicInstr{op: opNOP}, nil
	case "RET":
		return &niladicInstr{op: opRET}, nil
	case "HLT":
		return &niladicInstr{op: opHLT}, nil
	case "LDA", "STA", "JMP", "JNZ":
		if len(args) != 1 {
			return nil, fmt.Errorf("line %d: %s takes exactly one operand", lineno, mnemonic)
		}
		op := map[string]uint8{"LDA": opLDA, "STA": opSTA, "JMP": opJMP, "JNZ": opJNZ}[mnemonic]
		return &addrInstr{op: op, target: args[0], lineno: lineno}, nil
	case "ARIT":
		if len(args) != 4 {
			return nil, fmt.Errorf("line %d: ARIT takes OPR,DST,OP1,OP2", lineno)
		}
		return &aritInstr{
			lineno: lineno,
			opr:    strings.ToUpper(args[0]),
			dst:    strings.ToUpper(args[1]),
			op1:    strings.ToUpper(args[2]),
			op2:    strings.ToUpper(args[3]),
		}, nil
	case ".WORD":
		if len(args) != 1 {
			return nil, fmt.Errorf("line %d: .WORD takes exactly one value", lineno)
		}
		n, _, err := parseImmediate(args[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		return &wordLiteral{value: n}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown mnemonic %q", lineno, mnemonic)
	}
}

// parseImmediate parses s as a numeric literal (0x-prefixed hex or
// decimal). ok is false when s isn't numeric at all, meaning the
// caller should treat it as a label reference instead.
func parseImmediate(s string) (n uint16, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	c := s[0]
	if !(c >= '0' && c <= '9') {
		return 0, false, nil
	}
	base := 10
	body := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		body = s[2:]
	}
	v, err := strconv.ParseUint(body, base, 16)
	if err != nil {
		return 0, true, fmt.Errorf("bad numeric literal %q: %w", s, err)
	}
	return uint16(v), true, nil
}
