package asmtext

import (
	"strings"
	"testing"
)

func TestAssembleBasicProgram(t *testing.T) {
	src := `
start:  LDA 4
        JNZ done
        ARIT ADD, C, A, B
done:   HLT
        .WORD 0x002A
`
	words, err := Assemble(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	if len(words) != 5 {
		t.Fatalf("len(words) = %d, want 5", len(words))
	}
	if words[0] != 0x1004 {
		t.Errorf("LDA 4 = %#04x, want 0x1004", words[0])
	}
	if words[1]>>12 != 0x4 {
		t.Errorf("JNZ opcode nibble = %#x, want 4", words[1]>>12)
	}
	if words[1]&0x0FFF != 3 {
		t.Errorf("JNZ done resolved to %#x, want label address 3", words[1]&0x0FFF)
	}
	if words[2]>>12 != 0x6 {
		t.Errorf("ARIT opcode nibble = %#x, want 6", words[2]>>12)
	}
	if words[3] != 0xF000 {
		t.Errorf("HLT = %#04x, want 0xF000", words[3])
	}
	if words[4] != 0x002A {
		t.Errorf(".WORD 0x002A = %#04x, want 0x002A", words[4])
	}
}

func TestAssembleUndefinedLabel(t *testing.T) {
	_, err := Assemble(strings.NewReader("JMP nowhere\n"))
	if err == nil {
		t.Fatal("Assemble accepted a reference to an undefined label")
	}
}

func TestAssembleDuplicateLabel(t *testing.T) {
	src := "a: NOP\na: NOP\n"
	_, err := Assemble(strings.NewReader(src))
	if err == nil {
		t.Fatal("Assemble accepted a duplicate label")
	}
}

func TestAssembleARITLiteralZeroOperand(t *testing.T) {
	words, err := Assemble(strings.NewReader("ARIT NOT, C, A, 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if words[0]&0b111 != 0 {
		t.Errorf("OP2 field = %03b, want 0 for a literal-zero operand", words[0]&0b111)
	}
}

func TestAssembleCommentsAndBlankLines(t *testing.T) {
	src := "; a full-line comment\n\nNOP ; trailing comment\n"
	words, err := Assemble(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 1 || words[0] != 0 {
		t.Errorf("words = %v, want a single NOP (0x0000)", words)
	}
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	if _, err := Assemble(strings.NewReader("FROB 1\n")); err == nil {
		t.Fatal("Assemble accepted an unknown mnemonic")
	}
}
