package word

import "testing"

func TestStringPadding(t *testing.T) {
	cases := map[Word]string{
		0x0000: "0000",
		0x000A: "000A",
		0xFFFF: "FFFF",
		0x1234: "1234",
	}
	for w, want := range cases {
		if got := w.String(); got != want {
			t.Errorf("Word(%d).String() = %q, want %q", uint16(w), got, want)
		}
	}
}

func TestByCodeValid(t *testing.T) {
	var r Registers
	r.A, r.B, r.C, r.D, r.R, r.PSW = 1, 2, 3, 4, 5, 6

	cases := []struct {
		code Code
		want Word
	}{
		{CodeA, 1}, {CodeB, 2}, {CodeC, 3}, {CodeD, 4}, {CodeR, 5}, {CodePSW, 6},
	}
	for _, c := range cases {
		got, ok := r.ByCode(c.code)
		if !ok {
			t.Fatalf("ByCode(%v) reported ok=false", c.code)
		}
		if *got != c.want {
			t.Errorf("ByCode(%v) = %v, want %v", c.code, *got, c.want)
		}
	}
}

func TestByCodeInvalid(t *testing.T) {
	var r Registers
	for _, code := range []Code{0b100, 0b101} {
		if _, ok := r.ByCode(code); ok {
			t.Errorf("ByCode(%03b) reported ok=true, want false", code)
		}
	}
}

func TestByCodeAliasesRegister(t *testing.T) {
	var r Registers
	a, ok := r.ByCode(CodeA)
	if !ok {
		t.Fatal("ByCode(CodeA) reported ok=false")
	}
	*a = 0x42
	if r.A != 0x42 {
		t.Errorf("write through ByCode handle did not reach r.A: got %v", r.A)
	}
	if r.B != 0 {
		t.Errorf("write through ByCode(A) handle leaked into r.B: got %v", r.B)
	}
}

func TestReset(t *testing.T) {
	r := Registers{A: 1, B: 2, C: 3, D: 4, R: 5, PSW: 6, PC: 7, RI: 8}
	r.Reset()
	want := Registers{}
	if r != want {
		t.Errorf("Reset() left %+v, want all-zero", r)
	}
}
