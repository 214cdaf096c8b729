package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/andre-morales/protoemu/pkg/word"
)

func TestNewRejectsOversizedMemory(t *testing.T) {
	_, err := New(make([]word.Word, MaxSize+1))
	if !errors.Is(err, ErrSizeTooLarge) {
		t.Fatalf("New(oversized) err = %v, want ErrSizeTooLarge", err)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	m, err := New(make([]word.Word, 4))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Write(2, 0xBEEF, 0); err != nil {
		t.Fatal(err)
	}
	got, err := m.Read(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xBEEF {
		t.Errorf("Read(2) = %v, want BEEF", got)
	}
}

func TestOutOfBounds(t *testing.T) {
	m, err := New(make([]word.Word, 2))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Read(2, 0); err == nil {
		t.Fatal("Read(2) on a 2-word memory succeeded, want OutOfBoundsError")
	} else {
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("Read(2) err = %v, want *OutOfBoundsError", err)
		}
	}
	if err := m.Write(5, 1, 0); err == nil {
		t.Fatal("Write(5) on a 2-word memory succeeded, want OutOfBoundsError")
	}
}

func TestSnapshotRestoreFrom(t *testing.T) {
	m, err := New([]word.Word{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	snap := m.Snapshot()
	m.Write(0, 0xFFFF, 0)
	m.Write(1, 0xFFFF, 0)
	m.RestoreFrom(snap)
	for i := word.Word(0); i < 3; i++ {
		got, _ := m.Read(i, 0)
		if got != word.Word(i+1) {
			t.Errorf("after RestoreFrom, cell %d = %v, want %v", i, got, i+1)
		}
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	m, err := New([]word.Word{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	snap := m.Snapshot()
	m.Write(0, 0x9999, 0)
	if snap[0] != 1 {
		t.Errorf("mutating memory after Snapshot changed the snapshot: got %v", snap[0])
	}
}

func TestLoadImage(t *testing.T) {
	src := "0x0001 # first\n  2   \n\n# comment-only line\n0x0003\n"
	m, err := LoadImage(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if m.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", m.Size())
	}
	for i, want := range []word.Word{1, 2, 3} {
		got, _ := m.Read(word.Word(i), 0)
		if got != want {
			t.Errorf("cell %d = %v, want %v", i, got, want)
		}
	}
}

func TestLoadImageBadLiteral(t *testing.T) {
	if _, err := LoadImage(strings.NewReader("not-a-number\n")); err == nil {
		t.Fatal("LoadImage accepted a non-numeric line")
	}
}
