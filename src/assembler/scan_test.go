package assembler

import (
	"errors"
	"testing"
)

const addressProgram = `
.text
main:	la $a0, msg      # two words
loop:	add $t0, $t1, $t2
	beq $t0, $zero, loop
	j end
end:	jr $ra
.data
msg:	.asciiz "hi"
arr:	.word 0 3
str:	.asciiz "abcd"
last:	.word 1
`

func TestScanLabels(t *testing.T) {
	s, err := scan(t, addressProgram, Options{})
	if err != nil {
		t.Fatal(err)
	}
	expected := map[string]int64{
		"main": 0,
		"loop": 8,
		"end":  20,
		"msg":  0x2000,
		"arr":  0x2004,
		"str":  0x2010,
		"last": 0x2018,
	}
	if s.labels.len() != len(expected) {
		t.Errorf("Expected %d labels; got %d", len(expected), s.labels.len())
	}
	for name, want := range expected {
		got, ok := s.labels.find(name)
		if !ok {
			t.Errorf("label %s missing", name)
			continue
		}
		if got != want {
			t.Errorf("%s: Expected 0x%x; got 0x%x", name, want, got)
		}
	}
	if s.pc != 24 {
		t.Errorf("Expected pc 24; got %d", s.pc)
	}
	if s.dataCursor != 0x1C {
		t.Errorf("Expected data cursor 0x1c; got 0x%x", s.dataCursor)
	}
}

func TestScanLabelsIdempotent(t *testing.T) {
	a, err := scan(t, addressProgram, Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := scan(t, addressProgram, Options{})
	if err != nil {
		t.Fatal(err)
	}
	sa, sb := a.labels.symbols(), b.labels.symbols()
	if len(sa) != len(sb) {
		t.Fatalf("Expected %d labels; got %d", len(sa), len(sb))
	}
	for name, addr := range sa {
		if sb[name] != addr {
			t.Errorf("%s: Expected 0x%x; got 0x%x", name, addr, sb[name])
		}
	}
}

func TestScanTextLabelCountsSlots(t *testing.T) {
	s, err := scan(t, `
	add $t0, $t0, $t0
	la $t0, x
	la $t1, x
	sw $t0, 0($sp)
x:	jr $ra
y:
z:	addi $t0, $t0, 1
`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	// 2 ordinary instructions and 2 la before x.
	for name, want := range map[string]int64{"x": 4*2 + 8*2, "y": 28, "z": 28} {
		if got, _ := s.labels.find(name); got != want {
			t.Errorf("%s: Expected %d; got %d", name, want, got)
		}
	}
}

func TestScanDataBase(t *testing.T) {
	s, err := scan(t, ".data\nx: .word 1\ny: .word 2", Options{DataBase: 0x8000})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := s.labels.find("y"); got != 0x8004 {
		t.Errorf("Expected 0x8004; got 0x%x", got)
	}
}

func TestScanStringSizes(t *testing.T) {
	tests := map[string]int64{
		`""`:      4,
		`"abc"`:   4,
		`"abcd"`:  8,
		`"a\n"`:   4,
		`"a#b c"`: 8,
	}
	for lit, want := range tests {
		s, err := scan(t, ".data\ns: .asciiz "+lit+"\nnext: .word 0", Options{})
		if err != nil {
			t.Errorf("%s: %v", lit, err)
			continue
		}
		if got, _ := s.labels.find("next"); got != 0x2000+want {
			t.Errorf("%s: Expected next at 0x%x; got 0x%x", lit, 0x2000+want, got)
		}
	}
}

func TestScanDataLabelWithoutColon(t *testing.T) {
	s, err := scan(t, ".data\nmsg .asciiz \"x\"\nn .word 1 2\nm: .word 3", Options{})
	if err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]int64{"msg": 0x2000, "n": 0x2004, "m": 0x200C} {
		if got, _ := s.labels.find(name); got != want {
			t.Errorf("%s: Expected 0x%x; got 0x%x", name, want, got)
		}
	}
}

func TestScanDuplicateLabel(t *testing.T) {
	_, err := scan(t, "loop: add $t0, $t0, $t0\nloop: j loop", Options{})
	if !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("Expected ErrDuplicateLabel; got %v", err)
	}
	var lerr *LineError
	if !errors.As(err, &lerr) || lerr.Line != 2 {
		t.Errorf("Expected the error on line 2; got %v", err)
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		src  string
		want error
	}{
		{".data\nx: .byte 1", ErrInvalidDataDirective},
		{".data\nx: .space 4", ErrInvalidDataDirective},
		{".word 4", ErrInvalidDataDirective},
		{".globl main", ErrInvalidDataDirective},
		{"mul $t0, $t1, $t2", ErrUnknownInstruction},
		{"loop add $t0, $t1, $t2", ErrUnknownInstruction},
		{".data\nx: .word", ErrBadOperands},
		{".data\nx: .word 1 2 3", ErrBadOperands},
		{".data\nx: .word 1 -2", ErrInvalidNumber},
		{".data\nx: .word seven", ErrInvalidNumber},
		{".data\nx: .asciiz nope", ErrInvalidString},
		{".data\nx: .asciiz \"open", ErrInvalidString},
	}
	for _, tt := range tests {
		if _, err := scan(t, tt.src, Options{}); !errors.Is(err, tt.want) {
			t.Errorf("%q: Expected %v; got %v", tt.src, tt.want, err)
		}
	}
}
