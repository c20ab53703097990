package assembler

import (
	"errors"
	"testing"
)

func TestResolveRegister(t *testing.T) {
	tests := map[string]int{
		"$zero": 0,
		"$at":   1,
		"$v0":   1,
		"$v1":   2,
		"$a0":   4,
		"$a3":   7,
		"$t0":   8,
		"$t7":   15,
		"$t8":   24,
		"$t9":   25,
		"$s0":   16,
		"$s7":   23,
		"$s8":   30,
		"$fp":   30,
		"$k0":   26,
		"$k1":   27,
		"$gp":   28,
		"$sp":   29,
		"$ra":   31,
		"t1":    9,
		"$0":    0,
		"$31":   31,
	}
	for name, want := range tests {
		got, err := resolveRegister(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("%s: Expected %d; got %d", name, want, got)
		}
	}
}

func TestResolveRegisterUnknown(t *testing.T) {
	for _, name := range []string{"", "$", "$x1", "$t", "$t10", "$k9", "$32", "$-1", "$ZERO"} {
		if n, err := resolveRegister(name); !errors.Is(err, ErrUnknownRegister) {
			t.Errorf("%q: expected ErrUnknownRegister; got %d, %v", name, n, err)
		}
	}
}
