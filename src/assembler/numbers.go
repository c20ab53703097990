package assembler

import (
	"fmt"
	"strings"

	"github.com/japanoise/numparse"
)

// ParseNumber parses a signed numeric literal in any notation numparse
// understands (decimal, 0x, 0o, 0b, ...).
func ParseNumber(s string) (int64, error) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("%w: expected a number, got nothing", ErrInvalidNumber)
	}
	res, err := numparse.UNumParse(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidNumber, s, err)
	}
	n := int64(res)
	if neg {
		n = -n
	}
	return n, nil
}

// number parses an operand according to the run's options. In lenient mode
// it is C's atoi: only a signed decimal prefix is read, so "0x10" and "abc"
// are both zero.
func (s *state) number(tok string) (int64, error) {
	if s.opts.LenientNumbers {
		return atoi(tok), nil
	}
	return ParseNumber(tok)
}

func atoi(s string) int64 {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var n int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
