package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

var namedRegisters = map[string]int{
	"zero": 0,
	"at":   1,
	"gp":   28,
	"sp":   29,
	"fp":   30,
	"ra":   31,
}

// registerGroups maps a register family prefix to the index of its first
// member.
var registerGroups = map[byte]int{
	'v': 1,
	'a': 4,
	't': 8,
	's': 16,
	'k': 26,
}

// resolveRegister maps a register name such as "$t0", "s8" or "$31" to its
// number.
func resolveRegister(tok string) (int, error) {
	name := strings.TrimPrefix(strings.TrimSpace(tok), "$")
	n, ok := registerNumber(name)
	if !ok || n < 0 || n > 31 {
		return 0, fmt.Errorf("%w %q", ErrUnknownRegister, tok)
	}
	glog.V(3).Infof("register %s = %d", tok, n)
	return n, nil
}

func registerNumber(name string) (int, bool) {
	if n, ok := namedRegisters[name]; ok {
		return n, true
	}
	if name == "" {
		return 0, false
	}
	if name[0] >= '0' && name[0] <= '9' {
		n, err := strconv.Atoi(name)
		return n, err == nil
	}
	base, ok := registerGroups[name[0]]
	if !ok || len(name) != 2 || name[1] < '0' || name[1] > '9' {
		return 0, false
	}
	d := int(name[1] - '0')
	switch name[0] {
	case 't':
		if d > 7 {
			return 16 + d, true
		}
	case 's':
		if d == 8 {
			return 30, true
		}
	}
	return base + d, true
}
