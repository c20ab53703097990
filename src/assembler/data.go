package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/samber/lo"
)

type dataItem struct {
	directive string
	value     int64
	count     int64
	str       []byte
}

// size is the number of bytes the item takes in the data segment.
func (d dataItem) size() int64 {
	if d.directive == ".asciiz" {
		return (int64(len(d.str)) + 1 + 3) &^ 3
	}
	return 4 * d.count
}

func (s *state) parseData(directive, args string) (dataItem, error) {
	if directive == ".asciiz" {
		str, err := parseStringLiteral(args)
		if err != nil {
			return dataItem{}, err
		}
		return dataItem{directive: directive, str: str}, nil
	}

	item := dataItem{directive: directive, count: 1}
	value, rest := parseToken(args, ": \t")
	if value == "" {
		return item, fmt.Errorf("%w: .word needs a value", ErrBadOperands)
	}
	v, err := s.number(value)
	if err != nil {
		return item, err
	}
	item.value = v

	count, rest := parseToken(rest, " \t")
	if count != "" {
		n, err := s.number(count)
		if err != nil {
			return item, err
		}
		if n < 0 {
			return item, fmt.Errorf("%w: negative .word count %d", ErrInvalidNumber, n)
		}
		item.count = n
	}
	if extra := strings.TrimSpace(rest); extra != "" {
		return item, fmt.Errorf("%w: unexpected %q after .word", ErrBadOperands, extra)
	}
	return item, nil
}

// parseStringLiteral decodes a double quoted string, Go escapes included.
func parseStringLiteral(args string) ([]byte, error) {
	args = strings.TrimSpace(args)
	if !strings.HasPrefix(args, `"`) {
		return nil, fmt.Errorf("%w: expected a quoted string, got %q", ErrInvalidString, args)
	}
	end := -1
	escape := false
	for i := 1; i < len(args); i++ {
		switch {
		case escape:
			escape = false
		case args[i] == '\\':
			escape = true
		case args[i] == '"':
			end = i
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated string %s", ErrInvalidString, args)
	}
	if extra := strings.TrimSpace(args[end+1:]); extra != "" {
		return nil, fmt.Errorf("%w: unexpected %q after string", ErrInvalidString, extra)
	}
	str, err := strconv.Unquote(args[:end+1])
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidString, args[:end+1], err)
	}
	return []byte(str), nil
}

// emitData is pass 3: it writes the .data words in source order.
func (s *state) emitData() error {
	glog.V(1).Infof("pass 3: emitting data")
	err := s.walk(visitor{
		data: func(directive, args string) error {
			item, err := s.parseData(directive, args)
			if err != nil {
				return err
			}
			return s.writeData(item)
		},
	})
	glog.V(1).Infof("pass 3: %d data words", s.dataWords)
	return err
}

func (s *state) writeData(item dataItem) error {
	if item.directive == ".word" {
		bits := formatBinary(item.value, 32)
		for k := int64(0); k < item.count; k++ {
			if err := s.writeWord(bits); err != nil {
				return err
			}
			s.dataWords++
		}
		return nil
	}

	// Bytes are packed last-first within each word, so the first character
	// of a group sits in the least significant byte.
	buf := append(append([]byte{}, item.str...), 0)
	for _, group := range lo.Chunk(buf, 4) {
		var word strings.Builder
		word.WriteString(strings.Repeat("00000000", 4-len(group)))
		for j := len(group) - 1; j >= 0; j-- {
			word.WriteString(formatBinary(int64(group[j]), 8))
		}
		if err := s.writeWord(word.String()); err != nil {
			return err
		}
		s.dataWords++
	}
	return nil
}
