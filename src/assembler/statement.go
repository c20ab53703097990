package assembler

import (
	"fmt"
	"strings"
)

// visitor receives the statements of one pass. Nil callbacks are skipped.
type visitor struct {
	label       func(name string) error
	data        func(directive, args string) error
	instruction func(mnemonic string, in instruction, args string) error
}

// walk runs v over every statement of the source, tracking the current
// section. Each call starts again from the top of the file in .text.
func (s *state) walk(v visitor) error {
	s.reset()
	for i := range s.source {
		s.line = &s.source[i]
		if err := s.walkLine(s.line.data, v); err != nil {
			return s.error(err)
		}
	}
	s.line = nil
	return nil
}

func (s *state) walkLine(text string, v visitor) error {
	for {
		tok, rest := parseToken(text, " \t")
		if tok == "" {
			return nil
		}

		switch tok {
		case ".text":
			s.section = sectionText
			text = rest
			continue
		case ".data":
			s.section = sectionData
			text = rest
			continue
		}

		if label, after, ok := splitLabel(tok, rest, s.section); ok {
			if v.label != nil {
				if err := v.label(label); err != nil {
					return err
				}
			}
			text = after
			if s.section == sectionData {
				return s.walkData(text, v)
			}
			continue
		}

		switch {
		case tok == ".word" || tok == ".asciiz":
			if s.section != sectionData {
				return fmt.Errorf("%w: %s outside .data", ErrInvalidDataDirective, tok)
			}
			return s.walkData(text, v)
		case strings.HasPrefix(tok, "."):
			return fmt.Errorf("%w %s", ErrInvalidDataDirective, tok)
		}

		mnemonic := strings.ToLower(tok)
		in, ok := lookupInstruction(mnemonic)
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownInstruction, tok)
		}
		if v.instruction != nil {
			return v.instruction(mnemonic, in, rest)
		}
		return nil
	}
}

// walkData handles what follows a label (or starts a line) inside .data.
func (s *state) walkData(text string, v visitor) error {
	directive, args := parseToken(text, " \t")
	switch directive {
	case "":
		return nil
	case ".word", ".asciiz":
		if v.data != nil {
			return v.data(directive, args)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrInvalidDataDirective, directive)
}

// splitLabel recognises a label declaration at the start of a statement.
// "name:" is a label anywhere; inside .data any word that is neither a
// directive nor a mnemonic is taken as a label too.
func splitLabel(tok, rest string, sec section) (label, after string, ok bool) {
	if i := strings.IndexByte(tok, ':'); i >= 0 {
		label = tok[:i]
		after = strings.TrimSpace(tok[i+1:] + " " + rest)
		return label, after, label != ""
	}
	if sec == sectionData && !strings.HasPrefix(tok, ".") && !isKeyword(strings.ToLower(tok)) {
		return tok, rest, true
	}
	return "", "", false
}
