package assembler

import (
	"errors"
	"fmt"
)

var (
	ErrSourceOpen           = errors.New("cannot open source")
	ErrDuplicateLabel       = errors.New("duplicate label")
	ErrInvalidDataDirective = errors.New("invalid data type")
	ErrUnknownInstruction   = errors.New("invalid instruction")
	ErrUndefinedLabel       = errors.New("invalid label")
	ErrUnknownRegister      = errors.New("unknown register")
	ErrBadOperands          = errors.New("bad operands")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrInvalidString        = errors.New("invalid string literal")
)

// LineError ties an assembly error to the source line that caused it.
type LineError struct {
	Filename string
	Line     int
	Text     string
	Err      error
}

func (e *LineError) Error() string {
	text := e.Text
	if len(text) > 64 {
		text = text[:64]
	}
	return fmt.Sprintf("In file %s, line %d (%s): %v", e.Filename, e.Line, text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
