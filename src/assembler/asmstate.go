package assembler

import (
	"bufio"
	"fmt"
)

type sourceLine struct {
	data     string
	filename string
	orgLinum int
}

type labelData struct {
	name string
	addr int64
}

type section uint8

const (
	sectionText section = iota
	sectionData
)

func (s section) String() string {
	if s == sectionData {
		return ".data"
	}
	return ".text"
}

// state is the scanning context threaded through the three passes. Only pass 1
// writes labels; the other passes read them.
type state struct {
	source []sourceLine
	labels *symbolTable
	opts   Options

	section    section
	pc         int64
	dataCursor int64

	out       *bufio.Writer
	textWords int
	dataWords int

	// undefined collects the non-fatal undefined label reports of pass 2.
	undefined []error

	line *sourceLine
}

func newState(source []sourceLine, opts Options) *state {
	return &state{
		source: source,
		labels: newSymbolTable(),
		opts:   opts.withDefaults(),
	}
}

// reset puts the cursors and section back where a pass starts.
func (s *state) reset() {
	s.section = sectionText
	s.pc = 0
	s.dataCursor = 0
	s.line = nil
}

func (s *state) error(err error) error {
	if err == nil {
		return nil
	}
	if s.line == nil {
		return err
	}
	return &LineError{
		Filename: s.line.filename,
		Line:     s.line.orgLinum,
		Text:     s.line.data,
		Err:      err,
	}
}

func (s *state) errorf(format string, a ...interface{}) error {
	return s.error(fmt.Errorf(format, a...))
}

func (s *state) writeWord(bits string) error {
	if _, err := s.out.WriteString(bits); err != nil {
		return err
	}
	return s.out.WriteByte('\n')
}
