package assembler

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/golang/glog"
)

// DefaultDataBase is the address the data segment starts at.
const DefaultDataBase = 0x2000

// Options tunes a run. The zero value gives the standard behaviour.
type Options struct {
	// DataBase is added to data cursor offsets to form data label
	// addresses. Zero means DefaultDataBase.
	DataBase int64
	// LenientNumbers reads every numeric operand the way C's atoi does:
	// the value of its leading decimal digits, zero if there are none.
	// Hex and other prefixed notations are therefore zero too. This
	// reproduces the output of older toolchains.
	LenientNumbers bool
}

func (o Options) withDefaults() Options {
	if o.DataBase == 0 {
		o.DataBase = DefaultDataBase
	}
	return o
}

// Result describes a finished run.
type Result struct {
	// Symbols maps every label to its resolved address.
	Symbols map[string]int64
	// Labels lists the labels in address order.
	Labels    []string
	TextWords int
	DataWords int
}

// Assemble assembles the sourcecode in infile and writes the bit-string
// listing to outfile, or returns an error if any stage fails. outfile is not
// created when label resolution fails.
//
// Undefined label references do not stop the run: the offending
// instructions are left out, the remaining output is written and the
// references are returned joined in the error.
func Assemble(infile, outfile string, opts Options) (*Result, error) {
	src, err := preProc(infile)
	if err != nil {
		return nil, err
	}
	s := newState(src, opts)
	if err := s.scanLabels(); err != nil {
		return nil, err
	}

	out, err := os.Create(outfile)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	err = s.emit(out)
	return s.result(), err
}

// AssembleStream is Assemble for in-memory sources. name is only used in
// diagnostics.
func AssembleStream(dst io.Writer, src io.Reader, name string, opts Options) (*Result, error) {
	lines, err := readSource(src, name)
	if err != nil {
		return nil, err
	}
	s := newState(lines, opts)
	if err := s.scanLabels(); err != nil {
		return nil, err
	}
	err = s.emit(dst)
	return s.result(), err
}

// emit runs passes 2 and 3 into w. Whatever was produced before a fatal
// error is still flushed.
func (s *state) emit(w io.Writer) error {
	s.out = bufio.NewWriter(w)
	err := s.emitText()
	if err == nil {
		if err = s.out.WriteByte('\n'); err == nil {
			err = s.emitData()
		}
	}
	if ferr := s.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	if len(s.undefined) > 0 {
		glog.Errorf("%d undefined label reference(s)", len(s.undefined))
		return errors.Join(s.undefined...)
	}
	return nil
}

func (s *state) result() *Result {
	return &Result{
		Symbols:   s.labels.symbols(),
		Labels:    s.labels.names(),
		TextWords: s.textWords,
		DataWords: s.dataWords,
	}
}
