package assembler

import (
	"fmt"

	"github.com/golang/glog"
)

// scanLabels is pass 1. It assigns every label its address: the program
// counter in .text, DataBase plus the data cursor in .data.
func (s *state) scanLabels() error {
	glog.V(1).Infof("pass 1: scanning %d lines", len(s.source))
	err := s.walk(visitor{
		label: func(name string) error {
			addr := s.pc
			if s.section == sectionData {
				addr = s.dataCursor + s.opts.DataBase
			}
			if !s.labels.insert(name, addr) {
				return fmt.Errorf("%w %q", ErrDuplicateLabel, name)
			}
			glog.V(2).Infof("label %s = 0x%x (%s)", name, addr, s.section)
			return nil
		},
		data: func(directive, args string) error {
			item, err := s.parseData(directive, args)
			if err != nil {
				return err
			}
			s.dataCursor += item.size()
			return nil
		},
		instruction: func(mnemonic string, in instruction, args string) error {
			s.pc += in.size
			return nil
		},
	})
	if err != nil {
		return err
	}
	glog.V(1).Infof("pass 1: %d labels, %d bytes of text, %d bytes of data",
		s.labels.len(), s.pc, s.dataCursor)
	return nil
}
