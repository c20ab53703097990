package assembler

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
)

// emitText is pass 2: it encodes every instruction, one line per word.
// The program counter is advanced before encoding, so branch offsets are
// relative to the following instruction.
func (s *state) emitText() error {
	glog.V(1).Infof("pass 2: encoding instructions")
	if err := s.walk(visitor{instruction: s.encode}); err != nil {
		return err
	}
	glog.V(1).Infof("pass 2: %d text words, %d undefined label(s)", s.textWords, len(s.undefined))
	return nil
}

func (s *state) encode(mnemonic string, in instruction, args string) error {
	s.pc += in.size

	ops, err := splitOperands(in.shape, args)
	if err != nil {
		return fmt.Errorf("%s: %w", mnemonic, err)
	}

	var words []string
	switch in.shape {
	case shapeLoadAddr:
		words, err = s.encodeLoadAddress(ops)
	case shapeRegs3:
		words, err = s.encodeRegs3(in, ops)
	case shapeShift:
		words, err = s.encodeShift(in, ops)
	case shapeJumpReg:
		var rs int
		rs, err = resolveRegister(ops[0])
		words = []string{formRInstruction(in.opcode, rs, 0, 0, 0, in.funct)}
	case shapeMemory:
		words, err = s.encodeMemory(in, ops)
	case shapeImmediate:
		words, err = s.encodeImmediate(in, ops)
	case shapeBranch:
		words, err = s.encodeBranch(in, ops)
	case shapeTarget:
		words, err = s.encodeJump(in, ops)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", mnemonic, err)
	}

	for _, w := range words {
		glog.V(2).Infof("%s -> %s", mnemonic, w)
		if err := s.writeWord(w); err != nil {
			return err
		}
		s.textWords++
	}
	return nil
}

func splitOperands(shape operandShape, args string) ([]string, error) {
	var ops []string
	if shape == shapeMemory {
		reg, rest := parseToken(args, ", \t")
		mem := strings.Join(strings.Fields(strings.TrimLeft(rest, ", \t")), "")
		for _, op := range []string{reg, mem} {
			if op != "" {
				ops = append(ops, op)
			}
		}
	} else {
		ops = operands(args)
	}
	if want := shape.operandCount(); len(ops) != want {
		return nil, fmt.Errorf("%w: expected %d operand(s), got %d", ErrBadOperands, want, len(ops))
	}
	return ops, nil
}

func resolveRegisters(toks ...string) ([]int, error) {
	regs := make([]int, len(toks))
	for i, tok := range toks {
		r, err := resolveRegister(tok)
		if err != nil {
			return nil, err
		}
		regs[i] = r
	}
	return regs, nil
}

// lookup finds a referenced label. An unknown label is recorded against the
// run instead of aborting it; ok is false and the caller emits nothing.
func (s *state) lookup(name string) (addr int64, ok bool) {
	addr, ok = s.labels.find(name)
	if !ok {
		err := s.errorf("%w %q", ErrUndefinedLabel, name)
		glog.Warning(err)
		s.undefined = append(s.undefined, err)
	}
	return addr, ok
}

func (s *state) encodeLoadAddress(ops []string) ([]string, error) {
	rt, err := resolveRegister(ops[0])
	if err != nil {
		return nil, err
	}
	addr, ok := s.lookup(ops[1])
	if !ok {
		return nil, nil
	}
	return []string{
		formIInstruction(opLUI, 0, rt, addr>>16),
		formIInstruction(opORI, rt, rt, addr),
	}, nil
}

func (s *state) encodeRegs3(in instruction, ops []string) ([]string, error) {
	regs, err := resolveRegisters(ops...)
	if err != nil {
		return nil, err
	}
	rd, rs, rt := regs[0], regs[1], regs[2]
	return []string{formRInstruction(in.opcode, rs, rt, rd, 0, in.funct)}, nil
}

func (s *state) encodeShift(in instruction, ops []string) ([]string, error) {
	regs, err := resolveRegisters(ops[0], ops[1])
	if err != nil {
		return nil, err
	}
	sa, err := s.number(ops[2])
	if err != nil {
		return nil, err
	}
	if !s.opts.LenientNumbers && (sa < 0 || sa > 31) {
		return nil, fmt.Errorf("%w: shift amount %d out of range", ErrInvalidNumber, sa)
	}
	rd, rt := regs[0], regs[1]
	return []string{formRInstruction(in.opcode, 0, rt, rd, int(sa), in.funct)}, nil
}

func (s *state) encodeMemory(in instruction, ops []string) ([]string, error) {
	rt, err := resolveRegister(ops[0])
	if err != nil {
		return nil, err
	}
	open, end := strings.IndexByte(ops[1], '('), strings.IndexByte(ops[1], ')')
	if open < 0 || end < open {
		return nil, fmt.Errorf("%w: expected offset(base), got %q", ErrBadOperands, ops[1])
	}
	rs, err := resolveRegister(ops[1][open+1 : end])
	if err != nil {
		return nil, err
	}
	var offset int64
	if lit := ops[1][:open]; lit != "" {
		if offset, err = s.number(lit); err != nil {
			return nil, err
		}
	}
	return []string{formIInstruction(in.opcode, rs, rt, offset)}, nil
}

func (s *state) encodeImmediate(in instruction, ops []string) ([]string, error) {
	regs, err := resolveRegisters(ops[0], ops[1])
	if err != nil {
		return nil, err
	}
	imm, err := s.number(ops[2])
	if err != nil {
		return nil, err
	}
	rt, rs := regs[0], regs[1]
	return []string{formIInstruction(in.opcode, rs, rt, imm)}, nil
}

func (s *state) encodeBranch(in instruction, ops []string) ([]string, error) {
	regs, err := resolveRegisters(ops[0], ops[1])
	if err != nil {
		return nil, err
	}
	addr, ok := s.lookup(ops[2])
	if !ok {
		return nil, nil
	}
	rs, rt := regs[0], regs[1]
	return []string{formIInstruction(in.opcode, rs, rt, addr-s.pc)}, nil
}

func (s *state) encodeJump(in instruction, ops []string) ([]string, error) {
	addr, ok := s.lookup(ops[0])
	if !ok {
		return nil, nil
	}
	return []string{formJInstruction(in.opcode, addr)}, nil
}
