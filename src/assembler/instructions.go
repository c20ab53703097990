package assembler

type format uint8

const (
	formatPseudo format = iota
	formatR
	formatI
	formatJ
)

func (f format) String() string {
	switch f {
	case formatPseudo:
		return "pseudo"
	case formatR:
		return "R"
	case formatI:
		return "I"
	default:
		return "J"
	}
}

const (
	opSpecial = 0x0
	opJ       = 0x2
	opJAL     = 0x3
	opBEQ     = 0x4
	opADDI    = 0x8
	opSLTI    = 0xA
	opANDI    = 0xC
	opORI     = 0xD
	opLUI     = 0xF
	opLW      = 0x23
	opSW      = 0x2B
)

const (
	fnSLL = 0x00
	fnSRL = 0x02
	fnJR  = 0x08
	fnADD = 0x20
	fnSUB = 0x22
	fnAND = 0x24
	fnOR  = 0x25
	fnSLT = 0x2A
)

// operandShape says how an instruction's operands are written.
type operandShape uint8

const (
	shapeRegs3     operandShape = iota // rd, rs, rt
	shapeShift                         // rd, rt, sa
	shapeJumpReg                       // rs
	shapeMemory                        // rt, offset(rs)
	shapeImmediate                     // rt, rs, imm
	shapeBranch                        // rs, rt, label
	shapeTarget                        // label
	shapeLoadAddr                      // rt, label
)

type instruction struct {
	format format
	shape  operandShape
	opcode int
	funct  int
	// size is the number of bytes the instruction occupies once expanded.
	size int64
}

var instructions = map[string]instruction{
	"la": {formatPseudo, shapeLoadAddr, opLUI, 0, 8},

	"add": {formatR, shapeRegs3, opSpecial, fnADD, 4},
	"sub": {formatR, shapeRegs3, opSpecial, fnSUB, 4},
	"and": {formatR, shapeRegs3, opSpecial, fnAND, 4},
	"or":  {formatR, shapeRegs3, opSpecial, fnOR, 4},
	"slt": {formatR, shapeRegs3, opSpecial, fnSLT, 4},
	"sll": {formatR, shapeShift, opSpecial, fnSLL, 4},
	"srl": {formatR, shapeShift, opSpecial, fnSRL, 4},
	"jr":  {formatR, shapeJumpReg, opSpecial, fnJR, 4},

	"lw":   {formatI, shapeMemory, opLW, 0, 4},
	"sw":   {formatI, shapeMemory, opSW, 0, 4},
	"addi": {formatI, shapeImmediate, opADDI, 0, 4},
	"andi": {formatI, shapeImmediate, opANDI, 0, 4},
	"ori":  {formatI, shapeImmediate, opORI, 0, 4},
	"slti": {formatI, shapeImmediate, opSLTI, 0, 4},
	"beq":  {formatI, shapeBranch, opBEQ, 0, 4},

	"j":   {formatJ, shapeTarget, opJ, 0, 4},
	"jal": {formatJ, shapeTarget, opJAL, 0, 4},
}

func lookupInstruction(mnemonic string) (instruction, bool) {
	in, ok := instructions[mnemonic]
	return in, ok
}

func isKeyword(tok string) bool {
	_, ok := instructions[tok]
	return ok
}

// operandCount is how many comma separated operands each shape takes.
func (s operandShape) operandCount() int {
	switch s {
	case shapeRegs3, shapeShift, shapeImmediate, shapeBranch:
		return 3
	case shapeMemory, shapeLoadAddr:
		return 2
	default:
		return 1
	}
}

func formRInstruction(opCode, rs, rt, rd, shift, funct int) string {
	return formatBinary(int64(opCode), 6) +
		formatBinary(int64(rs), 5) +
		formatBinary(int64(rt), 5) +
		formatBinary(int64(rd), 5) +
		formatBinary(int64(shift), 5) +
		formatBinary(int64(funct), 6)
}

func formIInstruction(opCode, rs, rt int, imm int64) string {
	return formatBinary(int64(opCode), 6) +
		formatBinary(int64(rs), 5) +
		formatBinary(int64(rt), 5) +
		formatBinary(imm, 16)
}

// formJInstruction keeps address bits 27..2, i.e. (addr << 4) >> 6 on a 32
// bit word. The paired simulator expects exactly this field.
func formJInstruction(opCode int, addr int64) string {
	return formatBinary(int64(opCode), 6) + formatBinary(addr>>2, 26)
}
