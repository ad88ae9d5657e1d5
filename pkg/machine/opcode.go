package machine

// Opcode tags an instruction variant. The vocabulary is closed; dispatch is
// an exhaustive switch rather than dynamic dispatch.
type Opcode uint8

const (
	OpAdd  Opcode = iota // regs[dst] = regs[src1] + regs[src2]
	OpCopy               // regs[dst] = regs[src1]
	OpSet                // regs[dst] = imm
)

// String returns the string representation of an opcode.
func (o Opcode) String() string {
	switch o {
	case OpAdd:
		return "ADD"
	case OpCopy:
		return "COPY"
	case OpSet:
		return "SET"
	default:
		return "UNKNOWN"
	}
}
