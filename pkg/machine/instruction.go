package machine

import "fmt"

// Instruction is one operation over a register file, parameterized by the
// machine's value type. Instructions are immutable once constructed; the
// Op tag selects which operand fields are meaningful.
//
// Operand layout per opcode:
//
//	OpAdd:  Src1 + Src2 -> Dst
//	OpCopy: Src1 -> Dst
//	OpSet:  Imm -> Dst
type Instruction[V any] struct {
	Op   Opcode
	Src1 Register
	Src2 Register
	Dst  Register
	Imm  V
}

// Add builds a register+register->register addition.
func Add[V any](src1, src2, dst Register) Instruction[V] {
	return Instruction[V]{Op: OpAdd, Src1: src1, Src2: src2, Dst: dst}
}

// Copy builds a register->register copy.
func Copy[V any](src, dst Register) Instruction[V] {
	return Instruction[V]{Op: OpCopy, Src1: src, Dst: dst}
}

// Set builds an immediate->register store.
func Set[V any](v V, dst Register) Instruction[V] {
	return Instruction[V]{Op: OpSet, Imm: v, Dst: dst}
}

// String returns a human-readable representation of the instruction.
func (i Instruction[V]) String() string {
	switch i.Op {
	case OpAdd:
		return fmt.Sprintf("ADD %s, %s -> %s", i.Src1, i.Src2, i.Dst)
	case OpCopy:
		return fmt.Sprintf("COPY %s -> %s", i.Src1, i.Dst)
	case OpSet:
		return fmt.Sprintf("SET %v -> %s", i.Imm, i.Dst)
	default:
		return i.Op.String()
	}
}
