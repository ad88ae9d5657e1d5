package machine

import (
	"fmt"

	"github.com/akhildatla/foldvm/pkg/reduce"
)

// CPU is the reference machine: a fixed three-slot register file over a
// numeric value type. A CPU value is an immutable snapshot — Execute
// returns a fresh state and never mutates its receiver, so source reads
// always observe the state before the instruction, even when a source and
// the destination coincide.
type CPU[V reduce.Number] struct {
	regs [NumRegisters]V
}

// New returns a CPU with every register set to the value type's zero.
func New[V reduce.Number]() CPU[V] {
	return CPU[V]{}
}

// NewWith returns a CPU with explicit initial register values.
func NewWith[V reduce.Number](a, b, c V) CPU[V] {
	return CPU[V]{regs: [NumRegisters]V{a, b, c}}
}

// Execute applies one instruction and returns the resulting state.
// Execution is total: register names are drawn from the closed enumeration,
// so out-of-bounds access is unrepresentable, and an opcode outside the
// vocabulary (unreachable through the constructors) leaves the state
// unchanged.
func (c CPU[V]) Execute(inst Instruction[V]) CPU[V] {
	regs := c.regs
	switch inst.Op {
	case OpAdd:
		regs[inst.Dst.Index()] = c.regs[inst.Src1.Index()] + c.regs[inst.Src2.Index()]
	case OpCopy:
		regs[inst.Dst.Index()] = c.regs[inst.Src1.Index()]
	case OpSet:
		regs[inst.Dst.Index()] = inst.Imm
	}
	return CPU[V]{regs: regs}
}

// Register returns the value held in register r.
func (c CPU[V]) Register(r Register) V {
	return c.regs[r.Index()]
}

// Registers returns a copy of the full register file.
func (c CPU[V]) Registers() [NumRegisters]V {
	return c.regs
}

// String returns a human-readable register dump.
func (c CPU[V]) String() string {
	return fmt.Sprintf("[A=%v B=%v C=%v]", c.regs[0], c.regs[1], c.regs[2])
}
