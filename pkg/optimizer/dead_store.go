package optimizer

import (
	"github.com/akhildatla/foldvm/pkg/machine"
)

// deadStoreElimination removes writes no later instruction reads and the
// caller does not observe. With no branches a single backward sweep over
// the program computes exact liveness.
func (o *Optimizer[V]) deadStoreElimination(program []machine.Instruction[V]) []machine.Instruction[V] {
	if len(program) == 0 {
		return program
	}

	live := make(map[machine.Register]bool, len(o.live))
	for _, r := range o.live {
		live[r] = true
	}

	needed := make([]bool, len(program))

	for i := len(program) - 1; i >= 0; i-- {
		inst := program[i]
		if !live[inst.Dst] {
			continue
		}
		needed[i] = true

		// The write satisfies the pending read; the sources become live in
		// its place.
		delete(live, inst.Dst)
		switch inst.Op {
		case machine.OpAdd:
			live[inst.Src1] = true
			live[inst.Src2] = true
		case machine.OpCopy:
			live[inst.Src1] = true
		case machine.OpSet:
			// No register reads.
		}
	}

	newCode := make([]machine.Instruction[V], 0, len(program))
	for i, inst := range program {
		if needed[i] {
			newCode = append(newCode, inst)
		}
	}

	return newCode
}
