package optimizer

import (
	"github.com/akhildatla/foldvm/pkg/machine"
)

// copyPropagation redirects reads through earlier copies.
// For example:
//
//	COPY A -> B
//	ADD B, B -> C
//
// Becomes:
//
//	COPY A -> B
//	ADD A, A -> C
//
// The copies themselves are left in place; removing ones that end up
// unread is dead-store elimination's job.
func (o *Optimizer[V]) copyPropagation(program []machine.Instruction[V]) []machine.Instruction[V] {
	// copyOf[r] names an earlier register currently holding the same value
	// as r. Mappings always point at the original source, never at another
	// copy, so no chain following is needed on read.
	copyOf := make(map[machine.Register]machine.Register)

	resolve := func(r machine.Register) machine.Register {
		if src, ok := copyOf[r]; ok {
			return src
		}
		return r
	}

	// A write to r invalidates r's own mapping and every mapping that
	// points at r.
	clobber := func(r machine.Register) {
		delete(copyOf, r)
		for dst, src := range copyOf {
			if src == r {
				delete(copyOf, dst)
			}
		}
	}

	newCode := make([]machine.Instruction[V], 0, len(program))

	for _, inst := range program {
		switch inst.Op {
		case machine.OpCopy:
			src := resolve(inst.Src1)
			clobber(inst.Dst)
			if src != inst.Dst {
				copyOf[inst.Dst] = src
			}
			newCode = append(newCode, machine.Copy[V](src, inst.Dst))

		case machine.OpAdd:
			src1, src2 := resolve(inst.Src1), resolve(inst.Src2)
			clobber(inst.Dst)
			newCode = append(newCode, machine.Add[V](src1, src2, inst.Dst))

		case machine.OpSet:
			clobber(inst.Dst)
			newCode = append(newCode, inst)

		default:
			clobber(inst.Dst)
			newCode = append(newCode, inst)
		}
	}

	return newCode
}
