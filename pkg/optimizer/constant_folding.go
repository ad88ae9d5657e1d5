package optimizer

import (
	"github.com/akhildatla/foldvm/pkg/machine"
)

// constantFolding evaluates register contents known at rewrite time.
// For example:
//
//	SET 5 -> A
//	SET 10 -> B
//	ADD A, B -> C
//
// Becomes:
//
//	SET 5 -> A
//	SET 10 -> B
//	SET 15 -> C
//
// Redundant SETs left behind are removed by dead-store elimination.
func (o *Optimizer[V]) constantFolding(program []machine.Instruction[V]) []machine.Instruction[V] {
	known := make(map[machine.Register]V)

	newCode := make([]machine.Instruction[V], 0, len(program))

	for _, inst := range program {
		switch inst.Op {
		case machine.OpSet:
			known[inst.Dst] = inst.Imm
			newCode = append(newCode, inst)

		case machine.OpCopy:
			if v, ok := known[inst.Src1]; ok {
				known[inst.Dst] = v
				newCode = append(newCode, machine.Set(v, inst.Dst))
			} else {
				delete(known, inst.Dst)
				newCode = append(newCode, inst)
			}

		case machine.OpAdd:
			v1, ok1 := known[inst.Src1]
			v2, ok2 := known[inst.Src2]
			if ok1 && ok2 {
				sum := v1 + v2
				known[inst.Dst] = sum
				newCode = append(newCode, machine.Set(sum, inst.Dst))
			} else {
				delete(known, inst.Dst)
				newCode = append(newCode, inst)
			}

		default:
			delete(known, inst.Dst)
			newCode = append(newCode, inst)
		}
	}

	return newCode
}
