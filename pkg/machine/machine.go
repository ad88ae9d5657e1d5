// Package machine implements a small register-machine core on top of the
// fold primitive in pkg/reduce.
//
// The execution contract is a pure state transition: executing one
// instruction consumes a machine state and returns a new one. Batch
// execution is a left fold of Execute over the instruction sequence. The
// reference machine (CPU) has three registers (RegA, RegB, RegC) and a
// closed three-opcode vocabulary: register add, register copy, and
// immediate set. There is no program counter, branching, or halting
// condition — a program terminates when its instruction sequence is
// exhausted.
//
// Basic usage:
//
//	cpu := machine.NewWith(1, 2, 0)
//	cpu = machine.ExecuteAll(cpu, slices.Values([]machine.Instruction[int]{
//		machine.Add[int](machine.RegA, machine.RegB, machine.RegC),
//	}))
//	// cpu.Register(machine.RegC) == 3
package machine

import (
	"iter"

	"github.com/akhildatla/foldvm/pkg/reduce"
)

// Machine is the execution contract implemented by any concrete machine
// type. Execute consumes the current state and one instruction and returns
// the resulting state; it must be total, side-effect-free, and must not
// retain the consumed state.
type Machine[M, I any] interface {
	Execute(inst I) M
}

// ExecuteAll folds Execute over program, starting from m. It is equivalent
// to calling Execute once per instruction in order; an empty program
// returns m unchanged.
//
// Later instructions observe the register writes of earlier ones, so the
// intra-machine fold is inherently sequential.
func ExecuteAll[M Machine[M, I], I any](m M, program iter.Seq[I]) M {
	return reduce.Fold(func(inst I, state M) M { return state.Execute(inst) }, m, program)
}
