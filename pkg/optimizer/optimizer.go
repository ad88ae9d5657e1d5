// Package optimizer applies peephole rewrites to straight-line instruction
// sequences for the register machine in pkg/machine.
//
// Because the vocabulary has no branches, every program is a single basic
// block and the classic passes (constant folding, copy propagation,
// dead-store elimination) reduce to one linear sweep each. Every pass
// preserves the final values of the live registers.
package optimizer

import (
	"github.com/akhildatla/foldvm/pkg/machine"
	"github.com/akhildatla/foldvm/pkg/reduce"
)

// Optimizer applies enabled passes to a program.
type Optimizer[V reduce.Number] struct {
	enableConstantFolding bool
	enableCopyPropagation bool
	enableDeadStore       bool
	live                  []machine.Register
}

// Option is a functional option for the Optimizer.
type Option func(*settings)

type settings struct {
	constantFolding bool
	copyPropagation bool
	deadStore       bool
	live            []machine.Register
}

// WithConstantFolding enables constant folding.
func WithConstantFolding() Option {
	return func(s *settings) {
		s.constantFolding = true
	}
}

// WithCopyPropagation enables copy propagation.
func WithCopyPropagation() Option {
	return func(s *settings) {
		s.copyPropagation = true
	}
}

// WithDeadStoreElimination enables dead-store elimination.
func WithDeadStoreElimination() Option {
	return func(s *settings) {
		s.deadStore = true
	}
}

// WithLiveRegisters declares which registers the caller observes after the
// program runs. Dead-store elimination may drop writes to any register not
// listed. The default treats every register as live.
func WithLiveRegisters(regs ...machine.Register) Option {
	return func(s *settings) {
		s.live = regs
	}
}

// WithAllOptimizations enables every pass.
func WithAllOptimizations() Option {
	return func(s *settings) {
		s.constantFolding = true
		s.copyPropagation = true
		s.deadStore = true
	}
}

// New creates a new Optimizer with the given options.
func New[V reduce.Number](opts ...Option) *Optimizer[V] {
	s := settings{
		live: []machine.Register{machine.RegA, machine.RegB, machine.RegC},
	}
	for _, o := range opts {
		o(&s)
	}
	return &Optimizer[V]{
		enableConstantFolding: s.constantFolding,
		enableCopyPropagation: s.copyPropagation,
		enableDeadStore:       s.deadStore,
		live:                  s.live,
	}
}

// Optimize applies the enabled passes in order and returns the rewritten
// program. The input slice is not modified.
func (o *Optimizer[V]) Optimize(program []machine.Instruction[V]) []machine.Instruction[V] {
	result := program

	if o.enableCopyPropagation {
		result = o.copyPropagation(result)
	}

	if o.enableConstantFolding {
		result = o.constantFolding(result)
	}

	if o.enableDeadStore {
		result = o.deadStoreElimination(result)
	}

	return result
}
