package machine

import (
	"slices"
	"testing"
)

// tally is a second, minimal implementation of the execution contract used
// to check that ExecuteAll is generic over machine types, not tied to CPU.
type tally struct {
	adds  int
	total int
}

func (m tally) Execute(inst Instruction[int]) tally {
	if inst.Op == OpAdd {
		m.adds++
	}
	m.total++
	return m
}

func TestExecuteAll_AnyContractImplementation(t *testing.T) {
	program := []Instruction[int]{
		Set(1, RegA),
		Add[int](RegA, RegA, RegB),
		Add[int](RegA, RegB, RegC),
		Copy[int](RegC, RegA),
	}

	got := ExecuteAll(tally{}, slices.Values(program))
	if got.total != 4 {
		t.Errorf("expected 4 instructions counted, got %d", got.total)
	}
	if got.adds != 2 {
		t.Errorf("expected 2 adds counted, got %d", got.adds)
	}
}
