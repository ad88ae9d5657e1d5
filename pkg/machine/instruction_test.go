package machine

import "testing"

func TestRegister_IndexMapping(t *testing.T) {
	tests := []struct {
		reg   Register
		index int
		name  string
	}{
		{RegA, 0, "A"},
		{RegB, 1, "B"},
		{RegC, 2, "C"},
	}

	for _, tt := range tests {
		if tt.reg.Index() != tt.index {
			t.Errorf("%s: expected index %d, got %d", tt.name, tt.index, tt.reg.Index())
		}
		if tt.reg.String() != tt.name {
			t.Errorf("expected name %q, got %q", tt.name, tt.reg.String())
		}
		if tt.reg.Index() < 0 || tt.reg.Index() >= NumRegisters {
			t.Errorf("%s: index %d out of bounds", tt.name, tt.reg.Index())
		}
	}
}

func TestOpcode_String(t *testing.T) {
	tests := []struct {
		op       Opcode
		expected string
	}{
		{OpAdd, "ADD"},
		{OpCopy, "COPY"},
		{OpSet, "SET"},
		{Opcode(0xFF), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		inst     Instruction[int]
		expected string
	}{
		{Add[int](RegA, RegB, RegC), "ADD A, B -> C"},
		{Copy[int](RegC, RegB), "COPY C -> B"},
		{Set(5, RegA), "SET 5 -> A"},
	}

	for _, tt := range tests {
		if got := tt.inst.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestInstruction_Constructors(t *testing.T) {
	add := Add[int](RegA, RegB, RegC)
	if add.Op != OpAdd || add.Src1 != RegA || add.Src2 != RegB || add.Dst != RegC {
		t.Errorf("Add built %+v", add)
	}

	cp := Copy[int](RegB, RegA)
	if cp.Op != OpCopy || cp.Src1 != RegB || cp.Dst != RegA {
		t.Errorf("Copy built %+v", cp)
	}

	set := Set(17, RegC)
	if set.Op != OpSet || set.Imm != 17 || set.Dst != RegC {
		t.Errorf("Set built %+v", set)
	}
}
