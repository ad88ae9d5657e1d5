package series

import (
	"testing"
)

func TestBitmap_NewBitmap(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"small", 10},
		{"exactly 64", 64},
		{"over 64", 100},
		{"large", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBitmap(tt.length)
			if b.Len() != tt.length {
				t.Errorf("expected length %d, got %d", tt.length, b.Len())
			}
			if b.PopCount() != 0 {
				t.Errorf("expected no set bits, got %d", b.PopCount())
			}
		})
	}
}

func TestBitmap_SetClearAtWordBoundaries(t *testing.T) {
	b := NewBitmap(100)

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(99)

	for _, i := range []int{0, 63, 64, 99} {
		if !b.IsSet(i) {
			t.Errorf("bit %d should be set", i)
		}
	}
	if b.IsSet(1) {
		t.Error("bit 1 should be clear")
	}

	b.Clear(63)
	if b.IsSet(63) {
		t.Error("bit 63 should be clear after Clear()")
	}
}

func TestBitmap_OutOfRangeIsIgnored(t *testing.T) {
	b := NewBitmap(10)
	b.Set(-1)
	b.Set(10)
	if b.PopCount() != 0 {
		t.Errorf("out-of-range Set changed the bitmap: %d bits", b.PopCount())
	}
	if b.IsSet(-1) || b.IsSet(10) {
		t.Error("out-of-range IsSet should be false")
	}
}

func TestBitmap_PopCount(t *testing.T) {
	b := NewBitmap(100)
	b.Set(0)
	b.Set(50)
	b.Set(99)
	if b.PopCount() != 3 {
		t.Errorf("expected pop count 3, got %d", b.PopCount())
	}
}

func TestBitmap_NewAllSetBitmap(t *testing.T) {
	for _, length := range []int{0, 1, 63, 64, 65, 100} {
		b := NewAllSetBitmap(length)
		if b.PopCount() != length {
			t.Errorf("length %d: expected %d set bits, got %d", length, length, b.PopCount())
		}
	}
}

func TestBitmap_AndOrNot(t *testing.T) {
	a := NewBitmap(10)
	a.Set(1)
	a.Set(3)

	b := NewBitmap(10)
	b.Set(3)
	b.Set(5)

	and := a.And(b)
	if and.PopCount() != 1 || !and.IsSet(3) {
		t.Errorf("expected AND = {3}, got %d bits", and.PopCount())
	}

	or := a.Or(b)
	if or.PopCount() != 3 || !or.IsSet(1) || !or.IsSet(3) || !or.IsSet(5) {
		t.Errorf("expected OR = {1,3,5}, got %d bits", or.PopCount())
	}

	not := a.Not()
	if not.PopCount() != 8 || not.IsSet(1) || not.IsSet(3) {
		t.Errorf("expected NOT to flip to 8 bits, got %d", not.PopCount())
	}
}

func TestBitmap_Clone(t *testing.T) {
	a := NewBitmap(10)
	a.Set(2)

	c := a.Clone()
	c.Set(7)

	if a.IsSet(7) {
		t.Error("mutating the clone changed the original")
	}
	if !c.IsSet(2) {
		t.Error("clone lost bit 2")
	}
}
