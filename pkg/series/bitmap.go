package series

import (
	"math/bits"
)

// Bitmap is a bit vector used as a row-selection mask. Bit = 1 means the
// row is selected.
type Bitmap struct {
	bits   []uint64
	length int
}

// NewBitmap creates a bitmap of the given length with all bits clear.
func NewBitmap(length int) *Bitmap {
	numWords := (length + 63) / 64
	return &Bitmap{
		bits:   make([]uint64, numWords),
		length: length,
	}
}

// NewAllSetBitmap creates a bitmap of the given length with all bits set.
func NewAllSetBitmap(length int) *Bitmap {
	b := NewBitmap(length)
	for i := range b.bits {
		b.bits[i] = ^uint64(0)
	}
	// Clear bits beyond length in the last word.
	if length > 0 {
		if remainder := length % 64; remainder != 0 {
			b.bits[len(b.bits)-1] &= (uint64(1) << remainder) - 1
		}
	}
	return b
}

// Len returns the length of the bitmap.
func (b *Bitmap) Len() int {
	return b.length
}

// Set sets the bit at index i. Out-of-range indices are ignored.
func (b *Bitmap) Set(i int) {
	if i < 0 || i >= b.length {
		return
	}
	b.bits[i/64] |= uint64(1) << (i % 64)
}

// Clear clears the bit at index i. Out-of-range indices are ignored.
func (b *Bitmap) Clear(i int) {
	if i < 0 || i >= b.length {
		return
	}
	b.bits[i/64] &^= uint64(1) << (i % 64)
}

// IsSet reports whether the bit at index i is set.
func (b *Bitmap) IsSet(i int) bool {
	if i < 0 || i >= b.length {
		return false
	}
	return (b.bits[i/64] & (uint64(1) << (i % 64))) != 0
}

// PopCount returns the number of set bits.
func (b *Bitmap) PopCount() int {
	count := 0
	for i, word := range b.bits {
		if i == len(b.bits)-1 && b.length%64 != 0 {
			mask := (uint64(1) << (b.length % 64)) - 1
			count += bits.OnesCount64(word & mask)
		} else {
			count += bits.OnesCount64(word)
		}
	}
	return count
}

// And returns the bitwise AND of b and other, truncated to the shorter
// length.
func (b *Bitmap) And(other *Bitmap) *Bitmap {
	length := b.length
	if other.length < length {
		length = other.length
	}
	result := NewBitmap(length)
	for i := range result.bits {
		if i < len(b.bits) && i < len(other.bits) {
			result.bits[i] = b.bits[i] & other.bits[i]
		}
	}
	return result
}

// Or returns the bitwise OR of b and other, extended to the longer length.
func (b *Bitmap) Or(other *Bitmap) *Bitmap {
	length := b.length
	if other.length > length {
		length = other.length
	}
	result := NewBitmap(length)
	for i := range result.bits {
		var bVal, oVal uint64
		if i < len(b.bits) {
			bVal = b.bits[i]
		}
		if i < len(other.bits) {
			oVal = other.bits[i]
		}
		result.bits[i] = bVal | oVal
	}
	return result
}

// Not returns the bitwise complement of b.
func (b *Bitmap) Not() *Bitmap {
	result := NewBitmap(b.length)
	for i := range result.bits {
		result.bits[i] = ^b.bits[i]
	}
	if b.length > 0 {
		if remainder := b.length % 64; remainder != 0 {
			result.bits[len(result.bits)-1] &= (uint64(1) << remainder) - 1
		}
	}
	return result
}

// Clone returns a copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	result := NewBitmap(b.length)
	copy(result.bits, b.bits)
	return result
}
