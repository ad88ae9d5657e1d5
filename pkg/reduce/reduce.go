// Package reduce implements a single generic left fold and the aggregate
// operations derived from it.
//
// Every aggregate in this package (and batch execution in pkg/machine) is a
// thin adapter over Fold: a seed value plus a combining function. Sequences
// are iter.Seq producers — finite, ordered, and consumed exactly once, left
// to right.
//
// Basic usage:
//
//	total := reduce.Sum(slices.Values([]int{1, 2, 3}))
//	n := reduce.Length(slices.Values([]string{"a", "b"}))
package reduce

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number constrains the value types usable with Sum, Product and SumLength.
type Number interface {
	constraints.Integer | constraints.Float
}

// Fold threads an accumulator through seq left to right, applying combine
// once per element, and returns the final accumulator. For an empty sequence
// the seed is returned unchanged.
//
// combine must be safe to call once per element; Fold itself cannot fail and
// has no side effects beyond consuming seq.
func Fold[E, A any](combine func(E, A) A, seed A, seq iter.Seq[E]) A {
	acc := seed
	for x := range seq {
		acc = combine(x, acc)
	}
	return acc
}

// Sum returns the sum of seq, seeded with the additive identity.
func Sum[V Number](seq iter.Seq[V]) V {
	return Fold(func(x, acc V) V { return acc + x }, V(0), seq)
}

// Product returns the product of seq, seeded with the multiplicative
// identity. An empty sequence yields 1.
func Product[V Number](seq iter.Seq[V]) V {
	return Fold(func(x, acc V) V { return acc * x }, V(1), seq)
}

// All reports whether every element of seq is true. The empty sequence is
// vacuously true. The full sequence is always traversed; there is no
// short-circuit.
func All(seq iter.Seq[bool]) bool {
	return Fold(func(x, acc bool) bool { return acc && x }, true, seq)
}

// Any reports whether at least one element of seq is true. The empty
// sequence yields false. Like All, the full sequence is always traversed.
func Any(seq iter.Seq[bool]) bool {
	return Fold(func(x, acc bool) bool { return acc || x }, false, seq)
}

// Length returns the number of elements in seq.
func Length[E any](seq iter.Seq[E]) int {
	return Fold(func(_ E, acc int) int { return acc + 1 }, 0, seq)
}

// Reverse collects seq into a slice in reverse order. The fold appends
// forward and a single in-place pass reverses the result, keeping the whole
// operation linear.
func Reverse[E any](seq iter.Seq[E]) []E {
	out := Fold(func(x E, acc []E) []E { return append(acc, x) }, []E(nil), seq)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Map applies f to every element of seq, preserving order.
func Map[E, R any](f func(E) R, seq iter.Seq[E]) []R {
	return Fold(func(x E, acc []R) []R { return append(acc, f(x)) }, []R(nil), seq)
}

// Filter collects the elements of seq for which pred holds, preserving
// order and values.
func Filter[E any](pred func(E) bool, seq iter.Seq[E]) []E {
	return Fold(func(x E, acc []E) []E {
		if pred(x) {
			acc = append(acc, x)
		}
		return acc
	}, []E(nil), seq)
}

// SumLength computes the sum and the length of seq in a single traversal.
func SumLength[V Number](seq iter.Seq[V]) (V, int) {
	type pair struct {
		sum V
		n   int
	}
	p := Fold(func(x V, acc pair) pair {
		return pair{sum: acc.sum + x, n: acc.n + 1}
	}, pair{}, seq)
	return p.sum, p.n
}
