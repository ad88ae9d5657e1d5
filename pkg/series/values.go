package series

import (
	"iter"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/akhildatla/foldvm/pkg/reduce"
)

// Int64Values returns the non-nil int64 values of a column as a sequence
// producer. The sequence is single-pass and ordered by row index.
func Int64Values(s dataframe.Series) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		n := length(s)
		for i := 0; i < n; i++ {
			if v, ok := int64At(s, i); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Float64Values returns the non-nil float64 values of a column as a
// sequence producer.
func Float64Values(s dataframe.Series) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := length(s)
		for i := 0; i < n; i++ {
			if v, ok := float64At(s, i); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// BoolValues returns the non-nil bool values of a column as a sequence
// producer.
func BoolValues(s dataframe.Series) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		n := length(s)
		for i := 0; i < n; i++ {
			if v, ok := boolAt(s, i); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Sum returns the sum of an int64 column.
func Sum(s dataframe.Series) int64 {
	return reduce.Sum(Int64Values(s))
}

// SumFloat returns the sum of a numeric column as float64.
func SumFloat(s dataframe.Series) float64 {
	return reduce.Sum(Float64Values(s))
}

// Count returns the number of non-nil numeric values in a column.
func Count(s dataframe.Series) int {
	return reduce.Length(Float64Values(s))
}

// Mean returns the mean of a numeric column, computing sum and count in a
// single traversal. An empty or all-nil column yields 0.
func Mean(s dataframe.Series) float64 {
	sum, n := reduce.SumLength(Float64Values(s))
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// All reports whether every non-nil value of a bool column is true.
func All(s dataframe.Series) bool {
	return reduce.All(BoolValues(s))
}

// Any reports whether at least one non-nil value of a bool column is true.
func Any(s dataframe.Series) bool {
	return reduce.Any(BoolValues(s))
}
