package series

import (
	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// Mask builds a row-selection bitmap from a bool column. A row is selected
// when its value is non-nil and true.
func Mask(s dataframe.Series) *Bitmap {
	n := length(s)
	b := NewBitmap(n)
	for i := 0; i < n; i++ {
		if v, ok := boolAt(s, i); ok && v {
			b.Set(i)
		}
	}
	return b
}

// Filter returns a new series holding the rows of s selected by mask,
// preserving order. The input series is not modified.
func Filter(s dataframe.Series, mask *Bitmap) dataframe.Series {
	if s == nil || mask == nil {
		return s
	}

	count := mask.PopCount()
	if count == 0 {
		return emptyLike(s)
	}

	vals := make([]interface{}, 0, count)
	n := s.NRows()
	for i := 0; i < n && len(vals) < count; i++ {
		if mask.IsSet(i) {
			vals = append(vals, s.Value(i))
		}
	}

	return withValues(s, vals)
}

// emptyLike creates an empty series of the same type and name as s.
func emptyLike(s dataframe.Series) dataframe.Series {
	name := s.Name()
	switch s.(type) {
	case *dataframe.SeriesInt64:
		return dataframe.NewSeriesInt64(name, nil)
	case *dataframe.SeriesFloat64:
		return dataframe.NewSeriesFloat64(name, nil)
	case *dataframe.SeriesString:
		return dataframe.NewSeriesString(name, nil)
	default:
		if sg, ok := s.(*dataframe.SeriesGeneric); ok && sg.NRows() > 0 {
			return dataframe.NewSeriesGeneric(name, sg.Value(0), nil)
		}
		return dataframe.NewSeriesGeneric(name, nil, nil)
	}
}

// withValues creates a series of the same type and name as s holding vals.
func withValues(s dataframe.Series, vals []interface{}) dataframe.Series {
	name := s.Name()
	switch s.(type) {
	case *dataframe.SeriesInt64:
		return dataframe.NewSeriesInt64(name, nil, vals...)
	case *dataframe.SeriesFloat64:
		return dataframe.NewSeriesFloat64(name, nil, vals...)
	case *dataframe.SeriesString:
		return dataframe.NewSeriesString(name, nil, vals...)
	default:
		if sg, ok := s.(*dataframe.SeriesGeneric); ok && sg.NRows() > 0 {
			return dataframe.NewSeriesGeneric(name, sg.Value(0), nil, vals...)
		}
		return dataframe.NewSeriesGeneric(name, nil, nil, vals...)
	}
}
