// Package series bridges dataframe-go columns to the sequence producers
// consumed by pkg/reduce.
//
// A column is exposed as an iter.Seq over its typed, non-nil values, which
// makes every fold-derived aggregate in pkg/reduce directly applicable to
// tabular data. The package also carries fold-backed column aggregates and
// bitmap-based row filtering.
package series

import (
	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// DataType identifies the element type of a series.
type DataType uint8

const (
	TypeInt64 DataType = iota
	TypeFloat64
	TypeString
	TypeBool
	TypeUnknown
)

// String returns the string representation of the data type.
func (t DataType) String() string {
	switch t {
	case TypeInt64:
		return "int64"
	case TypeFloat64:
		return "float64"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// TypeOf returns the DataType of a dataframe-go Series.
func TypeOf(s dataframe.Series) DataType {
	if s == nil {
		return TypeUnknown
	}
	switch s.(type) {
	case *dataframe.SeriesInt64:
		return TypeInt64
	case *dataframe.SeriesFloat64:
		return TypeFloat64
	case *dataframe.SeriesString:
		return TypeString
	default:
		// Bool columns arrive as SeriesGeneric holding bool values.
		if sg, ok := s.(*dataframe.SeriesGeneric); ok && sg.NRows() > 0 {
			if _, ok := sg.Value(0).(bool); ok {
				return TypeBool
			}
		}
		return TypeUnknown
	}
}

// Column retrieves a series from a DataFrame by column name.
func Column(df *dataframe.DataFrame, name string) (dataframe.Series, bool) {
	if df == nil {
		return nil, false
	}
	idx, err := df.NameToColumn(name)
	if err != nil {
		return nil, false
	}
	return df.Series[idx], true
}

// length returns the number of rows in a series, treating nil as empty.
func length(s dataframe.Series) int {
	if s == nil {
		return 0
	}
	return s.NRows()
}

// int64At extracts an int64 value at index i. ok is false for nil entries
// and incompatible types.
func int64At(s dataframe.Series, i int) (int64, bool) {
	v := s.Value(i)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	case float64:
		return int64(val), true
	default:
		return 0, false
	}
}

// float64At extracts a float64 value at index i.
func float64At(s dataframe.Series, i int) (float64, bool) {
	v := s.Value(i)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

// boolAt extracts a bool value at index i.
func boolAt(s dataframe.Series, i int) (bool, bool) {
	v := s.Value(i)
	if v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
