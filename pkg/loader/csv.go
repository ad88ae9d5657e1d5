// Package loader ingests tabular data files into dataframe-go frames.
//
// Loaded frames are consumed through the column adapters in pkg/series,
// which expose them as sequence producers for pkg/reduce. The loader deals
// only in data; instruction programs are never parsed from files.
package loader

import (
	"context"
	"errors"
	"os"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
)

// CSV-specific errors
var (
	ErrEmptyCSV = errors.New("empty CSV file")
)

// LoadCSV reads a CSV file and returns a DataFrame.
// The first row is the header; column types (int64, float64, bool, string)
// are inferred, and empty values become nil.
func LoadCSV(path string) (*dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	df, err := imports.LoadFromCSV(context.Background(), file, imports.CSVLoadOptions{
		InferDataTypes: true,
	})
	if err != nil {
		return nil, err
	}

	if df == nil || len(df.Series) == 0 {
		return nil, ErrEmptyCSV
	}

	return df, nil
}
