package loader

import (
	"bytes"
	"context"
	"errors"
	"os"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
)

// JSON-specific errors
var (
	ErrEmptyJSON = errors.New("empty JSON file")
)

// LoadJSON reads a JSON file containing an array of objects
// ([{"col1": v1, ...}, ...]) and returns a DataFrame. Column types are
// inferred automatically.
func LoadJSON(path string) (*dataframe.DataFrame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, ErrEmptyJSON
	}

	df, err := imports.LoadFromJSON(context.Background(), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if df == nil || len(df.Series) == 0 {
		return nil, ErrEmptyJSON
	}

	return df, nil
}
