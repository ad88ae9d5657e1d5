// Package testutil provides shared fixtures for foldvm tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// TempFile creates a temporary file with the given content and extension.
// The file is cleaned up when the test finishes.
func TempFile(t *testing.T, content, ext string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+ext)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// TempCSV creates a temporary CSV file and returns its path.
func TempCSV(t *testing.T, content string) string {
	t.Helper()
	return TempFile(t, content, ".csv")
}

// MeasurementsCSV returns standard test CSV content for measurement data.
func MeasurementsCSV() string {
	return `reading,weight
1,0.5
2,1.5
3,2.5
4,3.5`
}

// MakeMeasurementsFrame creates the frame matching MeasurementsCSV.
func MakeMeasurementsFrame() *dataframe.DataFrame {
	return dataframe.NewDataFrame(
		dataframe.NewSeriesInt64("reading", nil, 1, 2, 3, 4),
		dataframe.NewSeriesFloat64("weight", nil, 0.5, 1.5, 2.5, 3.5),
	)
}

// MakeFlagsSeries creates a bool column with the given values.
func MakeFlagsSeries(name string, flags ...bool) dataframe.Series {
	vals := make([]interface{}, len(flags))
	for i, f := range flags {
		vals[i] = f
	}
	return dataframe.NewSeriesGeneric(name, false, nil, vals...)
}

// AssertInt64Equal checks if two int64 values are equal.
func AssertInt64Equal(t *testing.T, expected, actual int64) {
	t.Helper()
	if expected != actual {
		t.Errorf("expected %d, got %d", expected, actual)
	}
}

// AssertFloat64Near checks if two float64 values are approximately equal.
func AssertFloat64Near(t *testing.T, expected, actual, tolerance float64) {
	t.Helper()
	if actual < expected-tolerance || actual > expected+tolerance {
		t.Errorf("expected %.6f, got %.6f (tolerance: %.6f)", expected, actual, tolerance)
	}
}
