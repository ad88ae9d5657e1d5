package loader

import (
	"testing"

	"github.com/akhildatla/foldvm/internal/testutil"
)

func TestLoadJSON_Basic(t *testing.T) {
	path := testutil.TempFile(t, `[
		{"reading": 1, "weight": 0.5},
		{"reading": 2, "weight": 1.5},
		{"reading": 3, "weight": 2.5}
	]`, ".json")

	df, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}

	if df.Series[0].NRows() != 3 {
		t.Errorf("expected 3 rows, got %d", df.Series[0].NRows())
	}
	if len(df.Series) != 2 {
		t.Errorf("expected 2 columns, got %d", len(df.Series))
	}
}

func TestLoadJSON_EmptyFile(t *testing.T) {
	path := testutil.TempFile(t, "", ".json")

	if _, err := LoadJSON(path); err == nil {
		t.Error("expected error for empty file")
	}
}

func TestLoadJSON_MissingFile(t *testing.T) {
	if _, err := LoadJSON("/nonexistent/path/data.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
