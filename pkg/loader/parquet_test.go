package loader

import (
	"testing"

	"github.com/akhildatla/foldvm/internal/testutil"
)

func TestLoadParquet_MissingFile(t *testing.T) {
	if _, err := LoadParquet("/nonexistent/path/data.parquet"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadParquet_InvalidFile(t *testing.T) {
	// Not a parquet file; the reader must reject it rather than return an
	// empty frame.
	path := testutil.TempFile(t, "not parquet", ".parquet")

	if _, err := LoadParquet(path); err == nil {
		t.Error("expected error for invalid parquet file")
	}
}
