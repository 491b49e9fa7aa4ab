package simulate

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"option-pricer/internal/model"
)

func TestWritePathsCSV(t *testing.T) {
	paths := []model.PricePath{
		{100, 101.5, 99.25},
		{100, 98, 102},
	}

	out := filepath.Join(t.TempDir(), "paths.csv")
	if err := WritePathsCSV(out, paths); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("row count: got %d, want 3", len(rows))
	}
	if rows[0][0] != "path" || rows[0][1] != "step_0" || rows[0][3] != "step_2" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "0" || rows[1][1] != "100.000000" || rows[2][3] != "102.000000" {
		t.Fatalf("unexpected rows: %v / %v", rows[1], rows[2])
	}
}
