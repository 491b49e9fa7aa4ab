package simulate

import (
	"encoding/csv"
	"os"
	"strconv"

	"option-pricer/internal/model"
)

// WritePathsCSV dumps the simulated matrix, one row per path.
// Columns: path index followed by step_0..step_n prices.
func WritePathsCSV(path string, paths []model.PricePath) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	steps := 0
	if len(paths) > 0 {
		steps = len(paths[0]) - 1
	}

	header := make([]string, 0, steps+2)
	header = append(header, "path")
	for j := 0; j <= steps; j++ {
		header = append(header, "step_"+strconv.Itoa(j))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, p := range paths {
		row := make([]string, 0, len(p)+1)
		row = append(row, strconv.Itoa(i))
		for _, price := range p {
			row = append(row, fmtFloat(price))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
