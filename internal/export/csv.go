package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"magnetite/internal/grid"
)

var csvHeader = []string{"x", "y", "z", "bx", "by", "bz", "abs", "defined"}

// WriteCSV writes one row per sample in grid order. Undefined samples keep
// their NaN/Inf components and are flagged in the last column.
func WriteCSV(w io.Writer, res *grid.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}

	row := make([]string, len(csvHeader))
	for i, v := range res.Field {
		p := res.Grid.Point(i)
		row[0] = formatFloat(p.X())
		row[1] = formatFloat(p.Y())
		row[2] = formatFloat(p.Z())
		row[3] = formatFloat(v.X())
		row[4] = formatFloat(v.Y())
		row[5] = formatFloat(v.Z())
		row[6] = formatFloat(v.Abs())
		row[7] = strconv.FormatBool(res.Defined(i))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: csv flush: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
