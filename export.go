package numint

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes the plot samples as `segment,x,y` rows.
func WriteCSV(w io.Writer, p Plot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"segment", "x", "y"}); err != nil {
		return err
	}
	for _, seg := range []struct {
		name string
		pts  []Point
	}{{"left", p.LeftSide}, {"middle", p.Middle}, {"right", p.RightSide}} {
		for _, pt := range seg.pts {
			row := []string{seg.name, strconv.FormatFloat(pt.X, 'g', -1, 64), strconv.FormatFloat(pt.Y, 'g', -1, 64)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export writes the plot samples to a CSV file at path.
func (p Plot) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := WriteCSV(f, p); err != nil {
		f.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return f.Close()
}
