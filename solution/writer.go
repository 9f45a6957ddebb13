package solution

import (
	"fmt"
	"io"
)

// Write renders g in the solution text format: a SIZE header, then one
// LAYER block per z-layer (1-based), each holding Height rows of Width
// comma-separated values.
func Write(w io.Writer, g *Grid) error {
	if _, err := fmt.Fprintf(w, "SIZE %dX%dX%d\n", g.Dim.Width, g.Dim.Height, g.Dim.Depth); err != nil {
		return err
	}
	for z := 0; z < g.Dim.Depth; z++ {
		if _, err := fmt.Fprintf(w, "LAYER %d\n", z+1); err != nil {
			return err
		}
		for y := 0; y < g.Dim.Height; y++ {
			for x := 0; x < g.Dim.Width; x++ {
				sep := ","
				if x == 0 {
					sep = ""
				}
				if _, err := fmt.Fprintf(w, "%s%d", sep, g.Cells[g.Dim.Index(x, y, z)]); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	return nil
}
