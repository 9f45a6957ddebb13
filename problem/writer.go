package problem

import (
	"fmt"
	"io"
)

// Write renders p back into the ADC text format, suitable for Parse to
// read again. Net labels and via labels are
// emitted exactly as stored; net terminal order is preserved.
func Write(w io.Writer, p *Problem) error {
	is2D := p.Dimension.Depth == 1
	var err error
	if is2D {
		_, err = fmt.Fprintf(w, "SIZE %dX%d\n", p.Dimension.Width, p.Dimension.Height)
	} else {
		_, err = fmt.Fprintf(w, "SIZE %dX%dX%d\n", p.Dimension.Width, p.Dimension.Height, p.Dimension.Depth)
	}
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "LINE_NUM %d\n", len(p.Nets)); err != nil {
		return err
	}
	for _, n := range p.Nets {
		if is2D {
			_, err = fmt.Fprintf(w, "LINE#%d (%d,%d)-(%d,%d)\n",
				n.Label, n.Start.X, n.Start.Y, n.End.X, n.End.Y)
		} else {
			_, err = fmt.Fprintf(w, "LINE#%d (%d,%d,%d)-(%d,%d,%d)\n",
				n.Label, n.Start.X, n.Start.Y, n.Start.Z+1, n.End.X, n.End.Y, n.End.Z+1)
		}
		if err != nil {
			return err
		}
	}
	for _, v := range p.Vias {
		if _, err = fmt.Fprintf(w, "VIA#%s", v.Label); err != nil {
			return err
		}
		for _, z := range v.Layers() {
			if _, err = fmt.Fprintf(w, " (%d,%d,%d)", v.X, v.Y, z+1); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
