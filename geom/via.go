package geom

import "fmt"

// Via is an immutable vertical pillar at a fixed (X,Y) spanning the
// contiguous layer range [Z1,Z2] (Z1 <= Z2), identified by Label.
//
// A Via marks every cell (X,Y,z) for z in [Z1,Z2] as a via column cell; see
// graph.Graph for how these columns are wired into adc2016 connectivity.
type Via struct {
	Label  string
	X, Y   int
	Z1, Z2 int
}

// NewVia constructs a Via, returning ErrBadVia if z2 < z1.
func NewVia(label string, x, y, z1, z2 int) (Via, error) {
	if z2 < z1 {
		return Via{}, ErrBadVia
	}

	return Via{Label: label, X: x, Y: y, Z1: z1, Z2: z2}, nil
}

// Layers returns the inclusive list of z-layers this via spans, in
// ascending order.
func (v Via) Layers() []int {
	layers := make([]int, 0, v.Z2-v.Z1+1)
	for z := v.Z1; z <= v.Z2; z++ {
		layers = append(layers, z)
	}

	return layers
}

// Contains reports whether layer z lies within [Z1,Z2].
func (v Via) Contains(z int) bool {
	return z >= v.Z1 && z <= v.Z2
}

// PointAt returns the Point at layer z within this via's column. The
// caller is responsible for ensuring z is within [Z1,Z2].
func (v Via) PointAt(z int) Point {
	return Point{X: v.X, Y: v.Y, Z: z}
}

// String renders the via as "Via#label: (x,y,z1)-(x,y,z2)".
func (v Via) String() string {
	return fmt.Sprintf("Via#%s: (%d,%d,%d)-(%d,%d,%d)", v.Label, v.X, v.Y, v.Z1, v.X, v.Y, v.Z2)
}
