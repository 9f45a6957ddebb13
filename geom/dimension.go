package geom

// Dimension describes a W x H x D box and the bijection between a
// (x,y,z) coordinate and a linear cell index:
//
//	index = ((z*H)+y)*W + x
//
// Dimension is immutable once constructed.
//
// Complexity: every method here is O(1).
type Dimension struct {
	Width, Height, Depth int
}

// NewDimension constructs a Dimension. Width, Height, and Depth must all be
// positive for a usable grid; NewDimension does not check this, and
// neither does problem.Parse, which accepts a zero SIZE extent.
func NewDimension(width, height, depth int) Dimension {
	return Dimension{Width: width, Height: height, Depth: depth}
}

// GridSize returns Width*Height*Depth, the total number of cells.
func (d Dimension) GridSize() int {
	return d.Width * d.Height * d.Depth
}

// Contains reports whether (x,y,z) lies within [0,Width) x [0,Height) x
// [0,Depth).
func (d Dimension) Contains(x, y, z int) bool {
	return x >= 0 && x < d.Width &&
		y >= 0 && y < d.Height &&
		z >= 0 && z < d.Depth
}

// ContainsPoint is Contains applied to a Point.
func (d Dimension) ContainsPoint(p Point) bool {
	return d.Contains(p.X, p.Y, p.Z)
}

// Index converts (x,y,z) to its linear cell index. It does not range-check;
// callers must validate with Contains first when the coordinate is not
// already known to be in range.
func (d Dimension) Index(x, y, z int) int {
	return ((z*d.Height)+y)*d.Width + x
}

// IndexOf is Index applied to a Point.
func (d Dimension) IndexOf(p Point) int {
	return d.Index(p.X, p.Y, p.Z)
}

// PointAt is the inverse of Index: it recovers (x,y,z) from a linear index.
func (d Dimension) PointAt(index int) Point {
	x := index % d.Width
	index /= d.Width
	y := index % d.Height
	index /= d.Height
	z := index

	return Point{X: x, Y: y, Z: z}
}

// CheckedIndex is like Index but returns ErrOutOfRange instead of producing
// a meaningless result when the point is outside the Dimension.
func (d Dimension) CheckedIndex(p Point) (int, error) {
	if !d.ContainsPoint(p) {
		return 0, ErrOutOfRange
	}

	return d.IndexOf(p), nil
}
