package geom

import "fmt"

// Point is an immutable grid coordinate (x, y, z).
//
// Complexity: every method here is O(1).
type Point struct {
	X, Y, Z int
}

// NewPoint constructs a Point. It performs no range validation; use
// Dimension.Contains to validate against a concrete grid size.
func NewPoint(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// String renders the point as "(x,y,z)", matching the original format
// used by the solution/problem text encodings.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// SameLayer reports whether p and q share a z coordinate.
func (p Point) SameLayer(q Point) bool {
	return p.Z == q.Z
}

// ManhattanDistance returns the L1 distance between p and q across all
// three axes.
func (p Point) ManhattanDistance(q Point) int {
	return absInt(p.X-q.X) + absInt(p.Y-q.Y) + absInt(p.Z-q.Z)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
