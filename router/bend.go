package router

import "github.com/katalvlaran/nlsat/geom"

// checkBend reports whether the path segment p1-p2-p3 bends at p2: true
// when the set of axes that differ across all three points has size two
// or more.
func checkBend(p1, p2, p3 geom.Point) bool {
	xDiff := p1.X != p2.X || p2.X != p3.X
	yDiff := p1.Y != p2.Y || p2.Y != p3.Y
	zDiff := p1.Z != p2.Z || p2.Z != p3.Z

	return (xDiff && yDiff) || (xDiff && zDiff) || (yDiff && zDiff)
}

// countBends counts bend vertices along the full path start, points...,
// end.
func countBends(start geom.Point, points []geom.Point, end geom.Point) int {
	full := make([]geom.Point, 0, len(points)+2)
	full = append(full, start)
	full = append(full, points...)
	full = append(full, end)

	count := 0
	for i := 1; i < len(full)-1; i++ {
		if checkBend(full[i-1], full[i], full[i+1]) {
			count++
		}
	}

	return count
}
