// Package geom provides the 2D geometric primitives and classification
// predicates used by polygon triangulation: point/vector arithmetic,
// line-side orientation, convexity, and point-in-triangle tests.
//
// All predicates are pure functions. Degenerate input (colinear or
// coincident points) yields SideOn rather than an error.
package geom

// Side classifies a point's position relative to a directed line.
type Side int

const (
	// SideLeft means the point lies left of the directed line.
	SideLeft Side = iota
	// SideRight means the point lies right of the directed line.
	SideRight
	// SideOn means the point is colinear with the line.
	SideOn
)

// String returns the name of the side for debug output.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "on"
	}
}

// LineSide reports where test lies relative to the directed line from
// prev to next. It is the sign of the 2D cross product
// (test-prev) x (next-prev): negative is left, positive is right,
// exactly zero is colinear.
func LineSide(test, prev, next Point) Side {
	val := (test.X-prev.X)*(next.Y-prev.Y) - (test.Y-prev.Y)*(next.X-prev.X)
	switch {
	case val < 0:
		return SideLeft
	case val > 0:
		return SideRight
	}
	return SideOn
}

// IsConvex reports whether a polygon vertex is convex given its two
// neighbors. For a counter-clockwise polygon a vertex is convex when it
// lies right of the directed line from its predecessor to its successor.
func IsConvex(test, prev, next Point) bool {
	return LineSide(test, prev, next) == SideRight
}

// InTriangle reports whether test lies strictly inside the
// counter-clockwise triangle (v0, v1, v2). Points on the boundary count
// as outside.
func InTriangle(test, v0, v1, v2 Point) bool {
	if LineSide(test, v0, v1) != SideLeft {
		return false
	}
	if LineSide(test, v1, v2) != SideLeft {
		return false
	}
	if LineSide(test, v2, v0) != SideLeft {
		return false
	}
	return true
}
