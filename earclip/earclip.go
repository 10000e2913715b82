// Package earclip triangulates simple polygons by ear clipping.
//
// The input is an ordered, counter-clockwise, non-self-intersecting
// polygon. The triangulator keeps an incremental classification of every
// vertex as reflex, convex, or ear, so that clipping an ear only requires
// re-examining its two neighbors.
package earclip

import (
	"errors"

	"github.com/tessdraw/tessdraw/geom"
)

var (
	// ErrNotEnoughVertices is returned for polygons with fewer than
	// three vertices.
	ErrNotEnoughVertices = errors.New("earclip: not enough vertices to triangulate")

	// ErrNonSimplePolygon is returned when the ear set empties before
	// the polygon is fully clipped, which can only happen when the
	// input violates the simple-polygon precondition.
	ErrNonSimplePolygon = errors.New("earclip: polygon is not simple")
)

// vertex is one slot of the circular doubly-linked list over surviving
// polygon vertices. Vertices are never reallocated, only unlinked; prev
// and next are indices into the slice, not pointers.
type vertex struct {
	prev, next int
	convex     bool
	ear        bool
}

// intSet supports membership tests and arbitrary-element extraction.
// Map iteration order is deliberately arbitrary; any ear is as good as
// any other.
type intSet map[int]struct{}

func (s intSet) add(i int)      { s[i] = struct{}{} }
func (s intSet) remove(i int)   { delete(s, i) }
func (s intSet) has(i int) bool { _, ok := s[i]; return ok }

// takeAny removes and returns an arbitrary member, or ok=false if the
// set is empty.
func (s intSet) takeAny() (int, bool) {
	for i := range s {
		delete(s, i)
		return i, true
	}
	return 0, false
}

// isEar reports whether the convex vertex at index i is an ear: no
// reflex vertex other than its own neighbors lies inside the triangle
// (prev, i, next). Only reflex vertices can invalidate an ear, so only
// the reflex set is scanned.
func isEar(points []geom.Point, reflexSet intSet, vs []vertex, i int) bool {
	v := &vs[i]
	for r := range reflexSet {
		if r == v.prev || r == v.next {
			continue
		}
		if geom.InTriangle(points[r], points[v.prev], points[i], points[v.next]) {
			return false
		}
	}
	return true
}

// makeVertices builds the circular doubly-linked list over n polygon
// positions in their original order.
func makeVertices(n int) []vertex {
	vs := make([]vertex, n)
	vs[0] = vertex{prev: n - 1, next: 1}
	for i := 1; i < n-1; i++ {
		vs[i] = vertex{prev: i - 1, next: i + 1}
	}
	vs[n-1] = vertex{prev: n - 2, next: 0}
	return vs
}

// fillSets runs the initial two-pass classification. The reflex set must
// be complete before any ear test runs, because ear-ness is defined
// against the full reflex set.
func fillSets(points []geom.Point, vs []vertex) (earSet, reflexSet intSet) {
	earSet = make(intSet)
	reflexSet = make(intSet)

	for i := range vs {
		if !geom.IsConvex(points[i], points[vs[i].prev], points[vs[i].next]) {
			reflexSet.add(i)
		}
	}

	for i := range vs {
		if reflexSet.has(i) {
			continue
		}
		vs[i].convex = true
		if isEar(points, reflexSet, vs, i) {
			vs[i].ear = true
			earSet.add(i)
		}
	}
	return earSet, reflexSet
}

// unlink removes vertex i from the circular list; its neighbors now
// point at each other.
func unlink(vs []vertex, i int) {
	prev := vs[i].prev
	next := vs[i].next
	vs[prev].next = next
	vs[next].prev = prev
}

// pushTriangle appends the triangle (prev, ear, next) in that order,
// preserving the counter-clockwise winding of the input polygon.
func pushTriangle(triangles []int, ear, prev, next int) []int {
	return append(triangles, prev, ear, next)
}

// reclassify updates the classification of a neighbor of a just-clipped
// ear. An ear may stop being one; a reflex vertex may become convex and
// possibly an ear; a convex vertex may become an ear. No vertex further
// away can change, which is what keeps each clip O(reflex-set-size).
func reclassify(points []geom.Point, vs []vertex, earSet, reflexSet intSet, i int) {
	v := &vs[i]
	if v.ear {
		if !isEar(points, reflexSet, vs, i) {
			v.ear = false
			earSet.remove(i)
		}
		return
	}
	if !geom.IsConvex(points[i], points[v.prev], points[v.next]) {
		return
	}
	if !v.convex {
		v.convex = true
		reflexSet.remove(i)
	}
	if isEar(points, reflexSet, vs, i) {
		v.ear = true
		earSet.add(i)
	}
}

// Triangulate triangulates a simple counter-clockwise polygon and
// returns a flat stream of index triples into points, exactly
// 3*(n-2) indices for an n-vertex polygon. Each emitted triangle keeps
// counter-clockwise winding.
//
// Polygons with fewer than three vertices fail with
// ErrNotEnoughVertices. A self-intersecting input is detected when the
// ear supply runs dry and fails with ErrNonSimplePolygon.
func Triangulate(points []geom.Point) ([]int, error) {
	n := len(points)
	if n < 4 {
		if n == 3 {
			return []int{0, 1, 2}, nil
		}
		return nil, ErrNotEnoughVertices
	}

	vs := makeVertices(n)
	earSet, reflexSet := fillSets(points, vs)

	triangles := make([]int, 0, 3*(n-2))

	for {
		ear, ok := earSet.takeAny()
		if !ok {
			return nil, ErrNonSimplePolygon
		}

		prev := vs[ear].prev
		next := vs[ear].next
		triangles = pushTriangle(triangles, ear, prev, next)
		unlink(vs, ear)
		n--

		if n == 3 {
			// Any triangle is trivially an ear; the set holds
			// whichever of the three survivors still carries the
			// flag.
			last, ok := earSet.takeAny()
			if !ok {
				return nil, ErrNonSimplePolygon
			}
			return pushTriangle(triangles, last, vs[last].prev, vs[last].next), nil
		}

		reclassify(points, vs, earSet, reflexSet, prev)
		reclassify(points, vs, earSet, reflexSet, next)
	}
}
