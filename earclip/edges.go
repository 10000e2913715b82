package earclip

// isBoundary reports whether the directed edge i->j coincides with an
// original polygon boundary edge: j must be the successor of i, with
// wraparound from max back to 0.
func isBoundary(i, j, max int) bool {
	return j == i+1 || (i == max && j == 0)
}

// TriangleEdges reports which edges of the triangle (i0, i1, i2) lie on
// the original polygon boundary, in edge order i0->i1, i1->i2, i2->i0.
// max is the highest vertex index of the polygon. Edges that are not
// boundary edges are internal diagonals introduced by triangulation.
func TriangleEdges(i0, i1, i2, max int) (bool, bool, bool) {
	return isBoundary(i0, i1, max), isBoundary(i1, i2, max), isBoundary(i2, i0, max)
}

// FindEdges computes boundary flags for a whole triangle-index stream,
// one flag per directed edge, three per triangle, in the same order as
// TriangleEdges.
func FindEdges(triangles []int, max int) []bool {
	edges := make([]bool, 0, len(triangles))
	for i := 0; i+2 < len(triangles); i += 3 {
		e0, e1, e2 := TriangleEdges(triangles[i], triangles[i+1], triangles[i+2], max)
		edges = append(edges, e0, e1, e2)
	}
	return edges
}
