package tessdraw

import (
	"github.com/tessdraw/tessdraw/earclip"
)

// maxPathDepth bounds the number of paths one drawing can order by
// depth.
const maxPathDepth = 5e5

// edgeKey identifies a directed segment between two vertex indices of a
// triangulated polygon. The key is directed on purpose: the two
// triangles sharing an internal diagonal traverse it in opposite
// directions and cache their synthesized control points independently.
// Diagonals are never stroked, so the duplicate cache slot is harmless.
type edgeKey struct {
	i0, i1 int
}

// controlPair holds the two cubic Bezier control points of a segment.
type controlPair struct {
	cp1, cp2 Point
}

// Drawing compiles paths into flat per-vertex attribute buffers laid
// out for a tessellation-capable renderer: every three consecutive
// entries form one triangle patch. The rendering layer itself (buffer
// upload, shaders, draw calls) is a separate concern; a Drawing stops
// at the buffers.
//
// Paths added later receive nearer depth values, so a depth-tested
// renderer layers them over earlier paths without any sorting here.
type Drawing struct {
	positions      []float32 // x, y, depth per vertex
	controlPoint1s []float32 // x, y per vertex
	controlPoint2s []float32 // x, y per vertex
	fillColors     []float32 // r, g, b per vertex
	strokeColors   []float32 // r, g, b per vertex
	edgeWidths     []float32 // stroke thickness per edge, 0 for diagonals
	fillFlags      []int32   // 1 when the triangle is filled

	depthIdx int
	numTris  int
}

// NewDrawing creates an empty drawing.
func NewDrawing() *Drawing {
	return &Drawing{}
}

// AddPath compiles a path into the drawing's attribute buffers. The
// path itself is not modified or retained; adding the same path to two
// drawings yields the same geometry.
//
// Closed paths are triangulated and may fail with
// [earclip.ErrNotEnoughVertices] or [earclip.ErrNonSimplePolygon].
// Open paths require a stroke and fail with ErrNoVisibleGeometry
// without one.
func (d *Drawing) AddPath(p *Path) error {
	if p.closed {
		return d.addClosedPath(p)
	}
	return d.addOpenPath(p)
}

// ClearPaths discards all compiled geometry and resets depth ordering.
func (d *Drawing) ClearPaths() {
	d.positions = d.positions[:0]
	d.controlPoint1s = d.controlPoint1s[:0]
	d.controlPoint2s = d.controlPoint2s[:0]
	d.fillColors = d.fillColors[:0]
	d.strokeColors = d.strokeColors[:0]
	d.edgeWidths = d.edgeWidths[:0]
	d.fillFlags = d.fillFlags[:0]
	d.depthIdx = 0
	d.numTris = 0
}

// nextDepth advances the per-path depth counter. Later paths get
// smaller depth values and therefore draw nearer the camera under a
// less-than depth test.
func (d *Drawing) nextDepth() float32 {
	d.depthIdx++
	return 1 - float32(d.depthIdx)/maxPathDepth
}

// controlPointMap gathers the explicitly supplied control points of a
// closed path, keyed by directed segment. Segment i runs from vertex i
// to vertex i+1; the final segment wraps around to vertex 0. A pair
// with only one control point set is a path-construction bug, not bad
// input data.
func controlPointMap(p *Path) map[edgeKey]controlPair {
	m := make(map[edgeKey]controlPair)
	last := len(p.vertices) - 1
	for i := 0; i <= last; i++ {
		cp1 := p.controlPoint1s[i]
		cp2 := p.controlPoint2s[i]
		if (cp1 == nil) != (cp2 == nil) {
			panic("tessdraw: inconsistent control points")
		}
		if cp1 == nil {
			continue
		}
		key := edgeKey{i, i + 1}
		if i == last {
			key = edgeKey{last, 0}
		}
		m[key] = controlPair{cp1: *cp1, cp2: *cp2}
	}
	return m
}

// bezierLineControlPoints synthesizes the control points of a straight
// segment at one third and two thirds along it, so a straight edge run
// through the cubic evaluator stays straight.
func bezierLineControlPoints(first, last Point) (Point, Point) {
	third := last.Sub(first).Mul(1.0 / 3.0)
	cp1 := first.Add(third)
	return cp1, cp1.Add(third)
}

// emitEdge appends one vertex of a triangle: the position of i0 with
// the path depth, and the control points of the directed edge i0->i1,
// reusing mapped control points or synthesizing and caching straight
// ones.
func (d *Drawing) emitEdge(vertices []Point, i0, i1 int, depth float32, m map[edgeKey]controlPair) {
	v0 := vertices[i0]
	d.positions = append(d.positions, v0.X, v0.Y, depth)

	key := edgeKey{i0, i1}
	pair, ok := m[key]
	if !ok {
		cp1, cp2 := bezierLineControlPoints(v0, vertices[i1])
		pair = controlPair{cp1: cp1, cp2: cp2}
		m[key] = pair
	}
	d.controlPoint1s = append(d.controlPoint1s, pair.cp1.X, pair.cp1.Y)
	d.controlPoint2s = append(d.controlPoint2s, pair.cp2.X, pair.cp2.Y)
}

// pushColor broadcasts one color to the three vertices of a triangle.
func pushColor(buf []float32, c RGB) []float32 {
	return append(buf, c.R, c.G, c.B, c.R, c.G, c.B, c.R, c.G, c.B)
}

func (d *Drawing) addClosedPath(p *Path) error {
	m := controlPointMap(p)

	indices, err := earclip.Triangulate(p.vertices)
	if err != nil {
		return err
	}
	numTris := len(indices) / 3
	numVerts := len(p.vertices)
	depth := d.nextDepth()

	for t := 0; t < numTris; t++ {
		i0 := indices[3*t]
		i1 := indices[3*t+1]
		i2 := indices[3*t+2]
		d.emitEdge(p.vertices, i0, i1, depth, m)
		d.emitEdge(p.vertices, i1, i2, depth, m)
		d.emitEdge(p.vertices, i2, i0, depth, m)

		if p.stroke != nil {
			d.strokeColors = pushColor(d.strokeColors, p.stroke.color)
			thickness := float32(p.stroke.thickness)
			e0, e1, e2 := earclip.TriangleEdges(i0, i1, i2, numVerts-1)
			d.edgeWidths = append(d.edgeWidths,
				edgeWidth(e0, thickness), edgeWidth(e1, thickness), edgeWidth(e2, thickness))
		} else {
			d.strokeColors = pushColor(d.strokeColors, RGB{})
			d.edgeWidths = append(d.edgeWidths, 0, 0, 0)
		}

		if p.fillColor != nil {
			d.fillColors = pushColor(d.fillColors, *p.fillColor)
			d.fillFlags = append(d.fillFlags, 1, 1, 1)
		} else {
			d.fillColors = pushColor(d.fillColors, RGB{})
			d.fillFlags = append(d.fillFlags, 0, 0, 0)
		}
	}

	d.numTris += numTris
	Logger().Debug("compiled closed path",
		"vertices", numVerts, "triangles", numTris, "depth", depth)
	return nil
}

// extraPointOffset is the perpendicular offset used for the synthetic
// third vertex when a segment is axis-aligned and no quadrant rule
// applies.
const extraPointOffset = 5

// makeExtraPoint picks the synthetic third vertex of the degenerate
// triangle that carries an open-path segment: at the midpoint's x with
// the outer endpoint's y, or offset perpendicular when the endpoints
// share a coordinate. Identical endpoints leave no side to offset
// toward.
func makeExtraPoint(p0, p1 Point) (Point, error) {
	midX := (p0.X + p1.X) / 2
	switch {
	case p1.X > p0.X:
		switch {
		case p1.Y > p0.Y:
			return Pt(midX, p1.Y), nil
		case p1.Y < p0.Y:
			return Pt(midX, p0.Y), nil
		default:
			return Pt(midX, p0.Y+extraPointOffset), nil
		}
	case p1.X < p0.X:
		switch {
		case p1.Y > p0.Y:
			return Pt(midX, p0.Y), nil
		case p1.Y < p0.Y:
			return Pt(midX, p1.Y), nil
		default:
			return Pt(midX, p0.Y-extraPointOffset), nil
		}
	default:
		midY := (p0.Y + p1.Y) / 2
		switch {
		case p1.Y > p0.Y:
			return Pt(p0.X-extraPointOffset, midY), nil
		case p1.Y < p0.Y:
			return Pt(p0.X+extraPointOffset, midY), nil
		default:
			return Point{}, earclip.ErrNonSimplePolygon
		}
	}
}

func (d *Drawing) addOpenPath(p *Path) error {
	if p.stroke == nil {
		return ErrNoVisibleGeometry
	}

	numTris := len(p.vertices) - 1

	// Resolve all synthetic vertices before emitting anything, so a
	// degenerate segment cannot leave a half-compiled path behind.
	extras := make([]Point, numTris)
	for i := 0; i < numTris; i++ {
		extra, err := makeExtraPoint(p.vertices[i], p.vertices[i+1])
		if err != nil {
			return err
		}
		extras[i] = extra
	}

	depth := d.nextDepth()
	thickness := float32(p.stroke.thickness)

	for i := 0; i < numTris; i++ {
		v0 := p.vertices[i]
		v1 := p.vertices[i+1]
		v2 := extras[i]
		d.positions = append(d.positions,
			v0.X, v0.Y, depth,
			v1.X, v1.Y, depth,
			v2.X, v2.Y, depth)

		cp1 := p.controlPoint1s[i]
		cp2 := p.controlPoint2s[i]
		if (cp1 == nil) != (cp2 == nil) {
			panic("tessdraw: inconsistent control points")
		}
		var a, b Point
		if cp1 != nil {
			a, b = *cp1, *cp2
		} else {
			a, b = bezierLineControlPoints(v0, v1)
		}
		d.controlPoint1s = append(d.controlPoint1s, a.X, a.Y)
		d.controlPoint2s = append(d.controlPoint2s, b.X, b.Y)

		a, b = bezierLineControlPoints(v1, v2)
		d.controlPoint1s = append(d.controlPoint1s, a.X, a.Y)
		d.controlPoint2s = append(d.controlPoint2s, b.X, b.Y)

		a, b = bezierLineControlPoints(v2, v0)
		d.controlPoint1s = append(d.controlPoint1s, a.X, a.Y)
		d.controlPoint2s = append(d.controlPoint2s, b.X, b.Y)

		d.strokeColors = pushColor(d.strokeColors, p.stroke.color)
		// Only the real segment v0->v1 is stroked; the synthetic
		// edges stay invisible.
		d.edgeWidths = append(d.edgeWidths, thickness, 0, 0)

		d.fillColors = pushColor(d.fillColors, RGB{})
		d.fillFlags = append(d.fillFlags, 0, 0, 0)
	}

	d.numTris += numTris
	Logger().Debug("compiled open path",
		"segments", numTris, "depth", depth)
	return nil
}

func edgeWidth(boundary bool, thickness float32) float32 {
	if boundary {
		return thickness
	}
	return 0
}

// Positions returns the position buffer: x, y, depth per vertex, three
// vertices per triangle patch. The slice is shared with the drawing and
// valid until the next AddPath or ClearPaths call; the same holds for
// all other buffer accessors.
func (d *Drawing) Positions() []float32 { return d.positions }

// ControlPoints1 returns the first Bezier control point buffer, x and y
// per vertex, describing the directed edge leaving that vertex.
func (d *Drawing) ControlPoints1() []float32 { return d.controlPoint1s }

// ControlPoints2 returns the second Bezier control point buffer.
func (d *Drawing) ControlPoints2() []float32 { return d.controlPoint2s }

// FillColors returns the fill color buffer, r, g, b per vertex.
func (d *Drawing) FillColors() []float32 { return d.fillColors }

// StrokeColors returns the stroke color buffer, r, g, b per vertex.
func (d *Drawing) StrokeColors() []float32 { return d.strokeColors }

// EdgeWidths returns the per-edge stroke thickness buffer, one entry
// per vertex for the edge leaving it: the stroke thickness on polygon
// boundary edges of stroked paths, 0 on internal diagonals and
// synthetic edges.
func (d *Drawing) EdgeWidths() []float32 { return d.edgeWidths }

// FillFlags returns the per-vertex fill-enable buffer.
func (d *Drawing) FillFlags() []int32 { return d.fillFlags }

// TriangleCount returns the number of triangle patches compiled so far.
func (d *Drawing) TriangleCount() int { return d.numTris }
