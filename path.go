package tessdraw

import (
	"errors"

	"github.com/tessdraw/tessdraw/geom"
)

// Point is the 2D point type used throughout the public API.
type Point = geom.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return geom.Pt(x, y)
}

// strokeStyle pairs an outline color with a thickness in pixels.
type strokeStyle struct {
	color     RGB
	thickness uint32
}

// Path is a sequence of straight and cubic Bezier segments with optional
// fill and stroke attributes. Paths are built by chaining segment
// methods from NewPath, optionally closed with ClosePath, and consumed
// by [Drawing.AddPath].
//
// Each segment from vertex i to vertex i+1 owns one slot in the two
// control-point slices. A nil slot means a straight segment whose
// control points are synthesized during compilation; both slots of a
// pair are always set or unset together. Violating that pairing is a
// bug in the construction sequence and makes compilation panic.
type Path struct {
	vertices       []Point
	controlPoint1s []*Point
	controlPoint2s []*Point
	fillColor      *RGB
	stroke         *strokeStyle
	closed         bool
}

// NewPath starts a path at the given point.
func NewPath(start Point) *Path {
	p := &Path{}
	p.vertices = append(p.vertices, start)
	return p
}

// NewPathWithCapacity starts a path at the given point with storage
// preallocated for the expected number of vertices.
func NewPathWithCapacity(start Point, numVertices int) *Path {
	p := &Path{
		vertices:       make([]Point, 0, numVertices),
		controlPoint1s: make([]*Point, 0, numVertices),
		controlPoint2s: make([]*Point, 0, numVertices),
	}
	p.vertices = append(p.vertices, start)
	return p
}

// LineTo appends a straight segment to end.
func (p *Path) LineTo(end Point) *Path {
	p.controlPoint1s = append(p.controlPoint1s, nil)
	p.controlPoint2s = append(p.controlPoint2s, nil)
	p.vertices = append(p.vertices, end)
	return p
}

// CurveTo appends a cubic Bezier segment to end with the given control
// points.
func (p *Path) CurveTo(controlPoint1, controlPoint2, end Point) *Path {
	cp1 := controlPoint1
	cp2 := controlPoint2
	p.controlPoint1s = append(p.controlPoint1s, &cp1)
	p.controlPoint2s = append(p.controlPoint2s, &cp2)
	p.vertices = append(p.vertices, end)
	return p
}

// ArcTo appends an elliptical arc from the current point to end,
// expanded into one cubic Bezier segment per quarter sweep. The
// parameters follow the SVG arc convention: radii, x-axis rotation in
// radians, large-arc and sweep flags. Degenerate radii or a zero-length
// chord fall back to a straight segment.
func (p *Path) ArcTo(rx, ry, xAxisRotation float32, largeArc, sweep bool, end Point) *Path {
	start := p.vertices[len(p.vertices)-1]
	segments, err := EllipticalArc(start, rx, ry, xAxisRotation, largeArc, sweep, end)
	if errors.Is(err, ErrArcIsLine) {
		return p.LineTo(end)
	}
	for _, s := range segments {
		p.CurveTo(s.ControlPoint1, s.ControlPoint2, s.End)
	}
	return p
}

// ClosePath marks the path closed. If the final vertex equals the first
// it is dropped, because the polygon is implicitly closed by index
// wraparound; otherwise the implicit closing segment gets an empty
// control-point slot.
func (p *Path) ClosePath() *Path {
	p.closed = true
	if p.vertices[0] == p.vertices[len(p.vertices)-1] {
		p.vertices = p.vertices[:len(p.vertices)-1]
	} else {
		p.controlPoint1s = append(p.controlPoint1s, nil)
		p.controlPoint2s = append(p.controlPoint2s, nil)
	}
	return p
}

// SetFillColor sets the interior color used when the path is closed.
func (p *Path) SetFillColor(red, green, blue float32) *Path {
	p.fillColor = &RGB{R: red, G: green, B: blue}
	return p
}

// ClearFillColor removes the fill color.
func (p *Path) ClearFillColor() *Path {
	p.fillColor = nil
	return p
}

// SetStroke sets the outline color and thickness in pixels.
func (p *Path) SetStroke(red, green, blue float32, thickness uint32) *Path {
	p.stroke = &strokeStyle{color: RGB{R: red, G: green, B: blue}, thickness: thickness}
	return p
}

// ClearStroke removes the stroke.
func (p *Path) ClearStroke() *Path {
	p.stroke = nil
	return p
}

// Vertices returns the path's vertex list. The slice is shared with the
// path and must not be modified.
func (p *Path) Vertices() []Point {
	return p.vertices
}

// IsClosed reports whether ClosePath has been called.
func (p *Path) IsClosed() bool {
	return p.closed
}

// Rectangle builds a closed rectangular path centered on center,
// rotated by angle radians.
func Rectangle(center Point, width, height, angle float32) *Path {
	hw := width / 2
	hh := height / 2
	corner := func(x, y float32) Point {
		return Pt(x, y).Rotate(angle).Add(center)
	}
	return NewPathWithCapacity(corner(-hw, -hh), 4).
		LineTo(corner(hw, -hh)).
		LineTo(corner(hw, hh)).
		LineTo(corner(-hw, hh)).
		ClosePath()
}

// kappa is the control-point distance factor for approximating a
// quarter circle with one cubic Bezier.
const kappa = 0.5522847498

// Ellipse builds a closed elliptical path centered on center with radii
// rx and ry, rotated by angle radians. The ellipse is four cubic Bezier
// quarter arcs.
func Ellipse(center Point, rx, ry, angle float32) *Path {
	kx := float32(kappa) * rx
	ky := float32(kappa) * ry
	at := func(x, y float32) Point {
		return Pt(x, y).Rotate(angle).Add(center)
	}
	return NewPathWithCapacity(at(rx, 0), 4).
		CurveTo(at(rx, ky), at(kx, ry), at(0, ry)).
		CurveTo(at(-kx, ry), at(-rx, ky), at(-rx, 0)).
		CurveTo(at(-rx, -ky), at(-kx, -ry), at(0, -ry)).
		CurveTo(at(kx, -ry), at(rx, -ky), at(rx, 0)).
		ClosePath()
}
