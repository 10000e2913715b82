package tessdraw

import (
	"testing"

	"github.com/chewxy/math32"
)

const testEps = 1e-4

func approxPt(a, b Point) bool {
	return math32.Abs(a.X-b.X) < testEps && math32.Abs(a.Y-b.Y) < testEps
}

func TestClosePathDropsDuplicateVertex(t *testing.T) {
	p := NewPath(Pt(0, 0)).
		LineTo(Pt(1, 0)).
		LineTo(Pt(1, 1)).
		LineTo(Pt(0, 0)).
		ClosePath()

	if !p.IsClosed() {
		t.Fatal("path should be closed")
	}
	if got := len(p.Vertices()); got != 3 {
		t.Errorf("got %d vertices, want 3 (duplicate dropped)", got)
	}
	if got := len(p.controlPoint1s); got != 3 {
		t.Errorf("got %d control-point slots, want one per segment", got)
	}
}

func TestClosePathAppendsClosingSegment(t *testing.T) {
	p := NewPath(Pt(0, 0)).
		LineTo(Pt(1, 0)).
		LineTo(Pt(1, 1)).
		ClosePath()

	if got := len(p.Vertices()); got != 3 {
		t.Fatalf("got %d vertices, want 3", got)
	}
	// The implicit closing segment gets its own empty slot.
	if got := len(p.controlPoint1s); got != 3 {
		t.Errorf("got %d control-point slots, want 3", got)
	}
	if p.controlPoint1s[2] != nil {
		t.Error("closing segment should have no explicit control points")
	}
	if len(p.controlPoint1s) != len(p.controlPoint2s) {
		t.Error("control-point slices must stay parallel")
	}
}

func TestCurveToRecordsControlPoints(t *testing.T) {
	cp1 := Pt(0.3, -0.1)
	cp2 := Pt(0.7, -0.1)
	p := NewPath(Pt(0, 0)).CurveTo(cp1, cp2, Pt(1, 0))

	if p.controlPoint1s[0] == nil || *p.controlPoint1s[0] != cp1 {
		t.Errorf("control point 1 not recorded")
	}
	if p.controlPoint2s[0] == nil || *p.controlPoint2s[0] != cp2 {
		t.Errorf("control point 2 not recorded")
	}
}

func TestPathAttributes(t *testing.T) {
	p := NewPath(Pt(0, 0)).
		SetFillColor(0.1, 0.2, 0.3).
		SetStroke(0.4, 0.5, 0.6, 7)

	if p.fillColor == nil || *p.fillColor != (RGB{0.1, 0.2, 0.3}) {
		t.Errorf("fill color = %v", p.fillColor)
	}
	if p.stroke == nil || p.stroke.thickness != 7 {
		t.Errorf("stroke = %v", p.stroke)
	}

	p.ClearFillColor().ClearStroke()
	if p.fillColor != nil || p.stroke != nil {
		t.Error("attributes should be cleared")
	}
}

func TestRectangle(t *testing.T) {
	p := Rectangle(Pt(10, 10), 4, 2, 0)

	if !p.IsClosed() {
		t.Fatal("rectangle should be closed")
	}
	verts := p.Vertices()
	if len(verts) != 4 {
		t.Fatalf("got %d vertices, want 4", len(verts))
	}
	want := []Point{Pt(8, 9), Pt(12, 9), Pt(12, 11), Pt(8, 11)}
	for i, w := range want {
		if !approxPt(verts[i], w) {
			t.Errorf("vertex %d = %v, want %v", i, verts[i], w)
		}
	}
}

func TestRectangleRotated(t *testing.T) {
	p := Rectangle(Pt(0, 0), 2, 2, math32.Pi/4)

	verts := p.Vertices()
	if len(verts) != 4 {
		t.Fatalf("got %d vertices, want 4", len(verts))
	}
	// A unit half-diagonal square rotated 45 degrees has its corners on
	// the axes.
	r := math32.Sqrt(2)
	want := []Point{Pt(0, -r), Pt(r, 0), Pt(0, r), Pt(-r, 0)}
	for i, w := range want {
		if !approxPt(verts[i], w) {
			t.Errorf("vertex %d = %v, want %v", i, verts[i], w)
		}
	}
}

func TestEllipse(t *testing.T) {
	p := Ellipse(Pt(5, 5), 3, 2, 0)

	if !p.IsClosed() {
		t.Fatal("ellipse should be closed")
	}
	verts := p.Vertices()
	// The final curve ends where the path began, so the duplicate is
	// dropped and wraparound closes the polygon.
	if len(verts) != 4 {
		t.Fatalf("got %d vertices, want 4", len(verts))
	}
	if !approxPt(verts[0], Pt(8, 5)) {
		t.Errorf("start vertex = %v, want (8, 5)", verts[0])
	}
	for i := range p.controlPoint1s {
		if p.controlPoint1s[i] == nil || p.controlPoint2s[i] == nil {
			t.Errorf("segment %d should carry explicit control points", i)
		}
	}
}

func TestArcToDegenerateRadiiFallsBackToLine(t *testing.T) {
	p := NewPath(Pt(0, 0)).ArcTo(0, 0, 0, false, false, Pt(1, 1))

	verts := p.Vertices()
	if len(verts) != 2 || verts[1] != Pt(1, 1) {
		t.Fatalf("vertices = %v, want straight segment to (1, 1)", verts)
	}
	if p.controlPoint1s[0] != nil {
		t.Error("degenerate arc should be a plain line segment")
	}
}

func TestArcToQuarterCircle(t *testing.T) {
	p := NewPath(Pt(1, 0)).ArcTo(1, 1, 0, false, true, Pt(0, 1))

	verts := p.Vertices()
	if len(verts) != 2 {
		t.Fatalf("got %d vertices, want 2 (single quarter sweep)", len(verts))
	}
	if verts[1] != Pt(0, 1) {
		t.Errorf("end vertex = %v, want (0, 1)", verts[1])
	}
	if p.controlPoint1s[0] == nil || p.controlPoint2s[0] == nil {
		t.Fatal("arc segment should carry control points")
	}
	// Control points of a unit quarter circle sit at the kappa-like
	// tangent offsets.
	alpha := 4.0 / 3.0 * math32.Tan(math32.Pi/8)
	if !approxPt(*p.controlPoint1s[0], Pt(1, alpha)) {
		t.Errorf("cp1 = %v, want (1, %v)", *p.controlPoint1s[0], alpha)
	}
	if !approxPt(*p.controlPoint2s[0], Pt(alpha, 1)) {
		t.Errorf("cp2 = %v, want (%v, 1)", *p.controlPoint2s[0], alpha)
	}
}
