package geom

import "testing"

func TestLineSide(t *testing.T) {
	prev := Pt(0.1, 0.1)
	next := Pt(0.5, 0.5)
	onLine := prev.Lerp(next, 0.2)

	tests := []struct {
		name string
		test Point
		want Side
	}{
		{"above is left", Pt(0.2, 1.2), SideLeft},
		{"below is right", Pt(0.2, -1.0), SideRight},
		{"colinear is on", onLine, SideOn},
		{"endpoint is on", prev, SideOn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineSide(tt.test, prev, next); got != tt.want {
				t.Errorf("LineSide(%v) = %v, want %v", tt.test, got, tt.want)
			}
		})
	}
}

func TestIsConvex(t *testing.T) {
	prev := Pt(0.1, 0.1)
	next := Pt(0.5, 0.5)

	if IsConvex(Pt(0.2, 1.2), prev, next) {
		t.Error("left of prev->next should not be convex")
	}
	if !IsConvex(Pt(0.2, -1.0), prev, next) {
		t.Error("right of prev->next should be convex")
	}
	if IsConvex(prev.Lerp(next, 0.2), prev, next) {
		t.Error("colinear vertex should not be convex")
	}
}

func TestInTriangle(t *testing.T) {
	// CCW triangle.
	v0 := Pt(0.1, 0.1)
	v1 := Pt(0.7, -0.2)
	v2 := Pt(0.5, 0.5)

	tests := []struct {
		name string
		test Point
		want bool
	}{
		{"outside", Pt(0.2, 1.2), false},
		{"inside", Pt(0.4, 0.2), true},
		{"on edge", v2.Lerp(v0, 0.25), false},
		{"vertex", v1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InTriangle(tt.test, v0, v1, v2); got != tt.want {
				t.Errorf("InTriangle(%v) = %v, want %v", tt.test, got, tt.want)
			}
		})
	}
}

func TestInTriangleUnit(t *testing.T) {
	v0 := Pt(0, 0)
	v1 := Pt(1, 0)
	v2 := Pt(0, 1)

	if InTriangle(Pt(0.75, 0.75), v0, v1, v2) {
		t.Error("point beyond the hypotenuse should be outside")
	}
	if !InTriangle(Pt(0.25, 0.25), v0, v1, v2) {
		t.Error("interior point should be inside")
	}
	if InTriangle(Pt(0.5, 0.5), v0, v1, v2) {
		t.Error("point on the hypotenuse should count as outside")
	}
}
