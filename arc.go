package tessdraw

import "github.com/chewxy/math32"

// CubicSegment is one cubic Bezier segment of an expanded arc. The
// segment starts wherever the previous one ended.
type CubicSegment struct {
	ControlPoint1 Point
	ControlPoint2 Point
	End           Point
}

// arcEpsilon is the radius magnitude below which an arc is treated as a
// straight line.
const arcEpsilon = 1e-6

// EllipticalArc converts an SVG-style endpoint-parameterized elliptical
// arc into cubic Bezier segments, one per quarter sweep or less. rx and
// ry are the ellipse radii, xAxisRotation is the rotation of the
// ellipse's x axis in radians, and the largeArc and sweep flags select
// among the four candidate arcs through the two endpoints.
//
// Degenerate radii or coincident endpoints return ErrArcIsLine; the arc
// has collapsed to the chord and the caller should draw a line instead.
func EllipticalArc(start Point, rx, ry, xAxisRotation float32, largeArc, sweep bool, end Point) ([]CubicSegment, error) {
	rx = math32.Abs(rx)
	ry = math32.Abs(ry)
	if rx < arcEpsilon || ry < arcEpsilon {
		return nil, ErrArcIsLine
	}

	cosPhi := math32.Cos(xAxisRotation)
	sinPhi := math32.Sin(xAxisRotation)

	// Endpoint to center parameterization: move to the ellipse frame.
	dx := (start.X - end.X) / 2
	dy := (start.Y - end.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy
	if x1p == 0 && y1p == 0 {
		return nil, ErrArcIsLine
	}

	// Scale radii up if no ellipse with the requested radii can reach
	// both endpoints.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math32.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	if num < 0 {
		num = 0
	}
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math32.Sqrt(num / den)
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	center := Pt(
		cosPhi*cxp-sinPhi*cyp+(start.X+end.X)/2,
		sinPhi*cxp+cosPhi*cyp+(start.Y+end.Y)/2,
	)

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	delta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math32.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math32.Pi
	}

	// Split into sweeps of at most a quarter turn; one cubic per piece.
	numSegments := int(math32.Ceil(math32.Abs(delta) / (math32.Pi / 2)))
	if numSegments < 1 {
		numSegments = 1
	}
	step := delta / float32(numSegments)
	alpha := 4.0 / 3.0 * math32.Tan(step/4)

	pointAt := func(theta float32) Point {
		return Pt(rx*math32.Cos(theta), ry*math32.Sin(theta)).
			Rotate(xAxisRotation).Add(center)
	}
	derivativeAt := func(theta float32) Point {
		return Pt(-rx*math32.Sin(theta), ry*math32.Cos(theta)).
			Rotate(xAxisRotation)
	}

	segments := make([]CubicSegment, 0, numSegments)
	thetaA := theta1
	for i := 0; i < numSegments; i++ {
		thetaB := thetaA + step
		pa := pointAt(thetaA)
		pb := pointAt(thetaB)
		if i == numSegments-1 {
			// Land exactly on the requested endpoint.
			pb = end
		}
		segments = append(segments, CubicSegment{
			ControlPoint1: pa.Add(derivativeAt(thetaA).Mul(alpha)),
			ControlPoint2: pb.Sub(derivativeAt(thetaB).Mul(alpha)),
			End:           pb,
		})
		thetaA = thetaB
	}
	return segments, nil
}

// vectorAngle returns the signed angle from vector (ux, uy) to (vx, vy).
func vectorAngle(ux, uy, vx, vy float32) float32 {
	sign := float32(1)
	if ux*vy-uy*vx < 0 {
		sign = -1
	}
	dot := ux*vx + uy*vy
	mag := math32.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	cos := dot / mag
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return sign * math32.Acos(cos)
}
