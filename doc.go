// Package tessdraw turns 2D vector paths into triangle patches for
// tessellation-capable renderers.
//
// # Overview
//
// Callers build a [Path] from lines, cubic Bezier curves, and
// elliptical arcs, give it fill and stroke attributes, and hand it to a
// [Drawing]. The drawing triangulates closed paths by ear clipping
// (package earclip), reconstructs or synthesizes the Bezier control
// points of every triangle edge, and emits flat attribute buffers:
// positions with per-path depth, two control points per edge, fill and
// stroke colors, per-edge stroke thickness, and fill-enable flags.
// Every three consecutive buffer entries form one patch that a
// tessellation pipeline can inflate into smooth curves and outlines.
//
// # Quick Start
//
//	d := tessdraw.NewDrawing()
//	path := tessdraw.NewPath(tessdraw.Pt(0, 0)).
//		LineTo(tessdraw.Pt(100, 0)).
//		CurveTo(tessdraw.Pt(130, 30), tessdraw.Pt(130, 70), tessdraw.Pt(100, 100)).
//		LineTo(tessdraw.Pt(0, 100)).
//		ClosePath().
//		SetFillColor(0.8, 0.2, 0.2).
//		SetStroke(0, 0, 0, 2)
//	if err := d.AddPath(path); err != nil {
//		// handle malformed geometry
//	}
//	// feed d.Positions(), d.ControlPoints1(), ... to a renderer
//
// # Scope
//
// tessdraw is CPU-side geometry processing only: window management,
// GPU contexts, shader compilation, and buffer upload belong to the
// consuming renderer. All operations are synchronous and
// single-threaded; drawings must not be shared between goroutines.
//
// # Coordinate System
//
// Coordinates are y-up with counter-clockwise polygon winding; closed
// paths must describe simple (non-self-intersecting) polygons.
package tessdraw
