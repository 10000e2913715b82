package tessdraw

import "errors"

var (
	// ErrNoVisibleGeometry is returned when an open path without a
	// stroke is added to a drawing. An open path cannot be filled, so
	// without a stroke there is nothing to render.
	ErrNoVisibleGeometry = errors.New("tessdraw: open path has no stroke")

	// ErrArcIsLine reports that an elliptical arc degenerated to a
	// straight line (zero radii or coincident endpoints). It is
	// informational: callers substitute a line segment and continue.
	ErrArcIsLine = errors.New("tessdraw: arc degenerates to a straight line")
)
