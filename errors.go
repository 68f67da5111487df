package msdf

import "errors"

// Sentinel errors for shape validation and field generation.
// All of them are detected before sampling begins: a malformed shape
// produces no partial field.
var (
	// ErrDegenerateGeometry is returned when an edge segment has no usable
	// tangent (zero-length line, collapsed curve, zero-sweep arc).
	ErrDegenerateGeometry = errors.New("msdf: degenerate edge geometry")

	// ErrDegenerateContour is returned for contours with no edges or with
	// all points coincident.
	ErrDegenerateContour = errors.New("msdf: degenerate contour")

	// ErrAmbiguousWinding is returned when a contour's signed area is too
	// close to zero to infer its winding direction.
	ErrAmbiguousWinding = errors.New("msdf: ambiguous contour winding")

	// ErrEmptyShape is returned when no edge contributes to some channel
	// anywhere in the shape.
	ErrEmptyShape = errors.New("msdf: no geometry contributes to a channel")

	// ErrAtlasAllocation is returned when a field cannot be placed in any
	// atlas page.
	ErrAtlasAllocation = errors.New("msdf: atlas allocation failed")
)
