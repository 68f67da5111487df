package msdf

import (
	"fmt"
	"math"
)

// closureTolerance is the maximum gap allowed between consecutive edge
// endpoints before a contour is rejected as open.
const closureTolerance = 1e-9

// Shape is a collection of closed contours describing a single glyph or
// icon outline. Containment between contours follows the even-odd rule:
// a contour nested inside an odd number of other contours is a hole.
type Shape struct {
	Contours []*Contour
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{Contours: make([]*Contour, 0)}
}

// AddContour appends a contour to the shape.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
}

// Bounds returns the bounding box of all contours.
func (s *Shape) Bounds() Rect {
	if len(s.Contours) == 0 {
		return Rect{}
	}
	bounds := s.Contours[0].Bounds()
	for i := 1; i < len(s.Contours); i++ {
		bounds = bounds.Union(s.Contours[i].Bounds())
	}
	return bounds
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	n := 0
	for _, c := range s.Contours {
		n += len(c.Edges)
	}
	return n
}

// Validate checks that every contour is a closed loop: each edge's
// endpoint must coincide with the next edge's start point, cyclically.
func (s *Shape) Validate() error {
	for ci, c := range s.Contours {
		n := len(c.Edges)
		for i := 0; i < n; i++ {
			end := c.Edges[i].EndPoint()
			start := c.Edges[(i+1)%n].StartPoint()
			if end.Distance(start) > closureTolerance {
				return fmt.Errorf("contour %d: edge %d ends at (%g, %g) but edge %d starts at (%g, %g): %w",
					ci, i, end.X, end.Y, (i+1)%n, start.X, start.Y, ErrDegenerateContour)
			}
		}
	}
	return nil
}

// Clone creates a deep copy of the shape.
func (s *Shape) Clone() *Shape {
	clone := &Shape{Contours: make([]*Contour, len(s.Contours))}
	for i, c := range s.Contours {
		clone.Contours[i] = c.Clone()
	}
	return clone
}

// ShapeBuilder assembles a shape from path commands in the style of a
// vector path API. Contours are opened with MoveTo and closed with Close;
// Close inserts a closing line back to the contour start when the pen is
// not already there.
type ShapeBuilder struct {
	shape   *Shape
	current *Contour
	start   Point
	pen     Point
	open    bool
}

// NewShapeBuilder creates a builder with an empty shape.
func NewShapeBuilder() *ShapeBuilder {
	return &ShapeBuilder{shape: NewShape()}
}

// MoveTo starts a new contour at p. An unclosed previous contour is
// closed implicitly.
func (b *ShapeBuilder) MoveTo(p Point) *ShapeBuilder {
	if b.open {
		b.Close()
	}
	b.current = NewContour()
	b.start = p
	b.pen = p
	b.open = true
	return b
}

// LineTo appends a line segment from the pen to p.
func (b *ShapeBuilder) LineTo(p Point) *ShapeBuilder {
	if !b.open {
		return b.MoveTo(p)
	}
	b.current.AddEdge(NewLinearEdge(b.pen, p))
	b.pen = p
	return b
}

// QuadTo appends a quadratic Bezier segment with control point ctrl.
func (b *ShapeBuilder) QuadTo(ctrl, p Point) *ShapeBuilder {
	if !b.open {
		return b.MoveTo(p)
	}
	b.current.AddEdge(NewQuadraticEdge(b.pen, ctrl, p))
	b.pen = p
	return b
}

// CubicTo appends a cubic Bezier segment with control points c1 and c2.
func (b *ShapeBuilder) CubicTo(c1, c2, p Point) *ShapeBuilder {
	if !b.open {
		return b.MoveTo(p)
	}
	b.current.AddEdge(NewCubicEdge(b.pen, c1, c2, p))
	b.pen = p
	return b
}

// ArcTo appends an elliptical arc from the pen to p in SVG endpoint
// parameterisation. rx and ry are the semi-axes, phi the axis rotation,
// largeArc selects the sweep longer than half a turn, and sweepCCW the
// counter-clockwise direction. A degenerate arc whose endpoints coincide
// collapses to nothing; other conversion failures fall back to a line so
// the contour stays closed.
func (b *ShapeBuilder) ArcTo(rx, ry, phi float64, largeArc, sweepCCW bool, p Point) *ShapeBuilder {
	if !b.open {
		return b.MoveTo(p)
	}
	if b.pen.Distance(p) <= closureTolerance {
		return b
	}
	if rx == 0 || ry == 0 {
		return b.LineTo(p)
	}
	e, err := NewArcEdgeFromEndpoints(b.pen, math.Abs(rx), math.Abs(ry), phi, largeArc, sweepCCW, p)
	if err != nil {
		return b.LineTo(p)
	}
	b.current.AddEdge(e)
	b.pen = p
	return b
}

// Close closes the current contour, inserting a line back to its start
// point if the pen has not returned there. Contours that never received
// an edge are discarded.
func (b *ShapeBuilder) Close() *ShapeBuilder {
	if !b.open {
		return b
	}
	if b.pen.Distance(b.start) > closureTolerance {
		b.current.AddEdge(NewLinearEdge(b.pen, b.start))
	}
	if len(b.current.Edges) > 0 {
		b.shape.AddContour(b.current)
	}
	b.current = nil
	b.open = false
	return b
}

// Shape closes any open contour and returns the assembled shape.
func (b *ShapeBuilder) Shape() *Shape {
	if b.open {
		b.Close()
	}
	return b.shape
}
