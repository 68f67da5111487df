package msdf

import (
	"errors"
	"math"
	"testing"
)

func TestShapeBuilderSquare(t *testing.T) {
	s := NewShapeBuilder().
		MoveTo(Pt(0, 0)).
		LineTo(Pt(1, 0)).
		LineTo(Pt(1, 1)).
		LineTo(Pt(0, 1)).
		Close().
		Shape()

	if len(s.Contours) != 1 {
		t.Fatalf("contours = %d, want 1", len(s.Contours))
	}
	// Close adds the missing segment back to the start.
	if got := len(s.Contours[0].Edges); got != 4 {
		t.Errorf("edges = %d, want 4", got)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if got := s.EdgeCount(); got != 4 {
		t.Errorf("EdgeCount = %d, want 4", got)
	}
}

func TestShapeBuilderCurves(t *testing.T) {
	s := NewShapeBuilder().
		MoveTo(Pt(0, 0)).
		QuadTo(Pt(1, 2), Pt(2, 0)).
		CubicTo(Pt(2, -1), Pt(0, -1), Pt(0, 0)).
		Close().
		Shape()

	c := s.Contours[0]
	if len(c.Edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(c.Edges))
	}
	if c.Edges[0].Type != EdgeQuadratic || c.Edges[1].Type != EdgeCubic {
		t.Errorf("edge types = %v, %v", c.Edges[0].Type, c.Edges[1].Type)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestShapeBuilderArc(t *testing.T) {
	s := NewShapeBuilder().
		MoveTo(Pt(-1, 0)).
		ArcTo(1, 1, 0, false, true, Pt(1, 0)).
		Close().
		Shape()

	c := s.Contours[0]
	if len(c.Edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(c.Edges))
	}
	if c.Edges[0].Type != EdgeArc {
		t.Errorf("first edge type = %v, want EdgeArc", c.Edges[0].Type)
	}
	// The ccw sweep from (-1, 0) to (1, 0) passes through (0, -1).
	if got := c.Edges[0].PointAt(0.5); got.Distance(Pt(0, -1)) > 1e-9 {
		t.Errorf("arc midpoint = %v, want {0, -1}", got)
	}

	// Zero radius falls back to a line.
	s = NewShapeBuilder().
		MoveTo(Pt(0, 0)).
		ArcTo(0, 0, 0, false, true, Pt(1, 0)).
		Close().
		Shape()
	if s.Contours[0].Edges[0].Type != EdgeLinear {
		t.Errorf("zero-radius arc type = %v, want EdgeLinear", s.Contours[0].Edges[0].Type)
	}
}

func TestShapeBuilderImplicitClose(t *testing.T) {
	// Starting a second contour closes the first.
	s := NewShapeBuilder().
		MoveTo(Pt(0, 0)).
		LineTo(Pt(1, 0)).
		LineTo(Pt(1, 1)).
		MoveTo(Pt(5, 5)).
		LineTo(Pt(6, 5)).
		LineTo(Pt(6, 6)).
		Close().
		Shape()

	if len(s.Contours) != 2 {
		t.Fatalf("contours = %d, want 2", len(s.Contours))
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestShapeBuilderEmptyContourDiscarded(t *testing.T) {
	s := NewShapeBuilder().
		MoveTo(Pt(0, 0)).
		Close().
		Shape()
	if len(s.Contours) != 0 {
		t.Errorf("contours = %d, want 0", len(s.Contours))
	}
}

func TestShapeValidateOpenContour(t *testing.T) {
	s := NewShape()
	c := NewContour()
	c.AddEdge(NewLinearEdge(Pt(0, 0), Pt(1, 0)))
	c.AddEdge(NewLinearEdge(Pt(1, 0.5), Pt(0, 0))) // gap at (1, 0)
	s.AddContour(c)

	err := s.Validate()
	if !errors.Is(err, ErrDegenerateContour) {
		t.Errorf("Validate() = %v, want ErrDegenerateContour", err)
	}
}

func TestShapeBounds(t *testing.T) {
	s := NewShape()
	s.AddContour(squareContour())
	s.AddContour(circleContour(Pt(5, 0), 1))

	b := s.Bounds()
	if math.Abs(b.MinX) > 1e-9 || math.Abs(b.MaxX-6) > 1e-9 {
		t.Errorf("bounds = %v", b)
	}
}

func TestShapeClone(t *testing.T) {
	s := NewShape()
	s.AddContour(squareContour())

	clone := s.Clone()
	clone.Contours[0].Edges[0].Color = ColorRed
	clone.Contours[0].Reverse()

	if s.Contours[0].Edges[0].Color == ColorRed {
		t.Error("clone shares edge storage with original")
	}
	if s.Contours[0].WindingSign() != WindingPositive {
		t.Error("reversing the clone changed the original")
	}
}
