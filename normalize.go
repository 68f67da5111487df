package msdf

import (
	"fmt"
	"log/slog"
)

// Normalize validates a shape's geometry and rewrites contour orientations
// to the convention the sampler expects: outer boundaries wind counter-
// clockwise and holes wind clockwise. The role of each contour is inferred
// from even-odd nesting depth, so input orientation never matters and the
// operation is idempotent.
//
// Normalize fails fast: the first degenerate edge, degenerate contour, or
// zero-area winding aborts with an error naming the offending contour.
func Normalize(s *Shape) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for ci, c := range s.Contours {
		if len(c.Edges) == 0 {
			return fmt.Errorf("contour %d has no edges: %w", ci, ErrDegenerateContour)
		}
		for ei := range c.Edges {
			if c.Edges[ei].isDegenerate() {
				return fmt.Errorf("contour %d edge %d: %w", ci, ei, ErrDegenerateGeometry)
			}
		}
		if c.WindingSign() == WindingDegenerate {
			return fmt.Errorf("contour %d has near-zero signed area: %w", ci, ErrAmbiguousWinding)
		}
	}

	// Nesting depth under even-odd containment decides each contour's
	// role. A probe point on the boundary of contour i is tested against
	// every other contour; an even count of enclosures makes i an outer
	// boundary, an odd count makes it a hole.
	flipped := 0
	for i, c := range s.Contours {
		probe := c.Edges[0].PointAt(0.5)
		depth := 0
		for j, other := range s.Contours {
			if i == j {
				continue
			}
			if other.containsPoint(probe) {
				depth++
			}
		}
		want := WindingPositive
		if depth%2 == 1 {
			want = WindingNegative
		}
		if c.WindingSign() != want {
			c.Reverse()
			flipped++
		}
	}
	if flipped > 0 {
		Logger().Debug("normalized contour orientations",
			slog.Int("contours", len(s.Contours)),
			slog.Int("flipped", flipped))
	}
	return nil
}
