package msdf

import "math"

// SignedDistance represents a signed distance to an edge together with the
// tie-breaking metadata needed to pick between edges that are equally far.
type SignedDistance struct {
	// Distance is the signed Euclidean distance.
	// Positive = the query point lies to the left of the directed edge,
	// which is inside for counter-clockwise outer contours.
	Distance float64

	// Dot measures how far from orthogonal the closest approach is:
	// 0 for a true perpendicular projection onto the edge, and the absolute
	// cosine between the edge tangent and the point direction when the
	// closest point is an endpoint. Lower values win ties, so in-range
	// projections are preferred over extrapolated ones.
	Dot float64
}

// Infinite returns a signed distance representing "no edge found".
func Infinite() SignedDistance {
	return SignedDistance{Distance: math.MaxFloat64, Dot: 0}
}

// IsCloserThan returns true if d is closer to the edge than other.
// Distances compare by magnitude; ties break toward the lower Dot.
func (d SignedDistance) IsCloserThan(other SignedDistance) bool {
	absD := math.Abs(d.Distance)
	absO := math.Abs(other.Distance)
	if absD < absO {
		return true
	}
	if absD > absO {
		return false
	}
	return d.Dot < other.Dot
}

// Combine returns the closer of the two distances.
func (d SignedDistance) Combine(other SignedDistance) SignedDistance {
	if d.IsCloserThan(other) {
		return d
	}
	return other
}
