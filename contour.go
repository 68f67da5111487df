package msdf

// Winding classifies a contour's orientation.
type Winding int

const (
	// WindingDegenerate means the signed area is too close to zero to
	// infer an orientation.
	WindingDegenerate Winding = iota

	// WindingPositive is counter-clockwise: an additive outer boundary.
	WindingPositive

	// WindingNegative is clockwise: a subtractive hole.
	WindingNegative
)

// String returns a string representation of the winding.
func (w Winding) String() string {
	switch w {
	case WindingPositive:
		return "Positive"
	case WindingNegative:
		return "Negative"
	default:
		return "Degenerate"
	}
}

// curveAreaSteps is the subdivision count used when flattening a curved
// edge for area and containment computations. This approximation never
// touches the rendered geometry; it only decides orientation and nesting.
const curveAreaSteps = 16

// Contour is an ordered cyclic sequence of edges forming a closed loop:
// the endpoint of each edge coincides with the start point of its successor,
// and the successor of the last edge is the first. Adjacency follows from
// position, modulo the edge count.
type Contour struct {
	Edges []Edge
}

// NewContour creates an empty contour.
func NewContour() *Contour {
	return &Contour{Edges: make([]Edge, 0)}
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e Edge) {
	c.Edges = append(c.Edges, e)
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}
	bounds := c.Edges[0].Bounds()
	for i := 1; i < len(c.Edges); i++ {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// polyline flattens the contour into a closed polygonal approximation.
// Linear edges contribute their endpoints; curved edges are subdivided.
func (c *Contour) polyline() []Point {
	pts := make([]Point, 0, len(c.Edges)*curveAreaSteps)
	for i := range c.Edges {
		e := &c.Edges[i]
		steps := curveAreaSteps
		if e.Type == EdgeLinear {
			steps = 1
		}
		for s := 0; s < steps; s++ {
			pts = append(pts, e.PointAt(float64(s)/float64(steps)))
		}
	}
	return pts
}

// SignedArea computes the area enclosed by the contour using the shoelace
// formula over the flattened polyline. Positive area means counter-
// clockwise winding.
func (c *Contour) SignedArea() float64 {
	pts := c.polyline()
	var area float64
	for i, p := range pts {
		area += p.Cross(pts[(i+1)%len(pts)])
	}
	return area / 2
}

// WindingSign classifies the contour's orientation from its signed area.
// Areas within tolerance of zero are Degenerate: the orientation cannot be
// inferred and the normalizer refuses to guess.
func (c *Contour) WindingSign() Winding {
	area := c.SignedArea()
	b := c.Bounds()
	tol := 1e-9 * max(1, b.Width()*b.Height())
	switch {
	case area > tol:
		return WindingPositive
	case area < -tol:
		return WindingNegative
	default:
		return WindingDegenerate
	}
}

// CornerAngle returns the signed tangent deviation at the vertex between
// edge i and its cyclic successor, in (-pi, pi]. Zero means the tangents
// are collinear (a perfectly smooth join); the magnitude grows with the
// sharpness of the corner.
func (c *Contour) CornerAngle(i int) float64 {
	n := len(c.Edges)
	in := c.Edges[i].DirectionAt(1)
	out := c.Edges[(i+1)%n].DirectionAt(0)
	return in.AngleTo(out)
}

// Reverse flips the contour's direction in place: the edge order is
// reversed and every edge is re-linked to run backwards, so the winding
// sign is negated while the geometry is unchanged.
func (c *Contour) Reverse() {
	for i, j := 0, len(c.Edges)-1; i < j; i, j = i+1, j-1 {
		c.Edges[i], c.Edges[j] = c.Edges[j].Reverse(), c.Edges[i].Reverse()
	}
	if len(c.Edges)%2 == 1 {
		mid := len(c.Edges) / 2
		c.Edges[mid] = c.Edges[mid].Reverse()
	}
}

// containsPoint reports whether p lies inside the contour using an even-odd
// ray crossing test against the flattened polyline.
func (c *Contour) containsPoint(p Point) bool {
	pts := c.polyline()
	inside := false
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Clone creates a deep copy of the contour.
func (c *Contour) Clone() *Contour {
	clone := &Contour{Edges: make([]Edge, len(c.Edges))}
	copy(clone.Edges, c.Edges)
	return clone
}
