package msdf

import "math"

// EdgeType classifies edge segments by their geometric type.
type EdgeType int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeType = iota

	// EdgeQuadratic is a quadratic Bezier curve (one control point).
	EdgeQuadratic

	// EdgeCubic is a cubic Bezier curve (two control points).
	EdgeCubic

	// EdgeArc is an elliptical arc in centre parameterisation.
	EdgeArc
)

// String returns a string representation of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	case EdgeArc:
		return "Arc"
	default:
		return "Unknown"
	}
}

// Edge represents a single edge segment of a contour.
//
// The Points array is interpreted according to Type:
//
//	Linear:    P0 (start), P1 (end)
//	Quadratic: P0 (start), P1 (control), P2 (end)
//	Cubic:     P0 (start), P1 (control1), P2 (control2), P3 (end)
//	Arc:       P0 (centre), P1 (x-radius, aspect ratio),
//	           P2 (axis rotation, unused), P3 (start angle, sweep angle)
//
// Color is the channel assignment produced by ColorEdges; geometry is never
// mutated after construction.
type Edge struct {
	Type   EdgeType
	Points [4]Point
	Color  EdgeColor
}

// NewLinearEdge creates a new linear edge from start to end.
func NewLinearEdge(start, end Point) Edge {
	return Edge{
		Type:   EdgeLinear,
		Points: [4]Point{start, end, {}, {}},
		Color:  ColorWhite,
	}
}

// NewQuadraticEdge creates a new quadratic Bezier edge.
func NewQuadraticEdge(start, control, end Point) Edge {
	return Edge{
		Type:   EdgeQuadratic,
		Points: [4]Point{start, control, end, {}},
		Color:  ColorWhite,
	}
}

// NewCubicEdge creates a new cubic Bezier edge.
func NewCubicEdge(start, control1, control2, end Point) Edge {
	return Edge{
		Type:   EdgeCubic,
		Points: [4]Point{start, control1, control2, end},
		Color:  ColorWhite,
	}
}

// StartPoint returns the starting point of the edge.
func (e *Edge) StartPoint() Point {
	if e.Type == EdgeArc {
		return e.arc().pointAtAngle(e.arc().Theta)
	}
	return e.Points[0]
}

// EndPoint returns the ending point of the edge.
func (e *Edge) EndPoint() Point {
	switch e.Type {
	case EdgeLinear:
		return e.Points[1]
	case EdgeQuadratic:
		return e.Points[2]
	case EdgeCubic:
		return e.Points[3]
	case EdgeArc:
		a := e.arc()
		return a.pointAtAngle(a.Theta + a.Delta)
	default:
		return e.Points[0]
	}
}

// PointAt evaluates the edge at parameter t.
//
// For t outside [0, 1] the edge is extended along the straight ray leaving
// the nearest endpoint in the tangent direction. This keeps pseudo-distance
// queries continuous past the edge's endpoints.
func (e *Edge) PointAt(t float64) Point {
	if t < 0 {
		return e.PointAt(0).Add(e.DirectionAt(0).Mul(t))
	}
	if t > 1 {
		return e.PointAt(1).Add(e.DirectionAt(1).Mul(t - 1))
	}
	switch e.Type {
	case EdgeLinear:
		return e.Points[0].Lerp(e.Points[1], t)
	case EdgeQuadratic:
		return evaluateQuadratic(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return evaluateCubic(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	case EdgeArc:
		a := e.arc()
		return a.pointAtAngle(a.Theta + t*a.Delta)
	default:
		return e.Points[0]
	}
}

// DirectionAt returns the tangent direction at parameter t (not normalized).
// t is clamped to [0, 1]: beyond the endpoints the tangent of the straight
// extension equals the endpoint tangent.
func (e *Edge) DirectionAt(t float64) Point {
	t = clamp01(t)
	switch e.Type {
	case EdgeLinear:
		return e.Points[1].Sub(e.Points[0])
	case EdgeQuadratic:
		return quadraticDerivative(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return cubicDerivative(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	case EdgeArc:
		a := e.arc()
		return a.derivativeAtAngle(a.Theta + t*a.Delta).Mul(a.Delta)
	default:
		return Point{X: 1, Y: 0}
	}
}

// SignedDistance calculates the signed distance from point p to this edge,
// with the closest-point parameter clamped to the segment. Returns the
// distance and the parameter t of the closest point in [0, 1].
func (e *Edge) SignedDistance(p Point) (SignedDistance, float64) {
	ts := e.perpendicularParams(p)
	candidates := ts[:0:len(ts)]
	for _, t := range ts {
		if t >= 0 && t <= 1 {
			candidates = append(candidates, t)
		}
	}
	candidates = append(candidates, 0, 1)
	return e.selectClosest(p, candidates, false)
}

// PseudoDistance calculates the signed pseudo-distance from point p to the
// edge's supporting curve, extended past the endpoints along the endpoint
// tangents. The returned parameter is not clamped to [0, 1]; callers use it
// to reject extrapolated answers in favor of a neighboring edge.
func (e *Edge) PseudoDistance(p Point) (SignedDistance, float64) {
	ts := e.perpendicularParams(p)
	candidates := ts[:0:len(ts)]
	for _, t := range ts {
		if t >= 0 && t <= 1 {
			candidates = append(candidates, t)
		}
	}
	// Project onto the straight rays extending from each endpoint.
	if t, ok := e.extensionParam(p, 0); ok {
		candidates = append(candidates, t)
	}
	if t, ok := e.extensionParam(p, 1); ok {
		candidates = append(candidates, t)
	}
	candidates = append(candidates, 0, 1)
	return e.selectClosest(p, candidates, true)
}

// perpendicularParams returns the parameters where the line from the curve
// to p is perpendicular to the curve. Values may fall outside [0, 1].
func (e *Edge) perpendicularParams(p Point) []float64 {
	switch e.Type {
	case EdgeLinear:
		a, b := e.Points[0], e.Points[1]
		ab := b.Sub(a)
		lenSq := ab.LengthSquared()
		if lenSq == 0 {
			return nil
		}
		return []float64{p.Sub(a).Dot(ab) / lenSq}
	case EdgeQuadratic:
		return quadraticPerpendiculars(e.Points[0], e.Points[1], e.Points[2], p)
	case EdgeCubic:
		return cubicPerpendiculars(e.Points[0], e.Points[1], e.Points[2], e.Points[3], p)
	case EdgeArc:
		return e.arc().perpendicularParams(p)
	default:
		return nil
	}
}

// extensionParam projects p onto the tangent ray leaving the endpoint
// (0 or 1) and reports the resulting parameter if it lies strictly beyond
// the segment on that side.
func (e *Edge) extensionParam(p Point, endpoint float64) (float64, bool) {
	dir := e.DirectionAt(endpoint)
	lenSq := dir.LengthSquared()
	if lenSq == 0 {
		return 0, false
	}
	base := e.PointAt(endpoint)
	t := endpoint + p.Sub(base).Dot(dir)/lenSq
	if endpoint == 0 && t < 0 {
		return t, true
	}
	if endpoint == 1 && t > 1 {
		return t, true
	}
	return 0, false
}

// selectClosest evaluates each candidate parameter and picks the one with
// the minimum squared distance to p, computing the sign and the endpoint
// orthogonality tie-breaker for the winner.
func (e *Edge) selectClosest(p Point, candidates []float64, pseudo bool) (SignedDistance, float64) {
	bestT := candidates[0]
	bestSq := math.Inf(1)
	for _, t := range candidates {
		if !pseudo {
			t = clamp01(t)
		}
		sq := p.Sub(e.PointAt(t)).LengthSquared()
		if sq < bestSq {
			bestSq = sq
			bestT = t
		}
	}

	closest := e.PointAt(bestT)
	diff := p.Sub(closest)
	dist := math.Sqrt(bestSq)

	tangent := e.DirectionAt(bestT)
	if tangent.Cross(diff) < 0 {
		dist = -dist
	}

	// At an endpoint the approach is generally not perpendicular; record
	// how parallel it is so equal-distance ties prefer true projections.
	var dot float64
	if bestT <= 0 || bestT >= 1 {
		dot = math.Abs(tangent.Normalize().Dot(diff.Normalize()))
	}

	return SignedDistance{Distance: dist, Dot: dot}, bestT
}

// Bounds returns the bounding box of the edge.
func (e *Edge) Bounds() Rect {
	switch e.Type {
	case EdgeLinear:
		return linearBounds(e.Points[0], e.Points[1])
	case EdgeQuadratic:
		return quadraticBounds(e.Points[0], e.Points[1], e.Points[2])
	case EdgeCubic:
		return cubicBounds(e.Points[0], e.Points[1], e.Points[2], e.Points[3])
	case EdgeArc:
		return e.arc().bounds()
	default:
		return Rect{}
	}
}

// Reverse returns the edge traversed in the opposite direction.
func (e *Edge) Reverse() Edge {
	r := *e
	switch e.Type {
	case EdgeLinear:
		r.Points[0], r.Points[1] = e.Points[1], e.Points[0]
	case EdgeQuadratic:
		r.Points[0], r.Points[2] = e.Points[2], e.Points[0]
	case EdgeCubic:
		r.Points[0], r.Points[3] = e.Points[3], e.Points[0]
		r.Points[1], r.Points[2] = e.Points[2], e.Points[1]
	case EdgeArc:
		a := e.arc()
		a.Theta += a.Delta
		a.Delta = -a.Delta
		r.Points = a.points()
	}
	return r
}

// isDegenerate reports whether the edge has no usable tangent anywhere:
// zero-length lines, curves with all points coincident, arcs with zero
// radius or zero sweep.
func (e *Edge) isDegenerate() bool {
	const epsSq = 1e-18
	switch e.Type {
	case EdgeLinear:
		return e.Points[1].Sub(e.Points[0]).LengthSquared() < epsSq
	case EdgeQuadratic:
		return e.Points[1].Sub(e.Points[0]).LengthSquared() < epsSq &&
			e.Points[2].Sub(e.Points[0]).LengthSquared() < epsSq
	case EdgeCubic:
		return e.Points[1].Sub(e.Points[0]).LengthSquared() < epsSq &&
			e.Points[2].Sub(e.Points[0]).LengthSquared() < epsSq &&
			e.Points[3].Sub(e.Points[0]).LengthSquared() < epsSq
	case EdgeArc:
		a := e.arc()
		return a.R <= 0 || a.K <= 0 || a.Delta == 0
	default:
		return true
	}
}

// evaluateQuadratic evaluates a quadratic Bezier curve at parameter t.
func evaluateQuadratic(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	// B(t) = (1-t)^2*P0 + 2*(1-t)*t*P1 + t^2*P2
	return Point{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// evaluateCubic evaluates a cubic Bezier curve at parameter t.
func evaluateCubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	// B(t) = (1-t)^3*P0 + 3*(1-t)^2*t*P1 + 3*(1-t)*t^2*P2 + t^3*P3
	return Point{
		X: u*u2*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t*t2*p3.X,
		Y: u*u2*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t*t2*p3.Y,
	}
}

// quadraticDerivative returns the derivative of a quadratic Bezier at t.
func quadraticDerivative(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	// B'(t) = 2*(1-t)*(P1-P0) + 2*t*(P2-P1)
	return Point{
		X: 2*u*(p1.X-p0.X) + 2*t*(p2.X-p1.X),
		Y: 2*u*(p1.Y-p0.Y) + 2*t*(p2.Y-p1.Y),
	}
}

// cubicDerivative returns the derivative of a cubic Bezier at t.
func cubicDerivative(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	// B'(t) = 3*(1-t)^2*(P1-P0) + 6*(1-t)*t*(P2-P1) + 3*t^2*(P3-P2)
	return Point{
		X: 3*u*u*(p1.X-p0.X) + 6*u*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X),
		Y: 3*u*u*(p1.Y-p0.Y) + 6*u*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y),
	}
}

// cubicSecondDerivative returns the second derivative of a cubic Bezier at t.
func cubicSecondDerivative(p0, p1, p2, p3 Point, t float64) Point {
	// B''(t) = 6*(1-t)*(P2-2*P1+P0) + 6*t*(P3-2*P2+P1)
	a := p2.Sub(p1.Mul(2)).Add(p0)
	b := p3.Sub(p2.Mul(2)).Add(p1)
	u := 1 - t
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

// quadraticPerpendiculars finds all parameters where the normal of the
// quadratic Bezier passes through p, by solving the cubic derivative of
// squared distance in closed form.
func quadraticPerpendiculars(p0, p1, p2, p Point) []float64 {
	// Shift so p is the origin: B(t) = a*t^2 + b*t + c.
	qa := p0.Sub(p)
	qb := p1.Sub(p)
	qc := p2.Sub(p)
	a := qa.Sub(qb.Mul(2)).Add(qc)
	b := qb.Sub(qa).Mul(2)
	c := qa

	if a.LengthSquared() == 0 {
		// The curve degenerates into a line.
		ab := p2.Sub(p0)
		lenSq := ab.LengthSquared()
		if lenSq == 0 {
			return nil
		}
		return []float64{p.Sub(p0).Dot(ab) / lenSq}
	}

	// d(|B|^2)/dt = 0 is a cubic in t.
	c3 := 2 * a.Dot(a)
	c2 := 3 * a.Dot(b)
	c1 := 2*a.Dot(c) + b.Dot(b)
	c0 := b.Dot(c)
	return SolveCubic(c3, c2, c1, c0)
}

// cubicPerpendiculars finds parameters where the normal of the cubic Bezier
// passes through p.
//
// The exact condition is a quintic polynomial; instead of a closed form we
// seed Newton's method from evenly spaced samples, which is robust for the
// well-behaved curves found in glyph outlines. Convergence tolerance is
// 1e-10 on the parameter step with at most 8 iterations per seed.
func cubicPerpendiculars(p0, p1, p2, p3, p Point) []float64 {
	const numSeeds = 8
	ts := make([]float64, 0, numSeeds+1)
	for i := 0; i <= numSeeds; i++ {
		t := newtonRefineCubic(p0, p1, p2, p3, p, float64(i)/numSeeds)
		ts = append(ts, t)
	}
	return ts
}

// newtonRefineCubic refines a closest-point parameter using Newton's method
// on the derivative of squared distance.
func newtonRefineCubic(p0, p1, p2, p3, p Point, t float64) float64 {
	const (
		maxIter = 8
		epsilon = 1e-10
	)
	for i := 0; i < maxIter; i++ {
		pt := evaluateCubic(p0, p1, p2, p3, t)
		diff := pt.Sub(p)

		d1 := cubicDerivative(p0, p1, p2, p3, t)
		d2 := cubicSecondDerivative(p0, p1, p2, p3, t)

		// f(t) = diff . B'(t), f'(t) = B'.B' + diff.B''
		f := diff.Dot(d1)
		fp := d1.Dot(d1) + diff.Dot(d2)
		if math.Abs(fp) < epsilon {
			break
		}

		dt := -f / fp
		if math.Abs(dt) < epsilon {
			break
		}
		t = clamp01(t + dt)
	}
	return t
}

// linearBounds returns the bounding box of a line segment.
func linearBounds(a, b Point) Rect {
	return Rect{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}

// quadraticBounds returns the bounding box of a quadratic Bezier.
func quadraticBounds(p0, p1, p2 Point) Rect {
	bounds := linearBounds(p0, p2)

	// Interior extrema where B'(t) = 0: t = (p0-p1)/(p0-2*p1+p2), per axis.
	dx := p0.X - 2*p1.X + p2.X
	if math.Abs(dx) > 1e-10 {
		if t := (p0.X - p1.X) / dx; t > 0 && t < 1 {
			bounds = bounds.includePoint(evaluateQuadratic(p0, p1, p2, t))
		}
	}
	dy := p0.Y - 2*p1.Y + p2.Y
	if math.Abs(dy) > 1e-10 {
		if t := (p0.Y - p1.Y) / dy; t > 0 && t < 1 {
			bounds = bounds.includePoint(evaluateQuadratic(p0, p1, p2, t))
		}
	}
	return bounds
}

// cubicBounds returns the bounding box of a cubic Bezier.
func cubicBounds(p0, p1, p2, p3 Point) Rect {
	bounds := linearBounds(p0, p3)

	// B'(t) = 0 is a quadratic per axis.
	ax := -p0.X + 3*p1.X - 3*p2.X + p3.X
	bx := 2*p0.X - 4*p1.X + 2*p2.X
	cx := -p0.X + p1.X
	for _, t := range SolveQuadratic(ax, bx, cx) {
		if t > 0 && t < 1 {
			bounds = bounds.includePoint(evaluateCubic(p0, p1, p2, p3, t))
		}
	}

	ay := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	by := 2*p0.Y - 4*p1.Y + 2*p2.Y
	cy := -p0.Y + p1.Y
	for _, t := range SolveQuadratic(ay, by, cy) {
		if t > 0 && t < 1 {
			bounds = bounds.includePoint(evaluateCubic(p0, p1, p2, p3, t))
		}
	}
	return bounds
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
