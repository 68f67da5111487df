package msdf

import (
	"fmt"
	"math"
)

const tau = 2 * math.Pi

// arcParams is the centre parameterisation of an elliptical arc.
//
// Following Goessner, S. "A Generalized Approach to Parameterizing Planar
// Elliptical Arcs", the ellipse is stored as a centre, an x-radius, an
// aspect ratio (y-radius / x-radius, so the arc scales by scaling R alone),
// and the rotation of its axes. The arc covers the angles
// [Theta, Theta+Delta]; a negative Delta sweeps clockwise.
type arcParams struct {
	Centre Point
	R      float64 // x-radius
	K      float64 // aspect ratio; a circle has K == 1
	Phi    float64 // axis rotation
	Theta  float64 // start angle
	Delta  float64 // sweep angle
}

// arc decodes the centre parameterisation packed into an arc edge's Points.
func (e *Edge) arc() arcParams {
	return arcParams{
		Centre: e.Points[0],
		R:      e.Points[1].X,
		K:      e.Points[1].Y,
		Phi:    e.Points[2].X,
		Theta:  e.Points[3].X,
		Delta:  e.Points[3].Y,
	}
}

// points packs the parameterisation back into an edge's Points layout.
func (a arcParams) points() [4]Point {
	return [4]Point{
		a.Centre,
		{X: a.R, Y: a.K},
		{X: a.Phi},
		{X: a.Theta, Y: a.Delta},
	}
}

// NewArcEdge creates an elliptical arc edge from a centre parameterisation:
// centre, x-radius rx, aspect ratio (y-radius / x-radius), axis rotation
// phi, start angle theta, and sweep angle delta. A negative delta sweeps
// clockwise.
func NewArcEdge(centre Point, rx, aspect, phi, theta, delta float64) Edge {
	a := arcParams{
		Centre: centre,
		R:      rx,
		K:      aspect,
		Phi:    phi,
		Theta:  theta,
		Delta:  delta,
	}
	return Edge{
		Type:   EdgeArc,
		Points: a.points(),
		Color:  ColorWhite,
	}
}

// NewArcEdgeFromEndpoints creates an elliptical arc edge from the SVG-style
// endpoint parameterisation: start and end points, radii, axis rotation,
// and the large-arc / sweep flags. The conversion to centre form follows
// the W3C SVG implementation notes.
//
// Returns ErrDegenerateGeometry when start and end coincide, since
// infinitely many ellipses would satisfy the constraints.
func NewArcEdgeFromEndpoints(start Point, rx, ry, phi float64, largeArc, sweepCCW bool, end Point) (Edge, error) {
	if start.Sub(end).LengthSquared() < 1e-18 {
		return Edge{}, fmt.Errorf("%w: arc endpoints coincide", ErrDegenerateGeometry)
	}

	rx, ry = math.Abs(rx), math.Abs(ry)
	phiSin, phiCos := math.Sincos(phi)
	dxHalf := (start.X - end.X) / 2
	dyHalf := (start.Y - end.Y) / 2

	// Rotate into the ellipse's axis frame.
	x1p := phiCos*dxHalf + phiSin*dyHalf
	y1p := -phiSin*dxHalf + phiCos*dyHalf

	rx2 := rx * rx
	ry2 := ry * ry
	x1p2 := x1p * x1p
	y1p2 := y1p * y1p

	// Scale radii up if the endpoints cannot be connected by the ellipse.
	if cr := x1p2/rx2 + y1p2/ry2; cr > 1 {
		s := math.Sqrt(cr)
		rx *= s
		ry *= s
		rx2 = rx * rx
		ry2 = ry * ry
	}

	dq := rx2*y1p2 + ry2*x1p2
	pq := (rx2*ry2 - dq) / dq
	if math.IsInf(pq, 0) {
		pq = 0
	}
	q := math.Sqrt(math.Max(0, pq))
	if largeArc == sweepCCW {
		q = -q
	}

	cxp := q * rx * y1p / ry
	cyp := -q * ry * x1p / rx
	centre := Point{
		X: phiCos*cxp - phiSin*cyp + (start.X+end.X)/2,
		Y: phiSin*cxp + phiCos*cyp + (start.Y+end.Y)/2,
	}

	v := Point{X: (x1p - cxp) / rx, Y: (y1p - cyp) / ry}
	theta := Point{X: 1}.AngleTo(v)
	delta := math.Mod(v.AngleTo(Point{X: (-x1p - cxp) / rx, Y: (-y1p - cyp) / ry}), tau)
	if !sweepCCW && delta > 0 {
		delta -= tau
	} else if sweepCCW && delta < 0 {
		delta += tau
	}

	return NewArcEdge(centre, rx, ry/rx, phi, theta, delta), nil
}

// pointAtAngle samples the full ellipse at the given pseudo-angle,
// ignoring Theta and Delta.
func (a arcParams) pointAtAngle(angle float64) Point {
	ry := a.K * a.R
	phiSin, phiCos := math.Sincos(a.Phi)
	angSin, angCos := math.Sincos(angle)
	return Point{
		X: a.R*phiCos*angCos - ry*phiSin*angSin + a.Centre.X,
		Y: a.R*phiSin*angCos + ry*phiCos*angSin + a.Centre.Y,
	}
}

// derivativeAtAngle samples the derivative of the full ellipse with respect
// to the pseudo-angle, ignoring Theta and Delta.
func (a arcParams) derivativeAtAngle(angle float64) Point {
	ry := a.K * a.R
	phiSin, phiCos := math.Sincos(a.Phi)
	angSin, angCos := math.Sincos(angle)
	return Point{
		X: -a.R*phiCos*angSin - ry*phiSin*angCos,
		Y: -a.R*phiSin*angSin + ry*phiCos*angCos,
	}
}

// perpendicularParams finds the parameters in [0, 1] where the ellipse
// normal passes through p.
//
// The normal condition N(a) = (E(a) - p) . E'(a) = 0 reduces to
// m*sin(2a) + n*sin(a) + o*cos(a) = 0, which is twice differentiable, so
// Halley's method converges quickly from the two antipodal guesses of the
// circular approximation.
func (a arcParams) perpendicularParams(p Point) []float64 {
	sinPhi, cosPhi := math.Sincos(a.Phi)
	rx, ry := a.R, a.K*a.R
	c := a.Centre

	m := 0.5 * (ry*ry - rx*rx)
	n := rx * (sinPhi*(p.Y-c.Y) + cosPhi*(p.X-c.X))
	o := ry * (sinPhi*(p.X-c.X) + cosPhi*(c.Y-p.Y))

	f := func(t float64) float64 { return m*math.Sin(2*t) + n*math.Sin(t) + o*math.Cos(t) }
	df := func(t float64) float64 { return 2*m*math.Cos(2*t) + n*math.Cos(t) - o*math.Sin(t) }
	ddf := func(t float64) float64 { return -4*m*math.Sin(2*t) - n*math.Sin(t) - o*math.Cos(t) }

	// A circle's nearest angle points from p toward the centre; use it and
	// its antipode as the two starting guesses.
	guess := math.Atan2(c.Y-p.Y, c.X-p.X) - a.Phi
	if guess < 0 {
		guess += tau
	}
	a0 := math.Mod(math.Mod(halley(guess, f, df, ddf), tau)+tau, tau)
	a1 := math.Mod(math.Mod(halley(math.Mod(guess+math.Pi, tau), f, df, ddf), tau)+tau, tau)

	// The arc's own angle window may sit anywhere on the circle, so test
	// each root shifted by whole turns before converting to parameters.
	var ts []float64
	for _, base := range [2]float64{a0, a1} {
		for _, shift := range [4]float64{0, tau, -tau, -2 * tau} {
			t := (base + shift - a.Theta) / a.Delta
			if t >= 0 && t <= 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

// bounds returns the bounding box of the arc: both endpoints plus every
// axis extremum of the ellipse whose angle falls within the sweep.
func (a arcParams) bounds() Rect {
	start := a.pointAtAngle(a.Theta)
	end := a.pointAtAngle(a.Theta + a.Delta)
	bounds := linearBounds(start, end)

	ry := a.K * a.R
	sinPhi, cosPhi := math.Sincos(a.Phi)

	// Angles where x'(a) = 0 and y'(a) = 0, each with its antipode.
	ax := math.Atan2(-ry*sinPhi, a.R*cosPhi)
	ay := math.Atan2(ry*cosPhi, a.R*sinPhi)
	for _, base := range [4]float64{ax, ax + math.Pi, ay, ay + math.Pi} {
		if angle, ok := a.angleInSweep(base); ok {
			bounds = bounds.includePoint(a.pointAtAngle(angle))
		}
	}
	return bounds
}

// angleInSweep reports whether some whole-turn shift of the given ellipse
// angle falls within the arc's sweep, returning the shifted angle.
func (a arcParams) angleInSweep(angle float64) (float64, bool) {
	lo, hi := a.Theta, a.Theta+a.Delta
	if a.Delta < 0 {
		lo, hi = hi, lo
	}
	// Shift angle to the first turn at or above lo.
	shifted := angle + tau*math.Ceil((lo-angle)/tau)
	if shifted <= hi {
		return shifted, true
	}
	return 0, false
}
