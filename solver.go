package msdf

import "math"

// Polynomial root solvers used for closest-point queries on curves:
// the derivative of squared distance to a quadratic Bezier is a cubic,
// and curve bounding boxes need the roots of derivative quadratics.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// The function is numerically robust:
//   - If a is zero or nearly zero, treats the equation as linear
//   - If all coefficients are zero, returns a single 0.0
//   - Handles NaN and Inf coefficients gracefully
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients to avoid overflow in the discriminant.
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Overflow in the discriminant: one root from sc1*x + x^2 = 0,
		// the other recovered from the product of roots.
		return sortedPair(-sc1, sc0/-sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form that avoids cancellation.
	// See: https://math.stackexchange.com/questions/866331
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

// sortedPair returns the two roots in ascending order, dropping the second
// when it is not finite.
func sortedPair(root1, root2 float64) []float64 {
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveLinear handles the case when the quadratic coefficient vanishes.
func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// SolveCubic finds real roots of the cubic equation ax^3 + bx^2 + cx + d = 0.
// Returns roots (not necessarily sorted).
//
// The implementation uses the method from
// https://momentsingraphics.de/CubicRoots.html
// which is based on Jim Blinn's "How to Solve a Cubic Equation".
func SolveCubic(a, b, c, d float64) []float64 {
	aRecip := 1.0 / a
	const oneThird = 1.0 / 3.0

	scaledB := b * (oneThird * aRecip)
	scaledC := c * (oneThird * aRecip)
	scaledD := d * aRecip

	if !isFinite(scaledB) || !isFinite(scaledC) || !isFinite(scaledD) {
		// The cubic coefficient is zero or nearly so.
		return SolveQuadratic(b, c, d)
	}

	c0, c1, c2 := scaledD, scaledC, scaledB

	// (d0, d1, d2) is called "Delta" in the article.
	d0 := (-c2)*c2 + c1
	d1 := (-c1)*c2 + c0
	d2 := c2*c0 - c1*c1

	disc := 4.0*d0*d2 - d1*d1

	// de is called "Depressed.x"; Depressed.y = d0.
	de := (-2.0*c2)*d0 + d1

	if disc < 0.0 {
		// One real root.
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return []float64{t1 - c2}
	} else if disc == 0.0 {
		// Two real roots (one is a double root).
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return []float64{t1 - c2, -2.0*t1 - c2}
	}

	// Three distinct real roots.
	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	thSin, thCos := math.Sincos(th)

	r0 := thCos
	ss3 := thSin * math.Sqrt(3.0)
	r1 := 0.5 * (-thCos + ss3)
	r2 := 0.5 * (-thCos - ss3)
	t := 2.0 * math.Sqrt(-d0)

	return []float64{
		t*r0 - c2,
		t*r1 - c2,
		t*r2 - c2,
	}
}

// SolveQuadraticInUnitInterval returns roots of ax^2 + bx + c = 0 in [0, 1].
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return filterRootsToUnitInterval(SolveQuadratic(a, b, c))
}

// SolveCubicInUnitInterval returns roots of ax^3 + bx^2 + cx + d = 0 in [0, 1].
func SolveCubicInUnitInterval(a, b, c, d float64) []float64 {
	return filterRootsToUnitInterval(SolveCubic(a, b, c, d))
}

// filterRootsToUnitInterval keeps roots in [0, 1], clamping values that sit
// within epsilon of the boundaries.
func filterRootsToUnitInterval(roots []float64) []float64 {
	if len(roots) == 0 {
		return nil
	}
	const eps = 1e-12
	result := make([]float64, 0, len(roots))
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			result = append(result, math.Min(math.Max(r, 0.0), 1.0))
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// halley finds a zero of a twice-differentiable function starting from the
// initial guess x. Convergence tolerance is 1e-9 on |f(x)| with a bounded
// iteration count; the best guess so far is returned if the tolerance is
// not reached. Used for closest-angle queries on elliptical arcs, where the
// normal equation is trigonometric rather than polynomial.
func halley(x float64, f, df, ddf func(float64) float64) float64 {
	const (
		maxIter = 32
		tol     = 1e-9
	)
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return x
		}
		dfx := df(x)
		denom := 2*dfx*dfx - fx*ddf(x)
		if denom == 0 {
			break
		}
		x -= (2 * fx * dfx) / denom
	}
	return x
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
