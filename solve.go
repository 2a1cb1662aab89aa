package quadfit

import "math"

// SolveQuadratic finds the real roots of c0 + c1 x + c2 x² = 0.
//
// Roots are returned in ascending order; the second return value is the
// number of roots found. A vanishing quadratic term degrades to the linear
// equation. If all coefficients are zero every x is a solution and a single
// 0 is reported.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if c2 == 0 {
		if c1 == 0 {
			if c0 == 0 {
				return [2]float64{0}, 1
			}
			return [2]float64{}, 0
		}
		return [2]float64{-c0 / c1}, 1
	}
	disc := c1*c1 - 4*c2*c0
	switch {
	case math.IsNaN(disc) || disc < 0:
		return [2]float64{}, 0
	case disc == 0:
		return [2]float64{-0.5 * c1 / c2}, 1
	}
	// Pick the sign that avoids cancellation, then recover the other root
	// from the product of the roots.
	q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))
	r1 := q / c2
	r2 := c0 / q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return [2]float64{r1, r2}, 2
}

// SolveCubic finds the real roots of c0 + c1 x + c2 x² + c3 x³ = 0.
//
// When the cubic coefficient is zero, or so small relative to the others
// that normalizing by it overflows, the quadratic equation is solved
// instead. The second return value is the number of roots found. Repeated
// roots are reported once.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	if c3 == 0 {
		r, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{r[0], r[1]}, n
	}
	a := c2 / c3
	b := c1 / c3
	c := c0 / c3
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsInf(c, 0) {
		r, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{r[0], r[1]}, n
	}

	// Substitute x = y - a/3 to get the depressed cubic y³ + py + q = 0.
	shift := a / 3
	p := b - a*shift
	q := (2*a*a*a)/27 - a*b/3 + c

	halfQ := 0.5 * q
	thirdP := p / 3
	disc := halfQ*halfQ + thirdP*thirdP*thirdP

	switch {
	case disc > 0:
		// Take the cube root of larger magnitude so that u is never the
		// result of cancellation.
		sq := math.Sqrt(disc)
		u := math.Cbrt(-halfQ - math.Copysign(sq, halfQ))
		v := -thirdP / u
		y := u + v
		if p > 0 {
			// u and v have opposite signs; recover y from
			// u³ + v³ = (u + v)(u² − uv + v²) = −q, whose second factor
			// is a sum of positive terms.
			y = -q / (u*u + thirdP + v*v)
		}
		return [3]float64{y - shift}, 1
	case disc == 0:
		if p == 0 {
			return [3]float64{-shift}, 1
		}
		y1 := 3 * q / p
		y2 := -1.5 * q / p
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		return [3]float64{y1 - shift, y2 - shift}, 2
	default:
		// Three distinct real roots; p is negative here.
		r := 2 * math.Sqrt(-thirdP)
		arg := (3 * q / (2 * p)) * math.Sqrt(-3/p)
		arg = max(-1, min(1, arg))
		phi := math.Acos(arg) / 3
		var out [3]float64
		for k := range 3 {
			out[k] = r*math.Cos(phi-2*math.Pi*float64(k)/3) - shift
		}
		return out, 3
	}
}
