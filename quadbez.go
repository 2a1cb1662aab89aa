package quadfit

import "iter"

// QuadBez is a quadratic Bézier segment with start point P0, control point
// P1, and end point P2.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at t, which is normally in [0, 1].
//
// The result is (1-t)²P0 + 2t(1-t)P1 + t²P2.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	return Point(a.Add(b.Add(c).Mul(t)))
}

// Deriv returns the derivative of the curve at t.
func (q QuadBez) Deriv(t float64) Vec2 {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Lerp(d1, t).Mul(2)
}

// Start returns P0.
func (q QuadBez) Start() Point {
	return q.P0
}

// End returns P2.
func (q QuadBez) End() Point {
	return q.P2
}

// ControlPoints returns P0, P1, and P2 in order.
func (q QuadBez) ControlPoints() [3]Point {
	return [3]Point{q.P0, q.P1, q.P2}
}

// IsInf reports whether any control point has an infinite coordinate.
func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

// IsNaN reports whether any control point has a NaN coordinate.
func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Subdivide splits the curve at t = 0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// Subsegment returns the part of the curve between t0 and t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Sample returns n points evaluated at evenly spaced parameters, starting
// at t = 0 and ending at t = 1. With n == 1 only the start point is
// produced, and with n <= 0 nothing is.
//
// The returned iterator can be used any number of times.
func (q QuadBez) Sample(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n <= 0 {
			return
		}
		denom := float64(max(n-1, 1))
		for i := range n {
			if !yield(q.Eval(float64(i) / denom)) {
				return
			}
		}
	}
}

// Arclen returns the arc length of the curve, to within accuracy.
//
// It uses Gravesen's estimate, the weighted mean of the chord and the
// control polygon, and subdivides until the two agree to within accuracy.
func (q QuadBez) Arclen(accuracy float64) float64 {
	return q.arclenRec(accuracy, 0)
}

func (q QuadBez) arclenRec(accuracy float64, depth int) float64 {
	chord := q.P0.Distance(q.P2)
	poly := q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
	if poly-chord <= accuracy || depth >= 16 {
		return (2*chord + poly) / 3
	}
	a, b := q.Subdivide()
	return a.arclenRec(accuracy*0.5, depth+1) + b.arclenRec(accuracy*0.5, depth+1)
}

// Nearest finds the point on the curve closest to pt. It returns the
// squared distance and the parameter of that point.
//
// The stationary points of the squared distance are the roots of a cubic,
// which are solved for analytically; the endpoints are always considered as
// well. The accuracy argument is currently unused.
func (q QuadBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()

	distSq = q.P0.DistanceSquared(pt)
	t = 0
	if e := q.P2.DistanceSquared(pt); e < distSq {
		distSq, t = e, 1
	}
	roots, n := SolveCubic(c0, c1, c2, c3)
	for _, r := range roots[:n] {
		if !(r > 0 && r < 1) {
			continue
		}
		if e := q.Eval(r).DistanceSquared(pt); e < distSq {
			distSq, t = e, r
		}
	}
	return distSq, t
}

// BoundingBox returns the tight axis-aligned bounds of the curve.
func (q QuadBez) BoundingBox() Rect {
	r := NewRectFromPoints(q.P0, q.P2)
	// Extrema lie where one component of the derivative, a line, crosses
	// zero.
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			r = r.UnionPoint(q.Eval(t))
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			r = r.UnionPoint(q.Eval(t))
		}
	}
	return r
}
