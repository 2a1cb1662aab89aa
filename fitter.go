package quadfit

import "math"

// Below this sum of squared basis weights the normal equation for the
// control point is considered singular.
const degenerateWeight = 1e-10

// Below this total chord length the points are treated as coincident for
// the purpose of parametrization.
const minChordLength = 1e-12

// FitSegment fits a single quadratic Bézier to points, which must contain
// at least two points. The curve starts at the first and ends at the last
// point; its control point minimizes the squared distances between the
// points and the curve evaluated at their chord-length parameters. The
// second return value is the largest of those distances.
//
// With exactly two points, or when the points do not determine a control
// point (for example because interior points coincide with an endpoint),
// the control point is the midpoint of the endpoints.
func FitSegment(points []Point) (QuadBez, float64) {
	var f segmentFitter
	return f.fit(points)
}

// segmentFitter fits individual segments. It reuses its parameter buffer
// between calls and therefore must not be shared between goroutines.
type segmentFitter struct {
	param  Parametrization
	metric ErrorMetric
	ts     []float64
}

func newSegmentFitter(opts FitOptions) *segmentFitter {
	return &segmentFitter{
		param:  opts.Parametrization,
		metric: opts.Metric,
	}
}

func (f *segmentFitter) fit(points []Point) (QuadBez, float64) {
	n := len(points)
	if n < 2 {
		panic("quadfit: fitting fewer than 2 points")
	}
	p0, p2 := points[0], points[n-1]
	mid := QuadBez{p0, p0.Midpoint(p2), p2}
	if n == 2 {
		return mid, 0
	}

	ts, coincident := f.params(points)
	if coincident {
		// Every point equals p0, and so does every point of mid.
		return mid, 0
	}

	// With p0 and p2 fixed, B(t) is affine in p1 with basis weight
	// w = 2t(1-t), so each axis has a closed-form least-squares solution.
	var sx, sy, sw float64
	for k, pt := range points {
		t := ts[k]
		mt := 1 - t
		w := 2 * t * mt
		a := mt * mt
		b := t * t
		sx += w * (pt.X - a*p0.X - b*p2.X)
		sy += w * (pt.Y - a*p0.Y - b*p2.Y)
		sw += w * w
	}
	q := mid
	if sw >= degenerateWeight {
		q.P1 = Pt(sx/sw, sy/sw)
		if n == 3 {
			// A single interior point is interpolated exactly.
			return q, 0
		}
	}
	return q, f.measure(q, points, ts)
}

// params assigns a curve parameter to every point. It reports whether all
// points coincide, in which case the parameters are not computed.
func (f *segmentFitter) params(points []Point) ([]float64, bool) {
	n := len(points)
	if cap(f.ts) < n {
		f.ts = make([]float64, n)
	}
	ts := f.ts[:n]

	ts[0] = 0
	for k := 1; k < n; k++ {
		ts[k] = ts[k-1] + points[k].Distance(points[k-1])
	}
	total := ts[n-1]
	if total == 0 {
		return ts, true
	}
	if f.param == Uniform || total < minChordLength {
		inv := 1 / float64(n-1)
		for k := range ts {
			ts[k] = float64(k) * inv
		}
		return ts, false
	}
	inv := 1 / total
	for k := range ts {
		ts[k] *= inv
	}
	// Guard against rounding leaving the last parameter just short of 1.
	ts[n-1] = 1
	return ts, false
}

func (f *segmentFitter) measure(q QuadBez, points []Point, ts []float64) float64 {
	switch f.metric {
	case MaxDeviation:
		var worst float64
		for k, pt := range points {
			worst = max(worst, q.Eval(ts[k]).Distance(pt))
		}
		return worst
	case RMSDeviation:
		var sum float64
		for k, pt := range points {
			sum += q.Eval(ts[k]).DistanceSquared(pt)
		}
		return math.Sqrt(sum / float64(len(points)))
	case MaxNearestDistance:
		var worst float64
		for _, pt := range points {
			d2, _ := q.Nearest(pt, 1e-9)
			worst = max(worst, d2)
		}
		return math.Sqrt(worst)
	default:
		panic("unreachable")
	}
}
