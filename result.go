package quadfit

import (
	"iter"
	"slices"
)

// Segment is one fitted curve of a [FitResult] together with the range of
// input points it approximates.
type Segment struct {
	Curve QuadBez
	// Indices of the first and last input point covered by the segment.
	// The last point of a segment is the first point of the next.
	Start int
	End   int
	// Fitting error of the segment under the metric used for the fit.
	Error float64
}

// Len returns the number of input points covered by the segment.
func (seg Segment) Len() int {
	return seg.End - seg.Start + 1
}

// FitResult is the outcome of [Fit]. It is not modified after being
// returned, and its methods only read from it, so it can be shared between
// goroutines.
type FitResult struct {
	// Segments in input order. They cover all input points.
	Segments    []Segment
	NumSegments int
	// Sum of the segment errors.
	TotalError float64
	// Fallback is set if the length limits admitted no partition and the
	// input was fitted with a single segment instead.
	Fallback bool
	// Relaxed is set if MaxErrorStrict was requested but no partition met
	// the error limit.
	Relaxed bool
	Config  FitConfig
}

// ControlPoints returns the (P0, P1, P2) triple of every segment.
func (r *FitResult) ControlPoints() [][3]Point {
	out := make([][3]Point, len(r.Segments))
	for i, seg := range r.Segments {
		out[i] = seg.Curve.ControlPoints()
	}
	return out
}

// Curves returns an iterator over the fitted curves.
func (r *FitResult) Curves() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		for _, seg := range r.Segments {
			if !yield(seg.Curve) {
				return
			}
		}
	}
}

// Sample returns an iterator over perSegment points of every segment, as
// produced by [QuadBez.Sample]. Both endpoints of each segment are
// included, so the shared point of adjacent segments appears twice.
//
// Points are computed on demand; the iterator can be used any number of
// times.
func (r *FitResult) Sample(perSegment int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, seg := range r.Segments {
			for pt := range seg.Curve.Sample(perSegment) {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// SamplePoints is like [FitResult.Sample] but collects the points into a
// slice.
func (r *FitResult) SamplePoints(perSegment int) []Point {
	if perSegment <= 0 {
		return nil
	}
	out := make([]Point, 0, perSegment*len(r.Segments))
	return slices.AppendSeq(out, r.Sample(perSegment))
}

// MaxSegmentError returns the largest error of any segment.
func (r *FitResult) MaxSegmentError() float64 {
	var worst float64
	for _, seg := range r.Segments {
		worst = max(worst, seg.Error)
	}
	return worst
}

// WithinMaxError reports whether every segment's error is at most the
// configured maximum error.
func (r *FitResult) WithinMaxError() bool {
	return r.MaxSegmentError() <= r.Config.maxError
}

// Arclen returns the total arc length of the fitted curves.
func (r *FitResult) Arclen(accuracy float64) float64 {
	var total float64
	per := accuracy / float64(max(len(r.Segments), 1))
	for _, seg := range r.Segments {
		total += seg.Curve.Arclen(per)
	}
	return total
}

// BoundingBox returns the bounds of the fitted curves, or the zero Rect if
// there are none.
func (r *FitResult) BoundingBox() Rect {
	if len(r.Segments) == 0 {
		return Rect{}
	}
	bbox := r.Segments[0].Curve.BoundingBox()
	for _, seg := range r.Segments[1:] {
		bbox = bbox.Union(seg.Curve.BoundingBox())
	}
	return bbox
}
