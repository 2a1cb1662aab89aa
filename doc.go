// Package quadfit approximates ordered sequences of 2D points, such as the
// pixels of a skeletonized line, a GPS trace, or animation keyframes, with a
// minimal chain of quadratic Bézier curves.
//
// # Segmentation
//
// [Fit] partitions the points into contiguous ranges and approximates every
// range with one quadratic Bézier. The partition is found by dynamic
// programming over all ranges whose length lies within the limits of a
// [FitConfig], which makes it globally optimal rather than the result of
// greedy or recursive subdivision. Consecutive ranges share their boundary
// point, so the curves form a connected path.
//
// The objective is selected by [FitOptions.Policy]. By default the sum of
// the segment errors is minimized and [FitConfig.MaxError] is advisory;
// with [MaxErrorStrict] it becomes a hard limit and the number of segments
// is minimized instead.
//
// Computing the cost of every admissible range dominates the run time. It
// is done once per call, in parallel, before the sequential optimization.
// For n points and a window of w admissible lengths, there are O(n·w)
// ranges and the optimization takes O(n·w) steps.
//
// # Single segments
//
// [FitSegment] fits one curve to a range of points. The curve's endpoints
// are the first and last point; its control point is the least-squares
// solution for the points at their chord-length parameters, which has a
// closed form. The error of a segment is the largest distance between a
// point and the curve evaluated at the point's parameter; other metrics are
// available through [FitOptions.Metric].
//
// # Output
//
// A [FitResult] holds the segments and their errors. It can be sampled
// ([FitResult.Sample]), converted to SVG path data ([FitResult.SVG]), and
// encoded as JSON.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - "On the approximation of curves by line segments using dynamic
//     programming" by Richard Bellman
//   - "Adaptive subdivision and the length and energy of Bézier curves" by
//     Jens Gravesen
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package quadfit
