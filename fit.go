package quadfit

import (
	"runtime"
	"slices"
	"strconv"

	"github.com/sgostarter/i/l"
)

// Fit approximates points with a sequence of quadratic Béziers, using
// [DefaultFitOptions]. See [FitWithOptions].
func Fit(points []Point, cfg FitConfig) (*FitResult, error) {
	return FitWithOptions(points, cfg, DefaultFitOptions)
}

// FitWithOptions approximates points with a sequence of quadratic Béziers.
//
// The points are partitioned into contiguous ranges whose lengths, counted
// in points, lie within the limits of cfg, and each range is approximated by
// the Bézier computed by [FitSegment]. Consecutive ranges share their
// boundary point, so the end of one curve is exactly the start of the next.
// Among all such partitions the one that is optimal under opts.Policy is
// chosen; this is a global optimum, not the result of greedy subdivision.
//
// If the length limits admit no partition at all, for example because there
// are fewer points than the minimum segment length, the whole sequence is
// fitted with a single segment and [FitResult.Fallback] is set. No input
// point is ever dropped.
//
// It returns a *[ConfigError] if cfg is not valid and an *[InputError] if
// there are fewer than two points or a coordinate is not finite. The work
// is CPU-bound; segment costs are computed in parallel.
func FitWithOptions(points []Point, cfg FitConfig, opts FitOptions) (*FitResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	logger = logger.WithFields(l.StringField(l.ClsKey, "quadfit"))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// The caller keeps ownership of points; work on a private copy.
	pts := slices.Clone(points)
	n := len(pts)

	tbl := newCostTable(n, cfg)
	tbl.populate(pts, opts, workers)
	logger.WithFields(
		l.IntField("points", n),
		l.IntField("ranges", tbl.size()),
		l.IntField("workers", workers),
	).Debug("segment costs computed")

	res := &FitResult{Config: cfg}
	spans, ok := optimalPartition(tbl, cfg, opts.Policy)
	if !ok && opts.Policy == MaxErrorStrict {
		logger.WithFields(l.StringField("maxError", strconv.FormatFloat(cfg.maxError, 'g', -1, 64))).
			Warn("no partition satisfies the error limit, minimizing total error instead")
		spans, ok = optimalPartition(tbl, cfg, MaxErrorAdvisory)
		res.Relaxed = ok
	}

	if !ok {
		logger.WithFields(
			l.IntField("points", n),
			l.IntField("minSegmentLen", cfg.minSegmentLen),
			l.IntField("maxSegmentLen", cfg.maxSegmentLen),
		).Warn("segment length limits admit no partition, fitting a single segment")
		q, e := newSegmentFitter(opts).fit(pts)
		res.Fallback = true
		res.Segments = []Segment{{Curve: q, Start: 0, End: n - 1, Error: e}}
	} else {
		res.Segments = make([]Segment, len(spans))
		for idx, sp := range spans {
			c, _ := tbl.lookup(sp.start, sp.end)
			res.Segments[idx] = Segment{Curve: c.curve, Start: sp.start, End: sp.end, Error: c.err}
		}
	}

	res.NumSegments = len(res.Segments)
	for _, seg := range res.Segments {
		res.TotalError += seg.Error
	}
	return res, nil
}
