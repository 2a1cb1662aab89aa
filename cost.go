package quadfit

import (
	"golang.org/x/sync/errgroup"
)

type segmentCost struct {
	curve QuadBez
	err   float64
}

// costTable holds the fitted curve and error of every admissible range of a
// point sequence. Entries are keyed by the range's end index and length, so
// the table is dense: slot j*window + (length-minLen).
//
// The table is written once by populate, with every slot owned by exactly
// one goroutine, and is read-only afterwards.
type costTable struct {
	n      int
	minLen int
	maxLen int
	window int
	slots  []segmentCost
}

func newCostTable(n int, cfg FitConfig) *costTable {
	// Limit the window to what the sequence can hold; a max length above n
	// would only produce unused slots.
	maxLen := min(cfg.maxSegmentLen, n)
	window := max(maxLen-cfg.minSegmentLen+1, 0)
	return &costTable{
		n:      n,
		minLen: cfg.minSegmentLen,
		maxLen: maxLen,
		window: window,
		slots:  make([]segmentCost, n*window),
	}
}

// size returns the number of admissible ranges.
func (tbl *costTable) size() int {
	var total int
	for j := range tbl.n {
		if hi := min(tbl.maxLen, j+1); hi >= tbl.minLen {
			total += hi - tbl.minLen + 1
		}
	}
	return total
}

func (tbl *costTable) slot(end, length int) int {
	return end*tbl.window + length - tbl.minLen
}

// lookup returns the cost of the range [start, end]. The second return
// value is false if the range is not admissible.
func (tbl *costTable) lookup(start, end int) (segmentCost, bool) {
	length := end - start + 1
	if start < 0 || end >= tbl.n || length < tbl.minLen || length > tbl.maxLen {
		return segmentCost{}, false
	}
	return tbl.slots[tbl.slot(end, length)], true
}

// populate fits every admissible range of points, using at most workers
// goroutines. Work is split into contiguous blocks of end indices.
func (tbl *costTable) populate(points []Point, opts FitOptions, workers int) {
	if tbl.window == 0 || tbl.n < tbl.minLen {
		return
	}
	first := tbl.minLen - 1
	ends := tbl.n - first
	workers = min(workers, ends)
	block := max(ends/(workers*4), 1)

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := first; lo < tbl.n; lo += block {
		hi := min(lo+block, tbl.n)
		g.Go(func() error {
			f := newSegmentFitter(opts)
			for end := lo; end < hi; end++ {
				for length := tbl.minLen; length <= min(tbl.maxLen, end+1); length++ {
					start := end - length + 1
					q, e := f.fit(points[start : end+1])
					tbl.slots[tbl.slot(end, length)] = segmentCost{curve: q, err: e}
				}
			}
			return nil
		})
	}
	// Workers never fail; Wait is the fan-in barrier.
	_ = g.Wait()
}
