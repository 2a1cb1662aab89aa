package quadfit

import "math"

// span is an inclusive range of point indices. Consecutive spans of a
// partition share their boundary index.
type span struct {
	start int
	end   int
}

// dpState is the best known partition of a prefix of the points.
type dpState struct {
	cost float64
	segs int
	// start index of the last segment; -1 for the trivial prefix.
	back int
}

func (s dpState) reachable() bool {
	return !math.IsInf(s.cost, 1)
}

// optimalPartition finds a minimum cost partition of [0, n-1] into
// admissible ranges. It returns false if no such partition exists.
//
// state[k] describes the prefix ending at point k. The prefix consisting of
// just point 0 needs no segments and costs nothing; every other prefix ends
// in a segment [i, k] appended to the prefix ending at i. Each prefix only
// depends on shorter ones, so states are settled in increasing order of k.
//
// Under MaxErrorAdvisory the cost is the sum of segment errors and ties
// prefer fewer segments. Under MaxErrorStrict ranges whose error exceeds
// the configured maximum are skipped, and fewer segments are preferred over
// lower cost. In both cases remaining ties go to the leftmost start.
func optimalPartition(tbl *costTable, cfg FitConfig, policy MaxErrorPolicy) ([]span, bool) {
	n := tbl.n
	state := make([]dpState, n)
	state[0] = dpState{cost: 0, segs: 0, back: -1}
	for k := 1; k < n; k++ {
		state[k] = dpState{cost: math.Inf(1), back: -1}
	}

	better := func(a, b dpState) bool {
		if policy == MaxErrorStrict {
			if a.segs != b.segs {
				return a.segs < b.segs
			}
			return a.cost < b.cost
		}
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		return a.segs < b.segs
	}

	for k := 1; k < n; k++ {
		best := state[k]
		lo := max(k-tbl.maxLen+1, 0)
		hi := k - tbl.minLen + 1
		for i := lo; i <= hi; i++ {
			prev := state[i]
			if !prev.reachable() {
				continue
			}
			c, ok := tbl.lookup(i, k)
			if !ok {
				continue
			}
			if policy == MaxErrorStrict && c.err > cfg.maxError {
				continue
			}
			cand := dpState{cost: prev.cost + c.err, segs: prev.segs + 1, back: i}
			if !best.reachable() || better(cand, best) {
				best = cand
			}
		}
		state[k] = best
	}

	last := state[n-1]
	if !last.reachable() || last.segs == 0 {
		return nil, false
	}
	spans := make([]span, last.segs)
	for k, idx := n-1, last.segs-1; k > 0; idx-- {
		start := state[k].back
		spans[idx] = span{start: start, end: k}
		k = start
	}
	return spans, true
}
