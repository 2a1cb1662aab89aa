package quadfit

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func mustConfig(t testing.TB, minLen, maxLen int, maxError float64) FitConfig {
	t.Helper()
	cfg, err := NewFitConfig(minLen, maxLen, maxError)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

// wave returns n points of a sine wave with a linear trend, the input used
// by the benchmarks.
func wave(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		x := float64(i)
		pts[i] = Pt(x, math.Sin(x*0.1)*50+x*0.5)
	}
	return pts
}

// jitter returns n points along a random walk with occasional repeats.
func jitter(rng *rand.Rand, n int) []Point {
	pts := make([]Point, n)
	var p Point
	for i := range pts {
		if i > 0 && rng.IntN(8) == 0 {
			pts[i] = pts[i-1]
			continue
		}
		p = p.Translate(Vec(rng.Float64()*4-1, rng.Float64()*4-2))
		pts[i] = p
	}
	return pts
}
