package quadfit

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
)

// FitConfig holds the segment length limits and error budget of a fit.
// Lengths count points, so a segment spanning indices i through j has
// length j-i+1.
//
// A FitConfig can only be obtained from [NewFitConfig] or
// [DefaultFitConfig], which guarantees that it is valid. The zero value is
// invalid and rejected by [Fit].
type FitConfig struct {
	minSegmentLen int
	maxSegmentLen int
	maxError      float64
}

// NewFitConfig validates and returns a configuration. It returns a
// *[ConfigError] if minSegmentLen < 2, maxSegmentLen < minSegmentLen, or
// maxError is negative or NaN.
func NewFitConfig(minSegmentLen, maxSegmentLen int, maxError float64) (FitConfig, error) {
	cfg := FitConfig{
		minSegmentLen: minSegmentLen,
		maxSegmentLen: maxSegmentLen,
		maxError:      maxError,
	}
	if err := cfg.validate(); err != nil {
		return FitConfig{}, err
	}
	return cfg, nil
}

// DefaultFitConfig returns a configuration suited to skeletonized pixel
// lines: segments of 30 to 200 points and an error budget of 2.
func DefaultFitConfig() FitConfig {
	return FitConfig{
		minSegmentLen: 30,
		maxSegmentLen: 200,
		maxError:      2.0,
	}
}

func (cfg FitConfig) validate() error {
	if cfg.minSegmentLen < 2 {
		return &ConfigError{Field: "min_segment_len", Value: cfg.minSegmentLen, Reason: "must be at least 2"}
	}
	if cfg.maxSegmentLen < cfg.minSegmentLen {
		return &ConfigError{
			Field:  "max_segment_len",
			Value:  cfg.maxSegmentLen,
			Reason: fmt.Sprintf("must be at least min_segment_len (%d)", cfg.minSegmentLen),
		}
	}
	if math.IsNaN(cfg.maxError) || cfg.maxError < 0 {
		return &ConfigError{Field: "max_error", Value: cfg.maxError, Reason: "must be a non-negative number"}
	}
	return nil
}

// MinSegmentLen returns the minimum number of points in a segment.
func (cfg FitConfig) MinSegmentLen() int { return cfg.minSegmentLen }

// MaxSegmentLen returns the maximum number of points in a segment.
func (cfg FitConfig) MaxSegmentLen() int { return cfg.maxSegmentLen }

// MaxError returns the error budget per segment. How it is applied depends
// on [FitOptions.Policy].
func (cfg FitConfig) MaxError() float64 { return cfg.maxError }

// Window returns the number of admissible segment lengths.
func (cfg FitConfig) Window() int {
	return cfg.maxSegmentLen - cfg.minSegmentLen + 1
}

// admissible reports whether a segment of n points satisfies the length
// limits.
func (cfg FitConfig) admissible(n int) bool {
	return n >= cfg.minSegmentLen && n <= cfg.maxSegmentLen
}

func (cfg FitConfig) String() string {
	return fmt.Sprintf("FitConfig{min: %d, max: %d, max error: %g}", cfg.minSegmentLen, cfg.maxSegmentLen, cfg.maxError)
}

// MaxErrorPolicy selects how [FitConfig.MaxError] influences the partition.
type MaxErrorPolicy int

const (
	// MaxErrorAdvisory minimizes the total fitting error. MaxError is not
	// enforced; callers compare it against the result themselves. Ties are
	// broken in favor of fewer segments.
	MaxErrorAdvisory MaxErrorPolicy = iota
	// MaxErrorStrict rejects segments whose error exceeds MaxError and
	// minimizes the number of segments, breaking ties by total error. If no
	// partition satisfies the limit, the advisory partition is used and
	// [FitResult.Relaxed] is set.
	MaxErrorStrict
)

func (p MaxErrorPolicy) String() string {
	switch p {
	case MaxErrorAdvisory:
		return "advisory"
	case MaxErrorStrict:
		return "strict"
	default:
		return fmt.Sprintf("MaxErrorPolicy(%d)", int(p))
	}
}

// Parametrization selects how input points are assigned curve parameters.
type Parametrization int

const (
	// ChordLength assigns parameters proportional to the cumulative
	// distance along the polyline through the points.
	ChordLength Parametrization = iota
	// Uniform spaces parameters evenly, ignoring point spacing.
	Uniform
)

func (p Parametrization) String() string {
	switch p {
	case ChordLength:
		return "chord"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Parametrization(%d)", int(p))
	}
}

// ErrorMetric selects how the deviation of a fitted segment from its points
// is measured.
type ErrorMetric int

const (
	// MaxDeviation is the largest distance between a point and the curve
	// evaluated at the point's parameter.
	MaxDeviation ErrorMetric = iota
	// RMSDeviation is the root mean square of the same distances.
	RMSDeviation
	// MaxNearestDistance is the largest distance between a point and the
	// closest point on the curve, regardless of parametrization. It is
	// never larger than MaxDeviation but considerably more expensive.
	MaxNearestDistance
)

func (m ErrorMetric) String() string {
	switch m {
	case MaxDeviation:
		return "max"
	case RMSDeviation:
		return "rms"
	case MaxNearestDistance:
		return "nearest"
	default:
		return fmt.Sprintf("ErrorMetric(%d)", int(m))
	}
}

// FitOptions specifies optional settings for [FitWithOptions]. The zero
// value selects the defaults.
type FitOptions struct {
	Policy          MaxErrorPolicy
	Parametrization Parametrization
	Metric          ErrorMetric
	// The maximum number of goroutines computing segment costs. A value of
	// 0 or less uses runtime.GOMAXPROCS(0).
	Workers int
	// Logger receives diagnostics. A nil Logger discards them.
	Logger l.Wrapper
}

// DefaultFitOptions are the options used by [Fit].
var DefaultFitOptions = FitOptions{}

// ParsePolicy returns the policy whose String method returns s.
func ParsePolicy(s string) (MaxErrorPolicy, error) {
	for _, p := range []MaxErrorPolicy{MaxErrorAdvisory, MaxErrorStrict} {
		if s == p.String() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("quadfit: unknown max error policy %q", s)
}

// ParseParametrization returns the parametrization whose String method
// returns s.
func ParseParametrization(s string) (Parametrization, error) {
	for _, p := range []Parametrization{ChordLength, Uniform} {
		if s == p.String() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("quadfit: unknown parametrization %q", s)
}

// ParseErrorMetric returns the metric whose String method returns s.
func ParseErrorMetric(s string) (ErrorMetric, error) {
	for _, m := range []ErrorMetric{MaxDeviation, RMSDeviation, MaxNearestDistance} {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("quadfit: unknown error metric %q", s)
}
