package quadfit

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints is wrapped by the [InputError] returned for sequences
	// with fewer than two points.
	ErrTooFewPoints = errors.New("quadfit: at least 2 points are required")
	// ErrNonFinite is wrapped by the [InputError] returned for points with
	// an infinite or NaN coordinate.
	ErrNonFinite = errors.New("quadfit: coordinate is not finite")
)

// ConfigError reports an invalid [FitConfig] parameter.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("quadfit: invalid %s %v: %s", err.Field, err.Value, err.Reason)
}

// InputError reports a point sequence that cannot be fitted. Index is the
// offending point, or -1 if the problem concerns the sequence as a whole.
type InputError struct {
	Index int
	Err   error
}

func (err *InputError) Error() string {
	if err.Index < 0 {
		return err.Err.Error()
	}
	return fmt.Sprintf("%s (point %d)", err.Err, err.Index)
}

func (err *InputError) Unwrap() error {
	return err.Err
}

func validatePoints(points []Point) error {
	if len(points) < 2 {
		return &InputError{Index: -1, Err: ErrTooFewPoints}
	}
	for i, pt := range points {
		if !pt.IsFinite() {
			return &InputError{Index: i, Err: ErrNonFinite}
		}
	}
	return nil
}
