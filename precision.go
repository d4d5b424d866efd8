package geom

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used by geometric predicates unless it has
// been replaced with [SetEpsilon].
const DefaultEpsilon = 1e-12

var epsilon = DefaultEpsilon

// Epsilon returns the current process-wide tolerance.
func Epsilon() float64 {
	return epsilon
}

// SetEpsilon replaces the process-wide tolerance. It returns an error if v is
// negative.
//
// The tolerance is plain shared state: concurrent writers race, and a caller
// that needs isolated tolerances per goroutine should pass explicit
// tolerances to the *Tol predicate variants instead.
func SetEpsilon(v float64) error {
	if v < 0 {
		return fmt.Errorf("geom: negative epsilon %g", v)
	}
	epsilon = v
	return nil
}

// WithEpsilon runs fn with the tolerance set to v, restoring the previous
// tolerance afterwards on all exit paths, including a panicking fn. It
// returns fn's error, or an error if v is negative.
func WithEpsilon(v float64, fn func() error) error {
	if v < 0 {
		return fmt.Errorf("geom: negative epsilon %g", v)
	}
	prev := epsilon
	epsilon = v
	defer func() { epsilon = prev }()
	return fn()
}

// ApproxEq reports whether a and b differ by at most [Epsilon].
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// ApproxZero reports whether a is within [Epsilon] of zero.
func ApproxZero(a float64) bool {
	return math.Abs(a) <= epsilon
}
