package geom

import (
	"errors"
	"testing"
)

func TestEpsilonDefault(t *testing.T) {
	diff(t, DefaultEpsilon, Epsilon())
}

func TestSetEpsilon(t *testing.T) {
	defer SetEpsilon(DefaultEpsilon)

	if err := SetEpsilon(1e-6); err != nil {
		t.Fatalf("SetEpsilon(1e-6) = %v", err)
	}
	diff(t, 1e-6, Epsilon())

	if err := SetEpsilon(-1); err == nil {
		t.Error("SetEpsilon(-1) did not return an error")
	}
	// A rejected value leaves the tolerance untouched.
	diff(t, 1e-6, Epsilon())
}

func TestWithEpsilon(t *testing.T) {
	var inner float64
	err := WithEpsilon(1e-3, func() error {
		inner = Epsilon()
		return nil
	})
	if err != nil {
		t.Fatalf("WithEpsilon = %v", err)
	}
	diff(t, 1e-3, inner)
	diff(t, DefaultEpsilon, Epsilon())

	want := errors.New("boom")
	if err := WithEpsilon(1e-3, func() error { return want }); err != want {
		t.Errorf("WithEpsilon returned %v, want %v", err, want)
	}
	diff(t, DefaultEpsilon, Epsilon())

	called := false
	if err := WithEpsilon(-1, func() error { called = true; return nil }); err == nil {
		t.Error("WithEpsilon(-1, fn) did not return an error")
	}
	if called {
		t.Error("WithEpsilon(-1, fn) called fn")
	}
}

func TestWithEpsilonPanic(t *testing.T) {
	func() {
		defer func() { recover() }()
		WithEpsilon(1e-3, func() error { panic("boom") })
	}()
	diff(t, DefaultEpsilon, Epsilon())
}

func TestApproxEq(t *testing.T) {
	diff(t, true, ApproxEq(1, 1+1e-13))
	diff(t, false, ApproxEq(1, 1+1e-11))
	diff(t, true, ApproxZero(1e-13))
	diff(t, false, ApproxZero(1e-11))
}
