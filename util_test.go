package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a relative-or-absolute tolerance and looks
// inside the package's unexported value types.
func approx(tol float64) []cmp.Option {
	return []cmp.Option{
		cmpopts.EquateApprox(tol, tol),
		cmp.AllowUnexported(Line{}, Arc{}, Edge{}, LocalAxis{}),
	}
}

func diffApprox(t *testing.T, want, got any) {
	t.Helper()
	diff(t, want, got, approx(1e-9)...)
}
