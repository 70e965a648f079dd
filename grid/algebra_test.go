package grid

import (
	"errors"
	"math"
	"testing"
)

func mustGrid(t *testing.T, gd *Definition, vs []float64) *Grid {
	t.Helper()
	g, err := New(gd, vs)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return g
}

func TestNewRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		gd   *Definition
		n    int
		err  error
	}{
		{"EmptyDefinition", NewDefinition(0, 3, 1.), 0, ErrEmptyGrid},
		{"BadResolution", NewDefinition(2, 2, 0.), 4, ErrResolution},
		{"ShortValues", NewDefinition(2, 2, 1.), 3, ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.gd, make([]float64, tc.n)); !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestBinaryOpsRejectMismatch(t *testing.T) {
	a := Constant(NewDefinition(2, 2, 1.), 1.)
	b := Constant(NewDefinition(2, 3, 1.), 1.)
	c := Constant(NewDefinition(2, 2, 2.), 1.)
	if _, err := a.Add(b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Add mismatched extents: error = %v; want ErrShapeMismatch", err)
	}
	if _, err := a.Mul(c); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Mul mismatched resolutions: error = %v; want ErrShapeMismatch", err)
	}
}

func TestNoDataPropagation(t *testing.T) {
	gd := NewDefinition(1, 3, 1.)
	a := mustGrid(t, gd, []float64{1., gd.NoData, 3.})
	b := Constant(gd, 2.)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got := sum.ValueI(0); got != 3. {
		t.Errorf("sum[0] = %v; want 3", got)
	}
	if !sum.IsNoData(1) {
		t.Errorf("sum[1] = %v; want no-data", sum.ValueI(1))
	}

	// unary ops carry the sentinel too
	if !a.Exp().IsNoData(1) || !a.Scale(2.).IsNoData(1) {
		t.Error("unary op lost the no-data sentinel")
	}
}

func TestDivByZeroVoidsCell(t *testing.T) {
	gd := NewDefinition(1, 2, 1.)
	a := Constant(gd, 1.)
	b := mustGrid(t, gd, []float64{2., 0.})
	q, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	if got := q.ValueI(0); got != .5 {
		t.Errorf("q[0] = %v; want 0.5", got)
	}
	if !q.IsNoData(1) {
		t.Errorf("q[1] = %v; want no-data", q.ValueI(1))
	}
}

func TestPowUndefinedVoidsCell(t *testing.T) {
	gd := NewDefinition(1, 1, 1.)
	g := Constant(gd, -2.).PowScalar(1.5)
	if !g.IsNoData(0) {
		t.Errorf("(-2)^1.5 = %v; want no-data", g.ValueI(0))
	}
}

func TestMulCommutes(t *testing.T) {
	gd := NewDefinition(2, 2, 1.)
	a := mustGrid(t, gd, []float64{1., 2., 3., 4.})
	b := mustGrid(t, gd, []float64{5., 6., 7., 8.})
	ab, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}
	ba, err := b.Mul(a)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}
	for i := 0; i < gd.Ncells(); i++ {
		if ab.ValueI(i) != ba.ValueI(i) {
			t.Fatalf("a*b and b*a differ at %d: %v vs %v", i, ab.ValueI(i), ba.ValueI(i))
		}
	}
}

func TestTrigUnits(t *testing.T) {
	gd := NewDefinition(1, 1, 1.)
	deg := Constant(gd, 30.)
	if got := deg.Sin(Degrees).ValueI(0); math.Abs(got-.5) > 1e-12 {
		t.Errorf("sin(30°) = %v; want 0.5", got)
	}
	rad := Constant(gd, math.Pi/3.)
	if got := rad.Cos(Radians).ValueI(0); math.Abs(got-.5) > 1e-12 {
		t.Errorf("cos(π/3) = %v; want 0.5", got)
	}
}

func TestOpsDoNotMutateOperands(t *testing.T) {
	gd := NewDefinition(1, 2, 1.)
	a := mustGrid(t, gd, []float64{1., 2.})
	if _, err := a.Add(Constant(gd, 1.)); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	a.Scale(10.)
	if a.ValueI(0) != 1. || a.ValueI(1) != 2. {
		t.Errorf("operand mutated: %v", a.Values())
	}
}
