package grid

import "math"

// AngleUnit distinguishes the angular unit of trigonometric operands. The
// slope/aspect operators emit degrees; mixing units silently corrupts the
// erosion formulas, so callers must always state the unit.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

const d2r = math.Pi / 180.

// apply2 runs an elementwise binary function, propagating the no-data
// sentinel: a void cell in either operand, or a non-finite result, yields a
// void cell in the output.
func apply2(a, b *Grid, f func(x, y float64) float64) (*Grid, error) {
	if !a.GD.Same(b.GD) {
		return nil, ErrShapeMismatch
	}
	o := a.blank()
	for i, x := range a.vs {
		if a.IsNoData(i) || b.IsNoData(i) {
			o.vs[i] = a.GD.NoData
			continue
		}
		v := f(x, b.vs[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = a.GD.NoData
		}
		o.vs[i] = v
	}
	return o, nil
}

// apply1 runs an elementwise unary function under the same no-data rules.
func apply1(a *Grid, f func(x float64) float64) *Grid {
	o := a.blank()
	for i, x := range a.vs {
		if a.IsNoData(i) {
			o.vs[i] = a.GD.NoData
			continue
		}
		v := f(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = a.GD.NoData
		}
		o.vs[i] = v
	}
	return o
}

// Add returns g+h.
func (g *Grid) Add(h *Grid) (*Grid, error) {
	return apply2(g, h, func(x, y float64) float64 { return x + y })
}

// Sub returns g-h.
func (g *Grid) Sub(h *Grid) (*Grid, error) {
	return apply2(g, h, func(x, y float64) float64 { return x - y })
}

// Mul returns g*h.
func (g *Grid) Mul(h *Grid) (*Grid, error) {
	return apply2(g, h, func(x, y float64) float64 { return x * y })
}

// Div returns g/h; division by zero voids the cell.
func (g *Grid) Div(h *Grid) (*Grid, error) {
	return apply2(g, h, func(x, y float64) float64 {
		if y == 0. {
			return math.NaN()
		}
		return x / y
	})
}

// Pow returns g^h; undefined bases (e.g. negative base, fractional exponent) void the cell.
func (g *Grid) Pow(h *Grid) (*Grid, error) {
	return apply2(g, h, math.Pow)
}

// Scale returns g*s.
func (g *Grid) Scale(s float64) *Grid {
	return apply1(g, func(x float64) float64 { return x * s })
}

// AddScalar returns g+s.
func (g *Grid) AddScalar(s float64) *Grid {
	return apply1(g, func(x float64) float64 { return x + s })
}

// PowScalar returns g^p.
func (g *Grid) PowScalar(p float64) *Grid {
	return apply1(g, func(x float64) float64 { return math.Pow(x, p) })
}

// Exp returns e^g.
func (g *Grid) Exp() *Grid {
	return apply1(g, math.Exp)
}

// Sin returns sin(g) with cell values interpreted in the given angular unit.
func (g *Grid) Sin(u AngleUnit) *Grid {
	if u == Degrees {
		return apply1(g, func(x float64) float64 { return math.Sin(x * d2r) })
	}
	return apply1(g, math.Sin)
}

// Cos returns cos(g) with cell values interpreted in the given angular unit.
func (g *Grid) Cos(u AngleUnit) *Grid {
	if u == Degrees {
		return apply1(g, func(x float64) float64 { return math.Cos(x * d2r) })
	}
	return apply1(g, math.Cos)
}
