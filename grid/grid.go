// Package grid provides dense 2D rasters and the elementwise algebra used by
// the erosion models. Grids are never mutated after creation; every operation
// returns a new grid, so each derivation step remains independently testable.
package grid

import "math"

// Definition describes the georeference of a uniform raster grid.
type Definition struct {
	Oe, On float64 // upper-left origin easting/northing
	Rot    float64 // grid rotation (only 0 supported)
	Nr, Nc int     // rows, columns
	Cw     float64 // cell width
	NoData float64 // sentinel for void cells
}

// NewDefinition builds an unrotated definition with the conventional -9999 sentinel.
func NewDefinition(nr, nc int, cw float64) *Definition {
	return &Definition{Nr: nr, Nc: nc, Cw: cw, NoData: -9999.}
}

// Ncells total cell count
func (gd *Definition) Ncells() int { return gd.Nr * gd.Nc }

// CellIndex converts a row-column pair to a cell id
func (gd *Definition) CellIndex(r, c int) int { return r*gd.Nc + c }

// RowCol converts a cell id to its row-column pair
func (gd *Definition) RowCol(cid int) (int, int) { return cid / gd.Nc, cid % gd.Nc }

// Same reports whether two definitions have identical extent, resolution and alignment.
func (gd *Definition) Same(o *Definition) bool {
	return gd.Nr == o.Nr && gd.Nc == o.Nc && gd.Cw == o.Cw &&
		gd.Oe == o.Oe && gd.On == o.On && gd.Rot == o.Rot
}

// Grid is a dense row-major (north to south) raster of float64 cell values.
type Grid struct {
	GD *Definition
	vs []float64
}

// New wraps a value slice in a grid, taking ownership of vs.
func New(gd *Definition, vs []float64) (*Grid, error) {
	if gd == nil || gd.Nr <= 0 || gd.Nc <= 0 {
		return nil, ErrEmptyGrid
	}
	if gd.Cw <= 0. {
		return nil, ErrResolution
	}
	if len(vs) != gd.Ncells() {
		return nil, ErrShapeMismatch
	}
	return &Grid{GD: gd, vs: vs}, nil
}

// Constant builds a grid with every cell set to v.
func Constant(gd *Definition, v float64) *Grid {
	vs := make([]float64, gd.Ncells())
	for i := range vs {
		vs[i] = v
	}
	return &Grid{GD: gd, vs: vs}
}

// Value returns the cell value at row r, column c.
func (g *Grid) Value(r, c int) float64 { return g.vs[r*g.GD.Nc+c] }

// ValueI returns the cell value at cell id i.
func (g *Grid) ValueI(i int) float64 { return g.vs[i] }

// IsNoData reports whether cell id i holds the void sentinel.
func (g *Grid) IsNoData(i int) bool {
	return g.vs[i] == g.GD.NoData || math.IsNaN(g.vs[i])
}

// Values returns a copy of the cell values.
func (g *Grid) Values() []float64 {
	o := make([]float64, len(g.vs))
	copy(o, g.vs)
	return o
}

func (g *Grid) blank() *Grid {
	return &Grid{GD: g.GD, vs: make([]float64, len(g.vs))}
}
