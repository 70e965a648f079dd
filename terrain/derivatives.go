// Package terrain derives slope, aspect, directional partial derivatives and
// flow accumulation from elevation rasters. It is the native implementation
// of the geoprocessing capabilities the erosion pipelines depend on.
package terrain

import (
	"math"

	"github.com/maseology/erosion/grid"
)

const r2d = 180. / math.Pi

// horn evaluates the Horn 3x3 finite-difference gradient at cell (r,c),
// returning dz/dx (positive east) and dz/dy (positive north). ok is false
// where the window crosses the border or touches a void cell; those cells
// are voided and later recovered by border growing.
func horn(g *grid.Grid, r, c int) (dzdx, dzdy float64, ok bool) {
	gd := g.GD
	if r < 1 || r >= gd.Nr-1 || c < 1 || c >= gd.Nc-1 {
		return 0., 0., false
	}
	var w [3][3]float64
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if g.IsNoData(gd.CellIndex(r+dr, c+dc)) {
				return 0., 0., false
			}
			w[dr+1][dc+1] = g.Value(r+dr, c+dc)
		}
	}
	dzdx = ((w[0][2] + 2.*w[1][2] + w[2][2]) - (w[0][0] + 2.*w[1][0] + w[2][0])) / (8. * gd.Cw)
	dzdy = ((w[0][0] + 2.*w[0][1] + w[0][2]) - (w[2][0] + 2.*w[2][1] + w[2][2])) / (8. * gd.Cw)
	return dzdx, dzdy, true
}

// SlopeAspect derives slope and aspect in degrees. Aspect is measured
// counter-clockwise from east and points in the downslope direction; flat
// cells are given aspect 0. Border and void-adjacent cells are void in both
// outputs.
func SlopeAspect(dem *grid.Grid) (slope, aspect *grid.Grid, err error) {
	gd := dem.GD
	sv, av := make([]float64, gd.Ncells()), make([]float64, gd.Ncells())
	for r := 0; r < gd.Nr; r++ {
		for c := 0; c < gd.Nc; c++ {
			i := gd.CellIndex(r, c)
			dzdx, dzdy, ok := horn(dem, r, c)
			if !ok {
				sv[i], av[i] = gd.NoData, gd.NoData
				continue
			}
			sv[i] = math.Atan(math.Hypot(dzdx, dzdy)) * r2d
			if dzdx == 0. && dzdy == 0. {
				av[i] = 0.
				continue
			}
			a := math.Atan2(-dzdy, -dzdx) * r2d
			if a < 0. {
				a += 360.
			}
			av[i] = a
		}
	}
	if slope, err = grid.New(gd, sv); err != nil {
		return nil, nil, err
	}
	if aspect, err = grid.New(gd, av); err != nil {
		return nil, nil, err
	}
	return slope, aspect, nil
}

// Partials derives the directional partial derivatives of a surface: dx
// positive eastward, dy positive northward. Applied to the sediment flux
// components, their sum is the signed flux divergence (positive where a cell
// sheds more than it receives).
func Partials(g *grid.Grid) (dx, dy *grid.Grid, err error) {
	gd := g.GD
	xv, yv := make([]float64, gd.Ncells()), make([]float64, gd.Ncells())
	for r := 0; r < gd.Nr; r++ {
		for c := 0; c < gd.Nc; c++ {
			i := gd.CellIndex(r, c)
			dzdx, dzdy, ok := horn(g, r, c)
			if !ok {
				xv[i], yv[i] = gd.NoData, gd.NoData
				continue
			}
			xv[i], yv[i] = dzdx, dzdy
		}
	}
	if dx, err = grid.New(gd, xv); err != nil {
		return nil, nil, err
	}
	if dy, err = grid.New(gd, yv); err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}
