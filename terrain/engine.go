package terrain

import "github.com/maseology/erosion/grid"

// Engine is the native raster-processing engine backing the erosion models.
type Engine struct{}

func (Engine) SlopeAspect(dem *grid.Grid) (*grid.Grid, *grid.Grid, error) {
	return SlopeAspect(dem)
}

func (Engine) Partials(g *grid.Grid) (*grid.Grid, *grid.Grid, error) {
	return Partials(g)
}

func (Engine) FlowAccumulation(dem *grid.Grid) (*grid.Grid, error) {
	return FlowAccumulation(dem)
}

func (Engine) GrowDistance(g *grid.Grid) (*grid.Grid, error) {
	return g.Grow(), nil
}
