package erosion

import "github.com/maseology/erosion/grid"

// Engine abstracts the raster-processing capabilities the pipelines depend
// on: moving-window terrain derivatives, single-flow-direction accumulation
// and nearest-valid no-data filling. The native implementation is
// terrain.Engine.
type Engine interface {
	// SlopeAspect derives slope and aspect (both degrees; aspect CCW from
	// east, downslope) from an elevation grid.
	SlopeAspect(dem *grid.Grid) (slope, aspect *grid.Grid, err error)
	// Partials derives directional partial derivatives of a surface
	// (dx positive east, dy positive north).
	Partials(g *grid.Grid) (dx, dy *grid.Grid, err error)
	// FlowAccumulation derives the absolute upslope contributing cell count.
	FlowAccumulation(dem *grid.Grid) (*grid.Grid, error)
	// GrowDistance fills void cells with their nearest valid value.
	GrowDistance(g *grid.Grid) (*grid.Grid, error)
}
