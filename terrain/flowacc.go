package terrain

import (
	"github.com/maseology/erosion/grid"
	"github.com/maseology/erosion/tem"
)

// FlowAccumulation derives the absolute upslope contributing cell count of
// every DEM cell (itself included) under single-flow-direction D8 drainage.
func FlowAccumulation(dem *grid.Grid) (*grid.Grid, error) {
	t, err := tem.New(dem)
	if err != nil {
		return nil, err
	}
	cnt := t.ContributingCellMap()
	vs := make([]float64, len(cnt))
	for i, n := range cnt {
		if n < 0 {
			vs[i] = dem.GD.NoData
			continue
		}
		vs[i] = float64(n)
	}
	return grid.New(dem.GD, vs)
}
