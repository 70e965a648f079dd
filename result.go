package erosion

import (
	"fmt"

	"github.com/maseology/erosion/grid"
	"github.com/maseology/mmio"
)

// Result holds the three grids that outlive a model run.
type Result struct {
	Erosion          *grid.Grid // erosion/deposition rate
	FlowAccumulation *grid.Grid // depth-equivalent flow accumulation
	LSFactor         *grid.Grid // dimensionless topographic factor
	Ramp             string     // color rules for the erosion raster
}

// Summary prints r.univar-style statistics for each output grid.
func (r *Result) Summary() string {
	line := func(lbl string, g *grid.Grid) string {
		s := g.Summarize()
		return fmt.Sprintf("  %-18s n: %s  min: %g  mean: %g  max: %g\n",
			lbl, mmio.Thousands(int64(s.N)), s.Min, s.Mean, s.Max)
	}
	return line("erosion", r.Erosion) +
		line("flow_accumulation", r.FlowAccumulation) +
		line("ls_factor", r.LSFactor)
}
