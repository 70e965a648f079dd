package erosion

import "github.com/maseology/erosion/grid"

const nRusleSteps = 7

// rusle evaluates the RUSLE3D (Revised Universal Soil Loss Equation for
// Complex Terrain) model for detachment limited soil erosion regimes.
//
//	E = R * K * LS * C
//
// where E is the average annual soil loss, R the erosivity factor, K the
// soil erodibility factor, LS the dimensionless topographic factor and C the
// dimensionless land cover factor.
func (p *Parameters) rusle(ws *Workspace, eng Engine, rf, kf, cf *grid.Grid, tick func(string)) (*Result, error) {
	dem := p.DEM
	defer ws.Remove("slope", "grow_slope", "flowacc", "sedflow")

	tick("slope")
	slope, _, err := eng.SlopeAspect(dem)
	if err != nil {
		return nil, stepErr("slope", err)
	}
	ws.Put("slope", slope)

	// grow border to fix edge effects of moving window computations
	tick("grow_slope")
	if slope, err = eng.GrowDistance(slope); err != nil {
		return nil, stepErr("grow_slope", err)
	}
	ws.Put("grow_slope", slope)

	tick("flow_accumulation")
	flowacc, err := eng.FlowAccumulation(dem)
	if err != nil {
		return nil, stepErr("flow_accumulation", err)
	}
	ws.Put("flowacc", flowacc)
	depth := flowacc.Scale(dem.GD.Cw) // depth-equivalent per unit width

	// dimensionless topographic factor
	// ls = (m+1) * (depth/22.1)^m * (sin(slope)/5.14)^n, slope in degrees
	tick("ls_factor")
	ls, err := depth.Scale(1./22.1).PowScalar(p.M).Scale(p.M + 1.).
		Mul(slope.Sin(grid.Degrees).Scale(1. / 5.14).PowScalar(p.N))
	if err != nil {
		return nil, stepErr("ls_factor", err)
	}

	tick("sediment_flow")
	sedflow, err := rf.Mul(kf)
	if err == nil {
		sedflow, err = sedflow.Mul(ls)
	}
	if err == nil {
		sedflow, err = sedflow.Mul(cf)
	}
	if err != nil {
		return nil, stepErr("sediment_flow", err)
	}
	ws.Put("sedflow", sedflow)

	// convert sediment flow from tons/ha to kg/m²
	tick("erosion")
	erosion := sedflow.Scale(kgPerTon / m2PerHa)
	if p.Rate == PerSecond {
		erosion = erosion.Scale(1. / secPerYr)
	}

	tick("colors")
	return &Result{
		Erosion:          erosion,
		FlowAccumulation: depth,
		LSFactor:         ls,
		Ramp:             ErosionColors,
	}, nil
}
