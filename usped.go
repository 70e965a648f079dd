package erosion

import "github.com/maseology/erosion/grid"

const nUspedSteps = 12

// usped evaluates the USPED (Unit Stream Power Erosion Deposition) model for
// transport limited erosion regimes.
//
//	T = R * K * C * LST
//
// where T is the sediment flow at transport capacity and LST the topographic
// component of the transport capacity of overland flow. Net erosion-
// deposition is the signed divergence of the directional sediment flux with
// dx positive east, dy positive north and aspect pointing downslope: by
// sediment continuity, positive cells shed more sediment than they receive
// (net erosion) and negative cells accumulate it (net deposition).
func (p *Parameters) usped(ws *Workspace, eng Engine, rf, kf, cf *grid.Grid, tick func(string)) (*Result, error) {
	dem := p.DEM
	defer ws.Remove("slope", "aspect", "grow_slope", "grow_aspect", "flowacc",
		"sedflow", "sediment_flux", "qsx", "qsy", "qsxdx", "qsydy", "grow_qsxdx", "grow_qsydy")

	tick("slope_aspect")
	slope, aspect, err := eng.SlopeAspect(dem)
	if err != nil {
		return nil, stepErr("slope_aspect", err)
	}
	ws.Put("slope", slope)
	ws.Put("aspect", aspect)

	// grow border to fix edge effects of moving window computations
	tick("grow_slope")
	if slope, err = eng.GrowDistance(slope); err != nil {
		return nil, stepErr("grow_slope", err)
	}
	ws.Put("grow_slope", slope)
	tick("grow_aspect")
	if aspect, err = eng.GrowDistance(aspect); err != nil {
		return nil, stepErr("grow_aspect", err)
	}
	ws.Put("grow_aspect", aspect)

	tick("flow_accumulation")
	flowacc, err := eng.FlowAccumulation(dem)
	if err != nil {
		return nil, stepErr("flow_accumulation", err)
	}
	ws.Put("flowacc", flowacc)
	depth := flowacc.Scale(dem.GD.Cw)

	// topographic component of transport capacity
	// ls = depth^m * sin(slope)^n, slope in degrees
	tick("ls_factor")
	ls, err := depth.PowScalar(p.M).Mul(slope.Sin(grid.Degrees).PowScalar(p.N))
	if err != nil {
		return nil, stepErr("ls_factor", err)
	}

	tick("sediment_flow")
	sedflow, err := rf.Mul(kf)
	if err == nil {
		sedflow, err = sedflow.Mul(cf)
	}
	if err == nil {
		sedflow, err = sedflow.Mul(ls)
	}
	if err != nil {
		return nil, stepErr("sediment_flow", err)
	}
	ws.Put("sedflow", sedflow)

	// convert sediment flow from tons/ha to kg/m²
	tick("sediment_flux")
	flux := sedflow.Scale(kgPerTon / m2PerHa)
	if p.Rate == PerSecond {
		flux = flux.Scale(1. / secPerYr)
	}
	ws.Put("sediment_flux", flux)

	// directional sediment flux components; aspect in degrees CCW from east
	tick("sediment_flux_xy")
	qsx, err := flux.Mul(aspect.Cos(grid.Degrees))
	if err != nil {
		return nil, stepErr("sediment_flux_xy", err)
	}
	qsy, err := flux.Mul(aspect.Sin(grid.Degrees))
	if err != nil {
		return nil, stepErr("sediment_flux_xy", err)
	}
	ws.Put("qsx", qsx)
	ws.Put("qsy", qsy)

	// change in sediment flux as partial derivatives of each flux component
	tick("partial_derivatives")
	qsxdx, _, err := eng.Partials(qsx)
	if err != nil {
		return nil, stepErr("partial_derivatives", err)
	}
	_, qsydy, err := eng.Partials(qsy)
	if err != nil {
		return nil, stepErr("partial_derivatives", err)
	}
	ws.Put("qsxdx", qsxdx)
	ws.Put("qsydy", qsydy)

	tick("grow_partials")
	if qsxdx, err = eng.GrowDistance(qsxdx); err != nil {
		return nil, stepErr("grow_partials", err)
	}
	if qsydy, err = eng.GrowDistance(qsydy); err != nil {
		return nil, stepErr("grow_partials", err)
	}
	ws.Put("grow_qsxdx", qsxdx)
	ws.Put("grow_qsydy", qsydy)

	// net erosion-deposition as the divergence of the sediment flux field
	tick("erosion_deposition")
	erdep, err := qsxdx.Add(qsydy)
	if err != nil {
		return nil, stepErr("erosion_deposition", err)
	}

	tick("colors")
	return &Result{
		Erosion:          erdep,
		FlowAccumulation: depth,
		LSFactor:         ls,
		Ramp:             ErosionColors,
	}, nil
}
