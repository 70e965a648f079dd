package erosion

import "github.com/maseology/erosion/grid"

// rFactorGrid resolves the rainfall erosivity input: the event-based
// derivation when a storm is specified, otherwise a user grid, otherwise a
// constant grid.
func (p *Parameters) rFactorGrid(ws *Workspace) (*grid.Grid, error) {
	if p.RainIntensity > 0. {
		return EventRFactor(ws, p.DEM.GD, p.RainIntensity, p.RainDuration)
	}
	if p.RFactor != nil {
		return p.RFactor, nil
	}
	return ws.Put("r_factor", grid.Constant(p.DEM.GD, p.RFactorValue)), nil
}

// EventRFactor computes the event-based rainfall erosivity (R) factor
// (MJ mm ha⁻¹ hr⁻¹ yr⁻¹) from rainfall intensity (mm/hr) and storm duration
// (min). The energy, volume and erosivity layers are scratch and released on
// every exit path.
func EventRFactor(ws *Workspace, gd *grid.Definition, intensity, duration float64) (*grid.Grid, error) {
	if duration <= 0. {
		return nil, ErrRainDuration
	}
	defer ws.Remove("rain_energy", "rain_volume", "erosivity")

	// rainfall energy (MJ ha⁻¹ mm⁻¹)
	energy := ws.Put("rain_energy",
		grid.Constant(gd, intensity).Scale(-0.05).Exp().Scale(-0.72).AddScalar(1.).Scale(0.29))

	// rainfall volume (mm) = intensity (mm/hr) * duration (min) / (60 min/hr)
	volume := ws.Put("rain_volume", grid.Constant(gd, intensity).Scale(duration/60.))

	// event erosivity index (MJ mm ha⁻¹ hr⁻¹)
	ei, err := energy.Mul(volume)
	if err != nil {
		return nil, stepErr("erosivity", err)
	}
	ei = ws.Put("erosivity", ei.Scale(intensity))

	// annualize: R = EI / (duration (min) / (525600 min/yr))
	return ws.Put("r_factor", ei.Scale(minPerYr/duration)), nil
}
