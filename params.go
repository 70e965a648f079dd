// Package erosion computes soil erosion and sediment transport rasters from a
// digital elevation model using either the detachment-limited RUSLE3D model
// or the transport-limited USPED model.
package erosion

import "github.com/maseology/erosion/grid"

// Model names
const (
	Rusle = "rusle" // RUSLE3D detachment-limited model
	Usped = "usped" // USPED transport-limited model
)

// Factor and exponent defaults
const (
	DefaultRFactor = 310.0 // rainfall erosivity (MJ mm ha⁻¹ hr⁻¹ yr⁻¹)
	DefaultKFactor = 0.25  // soil erodibility
	DefaultCFactor = 0.1   // land cover
	DefaultM       = 1.5   // water flow exponent
	DefaultN       = 1.2   // slope exponent
)

// unit conversions
const (
	kgPerTon = 1000.     // kg per ton
	m2PerHa  = 10000.    // m² per hectare
	minPerYr = 525600.   // minutes per year
	secPerYr = 31557600. // seconds per year
)

// RateUnits selects the erosion output rate basis.
type RateUnits int

const (
	// Annual reports kg m⁻² at the annualized R-factor basis.
	Annual RateUnits = iota
	// PerSecond further divides the annual rate by the seconds in a year.
	PerSecond
)

// Parameters configures a model run. Factor grids take precedence over their
// scalar fallbacks; a positive RainIntensity (with RainDuration) replaces the
// R factor with the event-based erosivity.
type Parameters struct {
	DEM   *grid.Grid
	Model string

	RFactor, KFactor, CFactor                *grid.Grid
	RFactorValue, KFactorValue, CFactorValue float64
	RainIntensity                            float64 // mm/hr
	RainDuration                             float64 // min

	M, N float64
	Rate RateUnits

	Progress bool // render a per-step progress bar
}

// DefaultParameters returns a RUSLE3D parameter set over dem with the
// conventional factor constants.
func DefaultParameters(dem *grid.Grid) *Parameters {
	return &Parameters{
		DEM:          dem,
		Model:        Rusle,
		RFactorValue: DefaultRFactor,
		KFactorValue: DefaultKFactor,
		CFactorValue: DefaultCFactor,
		M:            DefaultM,
		N:            DefaultN,
	}
}

// check validates the configuration before any layer is computed.
func (p *Parameters) check() error {
	if p.DEM == nil {
		return ErrNoElevation
	}
	if p.DEM.GD.Cw <= 0. {
		return grid.ErrResolution
	}
	if p.Model != Rusle && p.Model != Usped {
		return ErrUnknownModel
	}
	if p.M <= 0. || p.N <= 0. {
		return ErrExponent
	}
	if p.RainIntensity > 0. && p.RainDuration <= 0. {
		return ErrRainDuration
	}
	for _, f := range []*grid.Grid{p.RFactor, p.KFactor, p.CFactor} {
		if f != nil && !f.GD.Same(p.DEM.GD) {
			return ErrGridMismatch
		}
	}
	return nil
}
