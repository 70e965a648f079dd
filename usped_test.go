package erosion_test

import (
	"math"
	"testing"

	"github.com/maseology/erosion"
	"github.com/maseology/erosion/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUspedFlatTerrain(t *testing.T) {
	dem := grid.Constant(grid.NewDefinition(6, 6, 1.), 50.)
	p := erosion.DefaultParameters(dem)
	p.Model = erosion.Usped
	res, err := erosion.Run(p)
	require.NoError(t, err)
	for i := 0; i < dem.GD.Ncells(); i++ {
		assert.Zero(t, res.LSFactor.ValueI(i))
		assert.Zero(t, res.Erosion.ValueI(i))
	}
}

// On an east-draining plane with erodibility increasing eastward, transport
// capacity grows along the flow path; the divergence must match the central
// difference of the flux profile and be positive (net detachment).
func TestUspedDivergenceMatchesFluxGradient(t *testing.T) {
	const grade, cw = .1, 2.
	dem := eastDescent(t, 7, 8, cw, grade)
	gd := dem.GD

	kv := make([]float64, gd.Ncells())
	kval := func(c int) float64 { return .1 + .02*float64(c) }
	for r := 0; r < gd.Nr; r++ {
		for c := 0; c < gd.Nc; c++ {
			kv[gd.CellIndex(r, c)] = kval(c)
		}
	}
	kf, err := grid.New(gd, kv)
	require.NoError(t, err)

	p := erosion.DefaultParameters(dem)
	p.Model = erosion.Usped
	p.KFactor = kf
	res, err := erosion.Run(p)
	require.NoError(t, err)

	slopeDeg := math.Atan(grade) * 180. / math.Pi
	sinS := math.Sin(slopeDeg * math.Pi / 180.)
	flux := func(c int) float64 {
		depth := float64(c+1) * cw
		ls := math.Pow(depth, p.M) * math.Pow(sinS, p.N)
		return p.RFactorValue * kval(c) * p.CFactorValue * ls * 1000. / 10000.
	}
	for _, c := range []int{2, 3, 5} {
		i := gd.CellIndex(3, c)
		want := (flux(c+1) - flux(c-1)) / (2. * cw)
		assert.InDelta(t, want, res.Erosion.ValueI(i), 1e-9, "divergence at col %d", c)
		assert.Positive(t, res.Erosion.ValueI(i))
	}
}

// A closed bowl sheds no sediment across its rim, so the flux divergence
// must integrate to (approximately) zero net mass change.
func TestUspedMassBalanceClosedBasin(t *testing.T) {
	const n, cw = 33, 1.
	gd := grid.NewDefinition(n, n, cw)
	vs := make([]float64, gd.Ncells())
	cx, cy, sig := float64(n-1)/2., float64(n-1)/2., float64(n)/6.
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			dx, dy := float64(c)-cx, float64(r)-cy
			vs[gd.CellIndex(r, c)] = -40. * math.Exp(-(dx*dx+dy*dy)/(2.*sig*sig))
		}
	}
	dem, err := grid.New(gd, vs)
	require.NoError(t, err)

	p := erosion.DefaultParameters(dem)
	p.Model = erosion.Usped
	res, err := erosion.Run(p)
	require.NoError(t, err)

	sum, asum := 0., 0.
	for i := 0; i < gd.Ncells(); i++ {
		if res.Erosion.IsNoData(i) {
			continue
		}
		v := res.Erosion.ValueI(i)
		sum += v
		asum += math.Abs(v)
	}
	require.Positive(t, asum, "expected erosion-deposition activity in the bowl")
	assert.Less(t, math.Abs(sum), .15*asum, "net mass change should be near zero")
}
