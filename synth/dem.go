// Package synth generates synthetic elevation rasters so the erosion models
// can be exercised without external terrain data.
package synth

import (
	"math"
	"math/rand"

	"github.com/maseology/erosion/grid"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// DEM builds a (2^k+1)-square elevation grid by midpoint displacement,
// normalized and rescaled to the relief range [zmin,zmax]. Runs with the same
// seed reproduce the same surface.
func DEM(k int, cw, zmin, zmax float64, seed int64) *grid.Grid {
	n := 1<<k + 1
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)

	zs := make([]float64, n*n)
	at := func(r, c int) float64 { return zs[r*n+c] }
	set := func(r, c int, v float64) { zs[r*n+c] = v }

	set(0, 0, rng.Float64())
	set(0, n-1, rng.Float64())
	set(n-1, 0, rng.Float64())
	set(n-1, n-1, rng.Float64())

	spread := .5
	for step := n - 1; step > 1; step /= 2 {
		half := step / 2
		// diamond
		for r := half; r < n; r += step {
			for c := half; c < n; c += step {
				avg := (at(r-half, c-half) + at(r-half, c+half) + at(r+half, c-half) + at(r+half, c+half)) / 4.
				set(r, c, avg+spread*(rng.Float64()-.5))
			}
		}
		// square
		for r := 0; r < n; r += half {
			c0 := half
			if (r/half)%2 == 1 {
				c0 = 0
			}
			for c := c0; c < n; c += step {
				sum, cnt := 0., 0.
				for _, d := range [4][2]int{{r - half, c}, {r + half, c}, {r, c - half}, {r, c + half}} {
					if d[0] >= 0 && d[0] < n && d[1] >= 0 && d[1] < n {
						sum += at(d[0], d[1])
						cnt++
					}
				}
				set(r, c, sum/cnt+spread*(rng.Float64()-.5))
			}
		}
		spread /= 2.
	}

	// normalize and rescale to the requested relief
	zn, zx := math.Inf(1), math.Inf(-1)
	for _, z := range zs {
		zn = math.Min(zn, z)
		zx = math.Max(zx, z)
	}
	for i, z := range zs {
		u := (z - zn) / (zx - zn)
		zs[i] = mmaths.LinearTransform(zmin, zmax, u)
	}

	g, err := grid.New(grid.NewDefinition(n, n, cw), zs)
	if err != nil {
		panic(err) // definition is internally consistent
	}
	return g
}
