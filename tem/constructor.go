package tem

import (
	"math"
	"sort"

	"github.com/maseology/erosion/grid"
)

// New builds the D8 drainage topology of a DEM: each cell drains to the
// 8-neighbour of steepest descent (drop over distance, diagonals scaled by
// sqrt 2). Cells with no lower neighbour (pits, flats, grid edge minima) and
// void cells drain nowhere.
func New(dem *grid.Grid) (*TEM, error) {
	gd := dem.GD
	if gd.Nr <= 0 || gd.Nc <= 0 {
		return nil, grid.ErrEmptyGrid
	}

	t := &TEM{
		Zs: dem.Values(),
		Ds: make([]int, gd.Ncells()),
		ok: make([]bool, gd.Ncells()),
	}
	for i := range t.ok {
		t.ok[i] = !dem.IsNoData(i)
	}

	diag := gd.Cw * math.Sqrt2
	for r := 0; r < gd.Nr; r++ {
		for c := 0; c < gd.Nc; c++ {
			i := gd.CellIndex(r, c)
			t.Ds[i] = -1
			if !t.ok[i] {
				continue
			}
			gx, ds := 0., -1
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					rr, cc := r+dr, c+dc
					if rr < 0 || rr >= gd.Nr || cc < 0 || cc >= gd.Nc {
						continue
					}
					j := gd.CellIndex(rr, cc)
					if !t.ok[j] {
						continue
					}
					dist := gd.Cw
					if dr != 0 && dc != 0 {
						dist = diag
					}
					if gradient := (t.Zs[i] - t.Zs[j]) / dist; gradient > gx {
						gx, ds = gradient, j
					}
				}
			}
			t.Ds[i] = ds
		}
	}
	t.buildUpslopes()
	return t, nil
}

func sortByDescending(ord []int, zs []float64) {
	sort.Slice(ord, func(a, b int) bool { return zs[ord[a]] > zs[ord[b]] })
}
