// Package tem holds the topologic elevation model: the single-flow-direction
// (D8) drainage topology of a raster DEM, from which contributing areas are
// accumulated.
package tem

// TEM topologic elevation model
type TEM struct {
	Zs []float64 // cell elevations
	Ds []int     // downslope cell id; -1 at outlets, pits and void cells
	us map[int][]int
	ok []bool // valid (non-void) cells
}

// NumCells number of valid cells that make up the TEM
func (t *TEM) NumCells() int {
	n := 0
	for _, k := range t.ok {
		if k {
			n++
		}
	}
	return n
}

// Downslope returns the receiving cell of cid (-1 at outlets and pits).
func (t *TEM) Downslope(cid int) int { return t.Ds[cid] }

func (t *TEM) buildUpslopes() {
	t.us = make(map[int][]int)
	for i, d := range t.Ds {
		if d >= 0 {
			t.us[d] = append(t.us[d], i)
		}
	}
}

// UpslopeCells returns the ids draining directly into cid.
func (t *TEM) UpslopeCells(cid int) []int { return t.us[cid] }

// UnitContributingArea computes the absolute contributing cell count draining
// through cid, cid itself included.
func (t *TEM) UnitContributingArea(cid int) int {
	c, stack := 0, []int{cid}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c++
		stack = append(stack, t.us[i]...)
	}
	return c
}

// ContributingCellMap accumulates the absolute contributing cell count for
// every valid cell in one descending-elevation sweep. Void cells are -1.
func (t *TEM) ContributingCellMap() []int {
	cnt := make([]int, len(t.Zs))
	for i, k := range t.ok {
		if k {
			cnt[i] = 1
		} else {
			cnt[i] = -1
		}
	}
	for _, i := range t.downSweep() {
		if d := t.Ds[i]; d >= 0 {
			cnt[d] += cnt[i]
		}
	}
	return cnt
}

// downSweep orders valid cell ids by decreasing elevation; every drainage
// edge runs strictly downhill, so the order is topological.
func (t *TEM) downSweep() []int {
	ord := make([]int, 0, len(t.Zs))
	for i, k := range t.ok {
		if k {
			ord = append(ord, i)
		}
	}
	sortByDescending(ord, t.Zs)
	return ord
}
