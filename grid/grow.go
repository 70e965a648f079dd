package grid

// Grow fills every void cell with the value of its nearest valid cell,
// leaving valid cells untouched. Moving-window operators void the cells
// touching the grid border; growing them back keeps edge artifacts from
// propagating into downstream formulas. Distance is measured in grid steps
// (8-connected breadth-first sweep from all valid cells at once).
func (g *Grid) Grow() *Grid {
	nr, nc := g.GD.Nr, g.GD.Nc
	o := g.blank()
	copy(o.vs, g.vs)

	q := make([]int, 0, len(g.vs))
	filled := make([]bool, len(g.vs))
	for i := range g.vs {
		if !g.IsNoData(i) {
			filled[i] = true
			q = append(q, i)
		}
	}
	if len(q) == 0 || len(q) == len(g.vs) {
		return o
	}

	for len(q) > 0 {
		i := q[0]
		q = q[1:]
		r, c := i/nc, i%nc
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				rr, cc := r+dr, c+dc
				if rr < 0 || rr >= nr || cc < 0 || cc >= nc {
					continue
				}
				j := rr*nc + cc
				if !filled[j] {
					filled[j] = true
					o.vs[j] = o.vs[i]
					q = append(q, j)
				}
			}
		}
	}
	return o
}
