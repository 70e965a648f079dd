package grid

import "math"

// Stats summarizes the valid cells of a grid (r.univar style).
type Stats struct {
	N                   int
	Min, Max, Mean, Sum float64
}

// Summarize computes summary statistics over the non-void cells.
func (g *Grid) Summarize() Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for i, v := range g.vs {
		if g.IsNoData(i) {
			continue
		}
		s.N++
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	if s.N > 0 {
		s.Mean = s.Sum / float64(s.N)
	} else {
		s.Min, s.Max = 0., 0.
	}
	return s
}
