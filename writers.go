package erosion

import (
	"fmt"

	"github.com/maseology/erosion/grid"
	"github.com/maseology/mmio"
)

// Write exports the result rasters to dir as erosion, flow_accumulation and
// ls_factor, plus the erosion color rules. Format "asc" writes ESRI ASCII;
// anything else writes float32 .bil with .hdr sidecars.
func (r *Result) Write(dir, format string) error {
	mmio.MakeDir(dir)

	write := func(name string, g *grid.Grid) error {
		if format == "asc" {
			return g.WriteASC(dir + name + ".asc")
		}
		return g.WriteBIL(dir + name + ".bil")
	}
	if err := write("erosion", r.Erosion); err != nil {
		return fmt.Errorf("erosion: write failed: %w", err)
	}
	if err := write("flow_accumulation", r.FlowAccumulation); err != nil {
		return fmt.Errorf("erosion: write failed: %w", err)
	}
	if err := write("ls_factor", r.LSFactor); err != nil {
		return fmt.Errorf("erosion: write failed: %w", err)
	}
	if err := WriteColorRules(dir + "erosion.colr"); err != nil {
		return fmt.Errorf("erosion: write failed: %w", err)
	}
	return nil
}
