package erosion

import "github.com/maseology/mmio"

// ErosionColors is the fixed diverging color ramp applied to erosion-
// deposition rasters (GRASS r.colors rules). Warm colors mark positive cells
// (net erosion), cool colors negative cells (net deposition), matching the
// sign convention of the erosion-deposition grid. Cosmetic only; it has no
// effect on numeric results.
const ErosionColors = `0% black
-100 0 0 100
-10 blue
-1 aqua
-0.1 cyan
0 200 255 200
0.1 yellow
1 orange
10 red
100 magenta
100% 100 0 100
`

// WriteColorRules writes the erosion color ramp as a rules table next to an
// exported raster.
func WriteColorRules(fp string) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return err
	}
	defer tw.Close()
	tw.WriteLine(ErosionColors)
	return nil
}
