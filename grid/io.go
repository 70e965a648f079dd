package grid

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// ReadGDEF imports a grid definition file: OE, ON, ROT, NR, NC, CS, one value
// per line. A cell size prefixed 'U' flags a uniform grid; rotated grids are
// not supported.
func ReadGDEF(fp string) (*Definition, error) {
	a, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("grid: ReadGDEF failed: %w", err)
	}
	if len(a) < 6 {
		return nil, fmt.Errorf("grid: incomplete definition file %s", fp)
	}
	parse := func(s, lbl string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0., fmt.Errorf("grid: failed to read %s from %s: %v", lbl, fp, err)
		}
		return v, nil
	}

	oe, err := parse(a[0], "OE")
	if err != nil {
		return nil, err
	}
	on, err := parse(a[1], "ON")
	if err != nil {
		return nil, err
	}
	rot, err := parse(a[2], "ROT")
	if err != nil {
		return nil, err
	}
	if rot != 0. {
		return nil, fmt.Errorf("grid: rotated grids not supported (%s)", fp)
	}
	nr, err := parse(a[3], "NR")
	if err != nil {
		return nil, err
	}
	nc, err := parse(a[4], "NC")
	if err != nil {
		return nil, err
	}
	scs := strings.TrimSpace(a[5])
	if len(scs) > 0 && scs[0] == 'U' {
		scs = scs[1:]
	}
	cs, err := parse(scs, "CS")
	if err != nil {
		return nil, err
	}

	gd := NewDefinition(int(nr), int(nc), cs)
	gd.Oe, gd.On = oe, on
	if gd.Nr <= 0 || gd.Nc <= 0 {
		return nil, ErrEmptyGrid
	}
	if gd.Cw <= 0. {
		return nil, ErrResolution
	}
	return gd, nil
}

// ReadASC imports an ESRI ASCII raster.
func ReadASC(fp string) (*Grid, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("grid: ReadASC failed: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	next := func() (string, error) {
		if !sc.Scan() {
			return "", fmt.Errorf("grid: unexpected end of %s", fp)
		}
		return sc.Text(), nil
	}

	hdr := map[string]float64{"nodata_value": -9999.}
	for {
		tok, err := next()
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(tok)
		switch key {
		case "ncols", "nrows", "xllcorner", "yllcorner", "cellsize", "nodata_value":
			s, err := next()
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("grid: bad %s in %s: %v", key, fp, err)
			}
			hdr[key] = v
		default: // first cell value
			nr, nc := int(hdr["nrows"]), int(hdr["ncols"])
			if nr <= 0 || nc <= 0 {
				return nil, ErrEmptyGrid
			}
			gd := NewDefinition(nr, nc, hdr["cellsize"])
			gd.Oe = hdr["xllcorner"]
			gd.On = hdr["yllcorner"] + float64(nr)*gd.Cw // to upper-left origin
			gd.NoData = hdr["nodata_value"]

			vs := make([]float64, gd.Ncells())
			if vs[0], err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, fmt.Errorf("grid: bad cell value in %s: %v", fp, err)
			}
			for i := 1; i < len(vs); i++ {
				s, err := next()
				if err != nil {
					return nil, err
				}
				if vs[i], err = strconv.ParseFloat(s, 64); err != nil {
					return nil, fmt.Errorf("grid: bad cell value in %s: %v", fp, err)
				}
			}
			return New(gd, vs)
		}
	}
}

// WriteASC exports the grid as an ESRI ASCII raster.
func (g *Grid) WriteASC(fp string) error {
	gd := g.GD
	var b strings.Builder
	fmt.Fprintf(&b, "ncols %d\nnrows %d\n", gd.Nc, gd.Nr)
	fmt.Fprintf(&b, "xllcorner %f\nyllcorner %f\n", gd.Oe, gd.On-float64(gd.Nr)*gd.Cw)
	fmt.Fprintf(&b, "cellsize %f\nnodata_value %f\n", gd.Cw, gd.NoData)
	for r := 0; r < gd.Nr; r++ {
		for c := 0; c < gd.Nc; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", g.Value(r, c))
		}
		b.WriteByte('\n')
	}
	if err := os.WriteFile(fp, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("grid: WriteASC failed: %w", err)
	}
	return nil
}

// WriteBIL exports the cell values as little-endian float32 with an ESRI
// .hdr sidecar.
func (g *Grid) WriteBIL(fp string) error {
	f32 := make([]float32, len(g.vs))
	for i, v := range g.vs {
		f32[i] = float32(v)
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("grid: WriteBIL failed: %w", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("grid: WriteBIL failed: %w", err)
	}
	return g.writeHDR(mmio.RemoveExtension(fp) + ".hdr")
}

func (g *Grid) writeHDR(fp string) error {
	gd := g.GD
	var b strings.Builder
	fmt.Fprintf(&b, "NROWS %d\nNCOLS %d\n", gd.Nr, gd.Nc)
	b.WriteString("NBANDS 1\nNBITS 32\nPIXELTYPE FLOAT\nBYTEORDER I\n")
	fmt.Fprintf(&b, "ULXMAP %f\nULYMAP %f\n", gd.Oe+gd.Cw/2., gd.On-gd.Cw/2.)
	fmt.Fprintf(&b, "XDIM %f\nYDIM %f\n", gd.Cw, gd.Cw)
	fmt.Fprintf(&b, "NODATA %f\n", gd.NoData)
	if err := os.WriteFile(fp, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("grid: writeHDR failed: %w", err)
	}
	return nil
}
