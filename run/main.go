package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/maseology/erosion"
	"github.com/maseology/erosion/grid"
	"github.com/maseology/erosion/synth"
	"github.com/maseology/mmio"
)

// erosion model runner. Instruct-file keys:
//
//	demfp      elevation raster (.asc); omitted, a synthetic DEM is generated
//	gdeffp     grid definition check file (optional)
//	model      rusle | usped
//	outdir     output directory
//	format     asc | bil
//	rfactorfp, kfactorfp, cfactorfp   factor rasters (optional)
//	rfactor, kfactor, cfactor         factor constants
//	rainintensity [mm/hr], rainduration [min]
//	m, n       flow and slope exponents
//	rate       annual | persecond
func main() {
	_ = godotenv.Load(".env")

	insfp := os.Getenv("EROSION_INSTRUCT")
	if len(os.Args) > 1 {
		insfp = os.Args[1]
	}
	if insfp == "" {
		log.Fatalf("usage: run <instructfile> (or set EROSION_INSTRUCT)")
	}
	if _, ok := mmio.FileExists(insfp); !ok {
		log.Fatalf("instruct file not found: %s", insfp)
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete")

	ins := mmio.NewInstruct(insfp)
	get := func(k, def string) string {
		if v, ok := ins.Param[k]; ok {
			return v[0]
		}
		return def
	}
	getf := func(k string, def float64) float64 {
		s, ok := ins.Param[k]
		if !ok {
			return def
		}
		v, err := strconv.ParseFloat(s[0], 64)
		if err != nil {
			log.Fatalf("bad %s: %v", k, err)
		}
		return v
	}

	// elevation
	dem := func() *grid.Grid {
		if fp := get("demfp", ""); fp != "" {
			g, err := grid.ReadASC(fp)
			if err != nil {
				log.Fatalf("%v", err)
			}
			return g
		}
		fmt.Println(" no DEM specified, generating synthetic terrain..")
		return synth.DEM(7, getf("cellsize", 10.), 0., getf("relief", 50.), 1234)
	}()
	if gdeffp := get("gdeffp", ""); gdeffp != "" {
		gd, err := grid.ReadGDEF(gdeffp)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if gd.Nr != dem.GD.Nr || gd.Nc != dem.GD.Nc || gd.Cw != dem.GD.Cw {
			log.Fatalf("DEM does not match grid definition %s", gdeffp)
		}
	}
	fmt.Printf(" elevation: %d x %d cells (%s), cell width %g\n",
		dem.GD.Nr, dem.GD.Nc, mmio.Thousands(int64(dem.GD.Ncells())), dem.GD.Cw)

	p := erosion.DefaultParameters(dem)
	p.Model = get("model", erosion.Rusle)
	p.RFactorValue = getf("rfactor", erosion.DefaultRFactor)
	p.KFactorValue = getf("kfactor", erosion.DefaultKFactor)
	p.CFactorValue = getf("cfactor", erosion.DefaultCFactor)
	p.RainIntensity = getf("rainintensity", 0.)
	p.RainDuration = getf("rainduration", 0.)
	p.M = getf("m", erosion.DefaultM)
	p.N = getf("n", erosion.DefaultN)
	p.Progress = true
	if get("rate", "annual") == "persecond" {
		p.Rate = erosion.PerSecond
	}
	for _, f := range []struct {
		key string
		dst **grid.Grid
	}{{"rfactorfp", &p.RFactor}, {"kfactorfp", &p.KFactor}, {"cfactorfp", &p.CFactor}} {
		if fp := get(f.key, ""); fp != "" {
			g, err := grid.ReadASC(fp)
			if err != nil {
				log.Fatalf("%v", err)
			}
			*f.dst = g
		}
	}

	res, err := erosion.Run(p)
	if err != nil {
		log.Fatalf("%v", err)
	}
	tt.Print(fmt.Sprintf("%s model complete", p.Model))

	outdir := get("outdir", mmio.GetFileDir(insfp)+"/out/")
	if err := res.Write(outdir, get("format", "bil")); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("\n results written to %s\n%s", outdir, res.Summary())
}
