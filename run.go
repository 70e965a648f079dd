package erosion

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/erosion/grid"
	"github.com/maseology/erosion/terrain"
)

// Run evaluates the configured erosion model with the native terrain engine.
func Run(p *Parameters) (*Result, error) { return RunEngine(p, terrain.Engine{}) }

// RunEngine evaluates the configured erosion model against eng. The scratch
// workspace is cleaned up exactly once whether the run succeeds or fails.
func RunEngine(p *Parameters, eng Engine) (*Result, error) {
	if err := p.check(); err != nil {
		return nil, err
	}

	ws := NewWorkspace("")
	defer ws.Cleanup()

	tick := func(string) {}
	if p.Progress {
		n := nRusleSteps
		if p.Model == Usped {
			n = nUspedSteps
		}
		uiprogress.Start()
		defer uiprogress.Stop()
		cur := ""
		bar := uiprogress.AddBar(n + 1).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(*uiprogress.Bar) string { return fmt.Sprintf(" %-20s", cur) })
		tick = func(s string) {
			cur = s
			bar.Incr()
		}
	}

	tick("r_factor")
	rf, err := p.rFactorGrid(ws)
	if err != nil {
		return nil, err
	}
	kf, cf := p.KFactor, p.CFactor
	if kf == nil {
		kf = ws.Put("k_factor", grid.Constant(p.DEM.GD, p.KFactorValue))
	}
	if cf == nil {
		cf = ws.Put("c_factor", grid.Constant(p.DEM.GD, p.CFactorValue))
	}

	switch p.Model {
	case Usped:
		return p.usped(ws, eng, rf, kf, cf, tick)
	default:
		return p.rusle(ws, eng, rf, kf, cf, tick)
	}
}
