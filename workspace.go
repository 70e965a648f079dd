package erosion

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/maseology/erosion/grid"
)

var wsseq atomic.Uint64

// Workspace is the scratch namespace of raster layers built up during a
// model run. Layer names are scoped by a run identifier so concurrent runs
// cannot collide, and the whole workspace is released once per run whether
// the run succeeds or fails.
type Workspace struct {
	id       string
	layers   map[string]*grid.Grid
	Cleanups int // times Cleanup has run
}

// NewWorkspace opens a scratch workspace; an empty id gets a fresh run number.
func NewWorkspace(id string) *Workspace {
	if id == "" {
		id = fmt.Sprintf("run%d", wsseq.Add(1))
	}
	return &Workspace{id: id, layers: make(map[string]*grid.Grid)}
}

// ID the run identifier scoping this workspace's layer names.
func (ws *Workspace) ID() string { return ws.id }

func (ws *Workspace) name(layer string) string { return ws.id + "." + layer }

// Put registers a scratch layer under the workspace's run scope.
func (ws *Workspace) Put(layer string, g *grid.Grid) *grid.Grid {
	ws.layers[ws.name(layer)] = g
	return g
}

// Get retrieves a scratch layer.
func (ws *Workspace) Get(layer string) (*grid.Grid, bool) {
	g, ok := ws.layers[ws.name(layer)]
	return g, ok
}

// Remove deletes the named scratch layers. Removing an absent layer is a
// no-op; removal never fails a run.
func (ws *Workspace) Remove(layers ...string) {
	for _, l := range layers {
		delete(ws.layers, ws.name(l))
	}
}

// Layers lists the remaining scoped layer names, sorted.
func (ws *Workspace) Layers() []string {
	o := make([]string, 0, len(ws.layers))
	for n := range ws.layers {
		o = append(o, n)
	}
	sort.Strings(o)
	return o
}

// Cleanup releases every remaining scratch layer. It never fails, so a
// cleanup problem can never mask the error that aborted the run.
func (ws *Workspace) Cleanup() {
	ws.Cleanups++
	for n := range ws.layers {
		delete(ws.layers, n)
	}
}
