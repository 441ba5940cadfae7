// Package hydro derives a hydrological network from an elevation field:
// submerged regions, river sources, downhill flow paths, and lake basins.
//
// All functions treat the elevation field as read-only. Everything is
// single-threaded and deterministic; the only mutable state is the Network
// accumulator owned by GenerateRivers and written under an explicit
// contract (see Network).
package hydro

import (
	"fmt"

	"github.com/pthm-cable/wellspring/terrain"
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// neighborOffsets is the fixed neighbor scan order used throughout the
// package: row-major over the 3x3 block, top row first, left to right,
// center skipped. Tie-breaking in TraceDownhill keeps the first neighbor
// seen in this order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Params holds the hydrology configuration. The package mandates no
// defaults; callers supply every value.
type Params struct {
	WaterLevel       float64 // elevation at or below which a cell is submerged
	SourcePercentile float64 // elevation percentile a river source must exceed, 0-100
	LakeDepth        float64 // how far above its seed a lake may fill, >= 0
	MaxGradient      float64 // how far below its seed a lake may spill, >= 0
}

// Validate rejects out-of-range parameters.
func (p Params) Validate() error {
	if p.SourcePercentile < 0 || p.SourcePercentile > 100 {
		return fmt.Errorf("hydro: source percentile %v outside [0, 100]", p.SourcePercentile)
	}
	if p.LakeDepth < 0 {
		return fmt.Errorf("hydro: negative lake depth %v", p.LakeDepth)
	}
	if p.MaxGradient < 0 {
		return fmt.Errorf("hydro: negative max gradient %v", p.MaxGradient)
	}
	return nil
}

// Result bundles the derived artifacts of one synthesis pass.
type Result struct {
	Mask    *Mask
	Sources []Point
	Net     *Network
	Merged  *terrain.Field
}

// Synthesize runs the full pipeline over an elevation field: classify,
// detect sources, trace rivers, expand lakes, and build the presentation
// merge. Parameters are validated up front.
func Synthesize(elev *terrain.Field, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	mask := Classify(elev, p.WaterLevel)
	sources, err := FindSources(elev, p.SourcePercentile)
	if err != nil {
		return nil, err
	}
	net, err := GenerateRivers(elev, mask, sources, p.LakeDepth, p.MaxGradient)
	if err != nil {
		return nil, err
	}

	return &Result{
		Mask:    mask,
		Sources: sources,
		Net:     net,
		Merged:  Merge(elev, net),
	}, nil
}
