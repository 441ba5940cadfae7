package hydro

import "github.com/pthm-cable/wellspring/terrain"

// CellKind tags a network cell.
type CellKind uint8

const (
	Empty CellKind = iota
	River
	Lake
)

// LakeSentinel is the numeric code lakes take in Value and Merge output.
// In that flat encoding a river of width 2 is indistinguishable from a
// lake; the tagged Cell representation exists so consumers never have to
// rely on it.
const LakeSentinel = 2

// Cell is one network cell: empty, a river of some accumulated width, or a
// lake.
type Cell struct {
	Kind  CellKind
	Width int // accumulated river width, meaningful only for Kind == River
}

// Network is the river/lake accumulator written by GenerateRivers and
// ExpandLake. The write contract: river writes overwrite anything
// (last-writer-wins, sequential order); lake writes only ever fill Empty
// cells and never change a river.
type Network struct {
	W, H  int
	cells []Cell
}

// NewNetwork creates an empty network grid. Non-positive dimensions yield an
// empty network.
func NewNetwork(w, h int) *Network {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Network{W: w, H: h, cells: make([]Cell, w*h)}
}

// At returns the cell at (x, y).
func (n *Network) At(x, y int) Cell {
	return n.cells[y*n.W+x]
}

// Value returns the flat numeric encoding of (x, y): 0 for empty, the
// accumulated width for rivers, LakeSentinel for lakes.
func (n *Network) Value(x, y int) float64 {
	switch c := n.cells[y*n.W+x]; c.Kind {
	case River:
		return float64(c.Width)
	case Lake:
		return LakeSentinel
	default:
		return 0
	}
}

// setRiver overwrites (x, y) with a river of the given width.
func (n *Network) setRiver(x, y, width int) {
	n.cells[y*n.W+x] = Cell{Kind: River, Width: width}
}

// setLake marks (x, y) as lake only if the cell is empty.
func (n *Network) setLake(x, y int) {
	i := y*n.W + x
	if n.cells[i].Kind == Empty {
		n.cells[i] = Cell{Kind: Lake}
	}
}

// GenerateRivers traces a river from every source and grows lakes where
// water collects. For each source, in order: trace the downhill path,
// accumulate a width counter (starting at 1, incremented at every cell the
// mask marks as water), write the running width into the network at each
// path cell, then expand a lake at the path terminus. Afterwards every
// local-minimum cell, scanned row-major, seeds a standalone lake.
//
// River writes are last-writer-wins across sources; the sequential order
// above is the documented merge policy.
func GenerateRivers(elev *terrain.Field, mask *Mask, sources []Point, lakeDepth, maxGradient float64) (*Network, error) {
	if lakeDepth < 0 {
		return nil, errNegativeLakeDepth(lakeDepth)
	}
	if maxGradient < 0 {
		return nil, errNegativeMaxGradient(maxGradient)
	}

	net := NewNetwork(elev.W, elev.H)
	for _, src := range sources {
		path := TraceDownhill(elev, src)
		width := 1
		for _, p := range path {
			if mask.Water(p.X, p.Y) {
				width++
			}
			net.setRiver(p.X, p.Y, width)
		}
		if len(path) > 0 {
			net.expandLake(elev, path[len(path)-1], lakeDepth, maxGradient)
		}
	}

	for y := 0; y < elev.H; y++ {
		for x := 0; x < elev.W; x++ {
			if IsLocalMinimum(elev, x, y) {
				net.expandLake(elev, Point{X: x, Y: y}, lakeDepth, maxGradient)
			}
		}
	}
	return net, nil
}

// Merge overlays the network's numeric values onto a copy of the elevation
// field wherever a cell is non-empty. Presentation only: the result feeds no
// further computation.
func Merge(elev *terrain.Field, net *Network) *terrain.Field {
	out := elev.Clone()
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			if net.At(x, y).Kind != Empty {
				out.Set(x, y, net.Value(x, y))
			}
		}
	}
	return out
}
