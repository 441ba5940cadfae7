package hydro

import "github.com/pthm-cable/wellspring/terrain"

// Mask is a per-cell land/water classification derived from an elevation
// field and a water level.
type Mask struct {
	W, H  int
	water []bool
}

// Water reports whether (x, y) is submerged.
func (m *Mask) Water(x, y int) bool {
	return m.water[y*m.W+x]
}

// Count returns the number of submerged cells.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.water {
		if w {
			n++
		}
	}
	return n
}

// Classify builds the submersion mask: a cell is water iff its elevation is
// at or below waterLevel. Pure and idempotent; raising the level only ever
// adds water cells.
func Classify(elev *terrain.Field, waterLevel float64) *Mask {
	m := &Mask{W: elev.W, H: elev.H, water: make([]bool, elev.Len())}
	for i, v := range elev.Data {
		m.water[i] = v <= waterLevel
	}
	return m
}
