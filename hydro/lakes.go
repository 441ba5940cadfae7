package hydro

import (
	"fmt"

	"github.com/pthm-cable/wellspring/terrain"
)

func errNegativeLakeDepth(v float64) error {
	return fmt.Errorf("hydro: negative lake depth %v", v)
}

func errNegativeMaxGradient(v float64) error {
	return fmt.Errorf("hydro: negative max gradient %v", v)
}

// ExpandLake grows a lake basin from seed by bounded flood fill over the
// 8-neighborhood. A neighbor is admitted when its elevation difference from
// the SEED cell lies in [-maxGradient, +lakeDepth]: the basin fills terrain
// up to lakeDepth above the seed and spills into terrain up to maxGradient
// below it. Admitted cells become lakes only if empty; river cells are left
// untouched, though expansion still continues through them. A visited set
// bounds the fill to one pass per cell.
func (n *Network) ExpandLake(elev *terrain.Field, seed Point, lakeDepth, maxGradient float64) error {
	if lakeDepth < 0 {
		return errNegativeLakeDepth(lakeDepth)
	}
	if maxGradient < 0 {
		return errNegativeMaxGradient(maxGradient)
	}
	n.expandLake(elev, seed, lakeDepth, maxGradient)
	return nil
}

func (n *Network) expandLake(elev *terrain.Field, seed Point, lakeDepth, maxGradient float64) {
	if !elev.InBounds(seed.X, seed.Y) {
		return
	}
	seedElev := elev.At(seed.X, seed.Y)

	visited := make([]bool, elev.Len())
	visited[elev.Index(seed.X, seed.Y)] = true
	queue := []Point{seed}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		n.setLake(cur.X, cur.Y)

		for _, o := range neighborOffsets {
			nx, ny := cur.X+o[0], cur.Y+o[1]
			if !elev.InBounds(nx, ny) || visited[elev.Index(nx, ny)] {
				continue
			}
			diff := elev.At(nx, ny) - seedElev
			if diff <= lakeDepth && diff >= -maxGradient {
				visited[elev.Index(nx, ny)] = true
				queue = append(queue, Point{X: nx, Y: ny})
			}
		}
	}
}
