package hydro

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/wellspring/terrain"
)

// FindSources returns river source candidates in row-major order: cells
// whose elevation strictly exceeds the global percentile threshold and that
// have no 8-neighbor with strictly greater elevation. The threshold uses
// linear interpolation between order statistics. A perfectly flat field
// yields no sources, since no cell strictly exceeds the threshold.
func FindSources(elev *terrain.Field, percentile float64) ([]Point, error) {
	if percentile < 0 || percentile > 100 {
		return nil, fmt.Errorf("hydro: source percentile %v outside [0, 100]", percentile)
	}
	if elev.Len() == 0 {
		return nil, nil
	}

	sorted := make([]float64, len(elev.Data))
	copy(sorted, elev.Data)
	sort.Float64s(sorted)
	threshold := stat.Quantile(percentile/100, stat.LinInterp, sorted, nil)

	var sources []Point
	for y := 0; y < elev.H; y++ {
		for x := 0; x < elev.W; x++ {
			if elev.At(x, y) > threshold && IsLocalMaximum(elev, x, y) {
				sources = append(sources, Point{X: x, Y: y})
			}
		}
	}
	return sources, nil
}

// IsLocalMaximum reports whether no 8-neighbor of (x, y) has strictly
// greater elevation. Ties count as maxima.
func IsLocalMaximum(elev *terrain.Field, x, y int) bool {
	v := elev.At(x, y)
	for _, o := range neighborOffsets {
		nx, ny := x+o[0], y+o[1]
		if elev.InBounds(nx, ny) && elev.At(nx, ny) > v {
			return false
		}
	}
	return true
}

// IsLocalMinimum reports whether no 8-neighbor of (x, y) has strictly
// smaller elevation. Ties count as minima. Such cells seed standalone lakes.
func IsLocalMinimum(elev *terrain.Field, x, y int) bool {
	v := elev.At(x, y)
	for _, o := range neighborOffsets {
		nx, ny := x+o[0], y+o[1]
		if elev.InBounds(nx, ny) && elev.At(nx, ny) < v {
			return false
		}
	}
	return true
}
