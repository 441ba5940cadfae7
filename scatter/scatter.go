// Package scatter places points by Poisson-disc sampling and connects them
// into a road-like graph: a minimum spanning tree plus a configurable number
// of extra cycle edges.
package scatter

import (
	"math"
	"math/rand"
)

// Point is a sampled location in continuous plane coordinates.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PoissonDisc generates points over a w-by-h area using Bridson's algorithm:
// every pair of points is at least radius apart, and no more room is left
// for another point. k is the number of candidate placements tried around an
// active point before it is retired (30 is the customary choice). The rng
// drives candidate selection, so a fixed seed reproduces the layout.
func PoissonDisc(w, h, radius float64, k int, rng *rand.Rand) []Point {
	if w <= 0 || h <= 0 || radius <= 0 {
		return nil
	}

	// Acceleration grid with cell side radius/sqrt(2), so each cell holds
	// at most one sample.
	cellSize := radius / math.Sqrt2
	gridW := int(math.Ceil(w / cellSize))
	gridH := int(math.Ceil(h / cellSize))
	grid := make([]int, gridW*gridH) // 1-based sample index, 0 = empty

	gridIndex := func(p Point) int {
		return int(p.X/cellSize) + int(p.Y/cellSize)*gridW
	}

	// far reports whether p keeps the minimum distance to every accepted
	// sample, checking only the 5x5 cell neighborhood.
	var samples []Point
	far := func(p Point) bool {
		gx := int(p.X / cellSize)
		gy := int(p.Y / cellSize)
		x0, x1 := max(gx-2, 0), min(gx+3, gridW)
		y0, y1 := max(gy-2, 0), min(gy+3, gridH)
		for cy := y0; cy < y1; cy++ {
			for cx := x0; cx < x1; cx++ {
				if si := grid[cx+cy*gridW]; si != 0 {
					s := samples[si-1]
					dx, dy := s.X-p.X, s.Y-p.Y
					if dx*dx+dy*dy < radius*radius {
						return false
					}
				}
			}
		}
		return true
	}

	accept := func(p Point) {
		samples = append(samples, p)
		grid[gridIndex(p)] = len(samples)
	}

	first := Point{X: math.Floor(w / 2), Y: math.Floor(h / 2)}
	accept(first)
	queue := []Point{first}

	for len(queue) > 0 {
		i := rng.Intn(len(queue))
		parent := queue[i]

		placed := false
		for try := 0; try < k; try++ {
			angle := rng.Float64() * 2 * math.Pi
			r := radius + rng.Float64()*radius
			p := Point{
				X: math.Round(parent.X + r*math.Cos(angle)),
				Y: math.Round(parent.Y + r*math.Sin(angle)),
			}
			if p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h && far(p) {
				accept(p)
				queue = append(queue, p)
				placed = true
				break
			}
		}
		if !placed {
			queue[i] = queue[len(queue)-1]
			queue = queue[:len(queue)-1]
		}
	}
	return samples
}
