package hydro

import "github.com/pthm-cable/wellspring/terrain"

// TraceDownhill follows the steepest descent from start until no unvisited
// strictly lower neighbor remains. Neighbors are scanned in the package's
// fixed order (top row first, left to right); among equally low neighbors
// the first scanned wins, so paths are fully deterministic.
//
// The per-path visited set is what guarantees termination on plateaus and
// ties; as a second line of defense the walk is also capped at W*H steps.
// The result always contains at least the start cell.
func TraceDownhill(elev *terrain.Field, start Point) []Point {
	maxSteps := elev.Len()
	visited := make([]bool, maxSteps)
	path := make([]Point, 0, 16)

	cur := start
	for len(path) < maxSteps {
		path = append(path, cur)
		visited[elev.Index(cur.X, cur.Y)] = true

		lowest := elev.At(cur.X, cur.Y)
		next := cur
		found := false
		for _, o := range neighborOffsets {
			nx, ny := cur.X+o[0], cur.Y+o[1]
			if !elev.InBounds(nx, ny) || visited[elev.Index(nx, ny)] {
				continue
			}
			if v := elev.At(nx, ny); v < lowest {
				lowest = v
				next = Point{X: nx, Y: ny}
				found = true
			}
		}
		if !found {
			break
		}
		cur = next
	}
	return path
}
