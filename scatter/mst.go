package scatter

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Edge connects two points by their indices into the sample slice.
type Edge struct {
	A, B int
}

// MST returns the minimum spanning tree over the points as index pairs,
// computed by Prim's algorithm over the complete Euclidean graph.
func MST(points []Point) []Edge {
	if len(points) < 2 {
		return nil
	}

	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range points {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			w := Distance(points[i], points[j])
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), w))
		}
	}

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	path.Prim(dst, g)

	var edges []Edge
	it := dst.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		a, b := int(e.From().ID()), int(e.To().ID())
		if a > b {
			a, b = b, a
		}
		edges = append(edges, Edge{A: a, B: b})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// nearestEdges returns, for each point, edges to its m nearest neighbors.
func nearestEdges(points []Point, m int) []Edge {
	var edges []Edge
	type cand struct {
		d float64
		j int
	}
	for i, p := range points {
		cands := make([]cand, 0, len(points)-1)
		for j, q := range points {
			if i == j {
				continue
			}
			cands = append(cands, cand{d: Distance(p, q), j: j})
		}
		sort.Slice(cands, func(a, b int) bool { return cands[a].d < cands[b].d })
		n := m
		if n > len(cands) {
			n = len(cands)
		}
		for _, c := range cands[:n] {
			a, b := i, c.j
			if a > b {
				a, b = b, a
			}
			edges = append(edges, Edge{A: a, B: b})
		}
	}
	return edges
}

// AddCycles augments a spanning tree with up to numCycles extra edges drawn
// randomly from each point's nearest-neighbor candidates, skipping edges the
// tree already has. The tree edges come first in the result.
func AddCycles(points []Point, tree []Edge, numCycles int, rng *rand.Rand) []Edge {
	inTree := make(map[Edge]bool, len(tree))
	for _, e := range tree {
		inTree[e] = true
	}

	seen := make(map[Edge]bool)
	var candidates []Edge
	for _, e := range nearestEdges(points, 5) {
		if !inTree[e] && !seen[e] {
			seen[e] = true
			candidates = append(candidates, e)
		}
	}

	n := numCycles
	if n > len(candidates) {
		n = len(candidates)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	out := make([]Edge, 0, len(tree)+n)
	out = append(out, tree...)
	out = append(out, candidates[:n]...)
	return out
}
