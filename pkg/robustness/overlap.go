package robustness

import "github.com/cfoyle/percolate/pkg/graph"

// TopologicalOverlap computes the embeddedness of an edge as the Jaccard
// similarity of its endpoints' neighbor sets, with both endpoints excluded
// from each set. An empty union scores 0 rather than dividing by zero.
func TopologicalOverlap(g *graph.Graph, key graph.EdgeKey) float64 {
	setU := neighborsExcluding(g, key.U, key.V)
	setV := neighborsExcluding(g, key.V, key.U)

	if len(setU) == 0 && len(setV) == 0 {
		return 0.0
	}

	// Iterate over the smaller set for efficiency
	small, big := setU, setV
	if len(setU) > len(setV) {
		small, big = setV, setU
	}
	intersection := 0
	for id := range small {
		if big[id] {
			intersection++
		}
	}

	union := len(setU) + len(setV) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// neighborsExcluding builds the neighbor set of id without the opposite
// endpoint. Self-loops are already excluded by Neighbors.
func neighborsExcluding(g *graph.Graph, id, exclude string) map[string]bool {
	neighbors := g.Neighbors(id)
	delete(neighbors, exclude)
	return neighbors
}
