package graph

// DegreeStats summarises the degree distribution of a graph, used for
// degree-proportional node sizing and for targeted removal rankings.
type DegreeStats struct {
	Degrees   map[string]int
	MaxDegree int
}

// ComputeDegreeStats returns the degree of every node and the maximum degree.
// MaxDegree is 0 for an empty graph.
func (g *Graph) ComputeDegreeStats() DegreeStats {
	stats := DegreeStats{
		Degrees: make(map[string]int, len(g.adj)),
	}
	for _, id := range g.nodeOrder {
		d := g.Degree(id)
		stats.Degrees[id] = d
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}
	return stats
}
