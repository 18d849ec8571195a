package robustness

import (
	"math"
	"math/rand"
	"sort"

	"github.com/cfoyle/percolate/pkg/graph"
)

// ComputeOrder ranks the removal targets of a graph under the given strategy
// and returns a plan covering floor(fraction × element count) elements.
// Scores are computed once against the intact graph: the ranking is static,
// never recomputed as elements are removed. rng is only consulted by
// StrategyRandom and must be non-nil for it; a caller that wants reproducible
// random plans seeds it explicitly.
func ComputeOrder(g *graph.Graph, kind TargetKind, strategy Strategy, fraction float64, rng *rand.Rand) (*Plan, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, &StrategyError{Strategy: strategy.String(), Cause: ErrInvalidFraction}
	}
	if strategy.kindOf() != kind {
		return nil, invalidStrategyError(strategy, kind)
	}

	switch kind {
	case TargetNode:
		return computeNodeOrder(g, strategy, fraction, rng)
	case TargetEdge:
		return computeEdgeOrder(g, strategy, fraction)
	default:
		return nil, &StrategyError{Kind: kind.String(), Cause: ErrUnknownTargetKind}
	}
}

func computeNodeOrder(g *graph.Graph, strategy Strategy, fraction float64, rng *rand.Rand) (*Plan, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, &StrategyError{Strategy: strategy.String(), Cause: ErrEmptyGraph}
	}

	switch strategy {
	case StrategyRandom:
		if rng == nil {
			return nil, &StrategyError{Strategy: strategy.String(), Cause: ErrNilRandSource}
		}
		shuffled := make([]string, len(nodes))
		for i, j := range rng.Perm(len(nodes)) {
			shuffled[i] = nodes[j]
		}
		nodes = shuffled

	case StrategyTargetedDegree:
		// Stable sort keeps insertion order for equal degrees.
		degrees := make(map[string]int, len(nodes))
		for _, id := range nodes {
			degrees[id] = g.Degree(id)
		}
		sort.SliceStable(nodes, func(i, j int) bool {
			return degrees[nodes[i]] > degrees[nodes[j]]
		})
	}

	return &Plan{
		Kind:  TargetNode,
		Nodes: nodes[:planLength(fraction, len(nodes))],
	}, nil
}

func computeEdgeOrder(g *graph.Graph, strategy Strategy, fraction float64) (*Plan, error) {
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, &StrategyError{Strategy: strategy.String(), Cause: ErrEmptyGraph}
	}

	keys := make([]graph.EdgeKey, len(edges))
	scores := make(map[graph.EdgeKey]float64, len(edges))
	for i, e := range edges {
		keys[i] = e.Key()
		scores[keys[i]] = TopologicalOverlap(g, keys[i])
	}

	// Stable sort keeps insertion order for equal scores.
	if strategy == StrategyOverlapAscending {
		sort.SliceStable(keys, func(i, j int) bool {
			return scores[keys[i]] < scores[keys[j]]
		})
	} else {
		sort.SliceStable(keys, func(i, j int) bool {
			return scores[keys[i]] > scores[keys[j]]
		})
	}

	return &Plan{
		Kind:  TargetEdge,
		Edges: keys[:planLength(fraction, len(keys))],
	}, nil
}

func planLength(fraction float64, count int) int {
	return int(math.Floor(fraction * float64(count)))
}
