// Package robustness simulates the degradation of a network under
// progressive node or edge removal. A removal plan is ranked once against the
// intact graph, then a runner removes one element per step and tracks the
// largest-connected-component fraction, producing the robustness curve.
package robustness

import "github.com/cfoyle/percolate/pkg/graph"

// TargetKind selects whether a removal plan targets nodes or edges.
type TargetKind int

const (
	TargetNode TargetKind = iota
	TargetEdge
)

// String returns the string representation of a target kind.
func (k TargetKind) String() string {
	switch k {
	case TargetNode:
		return "node"
	case TargetEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// ParseTargetKind converts a string to a TargetKind.
func ParseTargetKind(s string) (TargetKind, error) {
	switch s {
	case "node":
		return TargetNode, nil
	case "edge":
		return TargetEdge, nil
	default:
		return 0, &StrategyError{Kind: s, Cause: ErrUnknownTargetKind}
	}
}

// Strategy selects the ranking policy for a removal plan.
type Strategy int

const (
	// StrategyRandom removes nodes in a uniformly random order.
	StrategyRandom Strategy = iota
	// StrategyTargetedDegree removes the highest-degree nodes first.
	StrategyTargetedDegree
	// StrategyOverlapAscending removes weakly-embedded edges first.
	StrategyOverlapAscending
	// StrategyOverlapDescending removes strongly-embedded edges first.
	StrategyOverlapDescending
)

// String returns the string representation of a strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategyTargetedDegree:
		return "targeted-degree"
	case StrategyOverlapAscending:
		return "overlap-ascending"
	case StrategyOverlapDescending:
		return "overlap-descending"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "random":
		return StrategyRandom, nil
	case "targeted-degree":
		return StrategyTargetedDegree, nil
	case "overlap-ascending":
		return StrategyOverlapAscending, nil
	case "overlap-descending":
		return StrategyOverlapDescending, nil
	default:
		return 0, &StrategyError{Strategy: s, Cause: ErrUnknownStrategy}
	}
}

// kindOf returns the target kind a strategy operates on.
func (s Strategy) kindOf() TargetKind {
	switch s {
	case StrategyOverlapAscending, StrategyOverlapDescending:
		return TargetEdge
	default:
		return TargetNode
	}
}

// Plan is an ordered removal sequence computed against a graph before any
// mutation. Exactly one of Nodes or Edges is populated, matching Kind.
type Plan struct {
	Kind  TargetKind
	Nodes []string
	Edges []graph.EdgeKey
}

// Len returns the number of removal steps in the plan.
func (p *Plan) Len() int {
	if p.Kind == TargetNode {
		return len(p.Nodes)
	}
	return len(p.Edges)
}

// Truncate shortens the plan to at most n steps. Callers use this for early
// termination instead of cancelling a running simulation.
func (p *Plan) Truncate(n int) {
	if n < 0 || n >= p.Len() {
		return
	}
	if p.Kind == TargetNode {
		p.Nodes = p.Nodes[:n]
	} else {
		p.Edges = p.Edges[:n]
	}
}

// TrajectoryPoint is one step of a robustness curve: the fraction of plan
// elements removed so far, and the largest-component node fraction relative
// to the original node count.
type TrajectoryPoint struct {
	FractionRemoved   float64 `json:"fraction_removed"`
	FractionRemaining float64 `json:"fraction_remaining"`
}

// Result is the full trajectory of one simulation run. Skipped counts plan
// elements that were already missing from the snapshot when their step came
// up; it stays 0 under correct use.
type Result struct {
	Points  []TrajectoryPoint `json:"points"`
	Skipped int               `json:"skipped"`
}
