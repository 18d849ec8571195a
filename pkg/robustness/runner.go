package robustness

import (
	"github.com/cfoyle/percolate/pkg/graph"
	"github.com/cfoyle/percolate/pkg/logging"
)

// Simulation steps through a removal plan against a private snapshot of the
// caller's graph. The fraction-remaining denominator is the snapshot's node
// count at construction and never changes, even under edge removal.
type Simulation struct {
	snapshot *graph.Graph
	plan     *Plan
	n0       int
	step     int
	skipped  int
	logger   logging.Logger
}

// NewSimulation clones g and prepares a simulation over the plan. The clone
// is owned exclusively by the simulation; the caller's graph is never
// mutated. A nil logger defaults to a no-op logger.
func NewSimulation(g *graph.Graph, plan *Plan, logger logging.Logger) (*Simulation, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Simulation{
		snapshot: g.Clone(),
		plan:     plan,
		n0:       g.NodeCount(),
		logger:   logger,
	}, nil
}

// Done reports whether every plan step has been executed.
func (s *Simulation) Done() bool {
	return s.step >= s.plan.Len()
}

// Skipped returns the number of plan elements that were missing from the
// snapshot when their step came up. It is 0 under correct use.
func (s *Simulation) Skipped() int {
	return s.skipped
}

// RemainingNodes returns the current node count of the snapshot. Under edge
// removal it stays equal to the original node count at every step.
func (s *Simulation) RemainingNodes() int {
	return s.snapshot.NodeCount()
}

// Step removes the next plan element and returns the resulting trajectory
// point. A removal target already absent from the snapshot is skipped, not
// fatal: the step still advances and records a point. Returns ok=false once
// the plan is exhausted.
func (s *Simulation) Step() (TrajectoryPoint, bool) {
	if s.Done() {
		return TrajectoryPoint{}, false
	}

	var err error
	if s.plan.Kind == TargetNode {
		err = s.snapshot.RemoveNode(s.plan.Nodes[s.step])
	} else {
		key := s.plan.Edges[s.step]
		err = s.snapshot.RemoveEdge(key.U, key.V)
	}
	if err != nil {
		s.skipped++
		s.logger.Warn("removal target missing from snapshot, skipping",
			logging.Int("step", s.step+1),
			logging.String("kind", s.plan.Kind.String()),
			logging.Error(err),
		)
	}

	s.step++

	largest := 0
	if s.snapshot.NodeCount() > 0 {
		largest = s.snapshot.LargestComponentSize()
	}

	remaining := 0.0
	if s.n0 > 0 {
		remaining = float64(largest) / float64(s.n0)
	}

	return TrajectoryPoint{
		FractionRemoved:   float64(s.step) / float64(s.plan.Len()),
		FractionRemaining: remaining,
	}, true
}

// Run executes an entire removal plan against a snapshot of g and returns
// the full robustness trajectory in step order. An empty plan yields an
// empty trajectory. Run is a pure function of its inputs: two concurrent
// calls over the same graph never share state.
func Run(g *graph.Graph, plan *Plan, logger logging.Logger) (*Result, error) {
	sim, err := NewSimulation(g, plan, logger)
	if err != nil {
		return nil, err
	}

	points := make([]TrajectoryPoint, 0, plan.Len())
	for {
		point, ok := sim.Step()
		if !ok {
			break
		}
		points = append(points, point)
	}

	return &Result{
		Points:  points,
		Skipped: sim.Skipped(),
	}, nil
}
