package graph

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildGraph constructs a graph over n nodes with edges zipped from two
// generated index slices.
func buildGraph(n int, us, vs []int) *Graph {
	g := New()
	for i := 0; i < n; i++ {
		g.AddNode(fmt.Sprintf("n%d", i))
	}
	m := len(us)
	if len(vs) < m {
		m = len(vs)
	}
	for i := 0; i < m; i++ {
		a := fmt.Sprintf("n%d", us[i]%n)
		b := fmt.Sprintf("n%d", vs[i]%n)
		g.AddEdge(a, b, 1.0)
	}
	return g
}

// TestGraphInvariants uses property-based testing to verify graph invariants
// that must hold for any sequence of valid operations.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("every edge endpoint is a node", prop.ForAll(
		func(n int, us, vs []int) bool {
			g := buildGraph(n, us, vs)
			for _, e := range g.Edges() {
				if !g.HasNode(e.U) || !g.HasNode(e.V) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.SliceOf(gen.IntRange(0, 99)),
		gen.SliceOf(gen.IntRange(0, 99)),
	))

	properties.Property("removing a node removes its incident edges", prop.ForAll(
		func(n int, us, vs []int, victim int) bool {
			g := buildGraph(n, us, vs)
			id := fmt.Sprintf("n%d", victim%n)
			if err := g.RemoveNode(id); err != nil {
				return false
			}
			for _, e := range g.Edges() {
				if e.U == id || e.V == id {
					return false
				}
			}
			return !g.HasNode(id)
		},
		gen.IntRange(1, 30),
		gen.SliceOf(gen.IntRange(0, 99)),
		gen.SliceOf(gen.IntRange(0, 99)),
		gen.IntRange(0, 99),
	))

	properties.Property("clone mutation never touches the original", prop.ForAll(
		func(n int, us, vs []int) bool {
			g := buildGraph(n, us, vs)
			nodesBefore, edgesBefore := g.NodeCount(), g.EdgeCount()

			clone := g.Clone()
			for _, id := range clone.Nodes() {
				clone.RemoveNode(id)
			}

			return g.NodeCount() == nodesBefore && g.EdgeCount() == edgesBefore &&
				clone.NodeCount() == 0
		},
		gen.IntRange(1, 30),
		gen.SliceOf(gen.IntRange(0, 99)),
		gen.SliceOf(gen.IntRange(0, 99)),
	))

	properties.Property("component sizes sum to node count", prop.ForAll(
		func(n int, us, vs []int) bool {
			g := buildGraph(n, us, vs)
			total := 0
			for _, c := range g.ConnectedComponents().Components {
				total += c.Size
			}
			return total == g.NodeCount()
		},
		gen.IntRange(1, 30),
		gen.SliceOf(gen.IntRange(0, 99)),
		gen.SliceOf(gen.IntRange(0, 99)),
	))

	properties.TestingRun(t)
}
