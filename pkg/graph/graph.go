// Package graph provides the in-memory undirected weighted graph used by the
// robustness simulation. Node IDs are opaque strings; edges are unordered
// pairs with a positive weight. Node and edge enumeration preserve insertion
// order so that rankings with tied scores stay deterministic.
package graph

// EdgeKey is the canonical, order-independent identity of an undirected edge.
// NewEdgeKey normalises endpoint order so (u,v) and (v,u) map to the same key.
type EdgeKey struct {
	U string
	V string
}

// NewEdgeKey returns the canonical key for the undirected edge between a and b.
func NewEdgeKey(a, b string) EdgeKey {
	if b < a {
		a, b = b, a
	}
	return EdgeKey{U: a, V: b}
}

// Edge is an undirected weighted edge as returned by Edges.
type Edge struct {
	U      string
	V      string
	Weight float64
}

// Key returns the canonical key for the edge.
func (e Edge) Key() EdgeKey {
	return NewEdgeKey(e.U, e.V)
}

// Graph is an adjacency-map representation of an undirected weighted graph.
// It is not safe for concurrent mutation; simulations clone it first.
type Graph struct {
	adj       map[string]map[string]float64
	weights   map[EdgeKey]float64
	nodeOrder []string
	edgeOrder []EdgeKey
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adj:     make(map[string]map[string]float64),
		weights: make(map[EdgeKey]float64),
	}
}

// AddNode inserts a node if it is not already present.
func (g *Graph) AddNode(id string) {
	if _, exists := g.adj[id]; exists {
		return
	}
	g.adj[id] = make(map[string]float64)
	g.nodeOrder = append(g.nodeOrder, id)
}

// AddEdge inserts an undirected edge between a and b with the given weight,
// creating either endpoint as needed. Re-adding an existing edge updates the
// weight without changing its position in the iteration order. Self-loops are
// stored but contribute a single adjacency entry.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if weight <= 0 {
		return EdgeError("add", a, b, ErrInvalidWeight)
	}
	g.AddNode(a)
	g.AddNode(b)

	key := NewEdgeKey(a, b)
	if _, exists := g.weights[key]; !exists {
		g.edgeOrder = append(g.edgeOrder, key)
	}
	g.weights[key] = weight
	g.adj[a][b] = weight
	g.adj[b][a] = weight
	return nil
}

// RemoveNode deletes a node and every edge incident to it.
func (g *Graph) RemoveNode(id string) error {
	neighbors, exists := g.adj[id]
	if !exists {
		return NodeNotFoundError("remove", id)
	}

	for n := range neighbors {
		delete(g.adj[n], id)
		delete(g.weights, NewEdgeKey(id, n))
	}
	delete(g.adj, id)

	g.nodeOrder = removeString(g.nodeOrder, id)
	g.edgeOrder = g.compactEdgeOrder()
	return nil
}

// RemoveEdge deletes the undirected edge between a and b, leaving both
// endpoint nodes in place.
func (g *Graph) RemoveEdge(a, b string) error {
	key := NewEdgeKey(a, b)
	if _, exists := g.weights[key]; !exists {
		return EdgeNotFoundError("remove", a, b)
	}
	delete(g.weights, key)
	delete(g.adj[a], b)
	delete(g.adj[b], a)
	g.edgeOrder = g.compactEdgeOrder()
	return nil
}

// HasNode reports whether the node is present.
func (g *Graph) HasNode(id string) bool {
	_, exists := g.adj[id]
	return exists
}

// HasEdge reports whether an edge exists between a and b, in either order.
func (g *Graph) HasEdge(a, b string) bool {
	_, exists := g.weights[NewEdgeKey(a, b)]
	return exists
}

// Weight returns the weight of the edge between a and b.
func (g *Graph) Weight(a, b string) (float64, bool) {
	w, exists := g.weights[NewEdgeKey(a, b)]
	return w, exists
}

// Degree returns the number of distinct neighbors of a node. A self-loop
// counts once.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// Neighbors returns the neighbor set of a node, excluding the node itself.
func (g *Graph) Neighbors(id string) map[string]bool {
	neighbors := make(map[string]bool, len(g.adj[id]))
	for n := range g.adj[id] {
		if n != id {
			neighbors[n] = true
		}
	}
	return neighbors
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.nodeOrder))
	copy(nodes, g.nodeOrder)
	return nodes
}

// Edges returns all edges in insertion order, each appearing once in
// canonical endpoint order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		edges = append(edges, Edge{U: key.U, V: key.V, Weight: g.weights[key]})
	}
	return edges
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return len(g.weights)
}

// Clone returns a deep copy that shares no state with the receiver.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		adj:       make(map[string]map[string]float64, len(g.adj)),
		weights:   make(map[EdgeKey]float64, len(g.weights)),
		nodeOrder: make([]string, len(g.nodeOrder)),
		edgeOrder: make([]EdgeKey, len(g.edgeOrder)),
	}
	for id, neighbors := range g.adj {
		cloned := make(map[string]float64, len(neighbors))
		for n, w := range neighbors {
			cloned[n] = w
		}
		clone.adj[id] = cloned
	}
	for key, w := range g.weights {
		clone.weights[key] = w
	}
	copy(clone.nodeOrder, g.nodeOrder)
	copy(clone.edgeOrder, g.edgeOrder)
	return clone
}

// compactEdgeOrder drops order entries whose edge no longer exists.
func (g *Graph) compactEdgeOrder() []EdgeKey {
	kept := g.edgeOrder[:0]
	for _, key := range g.edgeOrder {
		if _, exists := g.weights[key]; exists {
			kept = append(kept, key)
		}
	}
	return kept
}

func removeString(s []string, v string) []string {
	for i, item := range s {
		if item == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
