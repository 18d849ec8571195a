package graph

import "container/list"

// Component is a maximal set of mutually reachable nodes.
type Component struct {
	ID    int
	Nodes []string
	Size  int
}

// ComponentsResult holds the connected components of a graph along with the
// component assignment of every node.
type ComponentsResult struct {
	Components    []*Component
	NodeComponent map[string]int
}

// ConnectedComponents finds all connected components via BFS. Isolated nodes
// form their own component of size 1; self-loops do not affect membership.
// Components are discovered in node insertion order.
func (g *Graph) ConnectedComponents() *ComponentsResult {
	visited := make(map[string]bool, len(g.adj))
	nodeComponent := make(map[string]int, len(g.adj))
	components := make([]*Component, 0)
	componentID := 0

	for _, start := range g.nodeOrder {
		if visited[start] {
			continue
		}

		component := &Component{
			ID:    componentID,
			Nodes: make([]string, 0),
		}

		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			id, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			component.Nodes = append(component.Nodes, id)
			nodeComponent[id] = componentID

			for neighbor := range g.adj[id] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
		}

		component.Size = len(component.Nodes)
		components = append(components, component)
		componentID++
	}

	return &ComponentsResult{
		Components:    components,
		NodeComponent: nodeComponent,
	}
}

// LargestComponentSize returns the node count of the largest connected
// component, or 0 for an empty graph.
func (g *Graph) LargestComponentSize() int {
	largest := 0
	for _, c := range g.ConnectedComponents().Components {
		if c.Size > largest {
			largest = c.Size
		}
	}
	return largest
}

// LargestComponent returns the subgraph induced by the largest connected
// component. Ties go to the earliest-discovered component. Returns an empty
// graph when the receiver has no nodes.
func (g *Graph) LargestComponent() *Graph {
	var largest *Component
	for _, c := range g.ConnectedComponents().Components {
		if largest == nil || c.Size > largest.Size {
			largest = c
		}
	}

	sub := New()
	if largest == nil {
		return sub
	}

	member := make(map[string]bool, largest.Size)
	for _, id := range largest.Nodes {
		member[id] = true
	}
	for _, id := range g.nodeOrder {
		if member[id] {
			sub.AddNode(id)
		}
	}
	for _, key := range g.edgeOrder {
		if member[key.U] && member[key.V] {
			sub.AddEdge(key.U, key.V, g.weights[key])
		}
	}
	return sub
}
