package predict

import (
	"github.com/mkorsten/foresight/internal/domain"
)

// GraphNode wraps a work item with resolved parent/child links.
type GraphNode struct {
	Item     domain.WorkItem
	Parent   *GraphNode
	Children []*GraphNode
}

// Graph is the dependency forest of one project's work items. It is built
// fresh per analysis call and never mutated afterwards.
type Graph struct {
	nodes map[string]*GraphNode
	roots []*GraphNode
}

// Node returns the node for the given work item id.
func (g *Graph) Node(id string) (*GraphNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Roots returns the nodes with no parent, in input order.
func (g *Graph) Roots() []*GraphNode {
	return g.roots
}

// Len returns the node count.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// BuildGraph links work items into a forest by their parent pointers.
//
// A parent id that names no item in the set is tolerated and makes the item a
// root; the tracker may hold items outside the analyzed slice. A cycle in the
// parent chain is rejected with a ValidationError before any traversal can
// recurse on it.
func BuildGraph(items []domain.WorkItem) (*Graph, error) {
	g := &Graph{nodes: make(map[string]*GraphNode, len(items))}

	for _, item := range items {
		if item.ID == "" {
			return nil, &ValidationError{Field: "work_item", Reason: "missing id"}
		}
		if _, exists := g.nodes[item.ID]; exists {
			return nil, &ValidationError{Field: "work_item", Reason: "duplicate id " + item.ID}
		}
		g.nodes[item.ID] = &GraphNode{Item: item}
	}

	for _, item := range items {
		node := g.nodes[item.ID]
		if item.ParentID == nil {
			g.roots = append(g.roots, node)
			continue
		}
		parent, ok := g.nodes[*item.ParentID]
		if !ok {
			g.roots = append(g.roots, node)
			continue
		}
		node.Parent = parent
		parent.Children = append(parent.Children, node)
	}

	if err := validateAcyclic(g, items); err != nil {
		return nil, err
	}
	return g, nil
}

// validateAcyclic walks each parent chain with coloring: nodes in the current
// walk are "in progress", finished chains are "safe". Revisiting an
// in-progress node proves a cycle.
func validateAcyclic(g *Graph, items []domain.WorkItem) error {
	const (
		unvisited = 0
		inWalk    = 1
		safe      = 2
	)
	state := make(map[string]int, len(items))

	for _, item := range items {
		if state[item.ID] != unvisited {
			continue
		}

		var walk []string
		n := g.nodes[item.ID]
		for n != nil && state[n.Item.ID] == unvisited {
			state[n.Item.ID] = inWalk
			walk = append(walk, n.Item.ID)
			n = n.Parent
		}
		if n != nil && state[n.Item.ID] == inWalk {
			return &ValidationError{
				Field:  "work_item",
				Reason: "dependency cycle through " + n.Item.ID,
			}
		}
		for _, id := range walk {
			state[id] = safe
		}
	}
	return nil
}
