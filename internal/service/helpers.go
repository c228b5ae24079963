package service

import (
	"github.com/mkorsten/foresight/internal/domain"
	"github.com/mkorsten/foresight/internal/predict"
)

// hoursPerPoint converts work-item effort estimates (hours) into the point
// scale velocity history is recorded in. One point is one ideal working day.
const hoursPerPoint = 8.0

// workScope is the resolved slice of work a forecast target covers, reduced
// to the numbers the simulation needs.
type workScope struct {
	RemainingPoints float64
	// DependencyCount is the number of incomplete items still waiting on an
	// incomplete parent inside the scope.
	DependencyCount int
	// ExternalCount treats blocked items as waits on parties outside the
	// tracked plan.
	ExternalCount int
	ItemCount     int
}

// scopeFromItems aggregates a slice of work items into simulation inputs.
// Completed items contribute nothing; their effort is already spent.
func scopeFromItems(items []domain.WorkItem) workScope {
	byID := make(map[string]*domain.WorkItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	var scope workScope
	for i := range items {
		item := &items[i]
		if item.Status.IsComplete() {
			continue
		}
		scope.ItemCount++
		scope.RemainingPoints += item.EstimatedEffortHours / hoursPerPoint
		if item.Status == domain.WorkItemBlocked {
			scope.ExternalCount++
		}
		if item.ParentID != nil {
			if parent, ok := byID[*item.ParentID]; ok && !parent.Status.IsComplete() {
				scope.DependencyCount++
			}
		}
	}
	return scope
}

// subtreeItems returns the item with the given id plus all its descendants,
// using the already-built dependency graph.
func subtreeItems(g *predict.Graph, rootID string) []domain.WorkItem {
	root, ok := g.Node(rootID)
	if !ok {
		return nil
	}
	var items []domain.WorkItem
	stack := []*predict.GraphNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		items = append(items, n.Item)
		stack = append(stack, n.Children...)
	}
	return items
}
