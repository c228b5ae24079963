package domain

import "time"

// WorkItem is a node in a project's dependency forest. ParentID, when set,
// names the item that must complete before this one can fully progress.
type WorkItem struct {
	ID                   string
	ProjectID            string
	ParentID             *string
	Title                string
	Status               WorkItemStatus
	EstimatedEffortHours float64
	AssigneeID           *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
