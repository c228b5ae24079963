package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkorsten/foresight/internal/domain"
)

func NewTestProject(name string) *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WorkItem options
type WorkItemOption func(*domain.WorkItem)

func WithParentID(id string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.ParentID = &id
	}
}

func WithStatus(s domain.WorkItemStatus) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Status = s
	}
}

func WithEffortHours(h float64) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.EstimatedEffortHours = h
	}
}

func WithAssignee(id string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.AssigneeID = &id
	}
}

func NewTestWorkItem(projectID, title string, opts ...WorkItemOption) *domain.WorkItem {
	now := time.Now().UTC()
	w := &domain.WorkItem{
		ID:                   uuid.New().String(),
		ProjectID:            projectID,
		Title:                title,
		Status:               domain.WorkItemTodo,
		EstimatedEffortHours: 8,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewTestVelocityRecord creates a closed weekly time-box ending weeksAgo weeks
// before now with the given completed points.
func NewTestVelocityRecord(projectID string, weeksAgo int, points float64) *domain.VelocityRecord {
	now := time.Now().UTC()
	end := now.AddDate(0, 0, -7*weeksAgo)
	return &domain.VelocityRecord{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		PeriodStart:     end.AddDate(0, 0, -7),
		PeriodEnd:       end,
		PointsCompleted: points,
		TeamSize:        3,
		CreatedAt:       now,
	}
}

func NewTestCapacityRecord(projectID, assigneeID string, allocated, total, burnout float64) *domain.CapacityRecord {
	return &domain.CapacityRecord{
		ID:                 uuid.New().String(),
		ProjectID:          projectID,
		AssigneeID:         assigneeID,
		AllocatedHours:     allocated,
		TotalCapacityHours: total,
		BurnoutRiskScore:   burnout,
		CreatedAt:          time.Now().UTC(),
	}
}
