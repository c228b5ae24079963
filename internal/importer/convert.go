package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkorsten/foresight/internal/domain"
)

// GeneratedProject holds the converted domain entities ready for persistence.
type GeneratedProject struct {
	Project   *domain.Project
	WorkItems []*domain.WorkItem
	Velocity  []*domain.VelocityRecord
	Capacity  []*domain.CapacityRecord
}

// Convert transforms a validated import schema into domain entities with
// generated ids. Call ValidateImportSchema first; Convert assumes refs
// resolve and dates parse.
func Convert(schema *ImportSchema) (*GeneratedProject, error) {
	now := time.Now().UTC()

	project := &domain.Project{
		ID:        uuid.New().String(),
		Name:      schema.Project.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	idByRef := make(map[string]string, len(schema.WorkItems))
	for _, wi := range schema.WorkItems {
		idByRef[wi.Ref] = uuid.New().String()
	}

	// Emit parents before children so row inserts satisfy the parent_id
	// foreign key regardless of file order.
	items := make([]*domain.WorkItem, 0, len(schema.WorkItems))
	for _, wi := range orderParentFirst(schema.WorkItems) {
		status := domain.WorkItemStatus(wi.Status)
		if wi.Status == "" {
			status = domain.WorkItemTodo
		}

		var parentID *string
		if wi.ParentRef != nil && *wi.ParentRef != "" {
			id, ok := idByRef[*wi.ParentRef]
			if !ok {
				return nil, fmt.Errorf("unresolved parent_ref %q", *wi.ParentRef)
			}
			parentID = &id
		}

		items = append(items, &domain.WorkItem{
			ID:                   idByRef[wi.Ref],
			ProjectID:            project.ID,
			ParentID:             parentID,
			Title:                wi.Title,
			Status:               status,
			EstimatedEffortHours: wi.EstimatedEffortHours,
			AssigneeID:           wi.Assignee,
			CreatedAt:            now,
			UpdatedAt:            now,
		})
	}

	velocity, capacity, err := convertRecords(schema, project.ID, now)
	if err != nil {
		return nil, err
	}

	return &GeneratedProject{
		Project:   project,
		WorkItems: items,
		Velocity:  velocity,
		Capacity:  capacity,
	}, nil
}

// orderParentFirst returns the work items in an order where every parent
// precedes its children. Items in a cycle are appended as-is; validation has
// already rejected those schemas.
func orderParentFirst(items []WorkItemImport) []WorkItemImport {
	children := make(map[string][]WorkItemImport, len(items))
	var roots []WorkItemImport
	refs := make(map[string]bool, len(items))
	for _, wi := range items {
		refs[wi.Ref] = true
	}
	for _, wi := range items {
		if wi.ParentRef != nil && *wi.ParentRef != "" && *wi.ParentRef != wi.Ref && refs[*wi.ParentRef] {
			children[*wi.ParentRef] = append(children[*wi.ParentRef], wi)
			continue
		}
		roots = append(roots, wi)
	}

	ordered := make([]WorkItemImport, 0, len(items))
	queue := roots
	for len(queue) > 0 {
		wi := queue[0]
		queue = queue[1:]
		ordered = append(ordered, wi)
		queue = append(queue, children[wi.Ref]...)
		delete(children, wi.Ref)
	}
	for _, rest := range children {
		ordered = append(ordered, rest...)
	}
	return ordered
}

func convertRecords(schema *ImportSchema, projectID string, now time.Time) ([]*domain.VelocityRecord, []*domain.CapacityRecord, error) {
	velocity := make([]*domain.VelocityRecord, 0, len(schema.VelocityHistory))
	for _, v := range schema.VelocityHistory {
		start, err := time.Parse("2006-01-02", v.PeriodStart)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing period_start %q: %w", v.PeriodStart, err)
		}
		end, err := time.Parse("2006-01-02", v.PeriodEnd)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing period_end %q: %w", v.PeriodEnd, err)
		}
		teamSize := v.TeamSize
		if teamSize == 0 {
			teamSize = 1
		}
		velocity = append(velocity, &domain.VelocityRecord{
			ID:              uuid.New().String(),
			ProjectID:       projectID,
			PeriodStart:     start,
			PeriodEnd:       end,
			PointsCompleted: v.PointsCompleted,
			TeamSize:        teamSize,
			CreatedAt:       now,
		})
	}

	capacity := make([]*domain.CapacityRecord, 0, len(schema.Capacity))
	for _, c := range schema.Capacity {
		capacity = append(capacity, &domain.CapacityRecord{
			ID:                 uuid.New().String(),
			ProjectID:          projectID,
			AssigneeID:         c.Assignee,
			AllocatedHours:     c.AllocatedHours,
			TotalCapacityHours: c.TotalCapacityHours,
			BurnoutRiskScore:   c.BurnoutRiskScore,
			CreatedAt:          now,
		})
	}

	return velocity, capacity, nil
}
