package importer

import (
	"fmt"
	"time"

	"github.com/mkorsten/foresight/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Project.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}

	wiRefs := make(map[string]bool)
	errs = append(errs, validateWorkItems(schema.WorkItems, wiRefs)...)
	errs = append(errs, validateParentChains(schema.WorkItems)...)
	errs = append(errs, validateVelocity(schema.VelocityHistory)...)
	errs = append(errs, validateCapacity(schema.Capacity)...)

	return errs
}

func validateWorkItems(items []WorkItemImport, wiRefs map[string]bool) []error {
	var errs []error

	for i, wi := range items {
		prefix := fmt.Sprintf("work_items[%d]", i)

		if wi.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if wiRefs[wi.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, wi.Ref))
		} else {
			wiRefs[wi.Ref] = true
		}

		if wi.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if wi.Status != "" && !domain.ValidWorkItemStatuses[wi.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, wi.Status))
		}
		if wi.EstimatedEffortHours < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_effort_hours must not be negative", prefix))
		}
		if wi.ParentRef != nil && *wi.ParentRef == wi.Ref {
			errs = append(errs, fmt.Errorf("%s.parent_ref: item depends on itself", prefix))
		}
	}

	// Parent refs may appear anywhere in the list, so check them after all
	// refs are collected.
	for i, wi := range items {
		if wi.ParentRef == nil || *wi.ParentRef == "" {
			continue
		}
		if !wiRefs[*wi.ParentRef] {
			errs = append(errs, fmt.Errorf("work_items[%d].parent_ref: ref %q not found in work_items", i, *wi.ParentRef))
		}
	}

	return errs
}

// validateParentChains rejects dependency cycles before conversion, so the
// stored plan always builds into a valid forest.
func validateParentChains(items []WorkItemImport) []error {
	parent := make(map[string]string, len(items))
	for _, wi := range items {
		if wi.Ref == "" || wi.ParentRef == nil || *wi.ParentRef == "" || *wi.ParentRef == wi.Ref {
			continue
		}
		parent[wi.Ref] = *wi.ParentRef
	}

	const (
		unvisited = 0
		inWalk    = 1
		safe      = 2
	)
	state := make(map[string]int, len(parent))
	var errs []error

	for ref := range parent {
		if state[ref] != unvisited {
			continue
		}

		var walk []string
		cur := ref
		for {
			if state[cur] == inWalk {
				errs = append(errs, fmt.Errorf("circular dependency detected involving %q", cur))
				break
			}
			if state[cur] == safe {
				break
			}
			state[cur] = inWalk
			walk = append(walk, cur)
			next, ok := parent[cur]
			if !ok {
				break
			}
			cur = next
		}
		for _, r := range walk {
			state[r] = safe
		}
	}

	return errs
}

func validateVelocity(history []VelocityImport) []error {
	var errs []error

	for i, v := range history {
		prefix := fmt.Sprintf("velocity_history[%d]", i)

		start, startErrs := requireDate(prefix+".period_start", v.PeriodStart)
		end, endErrs := requireDate(prefix+".period_end", v.PeriodEnd)
		errs = append(errs, startErrs...)
		errs = append(errs, endErrs...)
		if len(startErrs) == 0 && len(endErrs) == 0 && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s: period_end %q must be after period_start %q", prefix, v.PeriodEnd, v.PeriodStart))
		}

		if v.PointsCompleted < 0 {
			errs = append(errs, fmt.Errorf("%s.points_completed must not be negative", prefix))
		}
		if v.TeamSize < 0 {
			errs = append(errs, fmt.Errorf("%s.team_size must not be negative", prefix))
		}
	}

	return errs
}

func validateCapacity(capacity []CapacityImport) []error {
	var errs []error
	seen := make(map[string]bool, len(capacity))

	for i, c := range capacity {
		prefix := fmt.Sprintf("capacity[%d]", i)

		if c.Assignee == "" {
			errs = append(errs, fmt.Errorf("%s.assignee is required", prefix))
		} else if seen[c.Assignee] {
			errs = append(errs, fmt.Errorf("%s.assignee: duplicate assignee %q", prefix, c.Assignee))
		} else {
			seen[c.Assignee] = true
		}

		if c.AllocatedHours < 0 {
			errs = append(errs, fmt.Errorf("%s.allocated_hours must not be negative", prefix))
		}
		if c.TotalCapacityHours <= 0 {
			errs = append(errs, fmt.Errorf("%s.total_capacity_hours must be positive", prefix))
		}
		if c.BurnoutRiskScore < 0 || c.BurnoutRiskScore > 100 {
			errs = append(errs, fmt.Errorf("%s.burnout_risk_score must be between 0 and 100", prefix))
		}
	}

	return errs
}

func requireDate(field, value string) (time.Time, []error) {
	if value == "" {
		return time.Time{}, []error{fmt.Errorf("%s is required", field)}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)}
	}
	return t, nil
}
