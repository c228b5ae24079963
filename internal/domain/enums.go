package domain

type WorkItemStatus string

const (
	WorkItemTodo       WorkItemStatus = "todo"
	WorkItemInProgress WorkItemStatus = "in_progress"
	WorkItemBlocked    WorkItemStatus = "blocked"
	WorkItemDone       WorkItemStatus = "done"
	WorkItemCancelled  WorkItemStatus = "cancelled"
)

// ValidWorkItemStatuses is the canonical set of accepted work item status strings.
var ValidWorkItemStatuses = map[string]bool{
	"todo": true, "in_progress": true, "blocked": true,
	"done": true, "cancelled": true,
}

// IsComplete reports whether the status counts as finished work for
// remaining-effort purposes.
func (s WorkItemStatus) IsComplete() bool {
	return s == WorkItemDone || s == WorkItemCancelled
}

// Confidence classifies how tight a forecast distribution is.
type Confidence string

const (
	ConfidenceLow      Confidence = "LOW"
	ConfidenceMedium   Confidence = "MEDIUM"
	ConfidenceHigh     Confidence = "HIGH"
	ConfidenceVeryHigh Confidence = "VERY_HIGH"
)

// TargetType identifies the kind of entity a forecast is about.
type TargetType string

const (
	TargetTask         TargetType = "task"
	TargetSprint       TargetType = "sprint"
	TargetMilestone    TargetType = "milestone"
	TargetFeatureGroup TargetType = "feature_group"
	TargetProject      TargetType = "project"
)

// ValidTargetTypes is the canonical set of accepted forecast target types.
var ValidTargetTypes = map[string]bool{
	"task": true, "sprint": true, "milestone": true,
	"feature_group": true, "project": true,
}

// ChangeType identifies a hypothetical scenario adjustment.
type ChangeType string

const (
	ChangeAddStaff         ChangeType = "ADD_STAFF"
	ChangeReduceScope      ChangeType = "REDUCE_SCOPE"
	ChangeIncreaseVelocity ChangeType = "INCREASE_VELOCITY"
	ChangeRemoveBlockers   ChangeType = "REMOVE_BLOCKERS"
	ChangeExtendHours      ChangeType = "EXTEND_HOURS"
	ChangeRemoveDependency ChangeType = "REMOVE_DEPENDENCY"
)

// ValidChangeTypes is the canonical set of accepted scenario change types.
var ValidChangeTypes = map[string]bool{
	"ADD_STAFF": true, "REDUCE_SCOPE": true, "INCREASE_VELOCITY": true,
	"REMOVE_BLOCKERS": true, "EXTEND_HOURS": true, "REMOVE_DEPENDENCY": true,
}
