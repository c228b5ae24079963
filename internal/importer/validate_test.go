package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func validSchema() *ImportSchema {
	return &ImportSchema{
		Project: ProjectImport{Name: "payments"},
		WorkItems: []WorkItemImport{
			{Ref: "design", Title: "Design API", EstimatedEffortHours: 16},
			{Ref: "impl", ParentRef: ptr("design"), Title: "Implement API", EstimatedEffortHours: 40},
			{Ref: "test", ParentRef: ptr("impl"), Title: "Test API", Status: "todo", EstimatedEffortHours: 24},
		},
		VelocityHistory: []VelocityImport{
			{PeriodStart: "2026-01-05", PeriodEnd: "2026-01-12", PointsCompleted: 21, TeamSize: 3},
			{PeriodStart: "2026-01-12", PeriodEnd: "2026-01-19", PointsCompleted: 18, TeamSize: 3},
		},
		Capacity: []CapacityImport{
			{Assignee: "alice", AllocatedHours: 30, TotalCapacityHours: 40, BurnoutRiskScore: 20},
			{Assignee: "bob", AllocatedHours: 36, TotalCapacityHours: 40, BurnoutRiskScore: 55},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	errs := ValidateImportSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_MissingProjectName(t *testing.T) {
	schema := validSchema()
	schema.Project.Name = ""

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "project.name")
}

func TestValidateImportSchema_DuplicateRef(t *testing.T) {
	schema := validSchema()
	schema.WorkItems = append(schema.WorkItems, WorkItemImport{
		Ref: "design", Title: "Again", EstimatedEffortHours: 1,
	})

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate ref")
}

func TestValidateImportSchema_UnknownParentRef(t *testing.T) {
	schema := validSchema()
	schema.WorkItems[1].ParentRef = ptr("missing")

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "parent_ref")
	assert.Contains(t, errs[0].Error(), "missing")
}

func TestValidateImportSchema_ForwardParentRefAllowed(t *testing.T) {
	schema := validSchema()
	// First item depends on the last; order in the file must not matter.
	schema.WorkItems[0].ParentRef = ptr("test")
	schema.WorkItems[1].ParentRef = nil
	schema.WorkItems[2].ParentRef = nil

	errs := ValidateImportSchema(schema)
	assert.Empty(t, errs)
}

func TestValidateImportSchema_SelfDependency(t *testing.T) {
	schema := validSchema()
	schema.WorkItems[0].ParentRef = ptr("design")

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "depends on itself")
}

func TestValidateImportSchema_DependencyCycle(t *testing.T) {
	schema := validSchema()
	schema.WorkItems[0].ParentRef = ptr("test")

	errs := ValidateImportSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "circular dependency")
}

func TestValidateImportSchema_InvalidStatus(t *testing.T) {
	schema := validSchema()
	schema.WorkItems[2].Status = "paused"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "status")
}

func TestValidateImportSchema_NegativeEffort(t *testing.T) {
	schema := validSchema()
	schema.WorkItems[0].EstimatedEffortHours = -4

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "estimated_effort_hours")
}

func TestValidateImportSchema_VelocityDates(t *testing.T) {
	schema := validSchema()
	schema.VelocityHistory[0].PeriodEnd = "not-a-date"
	schema.VelocityHistory[1].PeriodEnd = "2026-01-05"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "invalid date format")
	assert.Contains(t, errs[1].Error(), "must be after")
}

func TestValidateImportSchema_CapacityBounds(t *testing.T) {
	schema := validSchema()
	schema.Capacity[0].TotalCapacityHours = 0
	schema.Capacity[1].BurnoutRiskScore = 140

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "total_capacity_hours")
	assert.Contains(t, errs[1].Error(), "burnout_risk_score")
}

func TestValidateImportSchema_AccumulatesAllErrors(t *testing.T) {
	schema := validSchema()
	schema.Project.Name = ""
	schema.WorkItems[0].Title = ""
	schema.Capacity[0].Assignee = ""

	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 3)
}
