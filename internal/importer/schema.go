package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for project import.
type ImportSchema struct {
	Project         ProjectImport    `json:"project"`
	WorkItems       []WorkItemImport `json:"work_items"`
	VelocityHistory []VelocityImport `json:"velocity_history,omitempty"`
	Capacity        []CapacityImport `json:"capacity,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	Name string `json:"name"`
}

// WorkItemImport defines a work item in the import file. ParentRef names the
// item this one depends on; refs are file-local and replaced by generated ids.
type WorkItemImport struct {
	Ref                  string  `json:"ref"`
	ParentRef            *string `json:"parent_ref,omitempty"`
	Title                string  `json:"title"`
	Status               string  `json:"status,omitempty"`
	EstimatedEffortHours float64 `json:"estimated_effort_hours"`
	Assignee             *string `json:"assignee,omitempty"`
}

// VelocityImport defines one closed time-box of throughput history.
type VelocityImport struct {
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
	PointsCompleted float64 `json:"points_completed"`
	TeamSize        int     `json:"team_size,omitempty"`
}

// CapacityImport defines one person's current allocation.
type CapacityImport struct {
	Assignee           string  `json:"assignee"`
	AllocatedHours     float64 `json:"allocated_hours"`
	TotalCapacityHours float64 `json:"total_capacity_hours"`
	BurnoutRiskScore   float64 `json:"burnout_risk_score,omitempty"`
}

// LoadImportSchema reads and parses a project import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
