package domain

import "time"

// ScenarioChange is one hypothetical adjustment within a scenario.
type ScenarioChange struct {
	Type        ChangeType `json:"type"`
	Value       float64    `json:"value"`
	Description string     `json:"description,omitempty"`
}

// ScenarioRecord is a persisted scenario comparison. At most one record per
// project carries IsActive=true; activating one deactivates the rest.
type ScenarioRecord struct {
	ID               string
	ProjectID        string
	Name             string
	Changes          []ScenarioChange
	BaselineP70      time.Time
	ScenarioP70      time.Time
	DaysSaved        float64
	CostImpact       float64
	IsFeasible       bool
	FeasibilityNotes []string
	IsActive         bool
	CreatedAt        time.Time
}
