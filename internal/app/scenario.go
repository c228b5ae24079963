package app

import "github.com/mkorsten/foresight/internal/domain"

type ScenarioRequest struct {
	ProjectID string
	Name      string
	Changes   []domain.ScenarioChange
	// Runs overrides the simulation batch size when positive.
	Runs int
	// Activate marks the saved scenario as the project's active plan,
	// deactivating any other.
	Activate bool
}

func NewScenarioRequest(projectID, name string) ScenarioRequest {
	return ScenarioRequest{
		ProjectID: projectID,
		Name:      name,
	}
}

type ScenarioResponse struct {
	Scenario *domain.ScenarioRecord
	Baseline *domain.Forecast
	Adjusted *domain.Forecast
}
