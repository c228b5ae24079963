package contract

import "github.com/mkorsten/foresight/internal/app"

type ScenarioRequest = app.ScenarioRequest

func NewScenarioRequest(projectID, name string) ScenarioRequest {
	return app.NewScenarioRequest(projectID, name)
}

type ScenarioResponse = app.ScenarioResponse
