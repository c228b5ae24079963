package contract

import "github.com/mkorsten/foresight/internal/app"

type ImpactRequest = app.ImpactRequest

func NewImpactRequest(projectID, itemID string, delayDays float64) ImpactRequest {
	return app.NewImpactRequest(projectID, itemID, delayDays)
}

type ImpactResponse = app.ImpactResponse

type CriticalPathView = app.CriticalPathView

type CriticalPathResponse = app.CriticalPathResponse
