package contract

import "github.com/mkorsten/foresight/internal/app"

type ForecastRequest = app.ForecastRequest

func NewForecastRequest(targetID string, targetType TargetType) ForecastRequest {
	return app.NewForecastRequest(targetID, targetType)
}

type ForecastResponse = app.ForecastResponse

type ForecastErrorCode = app.ForecastErrorCode

const (
	ForecastErrInvalidTarget ForecastErrorCode = app.ForecastErrInvalidTarget
)

type ForecastError = app.ForecastError

type SprintCapacityView = app.SprintCapacityView
