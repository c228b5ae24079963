package app

import (
	"time"

	"github.com/mkorsten/foresight/internal/domain"
)

type ForecastRequest struct {
	TargetID   string
	TargetType domain.TargetType
	// Runs overrides the simulation batch size when positive.
	Runs int
	// Force bypasses the cached forecast and regenerates.
	Force bool
	// LookbackPeriods bounds how much velocity history feeds the estimate.
	LookbackPeriods int
}

func NewForecastRequest(targetID string, targetType domain.TargetType) ForecastRequest {
	return ForecastRequest{
		TargetID:        targetID,
		TargetType:      targetType,
		LookbackPeriods: 12,
	}
}

type ForecastResponse struct {
	Forecast *domain.Forecast
	// Cached marks a response served from a still-valid stored forecast.
	Cached bool
}

type ForecastErrorCode string

const (
	ForecastErrInvalidTarget ForecastErrorCode = "INVALID_TARGET"
)

type ForecastError struct {
	Code    ForecastErrorCode
	Message string
}

func (e *ForecastError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// SprintCapacityView reports how a planned time-box compares against the
// team's expected throughput.
type SprintCapacityView struct {
	ProjectID        string
	PlannedPoints    float64
	ExpectedVelocity float64
	UtilizationRate  float64
	Overcommitted    bool
	GeneratedAt      time.Time
}
