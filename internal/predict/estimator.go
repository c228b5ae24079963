package predict

import (
	"math"

	"github.com/mkorsten/foresight/internal/domain"
)

// VelocityEstimate is a statistical summary of historical throughput, in
// points per period.
type VelocityEstimate struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	// Fallback marks the documented default distribution used when no
	// history was available.
	Fallback bool
}

// CapacityEstimate summarizes the team's current effective capacity.
type CapacityEstimate struct {
	HoursPerWeek    float64
	UtilizationRate float64
	// BurnoutRisk is 0-1.
	BurnoutRisk float64
	TeamSize    int
	Fallback    bool
}

// EstimateVelocity derives the velocity distribution from completed
// time-boxes. Empty history returns the documented fallback rather than
// failing; the system must always be able to produce some forecast.
func EstimateVelocity(history []domain.VelocityRecord) VelocityEstimate {
	if len(history) == 0 {
		return FallbackVelocity()
	}

	var sum float64
	min := history[0].PointsCompleted
	max := history[0].PointsCompleted
	for _, rec := range history {
		sum += rec.PointsCompleted
		if rec.PointsCompleted < min {
			min = rec.PointsCompleted
		}
		if rec.PointsCompleted > max {
			max = rec.PointsCompleted
		}
	}
	mean := sum / float64(len(history))

	var sq float64
	for _, rec := range history {
		d := rec.PointsCompleted - mean
		sq += d * d
	}
	stdDev := math.Sqrt(sq / float64(len(history)))

	return VelocityEstimate{Mean: mean, StdDev: stdDev, Min: min, Max: max}
}

// EstimateCapacity derives effective team capacity from the current
// allocation snapshot. Empty input returns the single-person fallback.
func EstimateCapacity(allocations []domain.CapacityRecord) CapacityEstimate {
	if len(allocations) == 0 {
		return FallbackCapacity()
	}

	var allocated, total, burnout float64
	for _, rec := range allocations {
		allocated += rec.AllocatedHours
		total += rec.TotalCapacityHours
		burnout += rec.BurnoutRiskScore
	}

	utilization := 0.0
	if total > 0 {
		utilization = allocated / total
	}

	return CapacityEstimate{
		HoursPerWeek:    allocated,
		UtilizationRate: utilization,
		BurnoutRisk:     burnout / float64(len(allocations)) / 100,
		TeamSize:        len(allocations),
	}
}
