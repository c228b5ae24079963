package predict

import (
	"testing"
	"time"

	"github.com/mkorsten/foresight/internal/domain"
	"github.com/stretchr/testify/assert"
)

func velocityRecord(points float64, teamSize int) domain.VelocityRecord {
	return domain.VelocityRecord{
		PeriodStart:     time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		PointsCompleted: points,
		TeamSize:        teamSize,
	}
}

func TestEstimateVelocity_EmptyHistory_ReturnsDocumentedFallback(t *testing.T) {
	est := EstimateVelocity(nil)

	assert.Equal(t, VelocityEstimate{Mean: 20, StdDev: 5, Min: 15, Max: 25, Fallback: true}, est)
}

func TestEstimateVelocity_ComputesStats(t *testing.T) {
	history := []domain.VelocityRecord{
		velocityRecord(10, 3),
		velocityRecord(20, 3),
		velocityRecord(30, 3),
	}

	est := EstimateVelocity(history)

	assert.Equal(t, 20.0, est.Mean)
	assert.InDelta(t, 8.165, est.StdDev, 0.001) // sqrt((100+0+100)/3)
	assert.Equal(t, 10.0, est.Min)
	assert.Equal(t, 30.0, est.Max)
	assert.False(t, est.Fallback)
}

func TestEstimateVelocity_SingleRecord_ZeroStdDev(t *testing.T) {
	est := EstimateVelocity([]domain.VelocityRecord{velocityRecord(18, 2)})

	assert.Equal(t, 18.0, est.Mean)
	assert.Equal(t, 0.0, est.StdDev)
	assert.Equal(t, 18.0, est.Min)
	assert.Equal(t, 18.0, est.Max)
}

func TestEstimateCapacity_EmptyInput_ReturnsSinglePersonFallback(t *testing.T) {
	est := EstimateCapacity(nil)

	assert.Equal(t, 1, est.TeamSize)
	assert.Equal(t, 0.75, est.UtilizationRate)
	assert.Equal(t, 0.10, est.BurnoutRisk)
	assert.True(t, est.Fallback)
}

func TestEstimateCapacity_AggregatesAllocations(t *testing.T) {
	allocs := []domain.CapacityRecord{
		{AllocatedHours: 30, TotalCapacityHours: 40, BurnoutRiskScore: 20},
		{AllocatedHours: 20, TotalCapacityHours: 40, BurnoutRiskScore: 60},
	}

	est := EstimateCapacity(allocs)

	assert.Equal(t, 50.0, est.HoursPerWeek)
	assert.InDelta(t, 0.625, est.UtilizationRate, 1e-9) // 50/80
	assert.InDelta(t, 0.40, est.BurnoutRisk, 1e-9)      // avg(20,60)/100
	assert.Equal(t, 2, est.TeamSize)
	assert.False(t, est.Fallback)
}

func TestEstimateCapacity_ZeroTotalCapacity_ZeroUtilization(t *testing.T) {
	est := EstimateCapacity([]domain.CapacityRecord{{AllocatedHours: 10}})

	assert.Equal(t, 0.0, est.UtilizationRate)
}
