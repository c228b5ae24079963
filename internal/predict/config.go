package predict

import "time"

// Simulation defaults.
const (
	// DefaultRuns is the Monte Carlo batch size when the caller does not
	// request one. Recorded in every result for reproducibility auditing.
	DefaultRuns = 10000

	// ModeBinWidth is the histogram bin width (in weeks) used to pick the
	// most-likely completion duration.
	ModeBinWidth = 0.5

	// VelocityClampLow/High bound a sampled velocity relative to the observed
	// min/max, so a tail draw can't go negative or run away.
	VelocityClampLow  = 0.5
	VelocityClampHigh = 1.5

	// BurnoutVelocityPenalty is the maximum fraction of velocity that a fully
	// burned-out team loses.
	BurnoutVelocityPenalty = 0.3

	// Per-dependency delay factor bounds, compounded multiplicatively.
	DependencyDelayMin = 0.05
	DependencyDelayMax = 0.15

	// External dependencies add waiting time rather than slowing work.
	ExternalDelayMinWeeks = 1.0
	ExternalDelayMaxWeeks = 2.0

	HoursPerDay = 8.0
	DaysPerWeek = 7.0
)

// Confidence classification thresholds over the p90-p50 spread, in weeks.
const (
	SpreadLowThreshold    = 8.0
	SpreadMediumThreshold = 4.0
	SpreadHighThreshold   = 2.0
)

// Delay propagation.
const (
	// DelayDecayPerLevel is the fraction of inherited delay surviving each
	// additional level of depth below the delayed item.
	DelayDecayPerLevel = 0.8

	// Affected-item confidence floor and per-level falloff.
	ImpactConfidenceFloor   = 0.4
	ImpactConfidencePerStep = 0.15
)

// Scenario heuristics.
const (
	// RampUpEfficiency discounts a new contributor's velocity during
	// onboarding (Brooks's Law).
	RampUpEfficiency = 0.8

	// OvertimeEfficiency discounts extended hours against equivalent regular
	// capacity.
	OvertimeEfficiency = 0.7

	// MaxStaffAddition is the largest single staffing increase considered
	// feasible to onboard at once.
	MaxStaffAddition = 5

	// MaxOvertimePct is the largest sustained overtime increase considered
	// feasible without burning the team out.
	MaxOvertimePct = 20.0
)

// CacheValidity is how long a persisted forecast may be served before it must
// be recomputed. Expiry is wall clock, not event driven.
const CacheValidity = 7 * 24 * time.Hour

// FallbackVelocity is the documented constant distribution used when no
// velocity history exists. The engine must always be able to forecast.
func FallbackVelocity() VelocityEstimate {
	return VelocityEstimate{Mean: 20, StdDev: 5, Min: 15, Max: 25, Fallback: true}
}

// FallbackCapacity is the documented single-person default used when no
// capacity allocations exist.
func FallbackCapacity() CapacityEstimate {
	return CapacityEstimate{
		HoursPerWeek:    30,
		UtilizationRate: 0.75,
		BurnoutRisk:     0.10,
		TeamSize:        1,
		Fallback:        true,
	}
}

// CostModel parameterizes the rough cost estimate attached to a scenario
// comparison. The engagement window defaults to the original short-term
// staffing assumption of three months.
type CostModel struct {
	// MonthlyRate is the fully loaded cost of one added person per month.
	MonthlyRate float64
	// EngagementMonths is the assumed staffing window for added people and
	// overtime.
	EngagementMonths float64
	// OvertimePremium multiplies the cost of extended hours.
	OvertimePremium float64
	// CostPerPoint values a point of scope for savings from cuts.
	CostPerPoint float64
}

// DefaultCostModel returns the reference cost model.
func DefaultCostModel() CostModel {
	return CostModel{
		MonthlyRate:      12000,
		EngagementMonths: 3,
		OvertimePremium:  1.5,
		CostPerPoint:     500,
	}
}
