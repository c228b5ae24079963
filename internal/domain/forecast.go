package domain

import "time"

// Forecast is a persisted Monte Carlo forecast result. Rows double as the
// read-through cache keyed by (TargetID, TargetType); validity filtering is
// the caller's responsibility.
type Forecast struct {
	ID         string
	TargetID   string
	TargetType TargetType

	BestCase   time.Time
	P50        time.Time
	P70        time.Time
	P85        time.Time
	P90        time.Time
	WorstCase  time.Time
	MostLikely time.Time

	Confidence Confidence
	// Runs records the simulation batch size for reproducibility auditing.
	Runs int

	// Assumptions the simulation ran under.
	VelocityMean    float64
	VelocityStdDev  float64
	HoursPerWeek    float64
	UtilizationRate float64
	BurnoutRisk     float64
	TeamSize        int

	// UsedFallback marks results produced from default velocity or capacity
	// constants because history was missing. Degraded, not failed.
	UsedFallback bool

	GeneratedAt time.Time
}
