package predict

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/mkorsten/foresight/internal/domain"
)

// ForecastInput is the per-request description of the work being forecast.
// Constructed by the caller; the engine never mutates it.
type ForecastInput struct {
	TargetID   string
	TargetType domain.TargetType

	// RemainingEffort is in points, matching velocity units.
	RemainingEffort         float64
	DependencyCount         int
	ExternalDependencyCount int

	// StartDate anchors duration-to-date conversion. Zero means "now".
	StartDate time.Time

	Velocity VelocityEstimate
	Capacity CapacityEstimate
}

// SimOptions controls a simulation batch.
type SimOptions struct {
	// Runs is the batch size; zero means DefaultRuns.
	Runs int
	// Rand is the random source. Nil gets a time-seeded source; tests inject
	// a fixed seed for deterministic results.
	Rand *rand.Rand
}

// ForecastResult is the empirical outcome distribution of one simulation
// batch, reduced to key order statistics. Immutable once produced.
type ForecastResult struct {
	TargetID   string
	TargetType domain.TargetType

	BestCase   time.Time
	P50        time.Time
	P70        time.Time
	P85        time.Time
	P90        time.Time
	WorstCase  time.Time
	MostLikely time.Time

	// SpreadWeeks is the p90-p50 spread that drove the confidence class.
	SpreadWeeks float64
	Confidence  domain.Confidence

	Runs      int
	StartDate time.Time

	// Assumptions the batch ran under.
	Velocity VelocityEstimate
	Capacity CapacityEstimate

	// UsedFallback is set when either assumption came from the documented
	// defaults. A degraded result, not a failure.
	UsedFallback bool
}

// ctxCheckInterval is how many runs pass between context checks; runs are
// independent, so an abandoned batch is simply discarded.
const ctxCheckInterval = 1024

// Simulate runs a Monte Carlo completion-time simulation.
//
// Each run samples a velocity from the estimated distribution (Box-Muller),
// clamps it to plausible bounds, suppresses it for burnout and utilization,
// converts remaining effort to a duration, then inflates the duration for
// internal dependencies (multiplicative) and external dependencies
// (additive waiting time). The sorted durations yield the percentile dates.
func Simulate(ctx context.Context, input ForecastInput, opts SimOptions) (*ForecastResult, error) {
	if input.RemainingEffort < 0 {
		return nil, &ValidationError{Field: "remaining_effort", Reason: "must not be negative"}
	}
	runs := opts.Runs
	if runs == 0 {
		runs = DefaultRuns
	}
	if runs < 0 {
		return nil, &ValidationError{Field: "runs", Reason: "must be positive"}
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	start := input.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}

	vel := input.Velocity
	capEst := input.Capacity

	durations := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		v := sampleNormal(rng, vel.Mean, vel.StdDev)
		v = clampFloat(v, VelocityClampLow*vel.Min, VelocityClampHigh*vel.Max)
		v *= (1 - capEst.BurnoutRisk*BurnoutVelocityPenalty) * capEst.UtilizationRate

		// Floor at 1 point/period so duration stays finite.
		d := input.RemainingEffort / math.Max(v, 1)

		for dep := 0; dep < input.DependencyCount; dep++ {
			d *= 1 + uniformIn(rng, DependencyDelayMin, DependencyDelayMax)
		}
		if input.ExternalDependencyCount > 0 {
			d += float64(input.ExternalDependencyCount) * uniformIn(rng, ExternalDelayMinWeeks, ExternalDelayMaxWeeks)
		}

		durations = append(durations, d)
	}

	// Mode comes from run order so histogram ties break on the bin seen first.
	mostLikelyWeeks := modeDuration(durations)

	sort.Float64s(durations)
	pct := func(p float64) float64 {
		idx := int(float64(len(durations)) * p)
		if idx >= len(durations) {
			idx = len(durations) - 1
		}
		return durations[idx]
	}

	bestW := pct(0.10)
	p50W := pct(0.50)
	p70W := pct(0.70)
	p85W := pct(0.85)
	p90W := pct(0.90)
	worstW := pct(0.95)

	spread := p90W - p50W

	return &ForecastResult{
		TargetID:     input.TargetID,
		TargetType:   input.TargetType,
		BestCase:     weeksToDate(start, bestW),
		P50:          weeksToDate(start, p50W),
		P70:          weeksToDate(start, p70W),
		P85:          weeksToDate(start, p85W),
		P90:          weeksToDate(start, p90W),
		WorstCase:    weeksToDate(start, worstW),
		MostLikely:   weeksToDate(start, mostLikelyWeeks),
		SpreadWeeks:  spread,
		Confidence:   classifyConfidence(spread),
		Runs:         runs,
		StartDate:    start,
		Velocity:     vel,
		Capacity:     capEst,
		UsedFallback: vel.Fallback || capEst.Fallback,
	}, nil
}

// sampleNormal draws from N(mean, stdDev) via the Box-Muller transform.
func sampleNormal(rng *rand.Rand, mean, stdDev float64) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	// Guard the log against a zero draw.
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z0*stdDev
}

func uniformIn(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// modeDuration buckets durations into fixed-width bins and returns the
// midpoint of the fullest bin. Ties go to the bin encountered first.
func modeDuration(durations []float64) float64 {
	if len(durations) == 0 {
		return 0
	}
	counts := make(map[int]int, 64)
	firstSeen := make(map[int]int, 64)
	for i, d := range durations {
		bin := int(d / ModeBinWidth)
		if _, ok := counts[bin]; !ok {
			firstSeen[bin] = i
		}
		counts[bin]++
	}

	bestBin := 0
	bestCount := -1
	for bin, c := range counts {
		if c > bestCount || (c == bestCount && firstSeen[bin] < firstSeen[bestBin]) {
			bestBin = bin
			bestCount = c
		}
	}
	return (float64(bestBin) + 0.5) * ModeBinWidth
}

func classifyConfidence(spread float64) domain.Confidence {
	switch {
	case spread > SpreadLowThreshold:
		return domain.ConfidenceLow
	case spread > SpreadMediumThreshold:
		return domain.ConfidenceMedium
	case spread > SpreadHighThreshold:
		return domain.ConfidenceHigh
	default:
		return domain.ConfidenceVeryHigh
	}
}

func weeksToDate(start time.Time, weeks float64) time.Time {
	return start.AddDate(0, 0, int(math.Round(weeks*DaysPerWeek)))
}
