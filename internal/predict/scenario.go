package predict

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/mkorsten/foresight/internal/domain"
)

// Scenario is a named list of hypothetical changes to evaluate against a
// baseline forecast input.
type Scenario struct {
	Name    string
	Changes []domain.ScenarioChange
}

// EvalOptions controls a scenario evaluation.
type EvalOptions struct {
	// Runs applies to both forecasts; zero means DefaultRuns.
	Runs int
	// BaselineRand and ScenarioRand are independent sources so the two
	// forecasts can run concurrently and stay deterministic under fixed
	// seeds. Nil sources are time-seeded.
	BaselineRand *rand.Rand
	ScenarioRand *rand.Rand
	// Cost overrides the reference cost model; the zero value means defaults.
	Cost *CostModel
}

// ScenarioComparison diffs a baseline forecast against the same work under a
// scenario's changes.
type ScenarioComparison struct {
	ScenarioName string
	Changes      []domain.ScenarioChange

	Baseline *ForecastResult
	Scenario *ForecastResult

	// DaysSaved is the p70 difference; positive means the scenario finishes
	// sooner.
	DaysSaved float64

	// CostImpact is the rough cost delta; negative means a saving.
	CostImpact float64

	IsFeasible       bool
	FeasibilityNotes []string
}

// adjustments is the working copy a scenario's changes are applied to.
type adjustments struct {
	remainingEffort    float64
	dependencyCount    int
	teamSize           int
	velocityMultiplier float64

	staffAdded  int
	overtimePct float64
	scopeCutPts float64
}

// EvaluateScenario applies the scenario's changes to a working copy of the
// baseline input, forecasts both, and diffs the outcomes. The two forecasts
// are independent and run concurrently.
func EvaluateScenario(ctx context.Context, base ForecastInput, sc Scenario, opts EvalOptions) (*ScenarioComparison, error) {
	adj, err := applyChanges(base, sc.Changes)
	if err != nil {
		return nil, err
	}

	scenarioInput := base
	scenarioInput.RemainingEffort = adj.remainingEffort / math.Max(adj.velocityMultiplier, 0.1)
	scenarioInput.DependencyCount = adj.dependencyCount

	var (
		wg      sync.WaitGroup
		results [2]*ForecastResult
		errs    [2]error
	)
	runs := []struct {
		input ForecastInput
		rng   *rand.Rand
	}{
		{input: base, rng: opts.BaselineRand},
		{input: scenarioInput, rng: opts.ScenarioRand},
	}
	for i := range runs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Simulate(ctx, runs[i].input, SimOptions{Runs: opts.Runs, Rand: runs[i].rng})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	baseline, scenario := results[0], results[1]

	cost := DefaultCostModel()
	if opts.Cost != nil {
		cost = *opts.Cost
	}

	feasible, notes := assessFeasibility(adj, base.Capacity.TeamSize)

	return &ScenarioComparison{
		ScenarioName:     sc.Name,
		Changes:          sc.Changes,
		Baseline:         baseline,
		Scenario:         scenario,
		DaysSaved:        baseline.P70.Sub(scenario.P70).Hours() / 24,
		CostImpact:       costImpact(adj, base.Capacity.TeamSize, cost),
		IsFeasible:       feasible,
		FeasibilityNotes: notes,
	}, nil
}

func applyChanges(base ForecastInput, changes []domain.ScenarioChange) (adjustments, error) {
	adj := adjustments{
		remainingEffort:    base.RemainingEffort,
		dependencyCount:    base.DependencyCount,
		teamSize:           base.Capacity.TeamSize,
		velocityMultiplier: 1,
	}

	for _, change := range changes {
		switch change.Type {
		case domain.ChangeAddStaff:
			n := int(change.Value)
			adj.teamSize += n
			adj.staffAdded += n
			// New contributors arrive at ramp-up efficiency, not full speed.
			adj.velocityMultiplier += float64(n) * RampUpEfficiency
		case domain.ChangeReduceScope:
			cut := adj.remainingEffort * change.Value / 100
			adj.remainingEffort -= cut
			adj.scopeCutPts += cut
		case domain.ChangeIncreaseVelocity:
			adj.velocityMultiplier *= 1 + change.Value/100
		case domain.ChangeRemoveBlockers, domain.ChangeRemoveDependency:
			n := int(change.Value)
			if n == 0 {
				n = 1
			}
			adj.dependencyCount -= n
			if adj.dependencyCount < 0 {
				adj.dependencyCount = 0
			}
		case domain.ChangeExtendHours:
			adj.overtimePct += change.Value
			// Overtime hours deliver a fraction of regular-hour output.
			adj.velocityMultiplier *= 1 + change.Value/100*OvertimeEfficiency
		default:
			return adjustments{}, &ValidationError{
				Field:  "scenario_change",
				Reason: fmt.Sprintf("unknown change type %q", change.Type),
			}
		}
	}
	return adj, nil
}

// costImpact estimates the cost delta: added staff over the engagement
// window, overtime at a premium, scope cuts as savings.
func costImpact(adj adjustments, baseTeam int, cost CostModel) float64 {
	var delta float64
	if adj.staffAdded > 0 {
		delta += float64(adj.staffAdded) * cost.MonthlyRate * cost.EngagementMonths
	}
	if adj.overtimePct > 0 {
		delta += adj.overtimePct / 100 * float64(baseTeam) * cost.MonthlyRate * cost.EngagementMonths * cost.OvertimePremium
	}
	if adj.scopeCutPts > 0 {
		delta -= adj.scopeCutPts * cost.CostPerPoint
	}
	return delta
}

// assessFeasibility applies the fixed staffing and overtime guards.
func assessFeasibility(adj adjustments, baseTeam int) (bool, []string) {
	feasible := true
	var notes []string

	if adj.staffAdded > MaxStaffAddition {
		feasible = false
		notes = append(notes, fmt.Sprintf(
			"adding %d people at once exceeds onboarding capacity; ramp-up cost outweighs the gain",
			adj.staffAdded))
	} else if adj.staffAdded > 0 && baseTeam > 0 && adj.staffAdded >= baseTeam {
		notes = append(notes, fmt.Sprintf(
			"team grows from %d to %d; expect significant ramp-up drag before throughput improves",
			baseTeam, adj.teamSize))
	}

	if adj.overtimePct > MaxOvertimePct {
		feasible = false
		notes = append(notes, fmt.Sprintf(
			"sustained overtime of %.0f%% exceeds the %.0f%% burnout guard",
			adj.overtimePct, MaxOvertimePct))
	}

	return feasible, notes
}
