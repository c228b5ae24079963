package predict

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/mkorsten/foresight/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioBase() ForecastInput {
	return ForecastInput{
		TargetID:        "proj-1",
		TargetType:      domain.TargetProject,
		RemainingEffort: 120,
		DependencyCount: 3,
		StartDate:       time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		Velocity:        VelocityEstimate{Mean: 20, StdDev: 5, Min: 15, Max: 25},
		Capacity:        CapacityEstimate{HoursPerWeek: 60, UtilizationRate: 0.8, BurnoutRisk: 0.2, TeamSize: 2},
	}
}

func evalOpts(runs int) EvalOptions {
	return EvalOptions{
		Runs:         runs,
		BaselineRand: rand.New(rand.NewSource(100)),
		ScenarioRand: rand.New(rand.NewSource(200)),
	}
}

func TestEvaluateScenario_AddStaff_SavesTime(t *testing.T) {
	sc := Scenario{
		Name:    "two more engineers",
		Changes: []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 2}},
	}

	cmp, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(5000))
	require.NoError(t, err)

	// Multiplier 1 + 2*0.8 = 2.6 cuts effective effort by more than half.
	assert.Greater(t, cmp.DaysSaved, 0.0)
	assert.True(t, cmp.IsFeasible)
	assert.Equal(t, "two more engineers", cmp.ScenarioName)
	assert.Equal(t, 5000, cmp.Baseline.Runs)
	assert.Equal(t, 5000, cmp.Scenario.Runs)
}

func TestEvaluateScenario_AddStaff_CostedOverEngagementWindow(t *testing.T) {
	sc := Scenario{Changes: []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 2}}}

	cmp, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(500))
	require.NoError(t, err)

	// 2 people * 12000/month * 3 months.
	assert.InDelta(t, 72000, cmp.CostImpact, 1e-9)
}

// TestEvaluateScenario_BrooksLawGuard: adding 6 people to a 2-person team is
// flagged infeasible with a ramp-up warning.
func TestEvaluateScenario_BrooksLawGuard(t *testing.T) {
	sc := Scenario{Changes: []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 6}}}

	cmp, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(500))
	require.NoError(t, err)

	assert.False(t, cmp.IsFeasible)
	assert.Contains(t, strings.Join(cmp.FeasibilityNotes, "\n"), "ramp-up")
}

func TestEvaluateScenario_DoublingTeam_WarnsButFeasible(t *testing.T) {
	sc := Scenario{Changes: []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 2}}}

	cmp, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(500))
	require.NoError(t, err)

	assert.True(t, cmp.IsFeasible)
	require.Len(t, cmp.FeasibilityNotes, 1)
	assert.Contains(t, cmp.FeasibilityNotes[0], "ramp-up drag")
}

// TestEvaluateScenario_ReduceScope_CostNeverPositive: scope cuts save or
// break even under the reference cost model.
func TestEvaluateScenario_ReduceScope_CostNeverPositive(t *testing.T) {
	sc := Scenario{Changes: []domain.ScenarioChange{{Type: domain.ChangeReduceScope, Value: 20}}}

	cmp, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(500))
	require.NoError(t, err)

	assert.LessOrEqual(t, cmp.CostImpact, 0.0)
	// 20% of 120 points at 500/point.
	assert.InDelta(t, -12000, cmp.CostImpact, 1e-9)
	assert.True(t, cmp.IsFeasible)
}

func TestEvaluateScenario_OvertimeGuard(t *testing.T) {
	sc := Scenario{Changes: []domain.ScenarioChange{{Type: domain.ChangeExtendHours, Value: 25}}}

	cmp, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(500))
	require.NoError(t, err)

	assert.False(t, cmp.IsFeasible)
	assert.Contains(t, strings.Join(cmp.FeasibilityNotes, "\n"), "burnout")
}

func TestEvaluateScenario_OvertimeWithinGuard_PremiumCost(t *testing.T) {
	sc := Scenario{Changes: []domain.ScenarioChange{{Type: domain.ChangeExtendHours, Value: 10}}}

	cmp, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(500))
	require.NoError(t, err)

	assert.True(t, cmp.IsFeasible)
	// 10% * 2 people * 12000 * 3 months * 1.5 premium.
	assert.InDelta(t, 10800, cmp.CostImpact, 1e-9)
}

func TestApplyChanges_RemoveBlockers_FloorsAtZero(t *testing.T) {
	base := scenarioBase()
	base.DependencyCount = 2

	adj, err := applyChanges(base, []domain.ScenarioChange{
		{Type: domain.ChangeRemoveBlockers, Value: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, adj.dependencyCount)
}

func TestApplyChanges_RemoveDependency_DefaultsToOne(t *testing.T) {
	base := scenarioBase()
	base.DependencyCount = 2

	adj, err := applyChanges(base, []domain.ScenarioChange{
		{Type: domain.ChangeRemoveDependency},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, adj.dependencyCount)
}

func TestApplyChanges_IncreaseVelocity(t *testing.T) {
	adj, err := applyChanges(scenarioBase(), []domain.ScenarioChange{
		{Type: domain.ChangeIncreaseVelocity, Value: 50},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.5, adj.velocityMultiplier, 1e-9)
}

func TestApplyChanges_ChangesCompound(t *testing.T) {
	adj, err := applyChanges(scenarioBase(), []domain.ScenarioChange{
		{Type: domain.ChangeAddStaff, Value: 1},
		{Type: domain.ChangeExtendHours, Value: 10},
		{Type: domain.ChangeReduceScope, Value: 25},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, adj.teamSize)
	assert.InDelta(t, 90, adj.remainingEffort, 1e-9)
	// (1 + 0.8) * (1 + 0.10*0.7)
	assert.InDelta(t, 1.926, adj.velocityMultiplier, 1e-9)
}

func TestEvaluateScenario_UnknownChangeType_FailsFast(t *testing.T) {
	sc := Scenario{Changes: []domain.ScenarioChange{{Type: "DO_MAGIC", Value: 1}}}

	_, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(500))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "DO_MAGIC")
}

func TestEvaluateScenario_DeterministicUnderFixedSeeds(t *testing.T) {
	sc := Scenario{Changes: []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 1}}}

	first, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(2000))
	require.NoError(t, err)
	second, err := EvaluateScenario(context.Background(), scenarioBase(), sc, evalOpts(2000))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
