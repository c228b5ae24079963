package service

import (
	"context"
	"database/sql"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorsten/foresight/internal/app"
	"github.com/mkorsten/foresight/internal/domain"
	"github.com/mkorsten/foresight/internal/repository"
	"github.com/mkorsten/foresight/internal/testutil"
)

func newScenarioServiceForTest(t *testing.T, database *sql.DB) *scenarioService {
	t.Helper()
	svc := NewScenarioService(
		repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteWorkItemRepo(database),
		repository.NewSQLiteVelocityRepo(database),
		repository.NewSQLiteCapacityRepo(database),
		repository.NewSQLiteScenarioRepo(database),
		testutil.NewTestUoW(database),
	).(*scenarioService)
	svc.baselineRng = rand.New(rand.NewSource(100))
	svc.scenarioRng = rand.New(rand.NewSource(200))
	return svc
}

func TestScenarioService_EvaluatePersistsRecord(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	p, _ := seedForecastProject(t, database)
	svc := newScenarioServiceForTest(t, database)

	req := app.NewScenarioRequest(p.ID, "add two engineers")
	req.Changes = []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 2}}

	resp, err := svc.Evaluate(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.Scenario)
	require.NotNil(t, resp.Baseline)
	require.NotNil(t, resp.Adjusted)

	rec := resp.Scenario
	assert.True(t, rec.IsFeasible)
	assert.False(t, rec.IsActive)
	// Two added people over the default three month engagement.
	assert.InDelta(t, 72000.0, rec.CostImpact, 1e-6)
	assert.False(t, rec.ScenarioP70.After(rec.BaselineP70))

	stored, err := repository.NewSQLiteScenarioRepo(database).GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "add two engineers", stored.Name)
	require.Len(t, stored.Changes, 1)
	assert.Equal(t, domain.ChangeAddStaff, stored.Changes[0].Type)
}

func TestScenarioService_EvaluateInfeasibleStaffing(t *testing.T) {
	database := testutil.NewTestDB(t)
	p, _ := seedForecastProject(t, database)
	svc := newScenarioServiceForTest(t, database)

	req := app.NewScenarioRequest(p.ID, "hire an army")
	req.Changes = []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 6}}

	resp, err := svc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Scenario.IsFeasible)
	assert.NotEmpty(t, resp.Scenario.FeasibilityNotes)
}

func TestScenarioService_EvaluateUnknownChangeType(t *testing.T) {
	database := testutil.NewTestDB(t)
	p, _ := seedForecastProject(t, database)
	svc := newScenarioServiceForTest(t, database)

	req := app.NewScenarioRequest(p.ID, "magic")
	req.Changes = []domain.ScenarioChange{{Type: "DO_MAGIC", Value: 1}}

	_, err := svc.Evaluate(context.Background(), req)
	assert.Error(t, err)
}

func TestScenarioService_ActivateIsExclusive(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	p, _ := seedForecastProject(t, database)
	svc := newScenarioServiceForTest(t, database)

	first := app.NewScenarioRequest(p.ID, "first")
	first.Changes = []domain.ScenarioChange{{Type: domain.ChangeReduceScope, Value: 10}}
	first.Activate = true
	firstResp, err := svc.Evaluate(ctx, first)
	require.NoError(t, err)
	assert.True(t, firstResp.Scenario.IsActive)

	second := app.NewScenarioRequest(p.ID, "second")
	second.Changes = []domain.ScenarioChange{{Type: domain.ChangeIncreaseVelocity, Value: 20}}
	second.Activate = true
	secondResp, err := svc.Evaluate(ctx, second)
	require.NoError(t, err)
	assert.True(t, secondResp.Scenario.IsActive)

	all, err := svc.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)

	activeCount := 0
	for _, s := range all {
		if s.IsActive {
			activeCount++
			assert.Equal(t, secondResp.Scenario.ID, s.ID)
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestScenarioService_ActivateUnknownScenario(t *testing.T) {
	database := testutil.NewTestDB(t)
	p, _ := seedForecastProject(t, database)
	svc := newScenarioServiceForTest(t, database)

	err := svc.Activate(context.Background(), p.ID, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
