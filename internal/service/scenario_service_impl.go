package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mkorsten/foresight/internal/app"
	"github.com/mkorsten/foresight/internal/db"
	"github.com/mkorsten/foresight/internal/domain"
	"github.com/mkorsten/foresight/internal/predict"
	"github.com/mkorsten/foresight/internal/repository"
)

type scenarioService struct {
	projects  repository.ProjectRepo
	workItems repository.WorkItemRepo
	velocity  repository.VelocityRepo
	capacity  repository.CapacityRepo
	scenarios repository.ScenarioRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver

	now         func() time.Time
	baselineRng *rand.Rand
	scenarioRng *rand.Rand
}

func NewScenarioService(
	projects repository.ProjectRepo,
	workItems repository.WorkItemRepo,
	velocity repository.VelocityRepo,
	capacity repository.CapacityRepo,
	scenarios repository.ScenarioRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScenarioService {
	return &scenarioService{
		projects:  projects,
		workItems: workItems,
		velocity:  velocity,
		capacity:  capacity,
		scenarios: scenarios,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *scenarioService) Evaluate(ctx context.Context, req app.ScenarioRequest) (resp *app.ScenarioResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project_id":   req.ProjectID,
		"scenario":     req.Name,
		"change_count": len(req.Changes),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "evaluate-scenario",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	input, err := s.baselineInput(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	cmp, err := predict.EvaluateScenario(ctx, input,
		predict.Scenario{Name: req.Name, Changes: req.Changes},
		predict.EvalOptions{
			Runs:         req.Runs,
			BaselineRand: s.baselineRng,
			ScenarioRand: s.scenarioRng,
		})
	if err != nil {
		return nil, err
	}
	fields["days_saved"] = cmp.DaysSaved
	fields["feasible"] = cmp.IsFeasible

	now := s.now()
	record := &domain.ScenarioRecord{
		ID:               uuid.New().String(),
		ProjectID:        req.ProjectID,
		Name:             req.Name,
		Changes:          req.Changes,
		BaselineP70:      cmp.Baseline.P70,
		ScenarioP70:      cmp.Scenario.P70,
		DaysSaved:        cmp.DaysSaved,
		CostImpact:       cmp.CostImpact,
		IsFeasible:       cmp.IsFeasible,
		FeasibilityNotes: cmp.FeasibilityNotes,
		IsActive:         false,
		CreatedAt:        now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txScenarios := repository.NewSQLiteScenarioRepo(tx)
		if err := txScenarios.Save(ctx, record); err != nil {
			return err
		}
		if req.Activate {
			if err := txScenarios.SetActive(ctx, req.ProjectID, record.ID); err != nil {
				return err
			}
			record.IsActive = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &app.ScenarioResponse{
		Scenario: record,
		Baseline: forecastFromResult(cmp.Baseline, now),
		Adjusted: forecastFromResult(cmp.Scenario, now),
	}, nil
}

func (s *scenarioService) Activate(ctx context.Context, projectID, scenarioID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScenarioRepo(tx).SetActive(ctx, projectID, scenarioID)
	})
}

func (s *scenarioService) ListByProject(ctx context.Context, projectID string) ([]*domain.ScenarioRecord, error) {
	return s.scenarios.ListByProject(ctx, projectID)
}

// baselineInput assembles the project-wide forecast input a scenario's changes
// are applied against.
func (s *scenarioService) baselineInput(ctx context.Context, projectID string) (predict.ForecastInput, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return predict.ForecastInput{}, err
	}
	items, err := s.workItems.ListByProject(ctx, projectID)
	if err != nil {
		return predict.ForecastInput{}, fmt.Errorf("loading work items: %w", err)
	}
	scope := scopeFromItems(items)

	history, err := s.velocity.ListRecent(ctx, projectID, 6)
	if err != nil {
		return predict.ForecastInput{}, fmt.Errorf("loading velocity history: %w", err)
	}
	allocations, err := s.capacity.ListByProject(ctx, projectID)
	if err != nil {
		return predict.ForecastInput{}, fmt.Errorf("loading capacity snapshot: %w", err)
	}

	return predict.ForecastInput{
		TargetID:                projectID,
		TargetType:              domain.TargetProject,
		RemainingEffort:         scope.RemainingPoints,
		DependencyCount:         scope.DependencyCount,
		ExternalDependencyCount: scope.ExternalCount,
		StartDate:               s.now(),
		Velocity:                predict.EstimateVelocity(history),
		Capacity:                predict.EstimateCapacity(allocations),
	}, nil
}
